package service

// cuenta.go — current-account (cuenta corriente) rules shared by clients
// and suppliers. The balance is a single signed decimal; these helpers are
// the only sanctioned way to read or derive from it.

import (
	"github.com/shopspring/decimal"
)

// Balance classification. Zero is credit by convention.
const (
	SaldoCredito = "CREDITO"
	SaldoDebito  = "DEBITO"
)

// ClasificarSaldo answers the presentation query for a signed balance:
// DEBITO when the holder owes (saldo < 0), CREDITO otherwise.
func ClasificarSaldo(saldo decimal.Decimal) string {
	if saldo.IsNegative() {
		return SaldoDebito
	}
	return SaldoCredito
}

// AplicarAjuste adds delta to saldo. No floor or ceiling: a negative result
// is valid and represents debt. Persisting the result MUST go through a
// single-column partial update (see repositories) — never a whole-entity
// save, which would silently discard concurrent adjustments from a stale
// read.
func AplicarAjuste(saldo, delta decimal.Decimal) decimal.Decimal {
	return saldo.Add(delta).Round(2)
}

// ClampPuntos clamps a requested loyalty-point total to the valid range.
// Points are an absolute non-negative integer, never a delta.
func ClampPuntos(puntos int) int {
	if puntos < 0 {
		return 0
	}
	return puntos
}

// ClampDescuentoEspecial clamps the client's flat special discount to [0,100].
func ClampDescuentoEspecial(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(cien) {
		return cien
	}
	return p
}
