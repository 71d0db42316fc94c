package service

// cascada.go — supplier discount cascade.
// Each discount applies to the RESULT of the previous step, in stored
// (append) order. This is deliberately different from summing the
// percentages: 10% then 5% over 1000 gives 855, not 850.

import (
	"github.com/shopspring/decimal"
)

var cien = decimal.NewFromInt(100)

// AplicarCascada applies the ordered discount sequence to baseCosto,
// sequentially and multiplicatively. Intermediate steps are NOT rounded;
// only the final result is rounded to two decimal places. An empty sequence
// returns baseCosto unchanged (already at 2dp from storage).
func AplicarCascada(baseCosto decimal.Decimal, descuentos []decimal.Decimal) decimal.Decimal {
	if len(descuentos) == 0 {
		return baseCosto
	}
	costo := baseCosto
	for _, d := range descuentos {
		factor := cien.Sub(d).Div(cien)
		costo = costo.Mul(factor)
	}
	return costo.Round(2)
}

// ValidarPorcentajeDescuento enforces the (0,100] range at insertion time.
// Out-of-range values never reach the cascade.
func ValidarPorcentajeDescuento(p decimal.Decimal) error {
	if p.LessThanOrEqual(decimal.Zero) || p.GreaterThan(cien) {
		return validacionf("el descuento debe estar entre 0 (exclusive) y 100: %s", p.String())
	}
	return nil
}
