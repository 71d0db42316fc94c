package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClasificarSaldo(t *testing.T) {
	// zero is CREDITO by convention
	assert.Equal(t, SaldoCredito, ClasificarSaldo(decimal.Zero))
	assert.Equal(t, SaldoCredito, ClasificarSaldo(dec("0.01")))
	assert.Equal(t, SaldoCredito, ClasificarSaldo(dec("1500")))
	assert.Equal(t, SaldoDebito, ClasificarSaldo(dec("-0.01")))
	assert.Equal(t, SaldoDebito, ClasificarSaldo(dec("-1200.50")))
}

func TestAplicarAjuste_SinPiso(t *testing.T) {
	// a negative result is valid debt, never clamped
	got := AplicarAjuste(dec("100"), dec("-350.75"))
	assert.True(t, dec("-250.75").Equal(got))
}

func TestAplicarAjuste_Acumula(t *testing.T) {
	saldo := decimal.Zero
	saldo = AplicarAjuste(saldo, dec("100.10"))
	saldo = AplicarAjuste(saldo, dec("-40.05"))
	saldo = AplicarAjuste(saldo, dec("0"))
	assert.True(t, dec("60.05").Equal(saldo))
}

func TestClampPuntos(t *testing.T) {
	assert.Equal(t, 0, ClampPuntos(-5))
	assert.Equal(t, 0, ClampPuntos(0))
	assert.Equal(t, 120, ClampPuntos(120))
}

func TestClampDescuentoEspecial(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(ClampDescuentoEspecial(dec("-10"))))
	assert.True(t, dec("15.5").Equal(ClampDescuentoEspecial(dec("15.5"))))
	assert.True(t, cien.Equal(ClampDescuentoEspecial(dec("130"))))
}
