package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAplicarCascada_Secuencial(t *testing.T) {
	// 1000 con 10% y luego 5%: 1000 * 0.90 * 0.95 = 855, no 850
	got := AplicarCascada(dec("1000"), []decimal.Decimal{dec("10"), dec("5")})
	assert.True(t, dec("855").Equal(got), "esperado 855, obtenido %s", got)
}

func TestAplicarCascada_MenorQueSumaPlana(t *testing.T) {
	// La aplicación secuencial siempre descuenta menos que sumar los
	// porcentajes, porque cada paso opera sobre una base ya reducida.
	base := dec("1000")
	descuentos := []decimal.Decimal{dec("10"), dec("5"), dec("3")}

	secuencial := AplicarCascada(base, descuentos)

	suma := decimal.Zero
	for _, d := range descuentos {
		suma = suma.Add(d)
	}
	plana := base.Mul(cien.Sub(suma)).Div(cien)

	assert.True(t, secuencial.GreaterThan(plana),
		"secuencial %s debe ser mayor que plana %s", secuencial, plana)
}

func TestAplicarCascada_Vacia(t *testing.T) {
	base := dec("123.45")
	assert.True(t, base.Equal(AplicarCascada(base, nil)))
}

func TestAplicarCascada_CienPorCiento(t *testing.T) {
	got := AplicarCascada(dec("500"), []decimal.Decimal{dec("100")})
	assert.True(t, got.IsZero(), "100%% deja el costo en cero, obtenido %s", got)
}

func TestAplicarCascada_RedondeoSoloAlFinal(t *testing.T) {
	// 100 * 0.99666... por pasos acumularía error si se redondeara en cada
	// paso. 33.33 y 33.33: 100 * 0.6667 * 0.6667 = 44.4488... → 44.45
	got := AplicarCascada(dec("100"), []decimal.Decimal{dec("33.33"), dec("33.33")})
	assert.True(t, dec("44.45").Equal(got), "esperado 44.45, obtenido %s", got)
}

func TestAplicarCascada_OrdenNoImporta_MismoResultado(t *testing.T) {
	// La multiplicación es conmutativa: el orden no cambia el total, pero
	// se conserva igualmente porque los pasos intermedios sí difieren.
	a := AplicarCascada(dec("1000"), []decimal.Decimal{dec("10"), dec("5")})
	b := AplicarCascada(dec("1000"), []decimal.Decimal{dec("5"), dec("10")})
	assert.True(t, a.Equal(b))
}

func TestValidarPorcentajeDescuento(t *testing.T) {
	require.NoError(t, ValidarPorcentajeDescuento(dec("0.01")))
	require.NoError(t, ValidarPorcentajeDescuento(dec("100")))

	for _, p := range []string{"0", "-5", "100.01", "150"} {
		err := ValidarPorcentajeDescuento(dec(p))
		require.Error(t, err, "porcentaje %s debe rechazarse", p)
		assert.ErrorIs(t, err, ErrValidacion)
	}
}
