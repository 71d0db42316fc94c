package service

import (
	"context"
	"testing"
	"time"

	"github.com/sistemsnova/bruzzonercm-sub001/internal/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePadron returns a fixed answer per call, scripted by the test.
type fakePadron struct {
	err      error
	llamadas int
}

func (f *fakePadron) Consultar(_ context.Context, _, _ string) (*infra.DatosPadron, error) {
	f.llamadas++
	if f.err != nil {
		return nil, f.err
	}
	return &infra.DatosPadron{RazonSocial: "ACME SA", Estado: "ACTIVO"}, nil
}

func newPadronServiceForTest(client infra.PadronClient) PadronService {
	cb := infra.NewCircuitBreaker(infra.CircuitBreakerConfig{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		OpenTimeout:      time.Minute,
	})
	return NewPadronService(client, cb)
}

func TestNormalizarCUIT(t *testing.T) {
	limpio, err := NormalizarCUIT("30-71234567-8")
	require.NoError(t, err)
	assert.Equal(t, "30712345678", limpio)

	limpio, err = NormalizarCUIT(" 30 71234567 8 ")
	require.NoError(t, err)
	assert.Equal(t, "30712345678", limpio)

	for _, malo := range []string{"", "   ", "123", "30-7123456A-8", "307123456789"} {
		_, err := NormalizarCUIT(malo)
		require.Error(t, err, "CUIT %q debe rechazarse", malo)
		assert.ErrorIs(t, err, ErrValidacion)
	}
}

func TestConsultarPadron_Stub(t *testing.T) {
	svc := newPadronServiceForTest(infra.StubPadron{})

	resp, err := svc.Consultar(context.Background(), "30-71234567-8", infra.PadronTipoCliente)
	require.NoError(t, err)
	assert.Equal(t, "CONTRIBUYENTE DE PRUEBA S.A.", resp.RazonSocial)
	assert.Equal(t, "ACTIVO", resp.Estado)
}

func TestConsultarPadron_TipoInvalido(t *testing.T) {
	svc := newPadronServiceForTest(infra.StubPadron{})
	_, err := svc.Consultar(context.Background(), "30-71234567-8", "empleado")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidacion)
}

func TestConsultarPadron_CUITMalFormadoNoLlegaAlCliente(t *testing.T) {
	fake := &fakePadron{}
	svc := newPadronServiceForTest(fake)

	_, err := svc.Consultar(context.Background(), "basura", infra.PadronTipoProveedor)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidacion)
	assert.Equal(t, 0, fake.llamadas)
}

func TestConsultarPadron_NoDisponibleAbreElBreaker(t *testing.T) {
	fake := &fakePadron{err: infra.ErrPadronNoDisponible}
	svc := newPadronServiceForTest(fake)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := svc.Consultar(ctx, "30-71234567-8", infra.PadronTipoCliente)
		require.Error(t, err)
		assert.ErrorIs(t, err, infra.ErrPadronNoDisponible)
	}

	// breaker open: the client is not called anymore
	_, err := svc.Consultar(ctx, "30-71234567-8", infra.PadronTipoCliente)
	require.Error(t, err)
	assert.ErrorIs(t, err, infra.ErrCircuitOpen)
	assert.Equal(t, 2, fake.llamadas)
}

func TestConsultarPadron_NoEncontradoNoAbreElBreaker(t *testing.T) {
	// a definitive "not registered" answer is a successful lookup for the
	// breaker: many of them in a row must not cut the registry off
	fake := &fakePadron{err: infra.ErrPadronNoEncontrado}
	svc := newPadronServiceForTest(fake)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Consultar(ctx, "30-71234567-8", infra.PadronTipoCliente)
		require.Error(t, err)
		assert.ErrorIs(t, err, infra.ErrPadronNoEncontrado)
	}
	assert.Equal(t, 5, fake.llamadas)
}
