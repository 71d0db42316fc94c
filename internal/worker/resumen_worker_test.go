package worker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/sistemsnova/bruzzonercm-sub001/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// minimal ClienteRepository stub: Process only reads
type soloLecturaClientes struct {
	cliente *model.Cliente
}

func (r *soloLecturaClientes) Crear(context.Context, *model.Cliente) error { return nil }
func (r *soloLecturaClientes) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	if r.cliente == nil || r.cliente.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return r.cliente, nil
}
func (r *soloLecturaClientes) BuscarPorCUIT(context.Context, string) (*model.Cliente, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *soloLecturaClientes) Listar(context.Context) ([]model.Cliente, error) { return nil, nil }
func (r *soloLecturaClientes) ActualizarCampos(context.Context, uuid.UUID, map[string]interface{}) error {
	return nil
}
func (r *soloLecturaClientes) ActualizarSaldo(context.Context, uuid.UUID, decimal.Decimal) error {
	return nil
}
func (r *soloLecturaClientes) ReemplazarPersonas(context.Context, uuid.UUID, []model.PersonaAutorizada) error {
	return nil
}
func (r *soloLecturaClientes) Eliminar(context.Context, uuid.UUID) error { return nil }

func TestResumenWorker_PayloadInvalido(t *testing.T) {
	w := NewResumenWorker(&soloLecturaClientes{}, nil, nil, t.TempDir())

	err := w.Process(context.Background(), json.RawMessage(`{no es json`))
	require.Error(t, err)

	err = w.Process(context.Background(), json.RawMessage(`{"cliente_id":"no-es-uuid"}`))
	require.Error(t, err)
}

func TestResumenWorker_ClienteInexistente(t *testing.T) {
	w := NewResumenWorker(&soloLecturaClientes{}, nil, nil, t.TempDir())

	raw, _ := json.Marshal(map[string]string{"cliente_id": uuid.NewString()})
	err := w.Process(context.Background(), raw)
	assert.Error(t, err)
}

func TestResumenWorker_ClienteSinEmailNoFalla(t *testing.T) {
	// the address may have been cleared between enqueue and processing;
	// that is a skip, not a DLQ entry
	cliente := &model.Cliente{ID: uuid.New(), RazonSocial: "Kiosco Norte", CUIT: "20-11111111-1"}
	w := NewResumenWorker(&soloLecturaClientes{cliente: cliente}, nil, nil, t.TempDir())

	raw, _ := json.Marshal(map[string]string{"cliente_id": cliente.ID.String()})
	assert.NoError(t, w.Process(context.Background(), raw))
}

func TestEmailWorker_PayloadInvalido(t *testing.T) {
	w := NewEmailWorker(nil)
	err := w.Process(context.Background(), json.RawMessage(`]`))
	assert.Error(t, err)
}

func TestEmailWorker_DestinatarioVacioEsSkip(t *testing.T) {
	w := NewEmailWorker(nil)
	raw, _ := json.Marshal(EmailJobPayload{ToEmail: "", Subject: "x"})
	assert.NoError(t, w.Process(context.Background(), raw))
}
