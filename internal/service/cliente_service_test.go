package service

import (
	"context"
	"testing"

	"github.com/sistemsnova/bruzzonercm-sub001/internal/dto"
	"github.com/sistemsnova/bruzzonercm-sub001/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory ClienteRepository stub ─────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *stubClienteRepo) Crear(_ context.Context, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	for i := range c.Personas {
		c.Personas[i].ClienteID = c.ID
	}
	stored := *c
	stored.Personas = append([]model.PersonaAutorizada(nil), c.Personas...)
	r.clientes[c.ID] = &stored
	return nil
}

func (r *stubClienteRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *c
	copia.Personas = append([]model.PersonaAutorizada(nil), c.Personas...)
	return &copia, nil
}

func (r *stubClienteRepo) BuscarPorCUIT(_ context.Context, cuit string) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.CUIT == cuit {
			copia := *c
			copia.Personas = append([]model.PersonaAutorizada(nil), c.Personas...)
			return &copia, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClienteRepo) Listar(_ context.Context) ([]model.Cliente, error) {
	var out []model.Cliente
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClienteRepo) ActualizarCampos(_ context.Context, id uuid.UUID, campos map[string]interface{}) error {
	c, ok := r.clientes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range campos {
		switch k {
		case "razon_social":
			c.RazonSocial = v.(string)
		case "cuit":
			c.CUIT = v.(string)
		case "whatsapp":
			w := v.(string)
			c.Whatsapp = &w
		case "email":
			e := v.(string)
			c.Email = &e
		case "descuento_especial":
			c.DescuentoEspecial = v.(decimal.Decimal)
		case "lista_precio_id":
			c.ListaPrecioID = v.(*uuid.UUID)
		case "saldo":
			c.Saldo = v.(decimal.Decimal)
		case "puntos_acumulados":
			c.PuntosAcumulados = v.(int)
		case "puntos_habilitados":
			c.PuntosHabilitados = v.(bool)
		}
	}
	return nil
}

func (r *stubClienteRepo) ActualizarSaldo(ctx context.Context, id uuid.UUID, saldo decimal.Decimal) error {
	return r.ActualizarCampos(ctx, id, map[string]interface{}{"saldo": saldo})
}

func (r *stubClienteRepo) ReemplazarPersonas(_ context.Context, clienteID uuid.UUID, personas []model.PersonaAutorizada) error {
	c, ok := r.clientes[clienteID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Personas = append([]model.PersonaAutorizada(nil), personas...)
	return nil
}

func (r *stubClienteRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	if _, ok := r.clientes[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.clientes, id)
	return nil
}

// ── In-memory ListaPrecioRepository stub ─────────────────────────────────────

// slice-backed to preserve creation order, same as the real Listar
type stubListaRepo struct {
	listas []*model.ListaPrecio
}

func newStubListaRepo() *stubListaRepo { return &stubListaRepo{} }

func (r *stubListaRepo) Crear(_ context.Context, l *model.ListaPrecio) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.EsBase {
		for _, existente := range r.listas {
			existente.EsBase = false
		}
	}
	copia := *l
	r.listas = append(r.listas, &copia)
	return nil
}

func (r *stubListaRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.ListaPrecio, error) {
	for _, l := range r.listas {
		if l.ID == id {
			copia := *l
			return &copia, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubListaRepo) Listar(_ context.Context) ([]model.ListaPrecio, error) {
	out := make([]model.ListaPrecio, 0, len(r.listas))
	for _, l := range r.listas {
		out = append(out, *l)
	}
	return out, nil
}

func (r *stubListaRepo) ActualizarCampos(_ context.Context, id uuid.UUID, campos map[string]interface{}) error {
	for _, l := range r.listas {
		if l.ID == id {
			if nombre, ok := campos["nombre"]; ok {
				l.Nombre = nombre.(string)
			}
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubListaRepo) MarcarBase(_ context.Context, id uuid.UUID) error {
	var objetivo *model.ListaPrecio
	for _, l := range r.listas {
		if l.ID == id {
			objetivo = l
		}
	}
	if objetivo == nil {
		return gorm.ErrRecordNotFound
	}
	for _, l := range r.listas {
		l.EsBase = false
	}
	objetivo.EsBase = true
	return nil
}

func (r *stubListaRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	for i, l := range r.listas {
		if l.ID == id {
			r.listas = append(r.listas[:i], r.listas[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func newClienteServiceForTest() (ClienteService, *stubClienteRepo, *stubListaRepo) {
	clienteRepo := newStubClienteRepo()
	listaRepo := newStubListaRepo()
	return NewClienteService(clienteRepo, listaRepo), clienteRepo, listaRepo
}

func seedCliente(t *testing.T, svc ClienteService) *dto.ClienteResponse {
	t.Helper()
	c, err := svc.Crear(context.Background(), dto.CrearClienteRequest{
		RazonSocial: "Distribuidora El Faro SRL",
		CUIT:        "30-71234567-8",
	})
	require.NoError(t, err)
	return c
}

func mustID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestCrearCliente_CUITObligatorio(t *testing.T) {
	svc, _, _ := newClienteServiceForTest()
	_, err := svc.Crear(context.Background(), dto.CrearClienteRequest{
		RazonSocial: "Sin CUIT SA",
		CUIT:        "   ",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidacion)
}

func TestCrearCliente_ListaInexistente(t *testing.T) {
	svc, _, _ := newClienteServiceForTest()
	listaID := uuid.New().String()
	_, err := svc.Crear(context.Background(), dto.CrearClienteRequest{
		RazonSocial:   "Kiosco Norte",
		CUIT:          "20-11111111-1",
		ListaPrecioID: &listaID,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestCrearCliente_ListaMalFormada(t *testing.T) {
	svc, _, _ := newClienteServiceForTest()
	malo := "no-es-un-uuid"
	_, err := svc.Crear(context.Background(), dto.CrearClienteRequest{
		RazonSocial:   "Kiosco Norte",
		CUIT:          "20-11111111-1",
		ListaPrecioID: &malo,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidacion)
}

func TestActualizarCliente_ParcialNoPisaCampos(t *testing.T) {
	svc, _, _ := newClienteServiceForTest()
	c := seedCliente(t, svc)

	// adjust the balance, then patch an unrelated field: the balance and the
	// razon social must survive untouched
	_, err := svc.AjustarSaldo(context.Background(), mustID(t, c.ID), dec("-500"))
	require.NoError(t, err)

	wpp := "+5491155554444"
	actualizado, err := svc.Actualizar(context.Background(), mustID(t, c.ID), dto.ActualizarClienteRequest{
		Whatsapp: &wpp,
	})
	require.NoError(t, err)

	assert.Equal(t, "Distribuidora El Faro SRL", actualizado.RazonSocial)
	require.NotNil(t, actualizado.Whatsapp)
	assert.Equal(t, wpp, *actualizado.Whatsapp)
	assert.True(t, dec("-500").Equal(actualizado.Saldo), "saldo pisado por el patch: %s", actualizado.Saldo)
	assert.Equal(t, SaldoDebito, actualizado.EstadoSaldo)
}

func TestActualizarCliente_NoEncontrado(t *testing.T) {
	svc, _, _ := newClienteServiceForTest()
	nombre := "Otro"
	_, err := svc.Actualizar(context.Background(), uuid.New(), dto.ActualizarClienteRequest{RazonSocial: &nombre})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestAjustarSaldo_Acumula(t *testing.T) {
	svc, _, _ := newClienteServiceForTest()
	c := seedCliente(t, svc)
	id := mustID(t, c.ID)

	_, err := svc.AjustarSaldo(context.Background(), id, dec("150.25"))
	require.NoError(t, err)
	resp, err := svc.AjustarSaldo(context.Background(), id, dec("-400"))
	require.NoError(t, err)

	assert.True(t, dec("-249.75").Equal(resp.Saldo))
	assert.Equal(t, SaldoDebito, resp.EstadoSaldo)
}

func TestAjustarPuntos_ClampANegativo(t *testing.T) {
	svc, _, _ := newClienteServiceForTest()
	c := seedCliente(t, svc)

	resp, err := svc.AjustarPuntos(context.Background(), mustID(t, c.ID), -5)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.PuntosAcumulados)

	resp, err = svc.AjustarPuntos(context.Background(), mustID(t, c.ID), 320)
	require.NoError(t, err)
	assert.Equal(t, 320, resp.PuntosAcumulados)
}

func TestHabilitarPuntos_DeshabilitarRetienePuntos(t *testing.T) {
	svc, _, _ := newClienteServiceForTest()
	c := seedCliente(t, svc)
	id := mustID(t, c.ID)

	_, err := svc.HabilitarPuntos(context.Background(), id, true)
	require.NoError(t, err)
	_, err = svc.AjustarPuntos(context.Background(), id, 250)
	require.NoError(t, err)

	resp, err := svc.HabilitarPuntos(context.Background(), id, false)
	require.NoError(t, err)
	assert.False(t, resp.PuntosHabilitados)
	assert.Equal(t, 250, resp.PuntosAcumulados, "deshabilitar no borra los puntos")
}

func TestAgregarPersona_VaciaEsNoOp(t *testing.T) {
	svc, _, _ := newClienteServiceForTest()
	c := seedCliente(t, svc)

	resp, err := svc.AgregarPersona(context.Background(), mustID(t, c.ID), "   ")
	require.NoError(t, err)
	assert.Empty(t, resp.Personas)
}

func TestPersonas_DuplicadosCoexisten(t *testing.T) {
	// intentional: the roster does not deduplicate, two identical names may
	// coexist and only a remove clears them both
	svc, _, _ := newClienteServiceForTest()
	c := seedCliente(t, svc)
	id := mustID(t, c.ID)

	_, err := svc.AgregarPersona(context.Background(), id, "Juan Gomez")
	require.NoError(t, err)
	_, err = svc.AgregarPersona(context.Background(), id, "Maria Fernandez")
	require.NoError(t, err)
	resp, err := svc.AgregarPersona(context.Background(), id, "Juan Gomez")
	require.NoError(t, err)

	assert.Equal(t, []string{"Juan Gomez", "Maria Fernandez", "Juan Gomez"}, resp.Personas)
}

func TestQuitarPersona_EliminaTodasLasCoincidencias(t *testing.T) {
	svc, _, _ := newClienteServiceForTest()
	c := seedCliente(t, svc)
	id := mustID(t, c.ID)

	for _, nombre := range []string{"Juan Gomez", "Maria Fernandez", "Juan Gomez"} {
		_, err := svc.AgregarPersona(context.Background(), id, nombre)
		require.NoError(t, err)
	}

	resp, err := svc.QuitarPersona(context.Background(), id, "Juan Gomez")
	require.NoError(t, err)
	assert.Equal(t, []string{"Maria Fernandez"}, resp.Personas)

	// removing an absent name is a no-op, not an error
	resp, err = svc.QuitarPersona(context.Background(), id, "Juan Gomez")
	require.NoError(t, err)
	assert.Equal(t, []string{"Maria Fernandez"}, resp.Personas)
}

func TestObtenerPorCUIT(t *testing.T) {
	svc, _, _ := newClienteServiceForTest()
	c := seedCliente(t, svc)

	resp, err := svc.ObtenerPorCUIT(context.Background(), "30-71234567-8")
	require.NoError(t, err)
	assert.Equal(t, c.ID, resp.ID)

	_, err = svc.ObtenerPorCUIT(context.Background(), "20-00000000-0")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestEliminarCliente(t *testing.T) {
	svc, repo, _ := newClienteServiceForTest()
	c := seedCliente(t, svc)

	require.NoError(t, svc.Eliminar(context.Background(), mustID(t, c.ID)))
	assert.Empty(t, repo.clientes)

	err := svc.Eliminar(context.Background(), mustID(t, c.ID))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoEncontrado)
}
