package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sistemsnova/bruzzonercm-sub001/internal/dto"
	"github.com/sistemsnova/bruzzonercm-sub001/internal/model"
	"github.com/sistemsnova/bruzzonercm-sub001/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ClienteService owns every mutation of a client account: identity fields,
// price list assignment, running balance, loyalty points and the
// authorized-persons roster.
type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	ObtenerPorCUIT(ctx context.Context, cuit string) (*dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	// AjustarSaldo is the only sanctioned way to change the balance.
	AjustarSaldo(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (*dto.ClienteResponse, error)
	// AjustarPuntos sets the absolute total (not a delta); negatives clamp to 0.
	AjustarPuntos(ctx context.Context, id uuid.UUID, puntos int) (*dto.ClienteResponse, error)
	// HabilitarPuntos toggles accrual; disabling retains existing points.
	HabilitarPuntos(ctx context.Context, id uuid.UUID, habilitado bool) (*dto.ClienteResponse, error)
	AgregarPersona(ctx context.Context, id uuid.UUID, nombre string) (*dto.ClienteResponse, error)
	QuitarPersona(ctx context.Context, id uuid.UUID, nombre string) (*dto.ClienteResponse, error)
}

type clienteService struct {
	repo   repository.ClienteRepository
	listas repository.ListaPrecioRepository
}

func NewClienteService(repo repository.ClienteRepository, listas repository.ListaPrecioRepository) ClienteService {
	return &clienteService{repo: repo, listas: listas}
}

func mapCliente(c *model.Cliente) *dto.ClienteResponse {
	personas := make([]string, 0, len(c.Personas))
	for _, p := range c.Personas {
		personas = append(personas, p.Nombre)
	}
	var listaID *string
	if c.ListaPrecioID != nil {
		s := c.ListaPrecioID.String()
		listaID = &s
	}
	return &dto.ClienteResponse{
		ID:                c.ID.String(),
		RazonSocial:       c.RazonSocial,
		CUIT:              c.CUIT,
		Whatsapp:          c.Whatsapp,
		Email:             c.Email,
		DescuentoEspecial: c.DescuentoEspecial,
		ListaPrecioID:     listaID,
		Saldo:             c.Saldo,
		EstadoSaldo:       ClasificarSaldo(c.Saldo),
		PuntosHabilitados: c.PuntosHabilitados,
		PuntosAcumulados:  c.PuntosAcumulados,
		Personas:          personas,
	}
}

// resolverListaID validates a price list reference coming from a request.
// Empty string clears the assignment (pending resolution at read time).
func (s *clienteService) resolverListaID(ctx context.Context, raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	listaID, err := uuid.Parse(raw)
	if err != nil {
		return nil, validacionf("lista_precio_id invalido: %s", raw)
	}
	if _, err := s.listas.ObtenerPorID(ctx, listaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, noEncontradof("lista de precios %s", raw)
		}
		return nil, err
	}
	return &listaID, nil
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	if strings.TrimSpace(req.CUIT) == "" {
		return nil, validacionf("el CUIT es obligatorio")
	}

	var listaID *uuid.UUID
	if req.ListaPrecioID != nil {
		var err error
		if listaID, err = s.resolverListaID(ctx, *req.ListaPrecioID); err != nil {
			return nil, err
		}
	}

	c := &model.Cliente{
		RazonSocial:       req.RazonSocial,
		CUIT:              strings.TrimSpace(req.CUIT),
		Whatsapp:          req.Whatsapp,
		Email:             req.Email,
		DescuentoEspecial: ClampDescuentoEspecial(req.DescuentoEspecial),
		ListaPrecioID:     listaID,
		Saldo:             decimal.Zero,
		PuntosHabilitados: req.PuntosHabilitados,
	}
	pos := 0
	for _, nombre := range req.Personas {
		if strings.TrimSpace(nombre) == "" {
			continue // blank names are dropped silently, same as AgregarPersona
		}
		c.Personas = append(c.Personas, model.PersonaAutorizada{Nombre: nombre, Posicion: pos})
		pos++
	}

	if err := s.repo.Crear(ctx, c); err != nil {
		return nil, err
	}
	return mapCliente(c), nil
}

func (s *clienteService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	c, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapCliente(c), nil
}

func (s *clienteService) ObtenerPorCUIT(ctx context.Context, cuit string) (*dto.ClienteResponse, error) {
	c, err := s.repo.BuscarPorCUIT(ctx, strings.TrimSpace(cuit))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, noEncontradof("cliente con CUIT %s", cuit)
		}
		return nil, err
	}
	return mapCliente(c), nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		result = append(result, *mapCliente(&clientes[i]))
	}
	return result, nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	if _, err := s.buscar(ctx, id); err != nil {
		return nil, err
	}

	// Only fields present in the request reach the UPDATE; everything else
	// keeps its stored value.
	campos := map[string]interface{}{}
	if req.RazonSocial != nil {
		campos["razon_social"] = *req.RazonSocial
	}
	if req.CUIT != nil {
		if strings.TrimSpace(*req.CUIT) == "" {
			return nil, validacionf("el CUIT no puede quedar vacio")
		}
		campos["cuit"] = strings.TrimSpace(*req.CUIT)
	}
	if req.Whatsapp != nil {
		campos["whatsapp"] = *req.Whatsapp
	}
	if req.Email != nil {
		campos["email"] = *req.Email
	}
	if req.DescuentoEspecial != nil {
		campos["descuento_especial"] = ClampDescuentoEspecial(*req.DescuentoEspecial)
	}
	if req.ListaPrecioID != nil {
		listaID, err := s.resolverListaID(ctx, *req.ListaPrecioID)
		if err != nil {
			return nil, err
		}
		campos["lista_precio_id"] = listaID
	}

	if len(campos) > 0 {
		if err := s.repo.ActualizarCampos(ctx, id, campos); err != nil {
			return nil, err
		}
	}
	return s.ObtenerPorID(ctx, id)
}

func (s *clienteService) Eliminar(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Eliminar(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return noEncontradof("cliente %s", id)
	}
	return err
}

func (s *clienteService) AjustarSaldo(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (*dto.ClienteResponse, error) {
	c, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	nuevo := AplicarAjuste(c.Saldo, delta)
	if err := s.repo.ActualizarSaldo(ctx, id, nuevo); err != nil {
		return nil, err
	}
	c.Saldo = nuevo
	return mapCliente(c), nil
}

func (s *clienteService) AjustarPuntos(ctx context.Context, id uuid.UUID, puntos int) (*dto.ClienteResponse, error) {
	c, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	c.PuntosAcumulados = ClampPuntos(puntos)
	if err := s.repo.ActualizarCampos(ctx, id, map[string]interface{}{"puntos_acumulados": c.PuntosAcumulados}); err != nil {
		return nil, err
	}
	return mapCliente(c), nil
}

func (s *clienteService) HabilitarPuntos(ctx context.Context, id uuid.UUID, habilitado bool) (*dto.ClienteResponse, error) {
	c, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	// Disabling never zeroes the accumulated points; they stay dormant.
	c.PuntosHabilitados = habilitado
	if err := s.repo.ActualizarCampos(ctx, id, map[string]interface{}{"puntos_habilitados": habilitado}); err != nil {
		return nil, err
	}
	return mapCliente(c), nil
}

func (s *clienteService) AgregarPersona(ctx context.Context, id uuid.UUID, nombre string) (*dto.ClienteResponse, error) {
	c, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	// Blank input is a silent no-op. Duplicates are allowed: two identical
	// names may coexist and only a remove clears them both.
	if strings.TrimSpace(nombre) == "" {
		return mapCliente(c), nil
	}
	c.Personas = append(c.Personas, model.PersonaAutorizada{
		ClienteID: c.ID,
		Nombre:    nombre,
		Posicion:  len(c.Personas),
	})
	if err := s.repo.ReemplazarPersonas(ctx, c.ID, renumerar(c.ID, c.Personas)); err != nil {
		return nil, err
	}
	return mapCliente(c), nil
}

func (s *clienteService) QuitarPersona(ctx context.Context, id uuid.UUID, nombre string) (*dto.ClienteResponse, error) {
	c, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	// Removes every exact occurrence; an absent name is a no-op, not an error.
	restantes := c.Personas[:0:0]
	for _, p := range c.Personas {
		if p.Nombre != nombre {
			restantes = append(restantes, p)
		}
	}
	if len(restantes) == len(c.Personas) {
		return mapCliente(c), nil
	}
	c.Personas = restantes
	if err := s.repo.ReemplazarPersonas(ctx, c.ID, renumerar(c.ID, restantes)); err != nil {
		return nil, err
	}
	return mapCliente(c), nil
}

func (s *clienteService) buscar(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, noEncontradof("cliente %s", id)
		}
		return nil, err
	}
	return c, nil
}

// renumerar rebuilds the rows kept for a client preserving display order.
func renumerar(clienteID uuid.UUID, personas []model.PersonaAutorizada) []model.PersonaAutorizada {
	out := make([]model.PersonaAutorizada, 0, len(personas))
	for i, p := range personas {
		out = append(out, model.PersonaAutorizada{
			ClienteID: clienteID,
			Nombre:    p.Nombre,
			Posicion:  i,
		})
	}
	return out
}
