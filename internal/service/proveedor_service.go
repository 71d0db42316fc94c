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

// ProveedorService owns supplier accounts: identity, running balance and the
// ordered discount cascade.
type ProveedorService interface {
	Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProveedorResponse, error)
	Listar(ctx context.Context) ([]dto.ProveedorResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	AjustarSaldo(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (*dto.ProveedorResponse, error)
	// AgregarDescuento appends at the end of the cascade; order is never
	// re-sorted.
	AgregarDescuento(ctx context.Context, id uuid.UUID, porcentaje decimal.Decimal) (*dto.ProveedorResponse, error)
	// QuitarDescuento removes the step at the given zero-based position.
	QuitarDescuento(ctx context.Context, id uuid.UUID, posicion int) (*dto.ProveedorResponse, error)
	CalcularCostoFinal(ctx context.Context, id uuid.UUID, base decimal.Decimal) (*dto.CostoFinalResponse, error)
}

type proveedorService struct {
	repo repository.ProveedorRepository
}

func NewProveedorService(repo repository.ProveedorRepository) ProveedorService {
	return &proveedorService{repo: repo}
}

func mapProveedor(p *model.Proveedor) *dto.ProveedorResponse {
	descuentos := make([]decimal.Decimal, 0, len(p.Descuentos))
	for _, d := range p.Descuentos {
		descuentos = append(descuentos, d.Porcentaje)
	}
	return &dto.ProveedorResponse{
		ID:          p.ID.String(),
		RazonSocial: p.RazonSocial,
		CUIT:        p.CUIT,
		Telefono:    p.Telefono,
		Email:       p.Email,
		Saldo:       p.Saldo,
		EstadoSaldo: ClasificarSaldo(p.Saldo),
		Descuentos:  descuentos,
	}
}

// armarDescuentos validates every percentage and builds the ordered rows.
// Out-of-range values are rejected here, at insertion — never at calculation.
func armarDescuentos(proveedorID uuid.UUID, valores []decimal.Decimal) ([]model.DescuentoProveedor, error) {
	out := make([]model.DescuentoProveedor, 0, len(valores))
	for i, v := range valores {
		if err := ValidarPorcentajeDescuento(v); err != nil {
			return nil, err
		}
		out = append(out, model.DescuentoProveedor{
			ProveedorID: proveedorID,
			Porcentaje:  v,
			Posicion:    i,
		})
	}
	return out, nil
}

func (s *proveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	if strings.TrimSpace(req.CUIT) == "" {
		return nil, validacionf("el CUIT es obligatorio")
	}
	descuentos, err := armarDescuentos(uuid.Nil, req.Descuentos)
	if err != nil {
		return nil, err
	}

	p := &model.Proveedor{
		RazonSocial: req.RazonSocial,
		CUIT:        strings.TrimSpace(req.CUIT),
		Telefono:    req.Telefono,
		Email:       req.Email,
		Saldo:       decimal.Zero,
		Descuentos:  descuentos, // gorm fills the FK on create
	}

	if err := s.repo.Crear(ctx, p); err != nil {
		return nil, err
	}
	return mapProveedor(p), nil
}

func (s *proveedorService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProveedorResponse, error) {
	p, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapProveedor(p), nil
}

func (s *proveedorService) Listar(ctx context.Context) ([]dto.ProveedorResponse, error) {
	proveedores, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProveedorResponse, 0, len(proveedores))
	for i := range proveedores {
		result = append(result, *mapProveedor(&proveedores[i]))
	}
	return result, nil
}

func (s *proveedorService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error) {
	if _, err := s.buscar(ctx, id); err != nil {
		return nil, err
	}

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
	if req.Telefono != nil {
		campos["telefono"] = *req.Telefono
	}
	if req.Email != nil {
		campos["email"] = *req.Email
	}

	// Descuentos, when present, replaces the whole cascade in request order.
	// Validation happens before any write so a bad value mutates nothing.
	var descuentos []model.DescuentoProveedor
	if req.Descuentos != nil {
		var err error
		if descuentos, err = armarDescuentos(id, *req.Descuentos); err != nil {
			return nil, err
		}
	}

	if len(campos) > 0 {
		if err := s.repo.ActualizarCampos(ctx, id, campos); err != nil {
			return nil, err
		}
	}
	if req.Descuentos != nil {
		if err := s.repo.ReemplazarDescuentos(ctx, id, descuentos); err != nil {
			return nil, err
		}
	}
	return s.ObtenerPorID(ctx, id)
}

func (s *proveedorService) Eliminar(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Eliminar(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return noEncontradof("proveedor %s", id)
	}
	return err
}

func (s *proveedorService) AjustarSaldo(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (*dto.ProveedorResponse, error) {
	p, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	nuevo := AplicarAjuste(p.Saldo, delta)
	if err := s.repo.ActualizarSaldo(ctx, id, nuevo); err != nil {
		return nil, err
	}
	p.Saldo = nuevo
	return mapProveedor(p), nil
}

func (s *proveedorService) AgregarDescuento(ctx context.Context, id uuid.UUID, porcentaje decimal.Decimal) (*dto.ProveedorResponse, error) {
	if err := ValidarPorcentajeDescuento(porcentaje); err != nil {
		return nil, err
	}
	p, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Descuentos = append(p.Descuentos, model.DescuentoProveedor{
		ProveedorID: id,
		Porcentaje:  porcentaje,
		Posicion:    len(p.Descuentos),
	})
	if err := s.repo.ReemplazarDescuentos(ctx, id, renumerarDescuentos(id, p.Descuentos)); err != nil {
		return nil, err
	}
	return mapProveedor(p), nil
}

func (s *proveedorService) QuitarDescuento(ctx context.Context, id uuid.UUID, posicion int) (*dto.ProveedorResponse, error) {
	p, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	if posicion < 0 || posicion >= len(p.Descuentos) {
		return nil, noEncontradof("descuento en posicion %d", posicion)
	}
	p.Descuentos = append(p.Descuentos[:posicion], p.Descuentos[posicion+1:]...)
	if err := s.repo.ReemplazarDescuentos(ctx, id, renumerarDescuentos(id, p.Descuentos)); err != nil {
		return nil, err
	}
	return mapProveedor(p), nil
}

func (s *proveedorService) CalcularCostoFinal(ctx context.Context, id uuid.UUID, base decimal.Decimal) (*dto.CostoFinalResponse, error) {
	if base.IsNegative() {
		return nil, validacionf("el costo base no puede ser negativo")
	}
	p, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	descuentos := make([]decimal.Decimal, 0, len(p.Descuentos))
	for _, d := range p.Descuentos {
		descuentos = append(descuentos, d.Porcentaje)
	}
	return &dto.CostoFinalResponse{
		Base:       base,
		Descuentos: descuentos,
		CostoFinal: AplicarCascada(base, descuentos),
	}, nil
}

func (s *proveedorService) buscar(ctx context.Context, id uuid.UUID) (*model.Proveedor, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, noEncontradof("proveedor %s", id)
		}
		return nil, err
	}
	return p, nil
}

func renumerarDescuentos(proveedorID uuid.UUID, descuentos []model.DescuentoProveedor) []model.DescuentoProveedor {
	out := make([]model.DescuentoProveedor, 0, len(descuentos))
	for i, d := range descuentos {
		out = append(out, model.DescuentoProveedor{
			ProveedorID: proveedorID,
			Porcentaje:  d.Porcentaje,
			Posicion:    i,
		})
	}
	return out
}
