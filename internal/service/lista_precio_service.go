package service

import (
	"context"
	"errors"

	"github.com/sistemsnova/bruzzonercm-sub001/internal/dto"
	"github.com/sistemsnova/bruzzonercm-sub001/internal/model"
	"github.com/sistemsnova/bruzzonercm-sub001/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListaPrecioService manages pricing tiers and the single-base invariant.
type ListaPrecioService interface {
	Crear(ctx context.Context, req dto.CrearListaPrecioRequest) (*dto.ListaPrecioResponse, error)
	Listar(ctx context.Context) ([]dto.ListaPrecioResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarListaPrecioRequest) (*dto.ListaPrecioResponse, error)
	// MarcarBase promotes one list to base, demoting the previous base
	// atomically.
	MarcarBase(ctx context.Context, id uuid.UUID) (*dto.ListaPrecioResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

// ResolverListaPrecio decides which price list applies to a client:
// a valid explicit assignment wins; otherwise the base list; otherwise the
// first of the ordered slice; uuid.Nil when there is nothing to resolve.
// Persisting an unresolved assignment is a save-time validation error for
// the caller, never an error here.
func ResolverListaPrecio(cliente *model.Cliente, listas []model.ListaPrecio) uuid.UUID {
	if cliente.ListaPrecioID != nil {
		for _, l := range listas {
			if l.ID == *cliente.ListaPrecioID {
				return l.ID
			}
		}
		// dangling reference — fall through to the defaults
	}
	for _, l := range listas {
		if l.EsBase {
			return l.ID
		}
	}
	if len(listas) > 0 {
		return listas[0].ID
	}
	return uuid.Nil
}

type listaPrecioService struct {
	repo repository.ListaPrecioRepository
}

func NewListaPrecioService(repo repository.ListaPrecioRepository) ListaPrecioService {
	return &listaPrecioService{repo: repo}
}

func mapListaPrecio(l *model.ListaPrecio) *dto.ListaPrecioResponse {
	return &dto.ListaPrecioResponse{
		ID:     l.ID.String(),
		Nombre: l.Nombre,
		EsBase: l.EsBase,
	}
}

func (s *listaPrecioService) Crear(ctx context.Context, req dto.CrearListaPrecioRequest) (*dto.ListaPrecioResponse, error) {
	l := &model.ListaPrecio{Nombre: req.Nombre, EsBase: req.EsBase}
	if err := s.repo.Crear(ctx, l); err != nil {
		return nil, err
	}
	return mapListaPrecio(l), nil
}

func (s *listaPrecioService) Listar(ctx context.Context) ([]dto.ListaPrecioResponse, error) {
	listas, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ListaPrecioResponse, 0, len(listas))
	for i := range listas {
		result = append(result, *mapListaPrecio(&listas[i]))
	}
	return result, nil
}

func (s *listaPrecioService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarListaPrecioRequest) (*dto.ListaPrecioResponse, error) {
	campos := map[string]interface{}{}
	if req.Nombre != nil {
		campos["nombre"] = *req.Nombre
	}
	if len(campos) > 0 {
		if err := s.repo.ActualizarCampos(ctx, id, campos); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, noEncontradof("lista de precios %s", id)
			}
			return nil, err
		}
	}
	l, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, noEncontradof("lista de precios %s", id)
		}
		return nil, err
	}
	return mapListaPrecio(l), nil
}

func (s *listaPrecioService) MarcarBase(ctx context.Context, id uuid.UUID) (*dto.ListaPrecioResponse, error) {
	if err := s.repo.MarcarBase(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, noEncontradof("lista de precios %s", id)
		}
		return nil, err
	}
	l, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapListaPrecio(l), nil
}

func (s *listaPrecioService) Eliminar(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Eliminar(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return noEncontradof("lista de precios %s", id)
	}
	return err
}
