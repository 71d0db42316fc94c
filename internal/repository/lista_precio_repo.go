package repository

import (
	"context"

	"github.com/sistemsnova/bruzzonercm-sub001/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListaPrecioRepository interface {
	Crear(ctx context.Context, l *model.ListaPrecio) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.ListaPrecio, error)
	Listar(ctx context.Context) ([]model.ListaPrecio, error)
	ActualizarCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}) error
	// MarcarBase flags one list as base and clears the flag everywhere else,
	// in a single transaction, so at most one base list exists at any time.
	MarcarBase(ctx context.Context, id uuid.UUID) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type listaPrecioRepo struct{ db *gorm.DB }

func NewListaPrecioRepository(db *gorm.DB) ListaPrecioRepository { return &listaPrecioRepo{db: db} }

func (r *listaPrecioRepo) Crear(ctx context.Context, l *model.ListaPrecio) error {
	if !l.EsBase {
		return r.db.WithContext(ctx).Create(l).Error
	}
	// Creating a new base list demotes the previous one atomically.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.ListaPrecio{}).Where("es_base = true").
			Update("es_base", false).Error; err != nil {
			return err
		}
		return tx.Create(l).Error
	})
}

func (r *listaPrecioRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.ListaPrecio, error) {
	var l model.ListaPrecio
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *listaPrecioRepo) Listar(ctx context.Context) ([]model.ListaPrecio, error) {
	var listas []model.ListaPrecio
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&listas).Error
	return listas, err
}

func (r *listaPrecioRepo) ActualizarCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.ListaPrecio{}).Where("id = ?", id).Updates(campos)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *listaPrecioRepo) MarcarBase(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.ListaPrecio{}).Where("es_base = true AND id <> ?", id).
			Update("es_base", false).Error; err != nil {
			return err
		}
		res := tx.Model(&model.ListaPrecio{}).Where("id = ?", id).Update("es_base", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *listaPrecioRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	// Clients referencing the removed list keep the dangling id; the
	// resolver falls back to the base list on the next read.
	res := r.db.WithContext(ctx).Delete(&model.ListaPrecio{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
