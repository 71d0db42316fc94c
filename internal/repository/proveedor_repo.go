package repository

import (
	"context"

	"github.com/sistemsnova/bruzzonercm-sub001/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProveedorRepository interface {
	Crear(ctx context.Context, p *model.Proveedor) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Proveedor, error)
	Listar(ctx context.Context) ([]model.Proveedor, error)
	ActualizarCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}) error
	ActualizarSaldo(ctx context.Context, id uuid.UUID, saldo decimal.Decimal) error
	// ReemplazarDescuentos swaps the whole cascade keeping the given order.
	ReemplazarDescuentos(ctx context.Context, proveedorID uuid.UUID, descuentos []model.DescuentoProveedor) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type proveedorRepo struct{ db *gorm.DB }

func NewProveedorRepository(db *gorm.DB) ProveedorRepository { return &proveedorRepo{db: db} }

func (r *proveedorRepo) Crear(ctx context.Context, p *model.Proveedor) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *proveedorRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Proveedor, error) {
	var p model.Proveedor
	err := r.db.WithContext(ctx).
		Preload("Descuentos", func(db *gorm.DB) *gorm.DB { return db.Order("posicion ASC") }).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *proveedorRepo) Listar(ctx context.Context) ([]model.Proveedor, error) {
	var proveedores []model.Proveedor
	err := r.db.WithContext(ctx).
		Preload("Descuentos", func(db *gorm.DB) *gorm.DB { return db.Order("posicion ASC") }).
		Order("razon_social ASC").
		Find(&proveedores).Error
	return proveedores, err
}

func (r *proveedorRepo) ActualizarCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.Proveedor{}).Where("id = ?", id).Updates(campos)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *proveedorRepo) ActualizarSaldo(ctx context.Context, id uuid.UUID, saldo decimal.Decimal) error {
	return r.ActualizarCampos(ctx, id, map[string]interface{}{"saldo": saldo})
}

func (r *proveedorRepo) ReemplazarDescuentos(ctx context.Context, proveedorID uuid.UUID, descuentos []model.DescuentoProveedor) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("proveedor_id = ?", proveedorID).Delete(&model.DescuentoProveedor{}).Error; err != nil {
			return err
		}
		if len(descuentos) == 0 {
			return nil
		}
		return tx.Create(&descuentos).Error
	})
}

func (r *proveedorRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("proveedor_id = ?", id).Delete(&model.DescuentoProveedor{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Proveedor{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
