package repository

import (
	"context"

	"github.com/sistemsnova/bruzzonercm-sub001/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ClienteRepository interface {
	Crear(ctx context.Context, c *model.Cliente) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	BuscarPorCUIT(ctx context.Context, cuit string) (*model.Cliente, error)
	Listar(ctx context.Context) ([]model.Cliente, error)
	// ActualizarCampos patches only the given columns (partial-field merge).
	// A whole-record Save is deliberately not exposed: it would reintroduce
	// the lost-update overwrite on saldo.
	ActualizarCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}) error
	// ActualizarSaldo writes the one saldo column and nothing else.
	ActualizarSaldo(ctx context.Context, id uuid.UUID, saldo decimal.Decimal) error
	ReemplazarPersonas(ctx context.Context, clienteID uuid.UUID, personas []model.PersonaAutorizada) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Crear(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).
		Preload("Personas", func(db *gorm.DB) *gorm.DB { return db.Order("posicion ASC") }).
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepo) BuscarPorCUIT(ctx context.Context, cuit string) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).
		Preload("Personas", func(db *gorm.DB) *gorm.DB { return db.Order("posicion ASC") }).
		First(&c, "cuit = ?", cuit).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepo) Listar(ctx context.Context) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).
		Preload("Personas", func(db *gorm.DB) *gorm.DB { return db.Order("posicion ASC") }).
		Order("razon_social ASC").
		Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) ActualizarCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.Cliente{}).Where("id = ?", id).Updates(campos)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *clienteRepo) ActualizarSaldo(ctx context.Context, id uuid.UUID, saldo decimal.Decimal) error {
	return r.ActualizarCampos(ctx, id, map[string]interface{}{"saldo": saldo})
}

func (r *clienteRepo) ReemplazarPersonas(ctx context.Context, clienteID uuid.UUID, personas []model.PersonaAutorizada) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cliente_id = ?", clienteID).Delete(&model.PersonaAutorizada{}).Error; err != nil {
			return err
		}
		if len(personas) == 0 {
			return nil
		}
		return tx.Create(&personas).Error
	})
}

func (r *clienteRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cliente_id = ?", id).Delete(&model.PersonaAutorizada{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Cliente{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
