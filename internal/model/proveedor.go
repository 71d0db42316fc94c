package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Proveedor represents a supplier with commercial data and a running balance.
// Saldo convention: negative = the business owes the supplier, positive =
// the supplier owes the business (credit note).
type Proveedor struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RazonSocial string    `gorm:"not null"`
	CUIT        string    `gorm:"column:cuit;uniqueIndex;not null"`
	Telefono    *string
	Email       *string
	Saldo       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Descuentos []DescuentoProveedor `gorm:"foreignKey:ProveedorID;constraint:OnDelete:CASCADE"`
}

func (Proveedor) TableName() string { return "proveedores" }

// DescuentoProveedor is one step of the supplier's discount cascade.
// Posicion is the append order; the cascade applies steps in that order.
type DescuentoProveedor struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProveedorID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Porcentaje  decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Posicion    int             `gorm:"not null"`
	CreatedAt   time.Time
}

func (DescuentoProveedor) TableName() string { return "descuentos_proveedor" }
