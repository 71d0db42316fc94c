package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cliente represents a customer account with running balance and loyalty data.
// Saldo convention: positive = the client has credit with the business,
// negative = the client owes the business.
type Cliente struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RazonSocial string    `gorm:"not null"`
	CUIT        string    `gorm:"column:cuit;uniqueIndex;not null"`
	Whatsapp    *string
	Email       *string
	// DescuentoEspecial is a flat percentage [0,100] applied on top of the
	// assigned price list, independent of any supplier cascade.
	DescuentoEspecial decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	ListaPrecioID     *uuid.UUID      `gorm:"type:uuid;index"`
	Saldo             decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	PuntosHabilitados bool            `gorm:"not null;default:false"`
	PuntosAcumulados  int             `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Personas []PersonaAutorizada `gorm:"foreignKey:ClienteID;constraint:OnDelete:CASCADE"`
}

func (Cliente) TableName() string { return "clientes" }
