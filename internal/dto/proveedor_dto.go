package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProveedorRequest struct {
	RazonSocial string            `json:"razon_social" validate:"required,min=2"`
	CUIT        string            `json:"cuit"         validate:"required"`
	Telefono    *string           `json:"telefono"`
	Email       *string           `json:"email"        validate:"omitempty,email"`
	Descuentos  []decimal.Decimal `json:"descuentos"`
}

// ActualizarProveedorRequest carries only changed fields. Descuentos, when
// present, replaces the whole cascade in the given order; nil leaves it
// untouched.
type ActualizarProveedorRequest struct {
	RazonSocial *string            `json:"razon_social" validate:"omitempty,min=2"`
	CUIT        *string            `json:"cuit"         validate:"omitempty,min=1"`
	Telefono    *string            `json:"telefono"`
	Email       *string            `json:"email"        validate:"omitempty,email"`
	Descuentos  *[]decimal.Decimal `json:"descuentos"`
}

type AgregarDescuentoRequest struct {
	Porcentaje decimal.Decimal `json:"porcentaje" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProveedorResponse struct {
	ID          string            `json:"id"`
	RazonSocial string            `json:"razon_social"`
	CUIT        string            `json:"cuit"`
	Telefono    *string           `json:"telefono"`
	Email       *string           `json:"email"`
	Saldo       decimal.Decimal   `json:"saldo"`
	EstadoSaldo string            `json:"estado_saldo"` // CREDITO | DEBITO
	Descuentos  []decimal.Decimal `json:"descuentos"`
}

type CostoFinalResponse struct {
	Base       decimal.Decimal   `json:"base"`
	Descuentos []decimal.Decimal `json:"descuentos"`
	CostoFinal decimal.Decimal   `json:"costo_final"`
}
