package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearClienteRequest struct {
	RazonSocial       string          `json:"razon_social"       validate:"required,min=2"`
	CUIT              string          `json:"cuit"               validate:"required"`
	Whatsapp          *string         `json:"whatsapp"`
	Email             *string         `json:"email"              validate:"omitempty,email"`
	DescuentoEspecial decimal.Decimal `json:"descuento_especial" validate:"min=0,max=100"`
	ListaPrecioID     *string         `json:"lista_precio_id"`
	PuntosHabilitados bool            `json:"puntos_habilitados"`
	Personas          []string        `json:"personas_autorizadas"`
}

// ActualizarClienteRequest carries only the fields the caller wants to
// change. Nil fields are left untouched (partial-field merge).
type ActualizarClienteRequest struct {
	RazonSocial       *string          `json:"razon_social"       validate:"omitempty,min=2"`
	CUIT              *string          `json:"cuit"               validate:"omitempty,min=1"`
	Whatsapp          *string          `json:"whatsapp"`
	Email             *string          `json:"email"              validate:"omitempty,email"`
	DescuentoEspecial *decimal.Decimal `json:"descuento_especial"`
	ListaPrecioID     *string          `json:"lista_precio_id"`
}

type AjustarSaldoRequest struct {
	Delta   decimal.Decimal `json:"delta" validate:"required"`
	Detalle *string         `json:"detalle"`
}

type AjustarPuntosRequest struct {
	Puntos int `json:"puntos"`
}

type HabilitarPuntosRequest struct {
	Habilitado *bool `json:"habilitado" validate:"required"`
}

type PersonaAutorizadaRequest struct {
	Nombre string `json:"nombre"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID                string          `json:"id"`
	RazonSocial       string          `json:"razon_social"`
	CUIT              string          `json:"cuit"`
	Whatsapp          *string         `json:"whatsapp"`
	Email             *string         `json:"email"`
	DescuentoEspecial decimal.Decimal `json:"descuento_especial"`
	ListaPrecioID     *string         `json:"lista_precio_id"`
	Saldo             decimal.Decimal `json:"saldo"`
	EstadoSaldo       string          `json:"estado_saldo"` // CREDITO | DEBITO
	PuntosHabilitados bool            `json:"puntos_habilitados"`
	PuntosAcumulados  int             `json:"puntos_acumulados"`
	Personas          []string        `json:"personas_autorizadas"`
}
