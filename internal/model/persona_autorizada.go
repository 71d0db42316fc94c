package model

import (
	"time"

	"github.com/google/uuid"
)

// PersonaAutorizada is one person allowed to transact on a client account.
// Posicion preserves insertion order for display. Duplicate names may
// coexist; the registry does not deduplicate.
type PersonaAutorizada struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID uuid.UUID `gorm:"type:uuid;not null;index"`
	Nombre    string    `gorm:"not null"`
	Posicion  int       `gorm:"not null"`
	CreatedAt time.Time
}

func (PersonaAutorizada) TableName() string { return "personas_autorizadas" }
