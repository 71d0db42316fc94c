package model

import (
	"time"

	"github.com/google/uuid"
)

// ListaPrecio is a pricing tier. Exactly one list carries EsBase = true at a
// time; it is the fallback for clients with no explicit assignment.
type ListaPrecio struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"uniqueIndex;not null"`
	EsBase    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ListaPrecio) TableName() string { return "listas_precios" }
