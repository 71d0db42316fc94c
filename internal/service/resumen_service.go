package service

import (
	"context"
	"errors"

	"github.com/sistemsnova/bruzzonercm-sub001/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResumenEncolador is the slice of the worker dispatcher this service needs.
type ResumenEncolador interface {
	EncolarResumen(ctx context.Context, payload interface{}) error
}

// ResumenJobPayload identifies the client whose statement the worker pool
// must render and email.
type ResumenJobPayload struct {
	ClienteID string `json:"cliente_id"`
}

// ResumenService enqueues account-statement jobs. Rendering and delivery
// happen asynchronously in the worker pool.
type ResumenService interface {
	EnviarResumen(ctx context.Context, clienteID uuid.UUID) error
}

type resumenService struct {
	clientes   repository.ClienteRepository
	dispatcher ResumenEncolador
}

func NewResumenService(clientes repository.ClienteRepository, dispatcher ResumenEncolador) ResumenService {
	return &resumenService{clientes: clientes, dispatcher: dispatcher}
}

func (s *resumenService) EnviarResumen(ctx context.Context, clienteID uuid.UUID) error {
	c, err := s.clientes.ObtenerPorID(ctx, clienteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return noEncontradof("cliente %s", clienteID)
		}
		return err
	}
	if c.Email == nil || *c.Email == "" {
		return validacionf("el cliente no tiene email cargado")
	}
	return s.dispatcher.EncolarResumen(ctx, ResumenJobPayload{ClienteID: c.ID.String()})
}
