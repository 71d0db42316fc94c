package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sistemsnova/bruzzonercm-sub001/internal/dto"
	"github.com/sistemsnova/bruzzonercm-sub001/internal/infra"
)

// PadronService validates a CUIT locally and resolves it against the tax
// registry through the circuit breaker. No caching, no retries — the caller
// decides whether to try again or fall back to manual data entry.
type PadronService interface {
	Consultar(ctx context.Context, cuit, tipo string) (*dto.PadronResponse, error)
}

type padronService struct {
	client infra.PadronClient
	cb     *infra.CircuitBreaker
}

func NewPadronService(client infra.PadronClient, cb *infra.CircuitBreaker) PadronService {
	return &padronService{client: client, cb: cb}
}

// NormalizarCUIT strips separators and checks the 11-digit shape. A blank or
// malformed CUIT fails here, before anything is forwarded to the registry.
func NormalizarCUIT(cuit string) (string, error) {
	limpio := strings.NewReplacer("-", "", " ", "").Replace(strings.TrimSpace(cuit))
	if limpio == "" {
		return "", validacionf("el CUIT es obligatorio")
	}
	if len(limpio) != 11 {
		return "", validacionf("CUIT mal formado: %s", cuit)
	}
	for _, r := range limpio {
		if r < '0' || r > '9' {
			return "", validacionf("CUIT mal formado: %s", cuit)
		}
	}
	return limpio, nil
}

func (s *padronService) Consultar(ctx context.Context, cuit, tipo string) (*dto.PadronResponse, error) {
	limpio, err := NormalizarCUIT(cuit)
	if err != nil {
		return nil, err
	}
	if tipo != infra.PadronTipoCliente && tipo != infra.PadronTipoProveedor {
		return nil, validacionf("tipo de consulta invalido: %s", tipo)
	}

	var datos *infra.DatosPadron
	var lookupErr error
	err = s.cb.Execute(func() error {
		datos, lookupErr = s.client.Consultar(ctx, limpio, tipo)
		if errors.Is(lookupErr, infra.ErrPadronNoEncontrado) {
			// a definitive answer from the registry, not an availability
			// failure — must not trip the breaker
			return nil
		}
		return lookupErr
	})
	if err != nil {
		return nil, err
	}
	if lookupErr != nil {
		return nil, lookupErr
	}

	return &dto.PadronResponse{
		RazonSocial:  datos.RazonSocial,
		Domicilio:    datos.Domicilio,
		CondicionIVA: datos.CondicionIVA,
		Estado:       datos.Estado,
		Email:        datos.Email,
		Telefono:     datos.Telefono,
	}, nil
}
