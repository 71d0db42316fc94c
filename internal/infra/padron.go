package infra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Tipo de contribuyente for a padrón lookup.
const (
	PadronTipoCliente   = "cliente"
	PadronTipoProveedor = "proveedor"
)

var (
	// ErrPadronNoEncontrado — the registry has no record for the CUIT.
	ErrPadronNoEncontrado = errors.New("padron: cuit no registrado")
	// ErrPadronNoDisponible — network or availability failure. The caller
	// decides whether to retry; this client never does.
	ErrPadronNoDisponible = errors.New("padron: servicio no disponible")
)

// DatosPadron is the normalized identity record returned by the tax
// registry, used to pre-fill an entity before a save.
type DatosPadron struct {
	RazonSocial  string `json:"razon_social"`
	Domicilio    string `json:"domicilio"`
	CondicionIVA string `json:"condicion_iva"`
	Estado       string `json:"estado"`
	Email        string `json:"email"`
	Telefono     string `json:"telefono"`
}

// PadronClient resolves a CUIT against the tax authority registry.
// Implementations perform no caching and no retries.
type PadronClient interface {
	Consultar(ctx context.Context, cuit, tipo string) (*DatosPadron, error)
}

// NewPadronClient returns the HTTP client when a registry URL is configured,
// or the stub otherwise. The stub is the documented default for deployments
// without a live integration.
func NewPadronClient(baseURL string) PadronClient {
	if baseURL == "" {
		return StubPadron{}
	}
	return &padronHTTP{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// padronHTTP delegates the lookup to the registry gateway over HTTP.
type padronHTTP struct {
	baseURL    string
	httpClient *http.Client
}

func (c *padronHTTP) Consultar(ctx context.Context, cuit, tipo string) (*DatosPadron, error) {
	endpoint := fmt.Sprintf("%s/padron/%s?tipo=%s", c.baseURL, url.PathEscape(cuit), url.QueryEscape(tipo))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("padron: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPadronNoDisponible, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrPadronNoEncontrado
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: status %d", ErrPadronNoDisponible, resp.StatusCode)
	}

	var datos DatosPadron
	if err := json.NewDecoder(resp.Body).Decode(&datos); err != nil {
		return nil, fmt.Errorf("%w: respuesta invalida: %v", ErrPadronNoDisponible, err)
	}
	return &datos, nil
}

// StubPadron always returns the same synthetic record. Wired by default when
// no registry URL is configured, so the rest of the system behaves exactly
// as with a live integration.
type StubPadron struct{}

func (StubPadron) Consultar(_ context.Context, cuit, _ string) (*DatosPadron, error) {
	return &DatosPadron{
		RazonSocial:  "CONTRIBUYENTE DE PRUEBA S.A.",
		Domicilio:    "Av. Siempre Viva 742, CABA",
		CondicionIVA: "Responsable Inscripto",
		Estado:       "ACTIVO",
		Email:        "",
		Telefono:     "",
	}, nil
}
