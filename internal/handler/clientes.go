package handler

import (
	"net/http"

	"github.com/sistemsnova/bruzzonercm-sub001/internal/apierror"
	"github.com/sistemsnova/bruzzonercm-sub001/internal/dto"
	"github.com/sistemsnova/bruzzonercm-sub001/internal/middleware"
	"github.com/sistemsnova/bruzzonercm-sub001/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClientesHandler struct {
	svc     service.ClienteService
	resumen service.ResumenService
}

func NewClientesHandler(svc service.ClienteService, resumen service.ResumenService) *ClientesHandler {
	return &ClientesHandler{svc: svc, resumen: resumen}
}

// Crear godoc
// @Summary      Alta de cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearClienteRequest true "Datos del cliente"
// @Success      201  {object} dto.ClienteResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/clientes [post]
func (h *ClientesHandler) Crear(c *gin.Context) {
	var req dto.CrearClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /v1/clientes
func (h *ClientesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /v1/clientes/:id
func (h *ClientesHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PATCH /v1/clientes/:id — partial-field merge, absent fields
// keep their stored value.
func (h *ClientesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/clientes/:id
func (h *ClientesHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AjustarSaldo POST /v1/clientes/:id/saldo
func (h *ClientesHandler) AjustarSaldo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AjustarSaldoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AjustarSaldo(c.Request.Context(), id, req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AjustarPuntos PUT /v1/clientes/:id/puntos — absolute total, not a delta.
func (h *ClientesHandler) AjustarPuntos(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AjustarPuntosRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AjustarPuntos(c.Request.Context(), id, req.Puntos)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HabilitarPuntos PUT /v1/clientes/:id/puntos/habilitar
func (h *ClientesHandler) HabilitarPuntos(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.HabilitarPuntosRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.HabilitarPuntos(c.Request.Context(), id, *req.Habilitado)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AgregarPersona POST /v1/clientes/:id/personas
func (h *ClientesHandler) AgregarPersona(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PersonaAutorizadaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AgregarPersona(c.Request.Context(), id, req.Nombre)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// QuitarPersona DELETE /v1/clientes/:id/personas — removes every exact
// occurrence of the given name.
func (h *ClientesHandler) QuitarPersona(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PersonaAutorizadaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.QuitarPersona(c.Request.Context(), id, req.Nombre)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EnviarResumen POST /v1/clientes/:id/resumen — enqueues async statement
// generation and delivery.
func (h *ClientesHandler) EnviarResumen(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.resumen.EnviarResumen(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"detail": "Resumen en proceso de envio"})
}

// MiCuenta GET /v1/portal/mi-cuenta — a portal token only reaches the
// account it was issued for.
func (h *ClientesHandler) MiCuenta(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil || claims.ClienteID == "" {
		c.JSON(http.StatusForbidden, apierror.New("Permisos insuficientes"))
		return
	}
	id, err := uuid.Parse(claims.ClienteID)
	if err != nil {
		c.JSON(http.StatusForbidden, apierror.New("Permisos insuficientes"))
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return uuid.Nil, false
	}
	return id, true
}
