package handler

import (
	"net/http"

	"github.com/sistemsnova/bruzzonercm-sub001/internal/dto"
	"github.com/sistemsnova/bruzzonercm-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

type ListasPreciosHandler struct {
	svc service.ListaPrecioService
}

func NewListasPreciosHandler(svc service.ListaPrecioService) *ListasPreciosHandler {
	return &ListasPreciosHandler{svc: svc}
}

// Crear POST /v1/listas-precios
func (h *ListasPreciosHandler) Crear(c *gin.Context) {
	var req dto.CrearListaPrecioRequest
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

// Listar GET /v1/listas-precios
func (h *ListasPreciosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PATCH /v1/listas-precios/:id
func (h *ListasPreciosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarListaPrecioRequest
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

// MarcarBase PATCH /v1/listas-precios/:id/base — at most one list is base
// at any time, the previous one is demoted in the same transaction.
func (h *ListasPreciosHandler) MarcarBase(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.MarcarBase(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/listas-precios/:id — clients pointing at the removed
// list fall back through the base list on resolution.
func (h *ListasPreciosHandler) Eliminar(c *gin.Context) {
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
