package handler

import (
	"net/http"
	"strconv"

	"github.com/sistemsnova/bruzzonercm-sub001/internal/apierror"
	"github.com/sistemsnova/bruzzonercm-sub001/internal/dto"
	"github.com/sistemsnova/bruzzonercm-sub001/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProveedoresHandler struct {
	svc service.ProveedorService
}

func NewProveedoresHandler(svc service.ProveedorService) *ProveedoresHandler {
	return &ProveedoresHandler{svc: svc}
}

// Crear godoc
// @Summary      Alta de proveedor
// @Tags         proveedores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearProveedorRequest true "Datos del proveedor"
// @Success      201  {object} dto.ProveedorResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/proveedores [post]
func (h *ProveedoresHandler) Crear(c *gin.Context) {
	var req dto.CrearProveedorRequest
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

// Listar GET /v1/proveedores
func (h *ProveedoresHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /v1/proveedores/:id
func (h *ProveedoresHandler) ObtenerPorID(c *gin.Context) {
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

// Actualizar PATCH /v1/proveedores/:id — descuentos, when present, replaces
// the whole cascade.
func (h *ProveedoresHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarProveedorRequest
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

// Eliminar DELETE /v1/proveedores/:id
func (h *ProveedoresHandler) Eliminar(c *gin.Context) {
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

// AjustarSaldo POST /v1/proveedores/:id/saldo
func (h *ProveedoresHandler) AjustarSaldo(c *gin.Context) {
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

// AgregarDescuento POST /v1/proveedores/:id/descuentos — appends at the end
// of the cascade.
func (h *ProveedoresHandler) AgregarDescuento(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AgregarDescuentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AgregarDescuento(c.Request.Context(), id, req.Porcentaje)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// QuitarDescuento DELETE /v1/proveedores/:id/descuentos/:pos
func (h *ProveedoresHandler) QuitarDescuento(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	pos, err := strconv.Atoi(c.Param("pos"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Posicion invalida"))
		return
	}
	resp, err := h.svc.QuitarDescuento(c.Request.Context(), id, pos)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CalcularCosto GET /v1/proveedores/:id/costo?base= — cascade preview over
// a hypothetical cost, nothing is persisted.
func (h *ProveedoresHandler) CalcularCosto(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	base, err := decimal.NewFromString(c.Query("base"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("El parametro base debe ser un numero"))
		return
	}
	resp, err := h.svc.CalcularCostoFinal(c.Request.Context(), id, base)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
