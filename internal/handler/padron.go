package handler

import (
	"net/http"

	"github.com/sistemsnova/bruzzonercm-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

type PadronHandler struct {
	svc service.PadronService
}

func NewPadronHandler(svc service.PadronService) *PadronHandler {
	return &PadronHandler{svc: svc}
}

// Consultar godoc
// @Summary      Consulta de CUIT en el padron
// @Tags         padron
// @Produce      json
// @Security     BearerAuth
// @Param        cuit path  string true "CUIT, con o sin guiones"
// @Param        tipo query string true "cliente | proveedor"
// @Success      200  {object} dto.PadronResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Failure      502  {object} apierror.APIError
// @Router       /v1/padron/{cuit} [get]
func (h *PadronHandler) Consultar(c *gin.Context) {
	resp, err := h.svc.Consultar(c.Request.Context(), c.Param("cuit"), c.Query("tipo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
