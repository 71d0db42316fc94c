package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/sistemsnova/bruzzonercm-sub001/internal/apierror"
	"github.com/sistemsnova/bruzzonercm-sub001/internal/infra"
	"github.com/sistemsnova/bruzzonercm-sub001/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError maps service/infra error kinds to HTTP statuses so every
// failure tells the caller whether their input was invalid (fix and resend)
// or the system could not complete the operation (retry or report).
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidacion):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	case errors.Is(err, service.ErrNoEncontrado), errors.Is(err, infra.ErrPadronNoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, infra.ErrPadronNoDisponible), errors.Is(err, infra.ErrCircuitOpen):
		c.JSON(http.StatusBadGateway, apierror.New("Servicio de padron no disponible. Complete los datos manualmente."))
	default:
		// persistence or unexpected failure — opaque to the client
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo completar la operacion"))
	}
}
