package handlers

import (
	"net/http"

	"iinreg_backend/internal/services"
	"iinreg_backend/internal/validator"
	"iinreg_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type PersonHandler struct {
	*BaseHandler
	personService services.PersonService
}

func NewPersonHandler(base *BaseHandler, personService services.PersonService) *PersonHandler {
	return &PersonHandler{
		BaseHandler:   base,
		personService: personService,
	}
}

// GetPerson отдает персональные данные по ИИН: из кэша либо из внешнего
// сервиса с записью в кэш. Недоступность внешнего сервиса - 502.
func (h *PersonHandler) GetPerson(c *gin.Context) {
	iin := c.Param("iin")
	if !validator.IsValidIIN(iin) {
		apperrors.HandleError(c, apperrors.New(
			apperrors.CodeInvalidIIN, "request", "IIN must be 12 digits", http.StatusBadRequest))
		return
	}

	resp, err := h.personService.GetPerson(c.Request.Context(), h.GetDB(c), iin)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
