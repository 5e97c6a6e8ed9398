package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Vendas-api/internal/application/dto"
	"github.com/jhoicas/Vendas-api/internal/application/usecase"
	"github.com/jhoicas/Vendas-api/internal/application/validation"
)

// EstablishmentHandler alta de establecimientos (público).
type EstablishmentHandler struct {
	uc       *usecase.EstablishmentUseCase
	validate *validation.Validator
	errs     errorWriter
}

// NewEstablishmentHandler construye el handler.
func NewEstablishmentHandler(uc *usecase.EstablishmentUseCase, validate *validation.Validator, errs errorWriter) *EstablishmentHandler {
	return &EstablishmentHandler{uc: uc, validate: validate, errs: errs}
}

// SignUp godoc
// @Summary      Registrar establecimiento
// @Tags         establishments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EstablishmentSignUpRequest  true  "Nombre, teléfono y dirección"
// @Success      200   {object}  dto.EstablishmentSignUpResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /establishments/signup [post]
func (h *EstablishmentHandler) SignUp(c *fiber.Ctx) error {
	var in dto.EstablishmentSignUpRequest
	if err := c.BodyParser(&in); err != nil {
		return h.errs.badBody(c)
	}
	if res := h.validate.Struct(in); !res.Success {
		return h.errs.invalid(c, MsgInvalidPayload, res)
	}
	out, err := h.uc.SignUp(c.UserContext(), in)
	if err != nil {
		return h.errs.fail(c, err)
	}
	return c.JSON(out)
}
