package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Vendas-api/internal/application/auth"
	"github.com/jhoicas/Vendas-api/internal/application/dto"
	"github.com/jhoicas/Vendas-api/internal/application/validation"
)

// AuthHandler maneja registro y login de colaboradores.
type AuthHandler struct {
	uc       *auth.AuthUseCase
	validate *validation.Validator
	errs     errorWriter
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, validate *validation.Validator, errs errorWriter) *AuthHandler {
	return &AuthHandler{uc: uc, validate: validate, errs: errs}
}

// SignUp godoc
// @Summary      Registrar colaborador
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignUpRequest  true  "Datos del colaborador y nombre del establecimiento"
// @Success      200   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /users/signup [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var in dto.SignUpRequest
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

// SignIn godoc
// @Summary      Iniciar sesión
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignInRequest  true  "email, password"
// @Success      200   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /users/signin [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var in dto.SignInRequest
	if err := c.BodyParser(&in); err != nil {
		return h.errs.badBody(c)
	}
	if res := h.validate.Struct(in); !res.Success {
		return h.errs.invalid(c, auth.ErrInvalidCredentials.Error(), res)
	}
	out, err := h.uc.SignIn(c.UserContext(), in)
	if err != nil {
		return h.errs.fail(c, err)
	}
	return c.JSON(out)
}
