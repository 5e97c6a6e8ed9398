package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Vendas-api/internal/application/auth"
	"github.com/jhoicas/Vendas-api/internal/application/dto"
	"github.com/jhoicas/Vendas-api/pkg/logger"
)

// LocalPrincipal clave de c.Locals con el *auth.Principal autenticado.
const LocalPrincipal = "principal"

// AuthMiddleware acepta "Authorization: Bearer <jwt>" o el token solo, valida firma,
// expiración y que el usuario siga existiendo. Token inválido o usuario inexistente
// responden 403; un fallo del almacenamiento sigue el mapeo común (500).
func AuthMiddleware(uc *auth.AuthUseCase, log *logger.Logger) fiber.Handler {
	errs := errorWriter{log: log}
	return func(c *fiber.Ctx) error {
		token := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if scheme, rest, ok := strings.Cut(token, " "); ok && strings.EqualFold(scheme, "Bearer") {
			token = strings.TrimSpace(rest)
		}
		principal, err := uc.Authenticate(c.UserContext(), token)
		if err != nil && !errors.Is(err, auth.ErrNotAuthenticated) {
			return errs.fail(c, err)
		}
		if err != nil || principal == nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: true, Message: auth.ErrNotAuthenticated.Error()})
		}
		c.Locals(LocalPrincipal, principal)
		return c.Next()
	}
}

// GetPrincipal devuelve la identidad autenticada (después del middleware de auth).
func GetPrincipal(c *fiber.Ctx) *auth.Principal {
	p, _ := c.Locals(LocalPrincipal).(*auth.Principal)
	if p == nil {
		return &auth.Principal{}
	}
	return p
}

// GetUserID devuelve el UserID del contexto.
func GetUserID(c *fiber.Ctx) string {
	return GetPrincipal(c).UserID
}

// GetEstablishmentID devuelve el establecimiento del usuario autenticado.
func GetEstablishmentID(c *fiber.Ctx) string {
	return GetPrincipal(c).EstablishmentID
}
