package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Vendas-api/internal/application/auth"
	"github.com/jhoicas/Vendas-api/internal/application/dto"
	"github.com/jhoicas/Vendas-api/internal/application/usecase"
	"github.com/jhoicas/Vendas-api/internal/application/validation"
	"github.com/jhoicas/Vendas-api/internal/domain"
	"github.com/jhoicas/Vendas-api/pkg/logger"
)

// Mensajes genéricos de respuesta.
const (
	MsgInvalidPayload = "Payload inválido"
	MsgServerError    = "Erro no servidor, por favor tente novamente!"
)

// apiError status, código y mensaje público de un error conocido.
type apiError struct {
	status  int
	code    string
	message string
}

// knownErrors orden relevante: los errores más específicos primero.
var knownErrors = []struct {
	target error
	out    apiError
}{
	{auth.ErrNotAuthenticated, apiError{fiber.StatusForbidden, "NOT_AUTHENTICATED", auth.ErrNotAuthenticated.Error()}},
	{auth.ErrAlreadyRegistered, apiError{fiber.StatusBadRequest, "ALREADY_REGISTERED", auth.ErrAlreadyRegistered.Error()}},
	{auth.ErrUnknownEstablishment, apiError{fiber.StatusBadRequest, "ESTABLISHMENT_NOT_FOUND", auth.ErrUnknownEstablishment.Error()}},
	{auth.ErrCollaboratorNotFound, apiError{fiber.StatusConflict, "COLLABORATOR_NOT_FOUND", auth.ErrCollaboratorNotFound.Error()}},
	{auth.ErrInvalidCredentials, apiError{fiber.StatusUnauthorized, "INVALID_CREDENTIALS", auth.ErrInvalidCredentials.Error()}},
	{usecase.ErrEstablishmentRequired, apiError{fiber.StatusBadRequest, "ESTABLISHMENT_REQUIRED", "Estabelecimento deve ser informado na consulta de vendas"}},
	{domain.ErrEstablishmentExists, apiError{fiber.StatusBadRequest, "ESTABLISHMENT_EXISTS", "Estabelecimento já está cadastrado! Cadastre colaboradores"}},
	{domain.ErrEmailAlreadyExists, apiError{fiber.StatusBadRequest, "EMAIL_EXISTS", "E-mail já está cadastrado"}},
	{domain.ErrDuplicate, apiError{fiber.StatusBadRequest, "DUPLICATE", "Registro já está cadastrado"}},
	{domain.ErrUserNotFound, apiError{fiber.StatusNotFound, "USER_NOT_FOUND", "Usuário não encontrado"}},
	{domain.ErrEstablishmentNotFound, apiError{fiber.StatusNotFound, "ESTABLISHMENT_NOT_FOUND", "Estabelecimento não encontrado"}},
	{domain.ErrProductNotFound, apiError{fiber.StatusBadRequest, "PRODUCT_NOT_FOUND", "Produto não encontrado"}},
	{domain.ErrOrderNotFound, apiError{fiber.StatusBadRequest, "ORDER_NOT_FOUND", "Venda não encontrada"}},
	{domain.ErrPaymentMethodNotFound, apiError{fiber.StatusBadRequest, "PAYMENT_METHOD_NOT_FOUND", "Método de pagamento não encontrado"}},
	{domain.ErrStatusNotFound, apiError{fiber.StatusBadRequest, "STATUS_NOT_FOUND", "Status não encontrado"}},
	{domain.ErrNotFound, apiError{fiber.StatusNotFound, "NOT_FOUND", "Registro não encontrado"}},
	{domain.ErrImportFileNotFound, apiError{fiber.StatusBadRequest, "FILE_NOT_FOUND", "Não existe um arquivo para as datas informadas"}},
	{domain.ErrLocked, apiError{fiber.StatusConflict, "LOCKED", "Operação em andamento, tente novamente em instantes"}},
	{domain.ErrConflict, apiError{fiber.StatusConflict, "CONFLICT", "Operação em conflito com o estado atual"}},
	{domain.ErrForbidden, apiError{fiber.StatusForbidden, "FORBIDDEN", "Acesso negado"}},
	{domain.ErrUnauthorized, apiError{fiber.StatusForbidden, "NOT_AUTHENTICATED", auth.ErrNotAuthenticated.Error()}},
	{domain.ErrInvalidInput, apiError{fiber.StatusBadRequest, "INVALID_INPUT", MsgInvalidPayload}},
}

func classify(err error) (apiError, bool) {
	for _, k := range knownErrors {
		if errors.Is(err, k.target) {
			return k.out, true
		}
	}
	return apiError{fiber.StatusInternalServerError, "INTERNAL", MsgServerError}, false
}

// errorWriter escribe errores con el formato dto.ErrorResponse. Los errores no
// reconocidos se registran y responden 500 con el mensaje genérico.
type errorWriter struct {
	log *logger.Logger
}

func (w errorWriter) fail(c *fiber.Ctx, err error) error {
	return w.failWith(c, err, "")
}

// failWith como fail, pero reemplaza el mensaje de los errores 400 por msg cuando no está vacío.
func (w errorWriter) failWith(c *fiber.Ctx, err error, msg string) error {
	out, known := classify(err)
	if !known {
		w.log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
	}
	message := out.message
	if msg != "" && out.status == fiber.StatusBadRequest {
		message = msg
	}
	return c.Status(out.status).JSON(dto.ErrorResponse{Error: true, Code: out.code, Message: message})
}

func (w errorWriter) invalid(c *fiber.Ctx, message string, res validation.Result) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Code: "VALIDATION", Message: message, Errors: res.Errors,
	})
}

func (w errorWriter) badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Code: "INVALID_BODY", Message: MsgInvalidPayload})
}
