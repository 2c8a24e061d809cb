package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/newtop/marmoleria-api/internal/application/dto"
	"github.com/newtop/marmoleria-api/internal/domain"
)

// writeError traduce errores de dominio a estado HTTP y ErrorResponse.
// Los fallos de autenticación se responden con un mensaje genérico; el motivo solo va al log.
func writeError(c *fiber.Ctx, err error) error {
	var (
		notFound domain.NotFoundError
		conflict domain.ConflictError
	)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		resp := dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"}
		for _, fe := range domain.FieldErrors(err) {
			resp.Fields = append(resp.Fields, dto.FieldError{Field: fe.Field, Reason: fe.Reason})
		}
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: notFound.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.As(err, &conflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: conflict.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrSessionExpired):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "la sesión expiró"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return c.Status(fiber.StatusRequestTimeout).JSON(dto.ErrorResponse{Code: "CANCELLED", Message: "la solicitud fue cancelada"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
