package handlerUtil

import (
	"errors"
	"os"
	"runtime/debug"

	"goblog/pkg/log"
	"goblog/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ErrorHandler funnels every handler-level error into one translation point:
// coded domain errors keep their status, anything else becomes a 500.
type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}).Error("Unexpected error")

	payload := fiber.Map{
		"success": false,
		"message": "Server Error",
	}
	if os.Getenv("APP_ENV") != "production" {
		payload["stack"] = err.Error() + "\n" + string(debug.Stack())
	}

	return c.Status(fiber.StatusInternalServerError).JSON(payload)
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Validation failed: " + err.Error(),
	})
}

func (h *ErrorHandler) HandleUnauthorized(c *fiber.Ctx, requestID string, message string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"message":    message,
	}).Warn("Unauthorized access")

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(fiber.Map{
		"success": false,
		"message": "Request timeout",
	})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.Status(statusCode).JSON(fiber.Map{
			"success": true,
		})
	}
	return c.Status(statusCode).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func (h *ErrorHandler) HandleSuccessList(c *fiber.Ctx, statusCode int, count int, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

func (h *ErrorHandler) HandleSuccessToken(c *fiber.Ctx, statusCode int, token string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": true,
		"token":   token,
	})
}
