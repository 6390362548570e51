package serverutils

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type APIResponse[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) APIResponse[T] {
	return APIResponse[T]{Code: 200, Message: message, Data: data}
}

func ErrorResponse(code int, message string) APIResponse[any] {
	return APIResponse[any]{Code: code, Message: message}
}

var validate = validator.New()

// ValidateRequest runs struct-tag validation on a bound request body.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

// ErrorHandlerMiddleware converts unhandled errors into JSON responses.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		code := fiber.StatusInternalServerError
		if fe, ok := err.(*fiber.Error); ok {
			code = fe.Code
		}
		return ctx.Status(code).JSON(ErrorResponse(code, err.Error()))
	}
}
