package httpError

import "github.com/gofiber/fiber/v2"

// CommonError is the error shape carried inside utils.Result and rendered
// by utils.ResponseError.
type CommonError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *CommonError) Error() string {
	return e.Message
}

func NewBadRequest() *CommonError {
	return &CommonError{
		Code:    fiber.StatusBadRequest,
		Message: "bad request",
	}
}

func NewNotFound() *CommonError {
	return &CommonError{
		Code:    fiber.StatusNotFound,
		Message: "not found",
	}
}

func NewConflict() *CommonError {
	return &CommonError{
		Code:    fiber.StatusConflict,
		Message: "conflict",
	}
}

func NewUnprocessableEntity() *CommonError {
	return &CommonError{
		Code:    fiber.StatusUnprocessableEntity,
		Message: "unprocessable entity",
	}
}

func NewInternalServerError() *CommonError {
	return &CommonError{
		Code:    fiber.StatusInternalServerError,
		Message: "internal server error",
	}
}
