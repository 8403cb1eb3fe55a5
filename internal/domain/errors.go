package domain

import (
	"errors"

	"tg_giftwatch/pkg/errcodes"
)

// Базовые ошибки для errors.Is: совпадение идёт по коду.
var (
	ErrConfigInvalid        = NewError(errcodes.ConfigInvalid, "invalid configuration")
	ErrPriceListUnavailable = NewError(errcodes.PriceListUnavailable, "price list unavailable")
)

// AppError: ошибка с кодом из errcodes.
type AppError struct {
	Code    errcodes.Code
	Message string
	cause   error
}

func NewError(code errcodes.Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func (e *AppError) Error() string {
	if e.cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.cause.Error()
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Is сравнивает ошибки по коду.
func (e *AppError) Is(target error) bool {
	var other *AppError
	if !errors.As(target, &other) {
		return false
	}

	return other.Code == e.Code
}

// Wrap возвращает копию с тем же кодом, уточнённым сообщением и причиной.
func (e *AppError) Wrap(cause error, message string) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: message,
		cause:   cause,
	}
}

// CodeOf достаёт код из цепочки ошибок; для чужих ошибок: InternalServerError.
func CodeOf(err error) errcodes.Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return errcodes.InternalServerError
}
