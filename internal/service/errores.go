package service

import (
	"errors"

	"delicrem-api/pkg/validator"

	"gorm.io/gorm"
)

// ErrNoEncontrado maps to HTTP 404 in the handlers.
var ErrNoEncontrado = errors.New("registro no encontrado")

// ErrCredenciales maps to HTTP 401.
var ErrCredenciales = errors.New("Credenciales inválidas")

// ValidationError carries field-level messages. Handlers serialize it as
// {"errors": {campo: mensaje}} so the forms can highlight each input.
type ValidationError struct {
	Fields validator.ErrorMap
}

func (e *ValidationError) Error() string { return "datos inválidos" }

func errCampos(fields validator.ErrorMap) error {
	return &ValidationError{Fields: fields}
}

// noEncontrado translates gorm's sentinel so handlers don't import gorm.
func noEncontrado(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoEncontrado
	}
	return err
}
