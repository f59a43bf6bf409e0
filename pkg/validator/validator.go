package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorMap maps a field (its JSON name) to a human readable message. Handlers
// return it verbatim as {"errors": {...}} so the forms can highlight fields.
type ErrorMap map[string]string

func (e ErrorMap) Agregar(campo, mensaje string) {
	e[campo] = mensaje
}

var (
	// Letters including Spanish diacritics (á é í ó ú ü ñ) and spaces.
	reLetras  = regexp.MustCompile(`^[a-zA-ZáéíóúüñÁÉÍÓÚÜÑ\s]+$`)
	reDigitos = regexp.MustCompile(`^\d+$`)
)

var estadosValidos = map[string]bool{
	"pendiente":      true,
	"en preparación": true,
	"completado":     true,
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()

	// Report errors under the json name so the map keys match the form inputs
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("letras", func(fl validator.FieldLevel) bool {
		return reLetras.MatchString(fl.Field().String())
	})
	v.RegisterValidation("digitos", func(fl validator.FieldLevel) bool {
		return reDigitos.MatchString(fl.Field().String())
	})
	v.RegisterValidation("estado", func(fl validator.FieldLevel) bool {
		return EstadoValido(fl.Field().String())
	})

	return v
}

// EstadoValido reports whether s is one of the workflow states. Input is
// lower-cased first; the capture forms sometimes sent "Completado".
func EstadoValido(s string) bool {
	return estadosValidos[strings.ToLower(s)]
}

// NormalizarEstado lower-cases the state before persisting it.
func NormalizarEstado(s string) string {
	return strings.ToLower(s)
}

// ValidateStruct runs the declarative rules and returns nil when clean.
func ValidateStruct(data interface{}) ErrorMap {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	errs := ErrorMap{}
	for _, fe := range err.(validator.ValidationErrors) {
		if _, visto := errs[fe.Field()]; !visto {
			errs[fe.Field()] = mensaje(fe)
		}
	}
	return errs
}

func mensaje(fe validator.FieldError) string {
	campo := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("El campo %s es obligatorio.", campo)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("El campo %s debe tener al menos %s caracteres.", campo, fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Debe agregar al menos %s elemento en %s.", fe.Param(), campo)
		}
		return fmt.Sprintf("El campo %s debe ser al menos %s.", campo, fe.Param())
	case "gt":
		return fmt.Sprintf("El campo %s debe ser mayor que %s.", campo, fe.Param())
	case "email":
		return fmt.Sprintf("El campo %s debe ser un correo válido.", campo)
	case "letras":
		return fmt.Sprintf("El campo %s solo puede contener letras y espacios.", campo)
	case "digitos":
		return fmt.Sprintf("El campo %s solo puede contener números.", campo)
	case "estado":
		return fmt.Sprintf("El campo %s debe ser pendiente, en preparación o completado.", campo)
	}
	return fmt.Sprintf("El campo %s no es válido.", campo)
}
