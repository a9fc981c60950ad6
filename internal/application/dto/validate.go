package dto

import "github.com/go-playground/validator/v10"

// validate instancia única; los structs de este paquete llevan tags `validate`.
var validate = validator.New()

// Validate valida un DTO contra sus tags. Devuelve el error del validador
// (el handler lo traduce a 400 VALIDATION).
func Validate(s any) error {
	return validate.Struct(s)
}
