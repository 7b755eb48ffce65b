package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct valida un struct según sus tags `validate` y devuelve un mensaje
// legible con los campos fallidos, o "" si todo es válido.
func ValidateStruct(data interface{}) string {
	err := validate.Struct(data)
	if err == nil {
		return ""
	}
	var parts []string
	for _, fe := range err.(validator.ValidationErrors) {
		parts = append(parts, fmt.Sprintf("%s: falla la regla '%s'", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
