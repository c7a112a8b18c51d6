package types

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Shared validator for the request structs. Field errors carry the json names
// the client actually sent instead of the Go field names.
var validate = validator.New()

func init() {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct runs the validate tags of a request struct.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
