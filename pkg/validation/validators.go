package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// YYYY-MM-DD by shape only; calendar correctness is not checked.
var ymdRegex = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)

// enumValue is implemented by the categorical domain types
type enumValue interface {
	IsValid() bool
}

// New returns a validator with the custom rules registered and field names
// reported by their JSON name.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	v.RegisterTagNameFunc(jsonFieldName)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("ymd", YMDDate)
	_ = v.RegisterValidation("enum", Enum)
	_ = v.RegisterValidation("notags", NoTags)
}

// YMDDate validates the YYYY-MM-DD shape of a date-like string. Empty passes;
// use required if needed.
func YMDDate(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return ymdRegex.MatchString(val)
}

// Enum validates a categorical field against its closed set of canonical values
func Enum(fl validator.FieldLevel) bool {
	field := fl.Field()
	if !field.CanInterface() {
		return false
	}
	e, ok := field.Interface().(enumValue)
	if !ok {
		return false
	}
	return e.IsValid()
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
