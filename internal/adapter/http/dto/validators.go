package dto

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// MaxIDLength bounds every externally supplied identifier.
const MaxIDLength = 100

// Identifiers are restricted to letters, digits, underscore, dash and dot.
var safeIDRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("safe_id", func(fl validator.FieldLevel) bool {
		return IsSafeID(fl.Field().String())
	})
	// Report fields by their JSON names so messages match the request body.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// IsSafeID reports whether s is usable as a transaction, user or merchant id.
func IsSafeID(s string) bool {
	return len(s) <= MaxIDLength && safeIDRe.MatchString(s)
}

// ValidationMessage turns a binding error into a client-facing sentence.
// Decoder errors (malformed JSON, wrong types) collapse to a generic message.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "safe_id":
		return fmt.Sprintf("%s may only contain letters, digits, '_', '-' and '.'", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
