// Package validation holds declarative form validation shared by the console
// create flows and the size limits applied at the HTTP boundary.
package validation

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	dErrors "paynet/pkg/domain-errors"
)

// MaxBodySize is the maximum allowed request body size (64 KB).
const MaxBodySize = 64 * 1024

// DateLayout is the wire format for calendar dates such as date of birth.
const DateLayout = "2006-01-02"

var (
	panPattern   = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	digitPattern = regexp.MustCompile(`^[0-9]+$`)
	ifscPattern  = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
)

// now is swapped in tests that pin the "not in the future" rule.
var now = time.Now

var defaultValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return IsPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("aadhaar", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return len(s) == 12 && digitPattern.MatchString(s)
	})
	_ = v.RegisterValidation("pan", func(fl validator.FieldLevel) bool {
		return panPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("ifsc", func(fl validator.FieldLevel) bool {
		return ifscPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return len(s) == 6 && digitPattern.MatchString(s)
	})
	_ = v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		// Compared on the operator's calendar date, not UTC's.
		current := now()
		d, err := time.ParseInLocation(DateLayout, fl.Field().String(), current.Location())
		if err != nil {
			return false
		}
		y, m, day := current.Date()
		today := time.Date(y, m, day, 0, 0, 0, 0, current.Location())
		return !d.After(today)
	})
	return v
}

// IsPhone reports whether s is a 10-digit phone number.
func IsPhone(s string) bool {
	return len(s) == 10 && digitPattern.MatchString(s)
}

// FieldErrors maps a wire field name to the message shown inline next to it.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	keys := slices.Sorted(maps.Keys(f))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+f[k])
	}
	return strings.Join(parts, "; ")
}

// Merge copies other into f without overwriting fields already flagged.
func (f FieldErrors) Merge(other FieldErrors) {
	for k, v := range other {
		if _, ok := f[k]; !ok {
			f[k] = v
		}
	}
}

// Err returns nil for an empty set, otherwise a validation domain error
// carrying the field map.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return &dErrors.Error{Code: dErrors.CodeValidation, Message: "validation failed", Err: f}
}

// Fields extracts the per-field messages carried by err, if any.
func Fields(err error) FieldErrors {
	var f FieldErrors
	if errors.As(err, &f) {
		return f
	}
	return nil
}

// Field builds a single-field validation error.
func Field(name, msg string) error {
	return FieldErrors{name: msg}.Err()
}

// Struct validates req against its `validate` tags and reports every failing
// field, keyed by its JSON name.
func Struct(req any) FieldErrors {
	err := defaultValidator.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return FieldErrors{"_": "invalid request body"}
	}
	out := make(FieldErrors, len(validationErrs))
	for _, fe := range validationErrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = message(field, fe)
	}
	return out
}

// Validate validates a struct and returns a domain error carrying field errors.
func Validate(req any) error {
	return Struct(req).Err()
}

func message(field string, fe validator.FieldError) string {
	label := strings.ReplaceAll(field, "_", " ")
	switch fe.ActualTag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", label, fe.Param())
	case "phone10":
		return fmt.Sprintf("%s must be a 10-digit number", label)
	case "aadhaar":
		return fmt.Sprintf("%s must be a 12-digit number", label)
	case "pan":
		return fmt.Sprintf("%s must look like ABCDE1234F", label)
	case "ifsc":
		return fmt.Sprintf("%s must be a valid IFSC code", label)
	case "pincode":
		return fmt.Sprintf("%s must be a 6-digit number", label)
	case "notfuture":
		return fmt.Sprintf("%s must be a past date (YYYY-MM-DD)", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
