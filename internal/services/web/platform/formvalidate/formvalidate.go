// Package formvalidate validates decoded form structs with validator/v10 and
// maps failures to per-field localization keys.
package formvalidate

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/message"
)

// Problem is one field failure: a localization key plus an optional
// parameter (for example the minimum length).
type Problem struct {
	Key   string
	Param string
}

// FieldErrors maps form field names to their first failure.
type FieldErrors map[string]Problem

// Localizer formats localized copy.
type Localizer interface {
	Sprintf(key message.Reference, a ...any) string
}

const (
	KeyRequired = "validation.required"
	KeyEmail    = "validation.email"
	KeyPhone    = "validation.phone"
	KeyMin      = "validation.min"
	KeyMax      = "validation.max"
	KeyGTE      = "validation.gte"
	KeyLTE      = "validation.lte"
	KeyURL      = "validation.url"
	KeyInvalid  = "validation.invalid"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(field.Name)
		}
		return name
	})
	mustRegister(v, "phone_digits", validPhoneDigits)
	return v
}

// mustRegister panics when tag cannot be registered; struct tags naming an
// unregistered validation would otherwise panic on first use.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("formvalidate: register %q validation: %v", tag, err))
	}
}

// validPhoneDigits accepts 7 to 15 digits with optional +, spaces, dashes,
// dots and parentheses.
func validPhoneDigits(fl validator.FieldLevel) bool {
	digits := 0
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' || r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= 7 && digits <= 15
}

// Struct validates v and returns nil when every field passes. Non-validation
// failures are reported under the "_" field.
func Struct(v any) FieldErrors {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	out := FieldErrors{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["_"] = Problem{Key: KeyInvalid}
		return out
	}
	for _, fe := range ve {
		field := fe.Field()
		if _, exists := out[field]; exists {
			continue
		}
		out[field] = problemForTag(fe.Tag(), fe.Param())
	}
	return out
}

func problemForTag(tag, param string) Problem {
	switch tag {
	case "required":
		return Problem{Key: KeyRequired}
	case "email":
		return Problem{Key: KeyEmail}
	case "phone_digits":
		return Problem{Key: KeyPhone}
	case "min":
		return Problem{Key: KeyMin, Param: param}
	case "max":
		return Problem{Key: KeyMax, Param: param}
	case "gte", "gt":
		return Problem{Key: KeyGTE, Param: param}
	case "lte", "lt":
		return Problem{Key: KeyLTE, Param: param}
	case "url", "http_url":
		return Problem{Key: KeyURL}
	default:
		return Problem{Key: KeyInvalid}
	}
}

// Add records a failure for field unless one is already present.
func (fe FieldErrors) Add(field, key string) FieldErrors {
	if fe == nil {
		fe = FieldErrors{}
	}
	if _, exists := fe[field]; !exists {
		fe[field] = Problem{Key: key}
	}
	return fe
}

// Has reports whether field failed.
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Fields returns the failing field names in sorted order.
func (fe FieldErrors) Fields() []string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Message returns the localized message for field, or "".
func (fe FieldErrors) Message(loc Localizer, field string) string {
	problem, ok := fe[field]
	if !ok {
		return ""
	}
	if loc == nil {
		return problem.Key
	}
	if problem.Param != "" {
		return loc.Sprintf(problem.Key, problem.Param)
	}
	return loc.Sprintf(problem.Key)
}
