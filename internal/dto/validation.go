package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/mikededo/hubbl-sub000/internal/apperr"
	"github.com/mikededo/hubbl-sub000/internal/calendar"
)

const (
	MessageInvalidBody      = "Request body is not valid JSON."
	MessageValidationFailed = "Request body validation failed."
)

// FieldError is one entry of the payload returned with a 400.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("timeofday", func(fl validator.FieldLevel) bool {
		return calendar.TimeOfDay(fl.Field().String()).Valid()
	})

	v.RegisterStructValidation(func(sl validator.StructLevel) {
		d := sl.Current().Interface().(calendar.Date)
		if !d.Valid() {
			sl.ReportError(d.Day, "day", "Day", "calendardate", "")
		}
	}, calendar.Date{})

	return v
}

// Parse decodes raw into a T, lets prepare overwrite server-owned fields and
// validates the result.
func Parse[T any](raw []byte, prepare func(*T)) (T, error) {
	var out T
	if err := Decode(raw, &out); err != nil {
		return out, err
	}
	if prepare != nil {
		prepare(&out)
	}
	if err := Validate(out); err != nil {
		return out, err
	}
	return out, nil
}

func Decode(raw []byte, v any) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("{}")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return apperr.ClientError(MessageInvalidBody, []FieldError{{
				Field:   typeErr.Field,
				Tag:     "type",
				Message: typeErr.Field + " must be of type " + typeErr.Type.String(),
			}})
		}
		return apperr.ClientError(MessageInvalidBody, nil)
	}
	return nil
}

func Validate(v any) error {
	errs := ValidateStruct(v)
	if len(errs) > 0 {
		return apperr.ClientError(MessageValidationFailed, errs)
	}
	return nil
}

func ValidateStruct(s any) []FieldError {
	var out []FieldError

	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "", Tag: "invalid", Message: err.Error()}}
	}

	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fieldPath(fe),
			Tag:     fe.Tag(),
			Message: getErrorMessage(fe),
		})
	}
	return out
}

// fieldPath drops the struct name and any embedded struct from the
// namespace: "date.day", "client", "firstName".
func fieldPath(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) < 2 {
		return fe.Field()
	}
	out := parts[1:][:0]
	for _, p := range parts[1:] {
		if p != "" && unicode.IsUpper(rune(p[0])) {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return fe.Field()
	}
	return strings.Join(out, ".")
}

func getErrorMessage(err validator.FieldError) string {
	field := fieldPath(err)
	switch err.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return field + " must be at least " + err.Param() + " characters"
	case "max":
		return field + " must be at most " + err.Param() + " characters"
	case "gte":
		return field + " must be greater than or equal to " + err.Param()
	case "lte":
		return field + " must be less than or equal to " + err.Param()
	case "gt":
		return field + " must be greater than " + err.Param()
	case "oneof":
		return field + " must be one of " + err.Param()
	case "timeofday":
		return field + " must be a time formatted as HH:MM:SS"
	case "calendardate":
		return "date must be a valid calendar date"
	default:
		return field + " is invalid"
	}
}
