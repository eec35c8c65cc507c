package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// FieldError is one field-level violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value"`
}

// ValidationErrors is returned by BindAndValidate and rendered as
// {"errors": [...]} with status 400.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fe.Field + " " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Normalizer is implemented by request bodies that clean themselves up
// (trimming, defaults) before validation.
type Normalizer interface {
	Normalize()
}

// Number is a JSON number that also accepts a numeric string such as
// "12.5". A missing or null value is absent: it skips omitempty fields and
// fails any other tag with "is required". Zero is a value, so mandatory
// amounts use a bound such as gte=0.01 rather than required.
type Number struct {
	raw []byte
}

func (n *Number) UnmarshalJSON(b []byte) error {
	n.raw = append(n.raw[:0], b...)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Present() {
		return []byte("null"), nil
	}
	if f, ok := n.Float64(); ok {
		return json.Marshal(f)
	}
	return json.Marshal(strings.Trim(string(n.raw), `"`))
}

// NewNumber is mostly useful in tests.
func NewNumber(f float64) Number {
	return Number{raw: []byte(strconv.FormatFloat(f, 'f', -1, 64))}
}

// Present reports whether the field was sent with a non-null value.
func (n Number) Present() bool {
	return len(n.raw) > 0 && !bytes.Equal(n.raw, []byte("null"))
}

// Float64 parses the value. ok is false when it is absent or not numeric.
func (n Number) Float64() (float64, bool) {
	if !n.Present() {
		return 0, false
	}
	s := string(n.raw)
	if unq, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unq)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Ptr returns nil when the value is absent.
func (n Number) Ptr() *float64 {
	f, ok := n.Float64()
	if !ok {
		return nil
	}
	return &f
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDate accepts a calendar date, an RFC 3339 timestamp or a local
// timestamp without zone. Results are in UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// BcryptMaxBytes is the longest password bcrypt accepts.
const BcryptMaxBytes = 72

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		n, ok := field.Interface().(Number)
		if !ok || !n.Present() {
			return nil
		}
		if f, ok := n.Float64(); ok {
			return f
		}
		return math.NaN()
	}, Number{})
	_ = v.RegisterValidation("iso8601", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
	// bcrypt rejects input longer than 72 bytes, which max= cannot see for
	// multibyte text since it counts runes.
	_ = v.RegisterValidation("bcryptlen", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= BcryptMaxBytes
	})
	return v
}

// BindAndValidate parses the JSON body into T, normalizes it and runs the
// validate tags. Violations come back as ValidationErrors.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if n, ok := any(&input).(Normalizer); ok {
		n.Normalize()
	}
	if err := Validate(&input); err != nil {
		return nil, err
	}
	return &input, nil
}

// Validate runs the validate tags on v.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		fieldErr := FieldError{Field: fe.Field(), Message: message(fe)}
		if !secretFields[fe.Field()] {
			fieldErr.Value = printable(fe.Value())
		}
		out = append(out, fieldErr)
	}
	return out
}

// Never echoed back in violations.
var secretFields = map[string]bool{"password": true}

func printable(v any) any {
	if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return nil
	}
	return v
}

func message(fe validator.FieldError) string {
	if fe.Kind() == reflect.Invalid {
		return "is required"
	}
	if f, ok := fe.Value().(float64); ok && math.IsNaN(f) {
		return "must be a number"
	}
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if isString {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "iso8601":
		return "must be a valid date (YYYY-MM-DD)"
	case "bcryptlen":
		return fmt.Sprintf("must be at most %d bytes", BcryptMaxBytes)
	default:
		return "is invalid"
	}
}
