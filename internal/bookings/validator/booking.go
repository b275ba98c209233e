package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	apperrors "cleanbook/pkg/errors"
	"cleanbook/pkg/logger"
	"cleanbook/pkg/model"

	"github.com/go-playground/validator/v10"
)

const (
	TypeMissing          = "missing"
	TypeJSONInvalid      = "json_invalid"
	TypeIntType          = "int_type"
	TypeStringType       = "string_type"
	TypeModelAttributes  = "model_attributes_type"
	locBody              = "body"
	msgFieldRequired     = "Field required"
	msgJSONDecode        = "JSON decode error"
	msgIntType           = "Input should be a valid integer"
	msgStringType        = "Input should be a valid string"
	msgModelAttributes   = "Input should be a valid dictionary or object to extract fields from"
	validationFailureMsg = "Request validation failed"
)

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := validator.New()

	// Report json names so errors line up with the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	log.Info("Booking validator initialized successfully")

	return &BookingValidator{
		validate: v,
		logger:   log,
	}
}

// Bind decodes a booking request body. Every problem found is returned in a
// single validation error so clients can fix all fields at once.
func (v *BookingValidator) Bind(body io.Reader) (*model.BookingPayload, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, apperrors.TooLarge(maxErr.Limit)
		}
		return nil, apperrors.Internal("failed to read request body", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, v.fail([]apperrors.FieldError{{
			Type: TypeMissing,
			Loc:  []any{locBody},
			Msg:  msgFieldRequired,
		}})
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, v.fail([]apperrors.FieldError{decodeError(err)})
	}
	if raw == nil {
		// literal null
		return nil, v.fail([]apperrors.FieldError{{
			Type: TypeModelAttributes,
			Loc:  []any{locBody},
			Msg:  msgModelAttributes,
		}})
	}

	payload := &model.BookingPayload{}
	typeErrs := decodeFields(raw, payload)

	missing := make(map[string]bool)
	if err := v.validate.Struct(payload); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return nil, apperrors.Internal("failed to validate booking", err)
		}
		for _, fe := range validationErrs {
			if fe.Tag() == "required" {
				missing[fe.Field()] = true
			}
		}
	}

	var problems []apperrors.FieldError
	for _, f := range bookingFields() {
		if fe, ok := typeErrs[f.name]; ok {
			problems = append(problems, fe)
			continue
		}
		if missing[f.name] {
			problems = append(problems, apperrors.FieldError{
				Type: TypeMissing,
				Loc:  []any{locBody, f.name},
				Msg:  msgFieldRequired,
			})
		}
	}

	if len(problems) > 0 {
		return nil, v.fail(problems)
	}
	return payload, nil
}

func (v *BookingValidator) fail(problems []apperrors.FieldError) error {
	v.logger.Debug("Booking request rejected",
		"problems", len(problems),
		"first_type", problems[0].Type,
	)
	return apperrors.Validation(validationFailureMsg, problems)
}

type bookingField struct {
	name  string
	index int
	kind  reflect.Kind
}

// bookingFields lists the payload fields in declaration order.
func bookingFields() []bookingField {
	t := reflect.TypeOf(model.BookingPayload{})
	fields := make([]bookingField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		kind := sf.Type.Kind()
		if kind == reflect.Pointer {
			kind = sf.Type.Elem().Kind()
		}
		fields = append(fields, bookingField{name: name, index: i, kind: kind})
	}
	return fields
}

// decodeFields fills payload from the raw object one field at a time. String
// fields take JSON strings only. Integer fields also take whole-valued floats
// and numeric strings ("3", 3.0), but not 3.5 or "three". JSON null leaves the
// field unset.
func decodeFields(raw map[string]json.RawMessage, payload *model.BookingPayload) map[string]apperrors.FieldError {
	errs := make(map[string]apperrors.FieldError)
	target := reflect.ValueOf(payload).Elem()

	for _, f := range bookingFields() {
		value, ok := raw[f.name]
		if !ok || bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			continue
		}

		field := target.Field(f.index)
		if isInt(f.kind) {
			n, ok := decodeInt(value)
			if !ok {
				errs[f.name] = typeError(f)
				continue
			}
			ptr := reflect.New(field.Type().Elem())
			ptr.Elem().SetInt(n)
			field.Set(ptr)
			continue
		}

		if err := json.Unmarshal(value, field.Addr().Interface()); err != nil {
			field.Set(reflect.Zero(field.Type()))
			errs[f.name] = typeError(f)
		}
	}
	return errs
}

func isInt(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

// decodeInt accepts a JSON integer, a float with no fractional part, or a
// string holding an integer. Booleans and everything else are rejected.
func decodeInt(raw json.RawMessage) (int64, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, false
	}

	switch t := v.(type) {
	case json.Number:
		if n, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return n, true
		}
		f, err := t.Float64()
		if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}
		return int64(f), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func typeError(f bookingField) apperrors.FieldError {
	fe := apperrors.FieldError{Loc: []any{locBody, f.name}}
	if isInt(f.kind) {
		fe.Type = TypeIntType
		fe.Msg = msgIntType
		return fe
	}
	fe.Type = TypeStringType
	fe.Msg = msgStringType
	return fe
}

func decodeError(err error) apperrors.FieldError {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return apperrors.FieldError{
			Type: TypeJSONInvalid,
			Loc:  []any{locBody, syntaxErr.Offset},
			Msg:  msgJSONDecode,
		}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperrors.FieldError{
			Type: TypeModelAttributes,
			Loc:  []any{locBody},
			Msg:  msgModelAttributes,
		}
	}

	return apperrors.FieldError{
		Type: TypeJSONInvalid,
		Loc:  []any{locBody, 0},
		Msg:  fmt.Sprintf("%s: %v", msgJSONDecode, err),
	}
}
