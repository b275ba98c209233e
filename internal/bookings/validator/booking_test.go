package validator

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	apperrors "cleanbook/pkg/errors"
	"cleanbook/pkg/logger"
)

const validBody = `{
	"name": "Ada Lovelace",
	"email": "ada@example.com",
	"phone": "555-0100",
	"address": "12 Analytical Way",
	"service_type": "deep_clean",
	"preferred_date": "2026-11-02"
}`

func newTestValidator() *BookingValidator {
	return NewBookingValidator(logger.Discard())
}

func fieldErrors(t *testing.T, err error) []apperrors.FieldError {
	t.Helper()

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	if appErr.StatusCode() != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", appErr.StatusCode())
	}
	fields, ok := appErr.Detail.([]apperrors.FieldError)
	if !ok {
		t.Fatalf("expected []FieldError detail, got %T", appErr.Detail)
	}
	return fields
}

func TestBind_Valid(t *testing.T) {
	v := newTestValidator()

	payload, err := v.Bind(strings.NewReader(validBody))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *payload.Name != "Ada Lovelace" || *payload.PreferredDate != "2026-11-02" {
		t.Errorf("unexpected payload: %+v", payload)
	}
	if payload.Bedrooms != nil || payload.Notes != nil || payload.PreferredTime != nil {
		t.Errorf("absent optional fields should stay nil")
	}
}

func TestBind_OptionalFields(t *testing.T) {
	v := newTestValidator()
	body := strings.TrimSuffix(strings.TrimSpace(validBody), "}") +
		`, "bedrooms": 3, "bathrooms": null, "notes": "", "preferred_time": "morning", "pets": true}`

	payload, err := v.Bind(strings.NewReader(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Bedrooms == nil || *payload.Bedrooms != 3 {
		t.Errorf("bedrooms = %v, want 3", payload.Bedrooms)
	}
	if payload.Bathrooms != nil {
		t.Errorf("explicit null should leave bathrooms unset")
	}
	if payload.Notes == nil || *payload.Notes != "" {
		t.Errorf("empty notes should be kept")
	}
	if payload.PreferredTime == nil || *payload.PreferredTime != "morning" {
		t.Errorf("preferred_time = %v, want morning", payload.PreferredTime)
	}
}

func TestBind_EmptyStringsAreAccepted(t *testing.T) {
	v := newTestValidator()
	body := `{"name":"","email":"","phone":"","address":"","service_type":"","preferred_date":""}`

	if _, err := v.Bind(strings.NewReader(body)); err != nil {
		t.Errorf("empty strings should pass, got %v", err)
	}
}

func TestBind_MissingFields(t *testing.T) {
	v := newTestValidator()

	_, err := v.Bind(strings.NewReader(`{"name":"Ada","phone":null}`))
	fields := fieldErrors(t, err)

	want := []string{"email", "phone", "address", "service_type", "preferred_date"}
	if len(fields) != len(want) {
		t.Fatalf("expected %d errors, got %d: %+v", len(want), len(fields), fields)
	}
	for i, name := range want {
		fe := fields[i]
		if fe.Type != TypeMissing || fe.Msg != "Field required" {
			t.Errorf("field %s: unexpected error %+v", name, fe)
		}
		if !reflect.DeepEqual(fe.Loc, []any{"body", name}) {
			t.Errorf("field %s: loc = %v", name, fe.Loc)
		}
	}
}

func TestBind_TypeErrors(t *testing.T) {
	tests := []struct {
		name      string
		extra     string
		wantField string
		wantType  string
	}{
		{name: "word for integer", extra: `"bedrooms": "three"`, wantField: "bedrooms", wantType: TypeIntType},
		{name: "fractional string for integer", extra: `"bedrooms": "3.5"`, wantField: "bedrooms", wantType: TypeIntType},
		{name: "float for integer", extra: `"bathrooms": 1.5`, wantField: "bathrooms", wantType: TypeIntType},
		{name: "array for integer", extra: `"bathrooms": [2]`, wantField: "bathrooms", wantType: TypeIntType},
		{name: "boolean for integer", extra: `"bathrooms": true`, wantField: "bathrooms", wantType: TypeIntType},
		{name: "number for string", extra: `"notes": 5`, wantField: "notes", wantType: TypeStringType},
		{name: "object for string", extra: `"preferred_time": {"h": 9}`, wantField: "preferred_time", wantType: TypeStringType},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := strings.TrimSuffix(strings.TrimSpace(validBody), "}") + ", " + tt.extra + "}"

			_, err := v.Bind(strings.NewReader(body))
			fields := fieldErrors(t, err)

			if len(fields) != 1 {
				t.Fatalf("expected 1 error, got %+v", fields)
			}
			if fields[0].Type != tt.wantType {
				t.Errorf("type = %s, want %s", fields[0].Type, tt.wantType)
			}
			if !reflect.DeepEqual(fields[0].Loc, []any{"body", tt.wantField}) {
				t.Errorf("loc = %v", fields[0].Loc)
			}
		})
	}
}

func TestBind_IntegerCoercion(t *testing.T) {
	tests := []struct {
		name  string
		extra string
		want  int
	}{
		{name: "integer", extra: `"bedrooms": 3`, want: 3},
		{name: "negative integer", extra: `"bedrooms": -2`, want: -2},
		{name: "numeric string", extra: `"bedrooms": "3"`, want: 3},
		{name: "padded numeric string", extra: `"bedrooms": " 4 "`, want: 4},
		{name: "whole float", extra: `"bedrooms": 3.0`, want: 3},
		{name: "exponent", extra: `"bedrooms": 1e1`, want: 10},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := strings.TrimSuffix(strings.TrimSpace(validBody), "}") + ", " + tt.extra + "}"

			payload, err := v.Bind(strings.NewReader(body))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if payload.Bedrooms == nil || *payload.Bedrooms != tt.want {
				t.Errorf("bedrooms = %v, want %d", payload.Bedrooms, tt.want)
			}
		})
	}
}

func TestBind_TypeAndMissingMerged(t *testing.T) {
	v := newTestValidator()

	_, err := v.Bind(strings.NewReader(`{"name": 5, "bedrooms": "three"}`))
	fields := fieldErrors(t, err)

	// name (type), email, phone, address, service_type, preferred_date (missing), bedrooms (type)
	if len(fields) != 7 {
		t.Fatalf("expected 7 errors, got %d: %+v", len(fields), fields)
	}
	if fields[0].Type != TypeStringType || fields[0].Loc[1] != "name" {
		t.Errorf("first error should be the name type error, got %+v", fields[0])
	}
	if fields[6].Type != TypeIntType || fields[6].Loc[1] != "bedrooms" {
		t.Errorf("last error should be the bedrooms type error, got %+v", fields[6])
	}
}

func TestBind_MalformedBodies(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantType string
	}{
		{name: "empty body", body: "", wantType: TypeMissing},
		{name: "whitespace body", body: "  \n", wantType: TypeMissing},
		{name: "truncated json", body: `{"name": "Ada"`, wantType: TypeJSONInvalid},
		{name: "garbage", body: `name=Ada`, wantType: TypeJSONInvalid},
		{name: "array", body: `[1, 2]`, wantType: TypeModelAttributes},
		{name: "string", body: `"hello"`, wantType: TypeModelAttributes},
		{name: "null", body: `null`, wantType: TypeModelAttributes},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Bind(strings.NewReader(tt.body))
			fields := fieldErrors(t, err)

			if len(fields) != 1 {
				t.Fatalf("expected 1 error, got %+v", fields)
			}
			if fields[0].Type != tt.wantType {
				t.Errorf("type = %s, want %s", fields[0].Type, tt.wantType)
			}
			if fields[0].Loc[0] != "body" {
				t.Errorf("loc should start with body, got %v", fields[0].Loc)
			}
		})
	}
}

func TestBind_BodyTooLarge(t *testing.T) {
	v := newTestValidator()

	rec := httptest.NewRecorder()
	body := http.MaxBytesReader(rec, nopCloser{strings.NewReader(validBody)}, 10)

	_, err := v.Bind(body)
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.StatusCode() != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", appErr.StatusCode())
	}
}

type nopCloser struct{ *strings.Reader }

func (nopCloser) Close() error { return nil }
