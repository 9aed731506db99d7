package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestValidatorRequired(t *testing.T) {
	v := New()
	v.Required("name", "ticker")
	if v.HasErrors() {
		t.Error("expected no errors for valid input")
	}

	v2 := New()
	v2.Required("name", "")
	if !v2.HasErrors() {
		t.Error("expected error for empty required field")
	}

	v3 := New()
	v3.Required("name", "   ")
	if !v3.HasErrors() {
		t.Error("expected error for whitespace-only required field")
	}
}

func TestValidatorRequiredUUID(t *testing.T) {
	validUUID := uuid.New().String()

	v := New()
	v.RequiredUUID("id", validUUID)
	if v.HasErrors() {
		t.Errorf("expected no errors for valid UUID, got %v", v.Errors())
	}

	v2 := New()
	v2.RequiredUUID("id", "")
	if !v2.HasErrors() {
		t.Error("expected error for empty UUID")
	}

	v3 := New()
	v3.RequiredUUID("id", "not-a-uuid")
	if !v3.HasErrors() {
		t.Error("expected error for invalid UUID")
	}

	v4 := New()
	v4.RequiredUUID("id", uuid.Nil.String())
	if !v4.HasErrors() {
		t.Error("expected error for nil UUID")
	}
}

func TestValidatorOptionalUUID(t *testing.T) {
	v := New()
	v.OptionalUUID("id", "")
	if v.HasErrors() {
		t.Error("expected no error for empty optional UUID")
	}

	v2 := New()
	v2.OptionalUUID("id", uuid.New().String())
	if v2.HasErrors() {
		t.Error("expected no error for valid optional UUID")
	}

	v3 := New()
	v3.OptionalUUID("id", "bad-uuid")
	if !v3.HasErrors() {
		t.Error("expected error for invalid optional UUID")
	}
}

func TestValidatorRange(t *testing.T) {
	v := New()
	v.Range("depth", 5, 0, 100)
	if v.HasErrors() {
		t.Error("expected no error for value in range")
	}

	v2 := New()
	v2.Range("depth", -2, 0, 100)
	if !v2.HasErrors() {
		t.Error("expected error for value below range")
	}

	v3 := New()
	v3.Range("depth", 101, 0, 100)
	if !v3.HasErrors() {
		t.Error("expected error for value above range")
	}
}

func TestValidatorMinMax(t *testing.T) {
	v := New()
	v.Min("count", 5, 1)
	v.Max("count", 5, 10)
	if v.HasErrors() {
		t.Error("expected no errors")
	}

	v2 := New()
	v2.Min("count", 0, 1)
	if !v2.HasErrors() {
		t.Error("expected error for value below min")
	}

	v3 := New()
	v3.Max("count", 11, 10)
	if !v3.HasErrors() {
		t.Error("expected error for value above max")
	}
}

func TestValidatorDurations(t *testing.T) {
	v := New()
	v.PositiveDuration("target", 500*time.Millisecond)
	v.DurationRange("delay", 100*time.Millisecond, 10*time.Millisecond, time.Second)
	if v.HasErrors() {
		t.Errorf("expected no errors, got %v", v.Errors())
	}

	v2 := New()
	v2.PositiveDuration("target", 0)
	if !v2.HasErrors() {
		t.Error("expected error for zero duration")
	}

	v3 := New()
	v3.DurationRange("delay", 2*time.Second, 10*time.Millisecond, time.Second)
	if !v3.HasErrors() {
		t.Error("expected error for out-of-range duration")
	}
}

func TestValidatorOneOf(t *testing.T) {
	v := New()
	v.OneOf("strategy", "pid", []string{"pid", "threshold"})
	if v.HasErrors() {
		t.Error("expected no error for valid oneOf value")
	}

	v2 := New()
	v2.OneOf("strategy", "unknown", []string{"pid", "threshold"})
	if !v2.HasErrors() {
		t.Error("expected error for invalid oneOf value")
	}

	// Empty should be skipped
	v3 := New()
	v3.OneOf("strategy", "", []string{"pid"})
	if v3.HasErrors() {
		t.Error("expected no error for empty oneOf value")
	}
}

func TestValidatorCustom(t *testing.T) {
	v := New()
	v.Custom(true, "field", "should pass")
	if v.HasErrors() {
		t.Error("expected no error for true condition")
	}

	v2 := New()
	v2.Custom(false, "field", "custom error")
	if !v2.HasErrors() {
		t.Error("expected error for false condition")
	}
	if v2.Errors()[0].Message != "custom error" {
		t.Errorf("expected 'custom error', got %q", v2.Errors()[0].Message)
	}
}

func TestValidatorValidate(t *testing.T) {
	v := New()
	v.Required("name", "ticker")
	appErr := v.Validate()
	if appErr != nil {
		t.Error("expected nil for valid input")
	}

	v2 := New()
	v2.Required("name", "")
	v2.Required("stream_id", "")
	appErr2 := v2.Validate()
	if appErr2 == nil {
		t.Fatal("expected error")
	}
	if appErr2.Details == nil {
		t.Fatal("expected details in error")
	}
	if !strings.Contains(appErr2.Message, "name") || !strings.Contains(appErr2.Message, "stream_id") {
		t.Errorf("expected both fields in message, got %q", appErr2.Message)
	}
}

func TestValidatorChaining(t *testing.T) {
	v := New()
	result := v.Required("name", "ticker").Min("depth", 2, 0).PositiveDuration("target", time.Second)
	if result != v {
		t.Error("expected chaining to return same validator")
	}
	if v.HasErrors() {
		t.Error("expected no errors for valid chained validation")
	}
}

func TestValidateStructValid(t *testing.T) {
	type Policy struct {
		Target   time.Duration `mapstructure:"target" validate:"required,gt=0"`
		Strategy string        `mapstructure:"strategy" validate:"required,oneof=pid threshold"`
	}

	err := ValidateStruct(Policy{Target: time.Second, Strategy: "pid"})
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestValidateStructInvalid(t *testing.T) {
	type Policy struct {
		Target   time.Duration `mapstructure:"target" validate:"required,gt=0"`
		Strategy string        `mapstructure:"strategy" validate:"required,oneof=pid threshold"`
	}

	err := ValidateStruct(Policy{Target: 0, Strategy: "bang-bang"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "target") {
		t.Errorf("expected error to mention 'target', got %q", errStr)
	}
	if !strings.Contains(errStr, "strategy") {
		t.Errorf("expected error to mention 'strategy', got %q", errStr)
	}
}

func TestValidateStructFieldOrdering(t *testing.T) {
	type Bounds struct {
		MinDelay time.Duration `mapstructure:"min_delay" validate:"gte=0"`
		MaxDelay time.Duration `mapstructure:"max_delay" validate:"required,gtfield=MinDelay"`
	}

	if err := ValidateStruct(Bounds{MinDelay: time.Millisecond, MaxDelay: time.Second}); err != nil {
		t.Errorf("expected valid, got %v", err)
	}

	err := ValidateStruct(Bounds{MinDelay: time.Second, MaxDelay: time.Millisecond})
	if err == nil {
		t.Fatal("expected error for max below min")
	}
	if !strings.Contains(err.Error(), "max_delay") {
		t.Errorf("expected mapstructure field name in error, got %q", err.Error())
	}
}

func TestValidateUUIDFunc(t *testing.T) {
	validUUID := uuid.New().String()
	id, err := ValidateUUID("stream_id", validUUID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id.String() != validUUID {
		t.Errorf("expected %s, got %s", validUUID, id.String())
	}
}

func TestValidateUUIDFuncEmpty(t *testing.T) {
	_, err := ValidateUUID("stream_id", "")
	if err == nil {
		t.Error("expected error for empty UUID")
	}
}

func TestValidateUUIDFuncInvalid(t *testing.T) {
	_, err := ValidateUUID("stream_id", "bad")
	if err == nil {
		t.Error("expected error for invalid UUID")
	}
}

func TestRequiredFunc(t *testing.T) {
	err := Required("name", "value")
	if err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	err = Required("name", "")
	if err == nil {
		t.Error("expected error for empty required field")
	}
}
