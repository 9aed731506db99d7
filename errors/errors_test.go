package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeNotFound, "not found", http.StatusNotFound)
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "not found" {
		t.Errorf("expected message 'not found', got %q", err.Message)
	}
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, err.HTTPStatus)
	}
	if err.Retryable != false {
		t.Error("NOT_FOUND should not be retryable")
	}
}

func TestAppError_New_Retryable(t *testing.T) {
	err := New(ErrCodeTimeout, "timed out", http.StatusGatewayTimeout)
	if !err.Retryable {
		t.Error("TIMEOUT should be retryable")
	}
}

func TestAppError_NotFound_Success(t *testing.T) {
	err := NotFound("stream", "123")
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected 404, got %d", err.HTTPStatus)
	}
	if err.Details["resource"] != "stream" {
		t.Errorf("expected resource=stream, got %v", err.Details["resource"])
	}
	if err.Details["id"] != "123" {
		t.Errorf("expected id=123, got %v", err.Details["id"])
	}
	if err.Retryable {
		t.Error("NotFound should not be retryable")
	}
}

func TestAppError_NotFound_EmptyID(t *testing.T) {
	err := NotFound("stream", "")
	if _, ok := err.Details["id"]; ok {
		t.Error("expected no 'id' key in details when id is empty")
	}
}

func TestAppError_Internal_Success(t *testing.T) {
	cause := fmt.Errorf("pipe broken")
	err := Internal(cause)
	if err.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", err.HTTPStatus)
	}
	if err.Cause != cause {
		t.Error("expected cause to be set")
	}
	if err.Retryable {
		t.Error("Internal should NOT be retryable by default")
	}
}

func TestAppError_StreamClosed_Success(t *testing.T) {
	err := StreamClosed("s-1")
	if err.Code != ErrCodeStreamClosed {
		t.Errorf("expected STREAM_CLOSED, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusGone {
		t.Errorf("expected 410, got %d", err.HTTPStatus)
	}
	if err.Details["stream_id"] != "s-1" {
		t.Errorf("expected stream_id=s-1, got %v", err.Details["stream_id"])
	}
	if err.Retryable {
		t.Error("StreamClosed should not be retryable")
	}
}

func TestAppError_StreamStalled_Success(t *testing.T) {
	err := StreamStalled("s-2")
	if err.Code != ErrCodeStreamStalled {
		t.Errorf("expected STREAM_STALLED, got %s", err.Code)
	}
	if !err.Retryable {
		t.Error("StreamStalled should be retryable")
	}
}

func TestAppError_InvalidInput_Success(t *testing.T) {
	err := InvalidInput("depth", "must be non-negative")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", err.Code)
	}
	if err.Details["field"] != "depth" {
		t.Errorf("expected field=depth, got %v", err.Details["field"])
	}
}

func TestAppError_WithCause_Chain(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := NotFound("item", "1").WithCause(cause)
	if err.Cause != cause {
		t.Error("expected cause to be set via WithCause")
	}
	if !strings.Contains(err.Error(), "root cause") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
}

func TestAppError_WithDetails_Merge(t *testing.T) {
	err := NotFound("item", "1").WithDetails(map[string]any{
		"extra": "info",
	})
	if err.Details["extra"] != "info" {
		t.Errorf("expected extra=info in details")
	}
	if err.Details["resource"] != "item" {
		t.Error("expected original details to be preserved")
	}

	err.WithDetails(map[string]any{
		"another": "detail",
	})
	if err.Details["another"] != "detail" {
		t.Error("expected another=detail to be merged")
	}
	if err.Details["extra"] != "info" {
		t.Error("expected extra=info to be preserved after second merge")
	}
}

func TestAppError_WithDetails_Nil(t *testing.T) {
	err := Internal(nil).WithDetails(nil)
	if err.Details == nil {
		t.Fatal("expected Details map to be initialized even with nil input")
	}
}

func TestAppError_WithDetail_Single(t *testing.T) {
	err := Internal(nil).WithDetail("trace", "abc")
	if err.Details["trace"] != "abc" {
		t.Errorf("expected trace=abc in details")
	}

	err.WithDetail("trace", "def")
	if err.Details["trace"] != "def" {
		t.Errorf("expected trace=def after overwrite")
	}
}

func TestAppError_Error_Format(t *testing.T) {
	err := NotFound("stream", "5")
	s := err.Error()
	if !strings.Contains(s, "NOT_FOUND") {
		t.Errorf("expected error string to contain code, got %q", s)
	}
	if !strings.Contains(s, "not found") {
		t.Errorf("expected error string to contain message, got %q", s)
	}
}

func TestAppError_Unwrap_Success(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := Internal(cause)
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	err2 := NotFound("x", "")
	if err2.Unwrap() != nil {
		t.Error("Unwrap should return nil when no cause")
	}
}

func TestAppError_Constructors_Table(t *testing.T) {
	tests := []struct {
		name      string
		err       *AppError
		code      ErrorCode
		status    int
		retryable bool
	}{
		{"ServiceUnavailable", ServiceUnavailable("api"), ErrCodeServiceUnavailable, http.StatusServiceUnavailable, true},
		{"Timeout", Timeout("drain"), ErrCodeTimeout, http.StatusGatewayTimeout, true},
		{"RateLimited", RateLimited(), ErrCodeRateLimited, http.StatusTooManyRequests, true},
		{"AlreadyExists", AlreadyExists("stream"), ErrCodeAlreadyExists, http.StatusConflict, false},
		{"Conflict", Conflict("version mismatch"), ErrCodeConflict, http.StatusConflict, false},
		{"MissingField", MissingField("name"), ErrCodeMissingField, http.StatusBadRequest, false},
		{"InvalidFormat", InvalidFormat("date", "RFC3339"), ErrCodeInvalidFormat, http.StatusBadRequest, false},
		{"StreamClosed", StreamClosed("s"), ErrCodeStreamClosed, http.StatusGone, false},
		{"StreamStalled", StreamStalled("s"), ErrCodeStreamStalled, http.StatusServiceUnavailable, true},
		{"ExternalServiceError", ExternalServiceError("upstream", nil), ErrCodeExternalService, http.StatusBadGateway, true},
		{"Validation", Validation("bad input"), ErrCodeInvalidInput, http.StatusBadRequest, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, tc.err.Code)
			}
			if tc.err.HTTPStatus != tc.status {
				t.Errorf("expected status %d, got %d", tc.status, tc.err.HTTPStatus)
			}
			if tc.err.Retryable != tc.retryable {
				t.Errorf("expected retryable=%v, got %v", tc.retryable, tc.err.Retryable)
			}
		})
	}
}

func TestErrorCode_IsRetryableCode_Table(t *testing.T) {
	retryable := []ErrorCode{ErrCodeServiceUnavailable, ErrCodeTimeout, ErrCodeRateLimited, ErrCodeStreamStalled, ErrCodeExternalService}
	for _, code := range retryable {
		if !IsRetryableCode(code) {
			t.Errorf("expected %s to be retryable", code)
		}
	}

	nonRetryable := []ErrorCode{ErrCodeNotFound, ErrCodeAlreadyExists, ErrCodeInvalidInput, ErrCodeStreamClosed, ErrCodeInternal}
	for _, code := range nonRetryable {
		if IsRetryableCode(code) {
			t.Errorf("expected %s to NOT be retryable", code)
		}
	}
}

func TestAppError_ToResponse_Success(t *testing.T) {
	err := NotFound("stream", "42")
	resp := err.ToResponse()
	if resp.Error.Code != ErrCodeNotFound {
		t.Errorf("expected code NOT_FOUND in response, got %s", resp.Error.Code)
	}
	if resp.Error.Retryable != false {
		t.Error("expected retryable=false in response")
	}
	if resp.Error.Details["resource"] != "stream" {
		t.Error("expected resource=stream in response details")
	}
}

func TestAppError_IsAppError_Success(t *testing.T) {
	appErr := NotFound("x", "")
	if !IsAppError(appErr) {
		t.Error("expected IsAppError to return true for AppError")
	}

	wrapped := fmt.Errorf("wrapped: %w", appErr)
	if !IsAppError(wrapped) {
		t.Error("expected IsAppError to return true for wrapped AppError")
	}

	plain := fmt.Errorf("plain error")
	if IsAppError(plain) {
		t.Error("expected IsAppError to return false for plain error")
	}
}

func TestAppError_AsAppError_Success(t *testing.T) {
	appErr := Internal(nil)
	wrapped := fmt.Errorf("wrap: %w", appErr)

	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to succeed for wrapped AppError")
	}
	if got.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", got.Code)
	}

	_, ok = AsAppError(fmt.Errorf("not an app error"))
	if ok {
		t.Error("expected AsAppError to return false for non-AppError")
	}
}

func TestWrap_NilReturnsNil(t *testing.T) {
	if Wrap(nil) != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrap_AppErrorPassthrough(t *testing.T) {
	orig := NotFound("item", "1")
	got := Wrap(orig)
	if got != orig {
		t.Error("Wrap should return the original AppError unchanged")
	}
}

func TestWrap_PlainError(t *testing.T) {
	plain := fmt.Errorf("something broke")
	got := Wrap(plain)
	if got.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", got.Code)
	}
	if got.Cause != plain {
		t.Error("expected cause to be the original error")
	}
}

func TestAppError_ImplementsErrorInterface(t *testing.T) {
	var err error = NotFound("test", "1")
	if err.Error() == "" {
		t.Error("Error() should not be empty")
	}

	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		t.Error("stderrors.As should work with AppError")
	}
}
