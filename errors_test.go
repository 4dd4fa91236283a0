// errors_test.go: tests for structured error handling
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package tracecache

import (
	"errors"
	"testing"
)

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		name         string
		errFunc      func() error
		expectedCode string
		fatal        bool
	}{
		{"InvalidCapacity", func() error { return NewErrInvalidCapacity(-1) }, string(ErrCodeInvalidCapacity), false},
		{"UnknownPolicy", func() error { return NewErrUnknownPolicy("LSU") }, string(ErrCodeUnknownPolicy), false},
		{"ClockRegression", func() error { return NewErrClockRegression(10, 5) }, string(ErrCodeClockRegression), true},
		{"IngestionFatal", func() error { return NewErrIngestionFatal(errors.New("scroll mismatch")) }, string(ErrCodeIngestionFatal), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.errFunc()
			if got := string(GetErrorCode(err)); got != tt.expectedCode {
				t.Errorf("code = %q, want %q", got, tt.expectedCode)
			}
			if IsFatal(err) != tt.fatal {
				t.Errorf("IsFatal = %v, want %v", IsFatal(err), tt.fatal)
			}
		})
	}
}

func TestIsConfigError(t *testing.T) {
	if !IsConfigError(NewErrInvalidConfig("bad")) {
		t.Error("expected config error")
	}
	if IsConfigError(NewErrClockRegression(1, 0)) {
		t.Error("clock regression is not a config error")
	}
	if IsConfigError(nil) {
		t.Error("nil is not a config error")
	}
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("count API disagrees with search API")
	err := NewErrIngestionFatal(cause)
	if !errors.Is(err, err) {
		t.Fatal("error should be comparable to itself")
	}
	if GetErrorCode(err) != ErrCodeIngestionFatal {
		t.Errorf("expected %s, got %s", ErrCodeIngestionFatal, GetErrorCode(err))
	}
}
