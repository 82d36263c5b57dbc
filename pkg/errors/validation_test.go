package errors

import (
	"strings"
	"testing"
)

func TestValidateColumnName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid simple", input: "mpg", wantErr: false},
		{name: "valid with underscore", input: "engine_size", wantErr: false},
		{name: "valid with space", input: "engine size", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "control character", input: "col\x01umn", wantErr: true},
		{name: "too long", input: strings.Repeat("x", 257), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColumnName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColumnName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateGridShape(t *testing.T) {
	tests := []struct {
		name     string
		nrow     int
		ncol     int
		wantCode Code
	}{
		{name: "valid", nrow: 2, ncol: 2, wantCode: ""},
		{name: "single panel", nrow: 1, ncol: 1, wantCode: ""},
		{name: "zero nrow", nrow: 0, ncol: 2, wantCode: ErrCodeMissingArgument},
		{name: "zero ncol", nrow: 2, ncol: 0, wantCode: ErrCodeMissingArgument},
		{name: "negative nrow", nrow: -1, ncol: 2, wantCode: ErrCodeInvalidGridShape},
		{name: "negative ncol", nrow: 2, ncol: -3, wantCode: ErrCodeInvalidGridShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGridShape(tt.nrow, tt.ncol)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("ValidateGridShape(%d, %d) = %v, want nil", tt.nrow, tt.ncol, err)
				}
				return
			}
			if GetCode(err) != tt.wantCode {
				t.Errorf("ValidateGridShape(%d, %d) code = %q, want %q", tt.nrow, tt.ncol, GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	if err := ValidatePath("out/page-01.svg"); err != nil {
		t.Errorf("valid path rejected: %v", err)
	}
	if err := ValidatePath(""); err == nil {
		t.Error("empty path should be rejected")
	}
	if err := ValidatePath("bad\x00path"); err == nil {
		t.Error("null byte should be rejected")
	}
	if err := ValidatePath(strings.Repeat("p", 501)); err == nil {
		t.Error("overlong path should be rejected")
	}
}
