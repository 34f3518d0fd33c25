package handler

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testIdentityRequest struct {
	Identity string `validate:"notblank,max=16"`
	Quantity int    `validate:"min=1"`
}

func TestValidator_NotBlank(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name     string
		identity string
		wantErr  bool
	}{
		{"plain value", "discord:1", false},
		{"exactly max length", strings.Repeat("a", 16), false},
		{"over max length", strings.Repeat("a", 17), true},
		{"empty", "", true},
		{"whitespace only", " \t ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(testIdentityRequest{Identity: tt.identity, Quantity: 1})
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	t.Run("field messages", func(t *testing.T) {
		err := GetValidator().ValidateStruct(testIdentityRequest{Identity: "", Quantity: 0})
		require.Error(t, err)

		fields := FormatValidationError(err)

		assert.Equal(t, "This field is required", fields["identity"])
		assert.Equal(t, "Must be at least 1", fields["quantity"])
	})

	t.Run("max message", func(t *testing.T) {
		err := GetValidator().ValidateStruct(testIdentityRequest{Identity: strings.Repeat("a", 20), Quantity: 1})
		require.Error(t, err)

		assert.Equal(t, "Must be at most 16", FormatValidationError(err)["identity"])
	})

	t.Run("non validation error", func(t *testing.T) {
		fields := FormatValidationError(errors.New("boom"))
		assert.Equal(t, "Invalid request format", fields["error"])
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})
}
