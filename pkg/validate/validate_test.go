package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string  `validate:"required"`
	Email string  `validate:"required,email"`
	Cost  float64 `validate:"gt=0"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name      string
		input     sample
		expectErr bool
		contains  string
	}{
		{
			name:      "Valid input",
			input:     sample{Name: "Alice", Email: "a@x.com", Cost: 49.99},
			expectErr: false,
		},
		{
			name:      "Missing name",
			input:     sample{Email: "a@x.com", Cost: 10},
			expectErr: true,
			contains:  "Name is required",
		},
		{
			name:      "Bad email",
			input:     sample{Name: "Alice", Email: "not-an-email", Cost: 10},
			expectErr: true,
			contains:  "Email must be a valid email",
		},
		{
			name:      "Non-positive cost",
			input:     sample{Name: "Alice", Email: "a@x.com", Cost: 0},
			expectErr: true,
			contains:  "Cost must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.contains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
