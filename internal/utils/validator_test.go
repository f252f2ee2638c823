// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type slugProbe struct {
	Slug string `validate:"slug"`
}

func TestSlugValidation(t *testing.T) {
	tests := []struct {
		slug  string
		valid bool
	}{
		{"red-onions", true},
		{"cumin-seeds-9mm", true},
		{"ab", true},
		{"a", false},
		{"Red-Onions", false},
		{"red--onions", false},
		{"-red-onions", false},
		{"red onions", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			err := ValidateStruct(&slugProbe{Slug: tt.slug})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

type countryProbe struct {
	Country string `validate:"country_name"`
}

func TestCountryNameValidation(t *testing.T) {
	tests := []struct {
		country string
		valid   bool
	}{
		{"India", true},
		{"United Arab Emirates", true},
		{"Cote d'Ivoire", true},
		{"", true},
		{"123", false},
		{"India!", false},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			err := ValidateStruct(&countryProbe{Country: tt.country})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
