package validatorx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	type payload struct {
		Phone string `validate:"required,phone,max=15"`
	}

	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{name: "digits only", phone: "1234567890", valid: true},
		{name: "international with separators", phone: "+62 812-345-678", valid: true},
		{name: "parenthesized area code", phone: "(021) 555-0100", valid: true},
		{name: "letters rejected", phone: "call-me-maybe", valid: false},
		{name: "plus not leading", phone: "123+456", valid: false},
		{name: "separators without digits", phone: "+ --", valid: false},
		{name: "too long", phone: "1234567890123456", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&payload{Phone: tt.phone})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
