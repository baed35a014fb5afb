package mmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOpeningHours(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "weekday range", input: "Mo-Fr 08:00-18:00"},
		{name: "multiple entries", input: "Mo-Fr 08:00-18:00; Sa 10:00-14:00"},
		{name: "plain time range", input: "08:00-18:00"},
		{name: "always open", input: "24/7"},
		{name: "empty", input: "  ", wantErr: true},
		{name: "nonsense", input: "whenever", wantErr: true},
		{name: "invalid hour", input: "Mo 25:00-26:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOpeningHours(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
