package mmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLaxURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "keeps scheme",
			input: "https://example.com/path",
			want:  "https://example.com/path",
		},
		{
			name:  "prepends https www",
			input: "example.com",
			want:  "https://www.example.com",
		},
		{
			name:  "does not duplicate www",
			input: "www.example.com",
			want:  "https://www.example.com",
		},
		{
			name:    "empty",
			input:   " ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLaxURL(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseURLRejectsRelative(t *testing.T) {
	_, err := ParseURL("/just/a/path")
	assert.Error(t, err)
}

func TestParseEmailAddress(t *testing.T) {
	email, err := ParseEmailAddress(" Test@Example.COM ")
	assert.NoError(t, err)
	assert.Equal(t, EmailAddress("test@example.com"), email)

	_, err = ParseEmailAddress("not-an-email")
	assert.Error(t, err)
}
