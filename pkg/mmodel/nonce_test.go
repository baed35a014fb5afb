package mmodel

import (
	"strings"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNonce(t *testing.T) {
	nonce := NewNonce()

	assert.Len(t, string(nonce), NonceLength)

	parsed, err := ParseNonce(string(nonce))
	assert.NoError(t, err)
	assert.Equal(t, nonce, parsed)
}

func TestParseNonce(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "valid",
			input: strings.Repeat("A", NonceLength),
		},
		{
			name:    "too short",
			input:   "abc",
			wantErr: true,
		},
		{
			name:    "invalid character zero",
			input:   strings.Repeat("0", NonceLength),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNonce(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEmailNonceRoundTrip(t *testing.T) {
	original := NewEmailNonce("test@example.com")

	encoded := original.EncodeToString()

	decoded, err := DecodeEmailNonce(encoded)
	require.NoError(t, err)

	assert.Equal(t, original, decoded)
}

func TestEmailNonceEncoding(t *testing.T) {
	nonce := Nonce(strings.Repeat("7", NonceLength))
	emailNonce := EmailNonce{Email: "test@example.com", Nonce: nonce}

	encoded := emailNonce.EncodeToString()

	// The token is the base58 encoding of utf8(email) || utf8(nonce).
	expected := base58.Encode(append([]byte("test@example.com"), []byte(nonce)...))
	assert.Equal(t, expected, encoded)

	decoded, err := DecodeEmailNonce(encoded)
	require.NoError(t, err)
	assert.Equal(t, EmailAddress("test@example.com"), decoded.Email)
	assert.Equal(t, nonce, decoded.Nonce)
}

func TestDecodeEmailNonceInvalid(t *testing.T) {
	_, err := DecodeEmailNonce("not-base58-0OIl")
	assert.Error(t, err)

	// Too short: the decoded payload must exceed the nonce length.
	_, err = DecodeEmailNonce(base58.Encode([]byte("short")))
	assert.Error(t, err)
}
