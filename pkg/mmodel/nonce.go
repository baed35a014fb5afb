package mmodel

import (
	"crypto/rand"
	"fmt"

	"github.com/mr-tron/base58"
)

// NonceLength is the fixed length of a nonce in characters (and bytes,
// the base58 alphabet being pure ASCII).
const NonceLength = 32

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// Nonce is a fixed-length random token over the base58 alphabet.
type Nonce string

// NewNonce generates a fresh random nonce.
func NewNonce() Nonce {
	buf := make([]byte, NonceLength)

	// rand.Read never fails on supported platforms.
	_, _ = rand.Read(buf)

	for i, b := range buf {
		buf[i] = base58Alphabet[int(b)%len(base58Alphabet)]
	}

	return Nonce(buf)
}

// ParseNonce validates the length and alphabet of a nonce string.
func ParseNonce(s string) (Nonce, error) {
	if len(s) != NonceLength {
		return "", fmt.Errorf("invalid nonce length: %d", len(s))
	}

	for _, c := range s {
		if !isBase58(byte(c)) {
			return "", fmt.Errorf("invalid nonce character: %q", c)
		}
	}

	return Nonce(s), nil
}

// String implements fmt.Stringer.
func (n Nonce) String() string {
	return string(n)
}

func isBase58(c byte) bool {
	for i := 0; i < len(base58Alphabet); i++ {
		if base58Alphabet[i] == c {
			return true
		}
	}

	return false
}

// EmailNonce pairs an email address with a nonce. It is exchanged with
// clients as a single URL-safe token.
type EmailNonce struct {
	Email EmailAddress
	Nonce Nonce
}

// NewEmailNonce creates an EmailNonce with a fresh nonce.
func NewEmailNonce(email EmailAddress) EmailNonce {
	return EmailNonce{
		Email: email,
		Nonce: NewNonce(),
	}
}

// EncodeToString concatenates the UTF-8 email with the fixed-length nonce
// and base58-encodes the resulting bytes.
func (en EmailNonce) EncodeToString() string {
	raw := append([]byte(en.Email), []byte(en.Nonce)...)

	return base58.Encode(raw)
}

// DecodeEmailNonce reverses EncodeToString: the trailing NonceLength bytes
// are the nonce, the remainder is the email address.
func DecodeEmailNonce(s string) (EmailNonce, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return EmailNonce{}, fmt.Errorf("invalid token encoding: %w", err)
	}

	if len(raw) <= NonceLength {
		return EmailNonce{}, fmt.Errorf("token too short: %d bytes", len(raw))
	}

	nonce, err := ParseNonce(string(raw[len(raw)-NonceLength:]))
	if err != nil {
		return EmailNonce{}, err
	}

	email, err := ParseEmailAddress(string(raw[:len(raw)-NonceLength]))
	if err != nil {
		return EmailNonce{}, err
	}

	return EmailNonce{Email: email, Nonce: nonce}, nil
}
