package service

import (
	"net/mail"
	"strings"
)

// ValidateEmail accepts a bare RFC 5322 address (no display name).
func ValidateEmail(s string) error {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || !strings.Contains(s, "@") {
		return Invalid("invalid email address: %q", s)
	}
	return nil
}
