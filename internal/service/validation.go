package service

import (
	"regexp"
	"strings"
)

// emailPattern is a loose shape check (local@domain.tld), not RFC 5322.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User-facing validation messages.
const (
	MsgContactFieldsRequired = "Please fill in all required fields (name, email, service, message)"
	MsgEmailRequired         = "Please provide an email address"
	MsgEmailInvalid          = "Please provide a valid email address"
	MsgAlreadySubscribed     = "This email is already subscribed to our newsletter"
)

// ValidationError reports input the caller can fix. Message is safe to show
// to the end user.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether email, after trimming, has the shape local@domain.tld.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}
