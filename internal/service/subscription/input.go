package subscription

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/captionkit-backend/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SubscribeInput holds the parameters for a newsletter signup.
type SubscribeInput struct {
	Email string
}

// Validate checks all fields and collects all errors.
func (i SubscribeInput) Validate() error {
	email := strings.TrimSpace(i.Email)
	if email == "" {
		return domain.NewValidationError("email", "required")
	}
	if len(email) > 254 || !emailPattern.MatchString(email) {
		return domain.NewValidationError("email", "please enter a valid email address")
	}
	return nil
}
