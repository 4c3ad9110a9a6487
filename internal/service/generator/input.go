package generator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/captionkit-backend/internal/domain"
)

// GenerateInput holds the parameters for a generation request.
// Style and Niche are optional; unknown values fall back to the defaults.
type GenerateInput struct {
	Input string
	Style string
	Niche string
}

// Validate checks all fields and collects all errors.
func (i GenerateInput) Validate(maxLen int) error {
	var v domain.Violations

	text := strings.TrimSpace(i.Input)
	v.Check(text != "", "input", "required")
	v.Check(maxLen <= 0 || utf8.RuneCountInString(text) <= maxLen, "input", fmt.Sprintf("max %d characters", maxLen))
	return v.Err()
}
