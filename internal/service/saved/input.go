package saved

import (
	"strings"

	"github.com/heartmarshall/captionkit-backend/internal/domain"
)

// validateCaption checks the shape of a caption submitted for saving and
// collects all errors.
func validateCaption(c domain.Caption) error {
	var v domain.Violations

	v.Check(c.ID > 0, "id", "must be positive")
	v.Check(strings.TrimSpace(c.Text) != "", "text", "required")
	v.Check(c.Style.IsValid(), "style", "unknown style")
	v.Check(c.Niche.IsValid(), "niche", "unknown niche")
	v.Check(len(c.Hashtags) > 0, "hashtags", "at least one required")
	for _, tag := range c.Hashtags {
		if strings.TrimSpace(strings.TrimPrefix(tag, "#")) == "" {
			v.Add("hashtags", "must not contain blanks")
			break
		}
	}
	return v.Err()
}
