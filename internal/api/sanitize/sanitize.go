// Package sanitize strips embedded markup from free-text input before it
// reaches validation or the stores, so stored and displayed data can never
// carry injected tags.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// The strict policy rejects every element and attribute. It is safe for
// concurrent use.
var policy = bluemonday.StrictPolicy()

// Strip removes all markup from s and trims surrounding whitespace.
func Strip(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}
