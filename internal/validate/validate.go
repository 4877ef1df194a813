package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// v is the package-level singleton validator, initialised once at package
// load time.
var v = validator.New()

// Email reports whether addr is a syntactically valid email address and
// returns its normalized form (trimmed, lowercased).
func Email(addr string) (string, bool) {
	addr = strings.ToLower(strings.TrimSpace(addr))
	if err := v.Var(addr, "required,email"); err != nil {
		return "", false
	}
	return addr, true
}
