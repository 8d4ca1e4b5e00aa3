// Package validate holds the stateless field validators shared by the API
// handlers and the dashboard forms. Each check returns a Result rather than
// an error so handlers can surface the message to the caller verbatim.
package validate

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Result is the outcome of a single field check.
type Result struct {
	OK      bool
	Message string
}

func ok() Result           { return Result{OK: true} }
func fail(msg string) Result { return Result{Message: msg} }

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9+\-()]{10,}$`)
	wsRe    = regexp.MustCompile(`\s+`)
)

// Required checks that the value is non-empty after trimming whitespace.
func Required(value, label string) Result {
	if strings.TrimSpace(value) == "" {
		return fail(fmt.Sprintf("%s is required", label))
	}
	return ok()
}

// Email checks that the value looks like an email address. An empty value
// fails as required; formats like "x@y" without a dotted domain are rejected.
func Email(value string) Result {
	if r := Required(value, "Email"); !r.OK {
		return r
	}
	if !emailRe.MatchString(strings.TrimSpace(value)) {
		return fail("Please enter a valid email address")
	}
	return ok()
}

// Password checks presence first, then a minimum length of 8 characters.
func Password(value string) Result {
	if value == "" {
		return fail("Password is required")
	}
	if len(value) < 8 {
		return fail("Password must be at least 8 characters")
	}
	return ok()
}

// URL checks presence first, then that the value parses as an absolute URL.
func URL(value string) Result {
	if r := Required(value, "URL"); !r.OK {
		return r
	}
	v := strings.TrimSpace(value)
	u, err := url.Parse(v)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fail("Please enter a valid URL")
	}
	return ok()
}

// Phone strips all whitespace and checks the remainder is at least ten
// characters drawn from digits, +, -, ( and ).
func Phone(value string) Result {
	v := wsRe.ReplaceAllString(value, "")
	if v == "" {
		return fail("Phone number is required")
	}
	if !phoneRe.MatchString(v) {
		return fail("Please enter a valid phone number")
	}
	return ok()
}

// RequiredFields checks every named field in fields and returns the labels
// of all that are missing, in the order given. An empty slice means all
// required fields are present.
func RequiredFields(fields map[string]string, required []string) []string {
	var missing []string
	for _, name := range required {
		if strings.TrimSpace(fields[name]) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
