package validation

import (
	"regexp"
	"unicode/utf8"
)

// FieldKind identifies a category of user-input field subject to validation.
type FieldKind int

const (
	Username FieldKind = iota
	Password
	Email
	PostTitle
	PostContent
)

// String returns the field kind's name for logging.
func (k FieldKind) String() string {
	switch k {
	case Username:
		return "username"
	case Password:
		return "password"
	case Email:
		return "email"
	case PostTitle:
		return "post_title"
	case PostContent:
		return "post_content"
	}
	return "unknown"
}

// Rule bundles the constraints for one field kind. A zero bound means the
// bound is not enforced; a nil pattern means no pattern check.
type Rule struct {
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	Message   string
}

// Result is the outcome of checking a value against a rule. Failures are
// data, never errors: the zero-value Result is valid.
type Result struct {
	Message string
}

// OK reports whether the checked value satisfied its rule.
func (r Result) OK() bool {
	return r.Message == ""
}

// RequiredMessage is returned when a required field is empty.
const RequiredMessage = "This field is required"

// PasswordMismatchMessage is returned when two password entries differ.
const PasswordMismatchMessage = "Passwords do not match"

var valid = Result{}

func invalid(message string) Result {
	return Result{Message: message}
}

// rules maps each field kind to its constraints. The table is built once and
// never mutated, so it is safe to share across goroutines.
var rules = map[FieldKind]Rule{
	Username: {
		MinLength: 3,
		MaxLength: 30,
		Pattern:   regexp.MustCompile(`^[a-zA-Z0-9_]+$`),
		Message:   "Username must be 3-30 characters (letters, numbers, underscore only)",
	},
	Password: {
		MinLength: 6,
		Message:   "Password must be at least 6 characters",
	},
	Email: {
		Pattern: regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`),
		Message: "Invalid email format",
	},
	PostTitle: {
		MaxLength: 100,
		Message:   "Title must be 100 characters or less",
	},
	PostContent: {
		MaxLength: 5000,
		Message:   "Content must be 5000 characters or less",
	},
}

func init() {
	for kind, rule := range rules {
		if rule.Message == "" {
			panic("validation: rule for " + kind.String() + " has no message")
		}
		if rule.MinLength > 0 && rule.MaxLength > 0 && rule.MinLength > rule.MaxLength {
			panic("validation: rule for " + kind.String() + " has min length above max length")
		}
	}
}

// RuleFor returns a copy of the rule registered for the given kind.
func RuleFor(kind FieldKind) Rule {
	return rules[kind]
}

// Evaluate checks a value against the rule for the given kind. Constraints
// run in order: min length, max length, pattern. The first failed constraint
// yields the rule's message verbatim. Lengths count characters, not bytes.
// Requiredness is caller policy; use EvaluateRequired to reject empty values
// up front.
func Evaluate(kind FieldKind, value string) Result {
	rule := rules[kind]

	length := utf8.RuneCountInString(value)
	if rule.MinLength > 0 && length < rule.MinLength {
		return invalid(rule.Message)
	}
	if rule.MaxLength > 0 && length > rule.MaxLength {
		return invalid(rule.Message)
	}
	if rule.Pattern != nil && !rule.Pattern.MatchString(value) {
		return invalid(rule.Message)
	}
	return valid
}

// EvaluateRequired rejects empty values with the generic required message,
// then applies the kind's rule.
func EvaluateRequired(kind FieldKind, value string) Result {
	if value == "" {
		return invalid(RequiredMessage)
	}
	return Evaluate(kind, value)
}

// PasswordsMatch checks that two password entries are identical. This is a
// plain comparison of user-supplied plaintext, not a credential check.
func PasswordsMatch(a, b string) Result {
	if a != b {
		return invalid(PasswordMismatchMessage)
	}
	return valid
}
