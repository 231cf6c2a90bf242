package menu

import "regexp"

var (
	orderNumberRe = regexp.MustCompile(`^GA-\d{6}$`)
	cardNumberRe  = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{4}$`)
)

// ValidOrderNumber reports whether s is a well-formed order number
// (GA- followed by six digits).
func ValidOrderNumber(s string) bool { return orderNumberRe.MatchString(s) }

// ValidCardNumber reports whether s is a well-formed gift card number
// (four groups of four digits).
func ValidCardNumber(s string) bool { return cardNumberRe.MatchString(s) }
