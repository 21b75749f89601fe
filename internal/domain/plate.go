package domain

import (
	"regexp"
	"strings"
)

var platePattern = regexp.MustCompile(`^\d{4}[A-Z]{3}$`)

// NormalizePlate upper-cases a Spanish registration plate and strips the
// separators people usually type ("1234-abc", "1234 ABC" -> "1234ABC").
func NormalizePlate(raw string) (string, error) {
	p := strings.ToUpper(strings.TrimSpace(raw))
	p = strings.NewReplacer("-", "", " ", "").Replace(p)
	if !platePattern.MatchString(p) {
		return "", ErrInvalidPlate
	}
	return p, nil
}
