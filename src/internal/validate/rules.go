// Package validate checks the content and shape of raw name input. Content
// rules are regular expressions over Latin, Greek and Cyrillic letters;
// structural rules (arity, required roles) apply even when content validation
// is bypassed.
package validate

import "regexp"

const letter = `[a-zA-Z\x{00C0}-\x{00D6}\x{00D8}-\x{00F6}\x{00F8}-\x{00FF}\x{0400}-\x{04FF}\x{0386}-\x{03CE}]`

var (
	// letters joined by an optional apostrophe, hyphen or space
	namonRule = regexp.MustCompile(`^` + letter + `+(([' -]` + letter + `)?` + letter + `*)*$`)
	// titles such as "Mr.", "Ph.D", "Jr." also take periods
	titleRule = regexp.MustCompile(`^` + letter + `+(([' .-]` + letter + `)?` + letter + `*)*\.?$`)
)

const (
	minArity = 2
	maxArity = 5
)
