package synth

import (
	"fmt"
	"strings"
	"unicode"
)

// name derives a unique, human-meaningful struct name from the field path
// leading to the slot. The root record gets the configured root name;
// nested structs camel-case their path segments. Two different paths that
// would collide get numeric suffixes in discovery order.
func (s *synthesizer) name(path []string) string {
	base := s.opts.RootName
	if len(path) > 0 {
		var b strings.Builder
		for _, seg := range path {
			b.WriteString(camel(seg))
		}
		if b.Len() > 0 {
			base = b.String()
		}
	}

	s.taken[base]++
	if n := s.taken[base]; n > 1 {
		return fmt.Sprintf("%s%d", base, n)
	}
	return base
}

// camel turns a field key like "bundled_with" or "bundled-with" into
// "BundledWith". Characters that cannot appear in an identifier are
// dropped, and a leading digit gets an "N" prefix so keys like "2fa"
// still yield a valid type name.
func camel(s string) string {
	var b strings.Builder
	upper := true
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		} else {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out != "" && unicode.IsDigit([]rune(out)[0]) {
		return "N" + out
	}
	return out
}
