package recommendation

import (
	"strings"
	"unicode"
)

// variants returns the term and, when it looks plural, its singular form.
func variants(term string) []string {
	if s := singular(term); s != term {
		return []string{term, s}
	}
	return []string{term}
}

func singular(term string) string {
	switch {
	case len(term) > 4 && strings.HasSuffix(term, "ies"):
		return term[:len(term)-3] + "y"
	case len(term) > 5 && strings.HasSuffix(term, "oes"):
		return term[:len(term)-2]
	case len(term) > 3 && strings.HasSuffix(term, "s") && !strings.HasSuffix(term, "ss"):
		return term[:len(term)-1]
	}
	return term
}

// words splits a normalized term on anything that is not a letter or digit
// and singularizes each piece.
func words(term string) []string {
	fields := strings.FieldsFunc(term, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for i, f := range fields {
		fields[i] = singular(f)
	}
	return fields
}

// containsPhrase reports whether the word sequence of phrase appears in
// the word sequence of term.
func containsPhrase(term, phrase string) bool {
	tw, pw := words(term), words(phrase)
	if len(pw) == 0 || len(pw) > len(tw) {
		return false
	}
outer:
	for i := 0; i+len(pw) <= len(tw); i++ {
		for j := range pw {
			if tw[i+j] != pw[j] {
				continue outer
			}
		}
		return true
	}
	return false
}
