package naming

import (
	"strings"
	"unicode"
)

// Tokenize splits a CamelCase, snake_case or kebab-case identifier into
// its words, preserving case.
// Examples:
//   - "AdvancedSystemDeflection" -> ["Advanced", "System", "Deflection"]
//   - "FEModelPart" -> ["FE", "Model", "Part"]
//   - "steady_state-response" -> ["steady", "state", "response"]
func Tokenize(s string) []string {
	if s == "" {
		return nil
	}

	var (
		tokens  []string
		current strings.Builder
	)

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && current.Len() > 0 && startsToken(runes, i) {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// Title renders an identifier as space separated words.
// "SteadyStateSynchronousResponse" -> "Steady State Synchronous Response".
func Title(s string) string {
	tokens := Tokenize(s)
	for i, t := range tokens {
		r := []rune(t)
		r[0] = unicode.ToUpper(r[0])
		tokens[i] = string(r)
	}

	return strings.Join(tokens, " ")
}

// Snake renders an identifier in lower snake_case.
func Snake(s string) string {
	tokens := Tokenize(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return strings.Join(tokens, "_")
}

// Normalize folds an identifier to lowercase with separators removed, so
// "gear_set", "GearSet" and "gear-set" compare equal.
func Normalize(s string) string {
	return strings.ToLower(strings.Join(Tokenize(s), ""))
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsToken determines if a new token should start at position i.
func startsToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prev)

	// "gearSet" -> split before 'S'
	if isUpper && !isPrevUpper && !isSeparator(prev) {
		return true
	}

	// "FEModel" -> "FE" + "Model", split before 'M'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}
