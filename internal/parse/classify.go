package parse

import "unicode"

// IsAlphabetic reports whether r has the Unicode Alphabetic property.
func IsAlphabetic(r rune) bool {
	return unicode.In(r, unicode.Letter, unicode.Nl, unicode.Other_Alphabetic)
}

func IsWhitespace(r rune) bool {
	return unicode.Is(unicode.White_Space, r)
}

// IsHexDigit accepts ASCII hex digits in either case.
func IsHexDigit(r rune) bool {
	return unicode.Is(unicode.ASCII_Hex_Digit, r)
}

func IsDecimalDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsAllowedPunctuation accepts the punctuation git users put in branch names: - _ /
func IsAllowedPunctuation(r rune) bool {
	return r == '-' || r == '_' || r == '/'
}

// Is returns a predicate matching exactly want.
func Is(want rune) func(rune) bool {
	return func(r rune) bool { return r == want }
}

// AnyOf returns a predicate that holds when any of preds holds.
func AnyOf(preds ...func(rune) bool) func(rune) bool {
	return func(r rune) bool {
		for _, p := range preds {
			if p(r) {
				return true
			}
		}
		return false
	}
}
