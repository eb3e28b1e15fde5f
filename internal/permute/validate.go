package permute

import "unicode/utf8"

// Symbols converts a string-like input into its symbol sequence.
// Strings and byte slices are split into runes; rune slices are copied.
// Any other type, or a string or byte slice that is not valid UTF-8, fails
// with ErrInvalidType. A zero-length sequence fails with ErrEmptyInput.
func Symbols(input any) ([]rune, error) {
	var symbols []rune
	switch v := input.(type) {
	case string:
		if !utf8.ValidString(v) {
			return nil, invalidUTF8(input)
		}
		symbols = []rune(v)
	case []rune:
		symbols = make([]rune, len(v))
		copy(symbols, v)
	case []byte:
		if !utf8.Valid(v) {
			return nil, invalidUTF8(input)
		}
		symbols = []rune(string(v))
	default:
		return nil, invalidType(input)
	}

	if len(symbols) == 0 {
		return nil, emptyInput(input)
	}
	return symbols, nil
}

func toStrings(perms [][]rune) []string {
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}
