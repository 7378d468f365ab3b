package convolution

import (
	"strings"

	"github.com/spf13/cast"
)

// ParseSignal splits a comma separated signal into its trimmed tokens.
// Blank text yields no tokens; an empty token between commas is an error.
func ParseSignal(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	parts := strings.Split(text, ",")
	tokens := make([]string, 0, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, &ParseError{Index: i, Token: p}
		}
		tokens = append(tokens, p)
	}

	return tokens, nil
}

// ParseValues is ParseSignal followed by integer conversion of every token.
func ParseValues(text string) ([]int, error) {
	tokens, err := ParseSignal(text)
	if err != nil {
		return nil, err
	}

	return toInts(tokens)
}

// ParsePadding parses the zero padding count. Blank text means no padding.
func ParsePadding(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}

	n, err := toInt(text)
	if err != nil {
		return 0, &ParseError{Token: text, Err: err}
	}
	if n < 0 {
		return 0, &ParseError{Token: text, Err: ErrNegativePadding}
	}

	return n, nil
}

func toInts(tokens []string) ([]int, error) {
	values := make([]int, len(tokens))
	for i, tok := range tokens {
		v, err := toInt(tok)
		if err != nil {
			return nil, &ParseError{Index: i, Token: tok, Err: err}
		}
		values[i] = v
	}

	return values, nil
}

// toInt reads a base 10 integer. cast parses with base prefixes and drops a
// zero fraction, so prefixes and fractions are refused and leading zeros are
// stripped first to keep "010" at ten.
func toInt(token string) (int, error) {
	token = strings.TrimSpace(token)

	sign := ""
	if strings.HasPrefix(token, "-") || strings.HasPrefix(token, "+") {
		sign, token = token[:1], token[1:]
	}
	if token == "" || strings.ContainsAny(token, "xXoObB_.") {
		return 0, ErrInvalidValue
	}

	digits := strings.TrimLeft(token, "0")
	if digits == "" {
		digits = "0"
	}

	return cast.ToIntE(sign + digits)
}
