// Package glob translates glob patterns into anchored regular expressions
// with literal path-separator semantics: `*` and `?` never cross a `/`,
// while `**` spans any number of path components.
package glob

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrUnclosedClass indicates a character class with no closing bracket.
	ErrUnclosedClass = errors.New("unclosed character class")

	// ErrUnclosedAlternate indicates an alternation with no closing brace.
	ErrUnclosedAlternate = errors.New("unclosed alternation")

	// ErrTrailingEscape indicates a backslash with nothing to escape.
	ErrTrailingEscape = errors.New("trailing backslash escape")

	// ErrNestedAlternate indicates an alternation inside an alternation.
	ErrNestedAlternate = errors.New("nested alternation")
)

// Translate converts a glob pattern into an anchored regular expression
// source string. The result always matches the full target (`^...$`).
func Translate(pattern string) (string, error) {
	var sb strings.Builder
	sb.WriteString("^")

	inAlt := false
	runes := []rune(pattern)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch r {
		case '*':
			stars := 1
			for i+1 < len(runes) && runes[i+1] == '*' {
				stars++
				i++
			}
			if stars >= 2 && isComponentStart(runes, i-stars+1) {
				// Recursive wildcard. The surrounding separators are folded
				// into the expression so that zero components also match.
				switch {
				case i-stars+1 == 0 && i+1 == len(runes): // bare "**"
					sb.WriteString(".*")
				case i-stars+1 == 0 && runes[i+1] == '/': // leading "**/"
					sb.WriteString("(?:.*/)?")
					i++ // consume the separator
				case i+1 == len(runes): // trailing "/**", separator already emitted
					sb.WriteString(".*")
				case runes[i+1] == '/': // infix "/**/"
					sb.WriteString("(?:.*/)?")
					i++
				default:
					sb.WriteString("[^/]*")
				}
			} else {
				sb.WriteString("[^/]*")
			}
		case '?':
			sb.WriteString("[^/]")
		case '[':
			n, cls, err := translateClass(runes[i:])
			if err != nil {
				return "", err
			}
			sb.WriteString(cls)
			i += n - 1
		case '{':
			if inAlt {
				return "", ErrNestedAlternate
			}
			inAlt = true
			sb.WriteString("(?:")
		case ',':
			if inAlt {
				sb.WriteString("|")
			} else {
				sb.WriteString(",")
			}
		case '}':
			if inAlt {
				inAlt = false
				sb.WriteString(")")
			} else {
				sb.WriteString(regexp.QuoteMeta("}"))
			}
		case '\\':
			if i+1 >= len(runes) {
				return "", ErrTrailingEscape
			}
			i++
			sb.WriteString(regexp.QuoteMeta(string(runes[i])))
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}

	if inAlt {
		return "", ErrUnclosedAlternate
	}

	sb.WriteString("$")
	return sb.String(), nil
}

// isComponentStart reports whether the rune at index i begins a path
// component (start of pattern or preceded by a separator).
func isComponentStart(runes []rune, i int) bool {
	return i == 0 || runes[i-1] == '/'
}

// translateClass translates a character class starting at runes[0] == '['.
// It returns the number of runes consumed and the regex class.
func translateClass(runes []rune) (int, string, error) {
	var sb strings.Builder
	sb.WriteString("[")

	i := 1
	if i < len(runes) && (runes[i] == '!' || runes[i] == '^') {
		sb.WriteString("^")
		i++
	}

	// A ']' directly after the (possibly negated) opening bracket is a
	// literal member of the class, not its terminator.
	if i < len(runes) && runes[i] == ']' {
		sb.WriteString(`\]`)
		i++
	}

	for i < len(runes) {
		switch runes[i] {
		case ']':
			sb.WriteString("]")
			return i + 1, sb.String(), nil
		case '\\':
			if i+1 >= len(runes) {
				return 0, "", ErrTrailingEscape
			}
			i++
			sb.WriteString(regexp.QuoteMeta(string(runes[i])))
		case '-':
			sb.WriteString("-")
		case '^':
			sb.WriteString(`\^`)
		default:
			sb.WriteString(quoteClassRune(runes[i]))
		}
		i++
	}

	return 0, "", ErrUnclosedClass
}

func quoteClassRune(r rune) string {
	switch r {
	case '[', ']', '\\':
		return `\` + string(r)
	default:
		return string(r)
	}
}
