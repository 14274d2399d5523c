package expr

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokMul   // * or ·
	tokDiv   // /
	tokPow   // ^ or **
	tokPlus  // +
	tokMinus // -
	tokLParen
	tokRParen
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokNumber:
		return "number"
	case tokIdent:
		return "unit symbol"
	case tokMul:
		return "'*'"
	case tokDiv:
		return "'/'"
	case tokPow:
		return "'^'"
	case tokPlus:
		return "'+'"
	case tokMinus:
		return "'-'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	}
	return "token"
}

type token struct {
	kind tokenKind
	text string
	pos  int // byte offset in the input
}

// identExtra lists non-letter runes allowed inside unit symbols.
const identExtra = "_°µΩ%'\""

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || containsRune(identExtra, r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

// lex splits s into tokens. Numbers are digits with an optional fraction
// and exponent ("9.81", "1e-3", ".5"); an exponent marker is only taken
// when digits follow, so "2em" lexes as 2 and "em".
func lex(s string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(s) {
		r, w := utf8.DecodeRuneInString(s[i:])
		switch {
		case unicode.IsSpace(r):
			i += w
		case r >= '0' && r <= '9' || r == '.' && i+1 < len(s) && isDigit(s[i+1]):
			end := scanNumber(s, i)
			toks = append(toks, token{kind: tokNumber, text: s[i:end], pos: i})
			i = end
		case isIdentStart(r):
			start := i
			for i < len(s) {
				r, w = utf8.DecodeRuneInString(s[i:])
				if !isIdentPart(r) {
					break
				}
				i += w
			}
			toks = append(toks, token{kind: tokIdent, text: s[start:i], pos: start})
		case r == '*':
			if i+1 < len(s) && s[i+1] == '*' {
				toks = append(toks, token{kind: tokPow, text: "**", pos: i})
				i += 2
				continue
			}
			toks = append(toks, token{kind: tokMul, text: "*", pos: i})
			i++
		case r == '·' || r == '×':
			toks = append(toks, token{kind: tokMul, text: string(r), pos: i})
			i += w
		case r == '/':
			toks = append(toks, token{kind: tokDiv, text: "/", pos: i})
			i++
		case r == '^':
			toks = append(toks, token{kind: tokPow, text: "^", pos: i})
			i++
		case r == '+':
			toks = append(toks, token{kind: tokPlus, text: "+", pos: i})
			i++
		case r == '-':
			toks = append(toks, token{kind: tokMinus, text: "-", pos: i})
			i++
		case r == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", pos: i})
			i++
		case r == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", pos: i})
			i++
		default:
			return nil, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, r, i)
		}
	}
	return append(toks, token{kind: tokEOF, pos: len(s)}), nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func scanNumber(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return i
}
