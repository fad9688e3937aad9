package op

import (
	"strconv"
	"unicode"
)

// Radix is the number of distinct values a cell character can carry.
const Radix = 36

var runeKinds = map[rune]Kind{
	'A': Add,
	'B': Sub,
	'C': Clock,
	'D': Delay,
	'E': East,
	'F': If,
	'G': Gen,
	'H': Hold,
	'I': Inc,
	'J': Jmp,
	'K': Konkat,
	'L': Less,
	'M': Mul,
	'N': North,
	'O': Read,
	'P': Push,
	'Q': Query,
	'R': Rand,
	'S': South,
	'T': Track,
	'U': Uclid,
	'V': Var,
	'W': West,
	'X': Write,
	'Y': Ymp,
	'Z': Lerp,
	'*': Bang,
	'#': Comment,
}

var kindRunes = func() map[Kind]rune {
	m := make(map[Kind]rune, len(runeKinds))
	for r, k := range runeKinds {
		m[k] = r
	}
	return m
}()

// FromRune parses a typed character. Operator letters map to their
// operator, frame-stamped variants get stamp 0, any other letter or digit
// becomes a Val. Everything else is rejected.
func FromRune(r rune) (Op, bool) {
	if k, ok := runeKinds[r]; ok {
		return Op{Kind: k}, true
	}
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return NewVal(r), true
	}
	return Op{}, false
}

// Rune returns the character that represents o. The empty cell and
// EmptyResult placeholders have no character.
func (o Op) Rune() (rune, bool) {
	switch o.Kind {
	case None, EmptyResult:
		return 0, false
	case Val, Result:
		return o.Char, true
	}
	r, ok := kindRunes[o.Kind]
	return r, ok
}

// Decode maps 0-9 and a-z (either case) to 0..35.
func Decode(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10, true
	}
	return 0, false
}

// Encode maps n modulo 36 back to a character; letters are upper case when
// upper is set.
func Encode(n int, upper bool) rune {
	n %= Radix
	if n < 0 {
		n += Radix
	}
	if n < 10 {
		return rune('0' + n)
	}
	if upper {
		return rune('A' + n - 10)
	}
	return rune('a' + n - 10)
}

// IsUpper reports whether r is an upper case ASCII letter.
func IsUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

func itoa(n int) string { return strconv.Itoa(n) }
