// SPDX-License-Identifier: MIT
package lexer

// REF: https://en.cppreference.com/w/c/language/operator_precedence

import (
	"fmt"

	"github.com/afymer/compiler/token"
)

type (
	// operatorMatcher resolves punctuator lexemes by maximal munch over a
	// bounded lookahead buffer.
	//
	// The buffer never holds more than 3 pending characters; the language
	// has no longer operator.
	operatorMatcher struct {
		chars [3]rune
		locs  [3]Location

		// pending is the count of buffered characters, 0 through 3.
		pending int
	}

	// resolvedOp is an operator the matcher has committed to, with the
	// extent of the characters it consumed.
	resolvedOp struct {
		op    token.Operator
		start Location
		end   Location
	}
)

// tripleOperators are the 3-character operators, preferred over all shorter
// matches.
var tripleOperators = map[string]token.Operator{
	"<<=": token.ShiftLeftAssign,
	">>=": token.ShiftRightAssign,
}

// pairOperators are the 2-character operators, preferred over single
// punctuators.
var pairOperators = map[string]token.Operator{
	"->": token.Arrow,
	"++": token.Increment,
	"--": token.Decrement,
	"<<": token.ShiftLeft,
	">>": token.ShiftRight,
	"&&": token.LogicalAnd,
	"||": token.LogicalOr,
	"<=": token.Le,
	">=": token.Ge,
	"==": token.Equal,
	"!=": token.Different,
	"+=": token.AddAssign,
	"-=": token.SubAssign,
	"*=": token.MulAssign,
	"/=": token.DivAssign,
	"%=": token.ModAssign,
	"&=": token.AndAssign,
	"|=": token.OrAssign,
	"^=": token.XorAssign,
}

// singleOperators are the single-character punctuators.
var singleOperators = map[rune]token.Operator{
	'+': token.Plus,
	'-': token.Minus,
	'(': token.ParenthesisOpen,
	')': token.ParenthesisClose,
	'[': token.BracketOpen,
	']': token.BracketClose,
	'.': token.Dot,
	'{': token.BraceOpen,
	'}': token.BraceClose,
	'~': token.BitwiseNot,
	'!': token.LogicalNot,
	'*': token.Star,
	'&': token.Ampersand,
	'%': token.Modulo,
	'/': token.Divide,
	'>': token.Gt,
	'<': token.Lt,
	'=': token.Assign,
	'|': token.BitwiseOr,
	'^': token.BitwiseXor,
	',': token.Comma,
	'?': token.Interrogation,
	':': token.Colon,
	';': token.SemiColon,
}

// isPunctuator reports whether r belongs to the closed punctuator set.
func isPunctuator(r rune) bool {
	_, ok := singleOperators[r]
	return ok
}

// push buffers one punctuator character.
//
// The matcher resolves as soon as the buffer reaches 3 characters, so no
// input character is ever dropped; with fewer buffered it waits for more
// lookahead (or for a forced flush).
func (m *operatorMatcher) push(r rune, location Location) (op resolvedOp, resolved bool) {
	m.chars[m.pending] = r
	m.locs[m.pending] = location
	m.pending++

	if m.pending < len(m.chars) {
		return
	}

	op = m.resolve()
	resolved = true

	return
}

// flush force-resolves every buffered character, however few remain.
//
// Used on transition out of an operator lexeme and at end of input, where
// waiting for a third character would stall the buffered ones forever.
func (m *operatorMatcher) flush() (ops []resolvedOp) {
	for m.pending > 0 {
		ops = append(ops, m.resolve())
	}

	return
}

// resolve commits to the longest operator matching a prefix of the buffered
// characters & shifts the unconsumed remainder left.
//
// Only reachable with punctuator characters already vetted by the caller; a
// table miss here is an internal invariant violation, not user input.
func (m *operatorMatcher) resolve() (op resolvedOp) {
	var (
		operator token.Operator
		consumed int
		ok       bool
	)

	switch {
	case m.pending >= 3:
		if operator, ok = tripleOperators[string(m.chars[:3])]; ok {
			consumed = 3
			break
		}

		fallthrough
	case m.pending >= 2:
		if operator, ok = pairOperators[string(m.chars[:2])]; ok {
			consumed = 2
			break
		}

		fallthrough
	default:
		if operator, ok = singleOperators[m.chars[0]]; !ok {
			panic(fmt.Sprintf("operator table consulted with %q outside the punctuator set", m.chars[0]))
		}
		consumed = 1
	}

	op = resolvedOp{op: operator, start: m.locs[0], end: m.locs[consumed-1]}

	// Shift the unconsumed remainder to the front of the buffer.
	copy(m.chars[:], m.chars[consumed:m.pending])
	copy(m.locs[:], m.locs[consumed:m.pending])
	m.pending -= consumed

	return
}
