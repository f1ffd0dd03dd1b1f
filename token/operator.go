// SPDX-License-Identifier: MIT
package token

// REF: https://en.cppreference.com/w/c/language/operator_precedence

type (
	// Operator identifies one of the closed set of punctuator/operator tokens.
	Operator int
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_ Operator = iota // Consume 0 so the zero value is not a valid Operator.

	// Three-character operators.
	ShiftLeftAssign  // `<<=`.
	ShiftRightAssign // `>>=`.

	// Two-character operators.
	Arrow      // `->`.
	Increment  // `++`.
	Decrement  // `--`.
	ShiftLeft  // `<<`.
	ShiftRight // `>>`.
	LogicalAnd // `&&`.
	LogicalOr  // `||`.
	Le         // `<=`.
	Ge         // `>=`.
	Equal      // `==`.
	Different  // `!=`.
	AddAssign  // `+=`.
	SubAssign  // `-=`.
	MulAssign  // `*=`.
	DivAssign  // `/=`.
	ModAssign  // `%=`.
	AndAssign  // `&=`.
	OrAssign   // `|=`.
	XorAssign  // `^=`.

	// Single-character punctuators.
	Plus             // `+`.
	Minus            // `-`.
	ParenthesisOpen  // `(`.
	ParenthesisClose // `)`.
	BracketOpen      // `[`.
	BracketClose     // `]`.
	Dot              // `.`.
	BraceOpen        // `{`.
	BraceClose       // `}`.
	BitwiseNot       // `~`.
	LogicalNot       // `!`.
	Star             // `*`.
	Ampersand        // `&`.
	Modulo           // `%`.
	Divide           // `/`.
	Gt               // `>`.
	Lt               // `<`.
	Assign           // `=`.
	BitwiseOr        // `|`.
	BitwiseXor       // `^`.
	Comma            // `,`.
	Interrogation    // `?`.
	Colon            // `:`.
	SemiColon        // `;`.
)

// operatorText maps an Operator to its source form.
var operatorText = map[Operator]string{
	ShiftLeftAssign:  "<<=",
	ShiftRightAssign: ">>=",
	Arrow:            "->",
	Increment:        "++",
	Decrement:        "--",
	ShiftLeft:        "<<",
	ShiftRight:       ">>",
	LogicalAnd:       "&&",
	LogicalOr:        "||",
	Le:               "<=",
	Ge:               ">=",
	Equal:            "==",
	Different:        "!=",
	AddAssign:        "+=",
	SubAssign:        "-=",
	MulAssign:        "*=",
	DivAssign:        "/=",
	ModAssign:        "%=",
	AndAssign:        "&=",
	OrAssign:         "|=",
	XorAssign:        "^=",
	Plus:             "+",
	Minus:            "-",
	ParenthesisOpen:  "(",
	ParenthesisClose: ")",
	BracketOpen:      "[",
	BracketClose:     "]",
	Dot:              ".",
	BraceOpen:        "{",
	BraceClose:       "}",
	BitwiseNot:       "~",
	LogicalNot:       "!",
	Star:             "*",
	Ampersand:        "&",
	Modulo:           "%",
	Divide:           "/",
	Gt:               ">",
	Lt:               "<",
	Assign:           "=",
	BitwiseOr:        "|",
	BitwiseXor:       "^",
	Comma:            ",",
	Interrogation:    "?",
	Colon:            ":",
	SemiColon:        ";",
}

// String obtains the source form of the Operator.
func (o Operator) String() string { return operatorText[o] }

// Len obtains the number of source characters the Operator spans.
func (o Operator) Len() int { return len(operatorText[o]) }
