// SPDX-License-Identifier: MIT
package token

type (
	// Kind discriminates the Token variants.
	Kind int

	// Token is a classified, fully-resolved lexeme.
	//
	// Exactly one payload field is meaningful, selected by kind.
	Token struct {
		kind Kind

		literal  Literal
		keyword  Keyword
		operator Operator
		symbol   string
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_            Kind = iota // Consume 0 so the zero value is not a valid Kind.
	KindLiteral              // Char, string or number literal.
	KindKeyword              // Reserved word.
	KindOperator             // Punctuator/operator.
	KindSymbol               // Identifier not recognized as a keyword.
)

// FromLiteral wraps a Literal in a Token.
func FromLiteral(l Literal) Token { return Token{kind: KindLiteral, literal: l} }

// FromOperator wraps an Operator in a Token.
func FromOperator(o Operator) Token { return Token{kind: KindOperator, operator: o} }

// FromKeyword wraps a Keyword in a Token.
func FromKeyword(k Keyword) Token { return Token{kind: KindKeyword, keyword: k} }

// FromIdent classifies a finished identifier lexeme against the keyword
// table; anything not reserved remains a symbol.
func FromIdent(text string) Token {
	if kw, ok := LookupKeyword(text); ok {
		return FromKeyword(kw)
	}

	return Token{kind: KindSymbol, symbol: text}
}

// Kind obtains the Kind discriminant.
func (t Token) Kind() Kind { return t.kind }

// Literal obtains the literal payload.
func (t Token) Literal() Literal { return t.literal }

// Keyword obtains the keyword payload.
func (t Token) Keyword() Keyword { return t.keyword }

// Operator obtains the operator payload.
func (t Token) Operator() Operator { return t.operator }

// Symbol obtains the identifier payload.
func (t Token) Symbol() string { return t.symbol }

// String renders the Token's payload in source form.
func (t Token) String() string {
	switch t.kind {
	case KindLiteral:
		return t.literal.String()
	case KindKeyword:
		return t.keyword.String()
	case KindOperator:
		return t.operator.String()
	case KindSymbol:
		return t.symbol
	default:
		return ""
	}
}
