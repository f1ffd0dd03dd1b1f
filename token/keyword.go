// SPDX-License-Identifier: MIT
package token

type (
	// Keyword identifies one of the reserved words of the language.
	Keyword int
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_ Keyword = iota // Consume 0 so the zero value is not a valid Keyword.

	KwAuto
	KwBreak
	KwCase
	KwChar
	KwConst
	KwContinue
	KwDefault
	KwDo
	KwDouble
	KwElse
	KwEnum
	KwExtern
	KwFloat
	KwFor
	KwGoto
	KwIf
	KwInt
	KwLong
	KwRegister
	KwReturn
	KwShort
	KwSigned
	KwSizeof
	KwStatic
	KwStruct
	KwSwitch
	KwTypedef
	KwUnion
	KwUnsigned
	KwVoid
	KwVolatile
	KwWhile
)

// keywords is the reserved word table consulted when an identifier lexeme is
// finalized.
var keywords = map[string]Keyword{
	"auto":     KwAuto,
	"break":    KwBreak,
	"case":     KwCase,
	"char":     KwChar,
	"const":    KwConst,
	"continue": KwContinue,
	"default":  KwDefault,
	"do":       KwDo,
	"double":   KwDouble,
	"else":     KwElse,
	"enum":     KwEnum,
	"extern":   KwExtern,
	"float":    KwFloat,
	"for":      KwFor,
	"goto":     KwGoto,
	"if":       KwIf,
	"int":      KwInt,
	"long":     KwLong,
	"register": KwRegister,
	"return":   KwReturn,
	"short":    KwShort,
	"signed":   KwSigned,
	"sizeof":   KwSizeof,
	"static":   KwStatic,
	"struct":   KwStruct,
	"switch":   KwSwitch,
	"typedef":  KwTypedef,
	"union":    KwUnion,
	"unsigned": KwUnsigned,
	"void":     KwVoid,
	"volatile": KwVolatile,
	"while":    KwWhile,
}

// keywordText maps a Keyword back to its source form.
var keywordText = func() map[Keyword]string {
	m := make(map[Keyword]string, len(keywords))
	for text, kw := range keywords {
		m[kw] = text
	}

	return m
}()

// LookupKeyword obtains the Keyword for an identifier's text, if reserved.
func LookupKeyword(ident string) (kw Keyword, ok bool) {
	kw, ok = keywords[ident]
	return
}

// String obtains the source form of the Keyword.
func (k Keyword) String() string { return keywordText[k] }
