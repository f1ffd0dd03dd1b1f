// SPDX-License-Identifier: MIT
package token

import (
	"errors"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Literal
		wantErr bool
	}{
		{"integer", "42", IntLiteral(42), false},
		{"zero", "0", IntLiteral(0), false},
		{"hexadecimal", "0x2a", IntLiteral(42), false},
		{"octal", "0755", IntLiteral(493), false},
		{"float", "4.2", FloatLiteral(4.2), false},
		{"exponent with sign", "1e+5", FloatLiteral(1e5), false},
		{"dangling sign", "1+", Literal{}, true},
		{"identifier suffix", "12zz", Literal{}, true},
		{"lone dot run", "1..2", Literal{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNumber(tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseNumber(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
				return
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidNumber) {
					t.Errorf("ParseNumber(%q) error = %v, want %v", tt.text, err, ErrInvalidNumber)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseNumber(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantErr bool
	}{
		{"no escapes", "plain", "plain", false},
		{"newline", `a\nb`, "a\nb", false},
		{"tab", `\t`, "\t", false},
		{"backslash", `\\n`, `\n`, false},
		{"quote", `\"`, `"`, false},
		{"nul", `\0`, "\x00", false},
		{"unknown escape", `\q`, "", true},
		{"trailing backslash", `abc\`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unescape(tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("Unescape(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("Unescape(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestLookupKeyword(t *testing.T) {
	for text, want := range keywords {
		got, ok := LookupKeyword(text)
		if !ok || got != want {
			t.Errorf("LookupKeyword(%q) = (%v, %v), want (%v, true)", text, got, ok, want)
		}
		if got.String() != text {
			t.Errorf("Keyword(%v).String() = %q, want %q", got, got.String(), text)
		}
	}

	if _, ok := LookupKeyword("main"); ok {
		t.Error(`LookupKeyword("main") = true, want false`)
	}
}
