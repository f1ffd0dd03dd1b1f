// SPDX-License-Identifier: MIT
package lexer

import "testing"

func TestLocation_Human(t *testing.T) {
	tests := []struct {
		name     string
		location Location
		wantLine uint
		wantCol  uint
	}{
		{
			name:     "origin",
			location: NewLocation(0, 0),
			wantLine: 1,
			wantCol:  1,
		},
		{
			name:     "interior",
			location: NewLocation(4, 7),
			wantLine: 5,
			wantCol:  8,
		},
		{
			name:     "saturates at maximum",
			location: NewLocation(^uint(0), ^uint(0)),
			wantLine: ^uint(0),
			wantCol:  ^uint(0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotLine, gotCol := tt.location.Human()
			if gotLine != tt.wantLine || gotCol != tt.wantCol {
				t.Errorf("Location.Human() = (%d, %d), want (%d, %d)",
					gotLine, gotCol, tt.wantLine, tt.wantCol)
			}
		})
	}
}

func TestLocation_IncrLine(t *testing.T) {
	location := NewLocation(2, 9)

	location.IncrLine()
	if location.Line != 3 || location.Col != 0 {
		t.Errorf("Location.IncrLine() = %+v, want line 3 col 0", location)
	}
}

func TestLocation_IncrCol(t *testing.T) {
	location := NewLocation(0, 0)

	for incr := 0; incr < 3; incr++ {
		location.IncrCol()
	}
	if location.Line != 0 || location.Col != 3 {
		t.Errorf("Location.IncrCol() = %+v, want line 0 col 3", location)
	}

	location.Col = ^uint(0)
	location.IncrCol()
	if location.Col != ^uint(0) {
		t.Errorf("Location.IncrCol() overflowed to %d, want saturation", location.Col)
	}
}

func TestLocation_Before(t *testing.T) {
	tests := []struct {
		name  string
		l     Location
		other Location
		want  bool
	}{
		{"same location", NewLocation(1, 1), NewLocation(1, 1), true},
		{"earlier column", NewLocation(1, 0), NewLocation(1, 5), true},
		{"earlier line", NewLocation(0, 9), NewLocation(1, 0), true},
		{"later column", NewLocation(1, 5), NewLocation(1, 0), false},
		{"later line", NewLocation(2, 0), NewLocation(1, 9), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.l.Before(tt.other); got != tt.want {
				t.Errorf("Location.Before() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTokenSpan_String(t *testing.T) {
	span := TokenSpan{Filepath: "main.c", Start: NewLocation(2, 4), End: NewLocation(2, 6)}
	if got, want := span.String(), "main.c:3:5"; got != want {
		t.Errorf("TokenSpan.String() = %q, want %q", got, want)
	}

	anonymous := TokenSpan{Start: NewLocation(0, 0)}
	if got, want := anonymous.String(), "1:1"; got != want {
		t.Errorf("TokenSpan.String() = %q, want %q", got, want)
	}
}
