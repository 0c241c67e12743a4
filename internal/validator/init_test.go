package validator

import (
	"strings"
	"testing"

	"ctchen222/Five-In-A-Row/internal/game"
)

func TestBoardRowValidation(t *testing.T) {
	type payload struct {
		Board []string `validate:"required,len=15,dive,boardrow"`
	}
	empty := strings.Repeat(".", game.BoardSize)
	rows := func(override string) []string {
		b := make([]string, game.BoardSize)
		for i := range b {
			b[i] = empty
		}
		b[7] = override
		return b
	}

	tests := []struct {
		name    string
		board   []string
		wantErr bool
	}{
		{name: "Empty board", board: rows(empty)},
		{name: "Marks", board: rows("XO.....X......O")},
		{name: "Short row", board: rows("XO"), wantErr: true},
		{name: "Lowercase mark", board: rows("x.............."), wantErr: true},
		{name: "Missing rows", board: rows(empty)[:3], wantErr: true},
		{name: "Nil board", board: nil, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GetValidator().Struct(payload{Board: tt.board})
			if (err != nil) != tt.wantErr {
				t.Errorf("Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
