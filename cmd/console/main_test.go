package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"ctchen222/Five-In-A-Row/internal/bot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlay(t *testing.T) {
	engine, err := bot.NewEngine(1)
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "rejects malformed input",
			input: "abc\n",
			want:  []string{"enter two numbers"},
		},
		{
			name:  "rejects out of range move",
			input: "15 0\n",
			want:  []string{"out of bounds"},
		},
		{
			name:  "engine answers a move",
			input: "7 7\n",
			want:  []string{"thinking...", " 7 .......X......."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := play(context.Background(), engine, strings.NewReader(tt.input), &out)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}
