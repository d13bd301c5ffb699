package tui

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{
			name:  "short line untouched",
			in:    "hello world",
			width: 20,
			want:  []string{"hello world"},
		},
		{
			name:  "breaks on spaces",
			in:    "one two three four",
			width: 9,
			want:  []string{"one two", "three", "four"},
		},
		{
			name:  "keeps blank lines",
			in:    "a\n\nb",
			width: 10,
			want:  []string{"a", "", "b"},
		},
		{
			name:  "hard breaks an oversized word",
			in:    "abcdefghij",
			width: 4,
			want:  []string{"abcd", "efgh", "ij"},
		},
		{
			name:  "empty input yields one empty line",
			in:    "",
			width: 10,
			want:  []string{""},
		},
		{
			name:  "double-width rune wider than the window still terminates",
			in:    "木木",
			width: 1,
			want:  []string{"木", "木"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapText(tt.in, tt.width))
		})
	}
}

func TestWrapTextRespectsDisplayWidth(t *testing.T) {
	// Wide runes count double, so four of them do not fit in width 6.
	lines := wrapText("ありがとう", 6)
	for _, line := range lines {
		assert.LessOrEqual(t, runewidth.StringWidth(line), 6)
	}
}

func TestFormatMillis(t *testing.T) {
	assert.Equal(t, "", formatMillis(nil, "2006-01-02"))

	ms := int64(1700000000000)
	got := formatMillis(&ms, "2006")
	assert.Equal(t, "2023", got)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", truncate("hello", 0))
	assert.Equal(t, "hello", truncate("hello", 10))
	assert.Equal(t, "hell…", truncate("hello world", 5))
}
