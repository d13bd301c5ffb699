package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-runewidth"
)

// renderMarkdown renders markdown into terminal-styled lines wrapped to
// width. On renderer failure it falls back to plain wrapping.
func renderMarkdown(content string, width int) []string {
	if width < 10 {
		width = 10
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return wrapText(content, width)
	}
	out, err := r.Render(content)
	if err != nil {
		return wrapText(content, width)
	}
	return strings.Split(strings.TrimRight(out, "\n"), "\n")
}

// wrapText wraps plain text to the given display width, breaking on
// spaces where possible. Display width is rune-aware so wide characters
// count double.
func wrapText(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	for _, raw := range strings.Split(s, "\n") {
		if raw == "" {
			lines = append(lines, "")
			continue
		}
		line := ""
		for _, word := range strings.Fields(raw) {
			switch {
			case line == "":
				line = word
			case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
			// A single word longer than the width is hard-broken.
			for runewidth.StringWidth(line) > width {
				head := runewidth.Truncate(line, width, "")
				if head == "" {
					// Width narrower than the first rune; emit it anyway
					// so the loop makes progress.
					head = string([]rune(line)[:1])
				}
				lines = append(lines, head)
				line = strings.TrimPrefix(line, head)
			}
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// truncate shortens s to the given display width with an ellipsis.
func truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// formatMillis formats a unix-millisecond timestamp with the configured
// layout. Returns an empty string for a nil timestamp.
func formatMillis(ms *int64, layout string) string {
	if ms == nil {
		return ""
	}
	return time.UnixMilli(*ms).Format(layout)
}

// buildDescLines renders the current task's description for the detail
// view's description panel: the meta rows first, then the markdown body.
func (m *Model) buildDescLines() {
	if m.task == nil {
		m.descLines = nil
		return
	}
	text := ""
	if m.task.Description != nil {
		text = m.task.Description.AsText()
	}

	lines := m.taskMetaRows()
	if strings.TrimSpace(text) == "" {
		lines = append(lines, "(no description)")
	} else {
		lines = append(lines, renderMarkdown(text, m.contentWidth()-6)...)
	}
	m.descLines = lines
	m.descScroll.Clamp(len(m.descLines))
}

// buildPageLines renders the loaded document pages as one continuous
// markdown document, each page under its name as a heading.
func (m *Model) buildPageLines() {
	if len(m.pages) == 0 {
		m.pageLines = nil
		return
	}
	var b strings.Builder
	for i, p := range m.pages {
		if i > 0 {
			b.WriteString("\n\n---\n\n")
		}
		b.WriteString("# " + p.Name + "\n\n")
		b.WriteString(p.Content)
	}
	m.pageLines = renderMarkdown(b.String(), m.contentWidth()-2)
	m.listScroll.Clamp(len(m.pageLines))
}
