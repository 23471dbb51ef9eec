package ui

import (
	"fmt"
	"strings"

	"ordertable/internal/logging"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"
)

// helpMarkdown lists every binding of km as a markdown table.
func helpMarkdown(km KeyMap) string {
	var sb strings.Builder
	sb.WriteString("# Order table\n\n")
	sb.WriteString("Sort by any column, filter by source, destination or delivery, ")
	sb.WriteString("and press **enter** on a row to edit it.\n\n")

	sections := []string{"Navigate", "Sort and page", "Filter", "General"}
	for i, group := range km.FullHelp() {
		sb.WriteString("## " + sections[i] + "\n\n")
		sb.WriteString("| Key | Action |\n|---|---|\n")
		for _, b := range group {
			writeBinding(&sb, b)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Edit dialog\n\n| Key | Action |\n|---|---|\n")
	for _, b := range DefaultDialogKeyMap().ShortHelp() {
		writeBinding(&sb, b)
	}
	sb.WriteString("| enter | next field, submit on the last |\n")
	sb.WriteString("\nPress **?** or **esc** to close.\n")
	return sb.String()
}

func writeBinding(sb *strings.Builder, b key.Binding) {
	h := b.Help()
	fmt.Fprintf(sb, "| `%s` | %s |\n", h.Key, h.Desc)
}

// renderHelp renders the help overlay, falling back to raw markdown if
// glamour cannot build a renderer.
func renderHelp(km KeyMap, width int, dark bool) string {
	md := helpMarkdown(km)
	style := "light"
	if dark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		logging.Get(logging.CategoryTable).Warn("help renderer: %v", err)
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		logging.Get(logging.CategoryTable).Warn("help render: %v", err)
		return md
	}
	return out
}
