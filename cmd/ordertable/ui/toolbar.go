package ui

import (
	"strings"

	"ordertable/internal/table"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ToolbarFocus says which toolbar input has keyboard focus.
type ToolbarFocus int

const (
	ToolbarBlurred ToolbarFocus = iota
	ToolbarSource
	ToolbarDestination
)

// ToolbarModel holds the title, the two text filters and the Delivered
// checkbox. The filter inputs are only shown while Shown is set.
type ToolbarModel struct {
	Title     string
	Shown     bool
	focus     ToolbarFocus
	source    textinput.Model
	dest      textinput.Model
	delivered bool
}

// NewToolbarModel creates a toolbar with empty filters.
func NewToolbarModel(title string) ToolbarModel {
	newInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Prompt = ""
		ti.CharLimit = FilterCharLimit
		ti.Width = FilterInputWidth
		return ti
	}
	return ToolbarModel{
		Title:  title,
		source: newInput("Source Filter"),
		dest:   newInput("Destination Filter"),
	}
}

// Criteria returns the filter criteria the toolbar currently describes.
func (t ToolbarModel) Criteria() table.Criteria {
	c := table.Criteria{
		Source:      t.source.Value(),
		Destination: t.dest.Value(),
	}
	if t.delivered {
		c = c.ToggleDelivered()
	}
	return c
}

// Focused returns the focused input, or ToolbarBlurred.
func (t ToolbarModel) Focused() ToolbarFocus { return t.focus }

// Focus moves keyboard focus to an input. Focusing shows the toolbar.
func (t *ToolbarModel) Focus(f ToolbarFocus) tea.Cmd {
	t.source.Blur()
	t.dest.Blur()
	t.focus = f
	switch f {
	case ToolbarSource:
		t.Shown = true
		return t.source.Focus()
	case ToolbarDestination:
		t.Shown = true
		return t.dest.Focus()
	}
	return nil
}

// Blur removes keyboard focus from both inputs.
func (t *ToolbarModel) Blur() {
	t.Focus(ToolbarBlurred)
}

// Toggle shows or hides the filters. Hiding clears them, so the caller
// re-derives the full store.
func (t *ToolbarModel) Toggle() {
	if t.Shown {
		t.Shown = false
		t.Clear()
		return
	}
	t.Shown = true
}

// Clear empties every filter.
func (t *ToolbarModel) Clear() {
	t.source.SetValue("")
	t.dest.SetValue("")
	t.delivered = false
	t.Blur()
}

// ToggleDelivered flips the Delivered checkbox.
func (t *ToolbarModel) ToggleDelivered() {
	t.delivered = !t.delivered
}

// SetFilters sets both text filters and the checkbox, showing the toolbar.
func (t *ToolbarModel) SetFilters(c table.Criteria) {
	t.source.SetValue(c.Source)
	t.dest.SetValue(c.Destination)
	t.delivered = c.Delivered()
	t.Shown = t.Shown || !c.IsZero()
}

// Update feeds msg to the focused input. changed reports whether the
// filter text differs afterwards.
func (t ToolbarModel) Update(msg tea.Msg) (ToolbarModel, tea.Cmd, bool) {
	before := t.Criteria()
	var cmd tea.Cmd
	switch t.focus {
	case ToolbarSource:
		t.source, cmd = t.source.Update(msg)
	case ToolbarDestination:
		t.dest, cmd = t.dest.Update(msg)
	default:
		return t, nil, false
	}
	return t, cmd, t.Criteria() != before
}

// View renders the title line and, when shown, the filter bar.
func (t ToolbarModel) View(styles Styles) string {
	var sb strings.Builder
	sb.WriteString(styles.Header.Render(t.Title))
	if !t.Shown {
		sb.WriteString("  ")
		sb.WriteString(styles.Muted.Render("[f] filter list"))
		return sb.String()
	}
	sb.WriteString("\n")

	box := func(in textinput.Model, focused bool) string {
		if focused {
			return styles.InputFocused.Render(in.View())
		}
		return styles.Input.Render(in.View())
	}
	check := "[ ] Delivered"
	if t.delivered {
		check = "[x] Delivered"
	}

	sb.WriteString(joinRow(
		box(t.source, t.focus == ToolbarSource),
		box(t.dest, t.focus == ToolbarDestination),
		styles.Checkbox.Render(check),
		styles.Muted.Render("[/] source  [tab] next  [d] delivered"),
	))
	return sb.String()
}
