package ui

import (
	"errors"
	"fmt"
	"strings"

	"ordertable/internal/logging"
	"ordertable/internal/orders"
	"ordertable/internal/store"
	"ordertable/internal/table"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Replacer writes one record back. *store.Store satisfies it.
type Replacer interface {
	Replace(i int, id string, o orders.Order) error
}

// DialogClosedMsg is sent when the edit dialog closes.
type DialogClosedMsg struct {
	Index     int
	Submitted bool
}

// DialogModel is the edit form for one record. It is either closed
// (Index -1) or open on a store index.
type DialogModel struct {
	index     int
	id        string
	inputs    []textinput.Model
	focus     int
	err       error
	store     Replacer
	validator table.Validator
	keys      DialogKeyMap
	help      help.Model
}

// NewDialogModel creates a closed dialog that writes through s.
func NewDialogModel(s Replacer, v table.Validator) DialogModel {
	if v == nil {
		v = table.AcceptAll
	}
	inputs := make([]textinput.Model, len(orders.Fields))
	for i, f := range orders.Fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.Label()
		ti.Width = DialogInputWidth
		inputs[i] = ti
	}
	return DialogModel{
		index:     -1,
		inputs:    inputs,
		store:     s,
		validator: v,
		keys:      DefaultDialogKeyMap(),
		help:      help.New(),
	}
}

// IsOpen reports whether the dialog is showing.
func (d DialogModel) IsOpen() bool { return d.index >= 0 }

// Index returns the store index being edited, or -1.
func (d DialogModel) Index() int { return d.index }

// Err returns the error shown on the dialog, if any.
func (d DialogModel) Err() error { return d.err }

// Open shows the dialog on store index i, pre-filled from o. The inputs are
// copied once; later store changes do not touch them.
func (d *DialogModel) Open(i int, o orders.Order) tea.Cmd {
	draft := table.DraftOf(o)
	for j, f := range orders.Fields {
		d.inputs[j].SetValue(draft.Get(f))
		d.inputs[j].CursorEnd()
	}
	d.index = i
	d.id = o.ID
	d.err = nil

	logging.Dialog("edit opened on %d (%s)", i, o.ID)
	logging.Audit().EditOpened(i, o.ID, o.User)
	return d.focusField(0)
}

// Draft returns the current form text.
func (d DialogModel) Draft() table.Draft {
	var draft table.Draft
	for j, f := range orders.Fields {
		draft.Set(f, d.inputs[j].Value())
	}
	return draft
}

// SetValue sets the text of field f.
func (d *DialogModel) SetValue(f orders.Field, v string) {
	if j := f.Index(); j >= 0 {
		d.inputs[j].SetValue(v)
	}
}

func (d *DialogModel) focusField(j int) tea.Cmd {
	n := len(d.inputs)
	d.focus = ((j % n) + n) % n
	for k := range d.inputs {
		d.inputs[k].Blur()
	}
	logging.DialogDebug("focus %s", orders.Fields[d.focus])
	return d.inputs[d.focus].Focus()
}

func (d *DialogModel) close() {
	d.index = -1
	d.id = ""
	d.err = nil
	for k := range d.inputs {
		d.inputs[k].Blur()
	}
}

// Cancel discards the edits and closes the dialog. The store is untouched.
func (d *DialogModel) Cancel() tea.Cmd {
	if !d.IsOpen() {
		return nil
	}
	i := d.index
	logging.Dialog("edit cancelled on %d", i)
	logging.Audit().EditCancelled(i, d.id)
	d.close()
	return closedCmd(i, false)
}

// Submit validates the form and replaces the record. On error the dialog
// stays open and shows it.
func (d *DialogModel) Submit() tea.Cmd {
	if !d.IsOpen() {
		return nil
	}
	i, id := d.index, d.id
	draft := d.Draft()

	if err := d.validator.Validate(draft); err != nil {
		d.err = err
		logging.Audit().EditSubmitted(i, id, draft.User, err)
		return nil
	}

	if err := d.store.Replace(i, id, draft.Order(id)); err != nil {
		if errors.Is(err, store.ErrStaleRecord) || errors.Is(err, store.ErrIndexOutOfRange) {
			err = fmt.Errorf("the list was reloaded while editing; press esc and reopen the row: %w", err)
		}
		d.err = err
		logging.Get(logging.CategoryDialog).Warn("submit on %d failed: %v", i, err)
		logging.Audit().EditSubmitted(i, id, draft.User, err)
		return nil
	}

	logging.Dialog("edit submitted on %d (%s)", i, id)
	logging.Audit().EditSubmitted(i, id, draft.User, nil)
	d.close()
	return closedCmd(i, true)
}

func closedCmd(i int, submitted bool) tea.Cmd {
	return func() tea.Msg {
		return DialogClosedMsg{Index: i, Submitted: submitted}
	}
}

// Update handles keys while the dialog is open.
func (d DialogModel) Update(msg tea.Msg) (DialogModel, tea.Cmd) {
	if !d.IsOpen() {
		return d, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, d.keys.Cancel):
			return d, d.Cancel()
		case key.Matches(msg, d.keys.Submit):
			return d, d.Submit()
		case msg.Type == tea.KeyEnter:
			if d.focus == len(d.inputs)-1 {
				return d, d.Submit()
			}
			return d, d.focusField(d.focus + 1)
		case key.Matches(msg, d.keys.Next):
			return d, d.focusField(d.focus + 1)
		case key.Matches(msg, d.keys.Prev):
			return d, d.focusField(d.focus - 1)
		}
	}

	var cmd tea.Cmd
	d.inputs[d.focus], cmd = d.inputs[d.focus].Update(msg)
	return d, cmd
}

// View renders the dialog box.
func (d DialogModel) View(styles Styles) string {
	if !d.IsOpen() {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Edit order"))
	sb.WriteString("\n\n")
	for j, f := range orders.Fields {
		label := styles.FieldLabel.Render(f.Label())
		box := styles.Input
		if j == d.focus {
			box = styles.InputFocused
		}
		sb.WriteString(joinRow(label, box.Render(d.inputs[j].View())))
		sb.WriteString("\n")
	}
	if d.err != nil {
		sb.WriteString("\n")
		sb.WriteString(styles.Error.Render(d.err.Error()))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(styles.Muted.Render("[esc] Cancel   [ctrl+s] Submit"))
	sb.WriteString("\n")
	sb.WriteString(d.help.View(d.keys))
	return styles.Dialog.Render(sb.String())
}
