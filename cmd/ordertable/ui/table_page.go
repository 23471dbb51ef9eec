package ui

import (
	"fmt"
	"strings"

	"ordertable/internal/logging"
	"ordertable/internal/orders"
	"ordertable/internal/store"
	"ordertable/internal/table"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	btable "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StoreChangedMsg tells the page the store was written from outside the
// update loop, e.g. by a seed reload.
type StoreChangedMsg struct {
	Event store.Event
}

// pageFocus says whether the header row or the body has keyboard focus.
// Toolbar focus is tracked by the toolbar itself.
type pageFocus int

const (
	focusRows pageFocus = iota
	focusHeader
)

// Options configure a new OrderTableModel.
type Options struct {
	Title     string
	Sort      table.SortState
	PageSize  int
	Validator table.Validator
	Styles    *Styles
}

// OrderTableModel is the root page: toolbar, sortable header, one page of
// rows, pagination and the edit dialog.
type OrderTableModel struct {
	width  int
	height int
	layout LayoutConfig

	store *store.Store

	// View state
	sort     table.SortState
	pager    table.Pager
	all      []orders.Order // last store snapshot
	filtered []table.Row    // all, filtered, in store order
	visible  []table.Row    // filtered, sorted, current page

	// Components
	toolbar ToolbarModel
	header  HeaderModel
	rows    btable.Model
	dialog  DialogModel
	focus   pageFocus

	keys     KeyMap
	help     help.Model
	showHelp bool
	helpView string

	announce string
	status   string
	styles   Styles
}

// NewOrderTableModel creates the page over s.
func NewOrderTableModel(s *store.Store, opts Options) OrderTableModel {
	if opts.Title == "" {
		opts.Title = "ORDERS"
	}
	if opts.Sort.Field.Index() < 0 {
		opts.Sort = table.DefaultSort()
	}
	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}

	rows := btable.New(
		btable.WithFocused(true),
		btable.WithHeight(TableHeaderHeight+1),
	)
	rows.KeyMap = btable.KeyMap{
		LineUp:     key.NewBinding(key.WithKeys("up", "k")),
		LineDown:   key.NewBinding(key.WithKeys("down", "j")),
		GotoTop:    key.NewBinding(key.WithKeys("home", "g")),
		GotoBottom: key.NewBinding(key.WithKeys("end", "G")),
	}
	ts := btable.DefaultStyles()
	ts.Selected = styles.SelectedRow
	rows.SetStyles(ts)

	m := OrderTableModel{
		layout:  NewLayoutConfig(0, 0),
		store:   s,
		sort:    opts.Sort,
		pager:   table.NewPager(opts.PageSize),
		toolbar: NewToolbarModel(opts.Title),
		header:  HeaderModel{Cursor: opts.Sort.Field.Index()},
		rows:    rows,
		dialog:  NewDialogModel(s, opts.Validator),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		styles:  styles,
	}
	m.setColumns()
	m.refresh()
	return m
}

// Init initializes the model.
func (m OrderTableModel) Init() tea.Cmd {
	return nil
}

// SortState returns the current sort.
func (m OrderTableModel) SortState() table.SortState { return m.sort }

// Pager returns the current pagination state.
func (m OrderTableModel) Pager() table.Pager { return m.pager }

// Filtered returns the rows passing the toolbar filters, in store order.
func (m OrderTableModel) Filtered() []table.Row { return m.filtered }

// Visible returns the rows on the current page, in display order.
func (m OrderTableModel) Visible() []table.Row { return m.visible }

// Criteria returns the active filters.
func (m OrderTableModel) Criteria() table.Criteria { return m.toolbar.Criteria() }

// Dialog returns the edit dialog.
func (m OrderTableModel) Dialog() DialogModel { return m.dialog }

// Status returns the status line text.
func (m OrderTableModel) Status() string { return m.status }

// SetFilters replaces the toolbar filters and re-derives the rows.
func (m *OrderTableModel) SetFilters(c table.Criteria) {
	m.toolbar.SetFilters(c)
	m.applyFilter()
}

// Update handles messages.
func (m OrderTableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case StoreChangedMsg:
		m.refresh()
		if msg.Event.Kind == store.EventReset {
			m.status = fmt.Sprintf("reloaded %d orders", len(m.all))
		}
		return m, nil

	case DialogClosedMsg:
		if msg.Submitted {
			m.refresh()
			m.status = fmt.Sprintf("saved order %d", msg.Index+1)
		}
		return m, nil

	case tea.KeyMsg:
		if m.dialog.IsOpen() {
			var cmd tea.Cmd
			m.dialog, cmd = m.dialog.Update(msg)
			return m, cmd
		}
		if m.showHelp {
			switch msg.String() {
			case "?", "esc", "q":
				m.showHelp = false
			}
			return m, nil
		}
		if m.toolbar.Focused() != ToolbarBlurred {
			return m.updateToolbar(msg)
		}
		return m.updateKeys(msg)
	}

	if m.dialog.IsOpen() {
		var cmd tea.Cmd
		m.dialog, cmd = m.dialog.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m OrderTableModel) updateToolbar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.toolbar.Blur()
		return m, nil
	case "tab":
		if m.toolbar.Focused() == ToolbarSource {
			return m, m.toolbar.Focus(ToolbarDestination)
		}
		m.toolbar.Blur()
		return m, nil
	case "shift+tab":
		if m.toolbar.Focused() == ToolbarDestination {
			return m, m.toolbar.Focus(ToolbarSource)
		}
		m.toolbar.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	var changed bool
	m.toolbar, cmd, changed = m.toolbar.Update(msg)
	if changed {
		m.applyFilter()
	}
	return m, cmd
}

func (m OrderTableModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		m.helpView = renderHelp(m.keys, m.layout.ContentWidth(), m.styles.Theme.IsDark)
		return m, nil

	case key.Matches(msg, m.keys.Toolbar):
		m.toolbar.Toggle()
		m.applyFilter()
		return m, nil

	case key.Matches(msg, m.keys.Search), key.Matches(msg, m.keys.NextFocus):
		return m, m.toolbar.Focus(ToolbarSource)

	case key.Matches(msg, m.keys.Delivered):
		m.toolbar.Shown = true
		m.toolbar.ToggleDelivered()
		m.applyFilter()
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		if m.pager.Next(len(m.filtered)) {
			m.rebuild()
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		if m.pager.Prev() {
			m.rebuild()
		}
		return m, nil

	case key.Matches(msg, m.keys.PageSize):
		m.pager.CycleSize()
		logging.Table("page size %d", m.pager.Size)
		m.rebuild()
		return m, nil

	case key.Matches(msg, m.keys.Restore):
		discarded := editedCount(m.store.Snapshot(), m.store.Seed())
		m.store.Restore()
		logging.Audit().StoreRestored(m.store.Len())
		m.refresh()
		m.status = fmt.Sprintf("restored %d orders, %d edits discarded", len(m.all), discarded)
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.header.Left()
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.header.Right()
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		m.requestSort(m.header.Field())
		return m, nil

	case key.Matches(msg, m.keys.SortColumn):
		f := orders.Fields[int(msg.Runes[0]-'1')]
		m.header.Cursor = f.Index()
		m.requestSort(f)
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if m.focus == focusHeader {
			m.requestSort(m.header.Field())
			return m, nil
		}
		return m, m.openSelected()
	}

	switch m.focus {
	case focusHeader:
		if key.Matches(msg, m.keys.Down) {
			m.setFocus(focusRows)
		}
		return m, nil
	default:
		if key.Matches(msg, m.keys.Up) && m.rows.Cursor() == 0 {
			m.setFocus(focusHeader)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.rows, cmd = m.rows.Update(msg)
	return m, cmd
}

func (m *OrderTableModel) setFocus(f pageFocus) {
	m.focus = f
	m.header.Focused = f == focusHeader
	if f == focusHeader {
		m.rows.Blur()
	} else {
		m.rows.Focus()
	}
}

// requestSort applies a sort request on f and announces the result.
func (m *OrderTableModel) requestSort(f orders.Field) {
	m.sort = m.sort.RequestSort(f)
	m.announce = Announcement(m.sort)
	logging.Table("sort %s %s", m.sort.Field, m.sort.Direction)
	m.rebuild()
}

// openSelected opens the dialog on the selected row's store index.
func (m *OrderTableModel) openSelected() tea.Cmd {
	c := m.rows.Cursor()
	if c < 0 || c >= len(m.visible) {
		return nil
	}
	row := m.visible[c]
	o, err := m.store.At(row.Index)
	if err != nil {
		m.status = err.Error()
		return nil
	}
	return m.dialog.Open(row.Index, o)
}

// refresh re-reads the store and re-derives every view.
func (m *OrderTableModel) refresh() {
	m.all = m.store.Snapshot()
	m.applyFilter()
}

// applyFilter re-derives the filtered rows from the full snapshot.
func (m *OrderTableModel) applyFilter() {
	c := m.toolbar.Criteria()
	m.filtered = table.Filter(m.all, c)
	m.pager.Clamp(len(m.filtered))
	logging.TableDebug("filter %+v: %d of %d", c, len(m.filtered), len(m.all))
	m.rebuild()
}

// rebuild sorts the filtered rows, cuts the current page and loads it into
// the row table.
func (m *OrderTableModel) rebuild() {
	m.visible = m.pager.Window(m.sort.Sort(m.filtered))

	widths := m.layout.ColumnWidths()
	rows := make([]btable.Row, len(m.visible))
	for i, r := range m.visible {
		cells := r.Order.Cells()
		row := make(btable.Row, len(cells))
		for j, f := range orders.Fields {
			align := lipgloss.Right
			if f.AlignLeft() {
				align = lipgloss.Left
			}
			row[j] = lipgloss.PlaceHorizontal(widths[j], align, cells[j])
		}
		rows[i] = row
	}
	m.rows.SetRows(rows)

	height := len(rows)
	if height == 0 {
		height = 1
	}
	m.rows.SetHeight(height + TableHeaderHeight)
	if m.rows.Cursor() >= len(rows) {
		m.rows.SetCursor(max(0, len(rows)-1))
	}
}

func (m *OrderTableModel) setColumns() {
	widths := m.layout.ColumnWidths()
	cols := make([]btable.Column, len(orders.Fields))
	for i, f := range orders.Fields {
		cols[i] = btable.Column{Title: f.Label(), Width: widths[i]}
	}
	m.rows.SetColumns(cols)
}

// SetSize updates the size.
func (m *OrderTableModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.layout = NewLayoutConfig(w, h)
	m.help.Width = w
	m.setColumns()
	m.rows.SetWidth(m.layout.ContentWidth())
	m.rebuild()
}

// View renders the page.
func (m OrderTableModel) View() string {
	if m.showHelp {
		return m.helpView
	}
	if m.dialog.IsOpen() {
		box := m.dialog.View(m.styles)
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
		}
		return box
	}

	var sb strings.Builder
	sb.WriteString(m.toolbar.View(m.styles))
	sb.WriteString("\n\n")

	widths := m.layout.ColumnWidths()
	sb.WriteString(m.header.View(m.sort, widths, m.styles))
	sb.WriteString("\n")
	sb.WriteString(m.styles.RenderDivider(m.layout.ContentWidth()))
	sb.WriteString("\n")

	if len(m.visible) == 0 {
		sb.WriteString(m.styles.Muted.Render("  No orders match the filters."))
		sb.WriteString("\n")
	} else {
		// The header line of the row table is replaced by HeaderModel above.
		body := m.rows.View()
		if i := strings.Index(body, "\n"); i >= 0 {
			body = body[i+1:]
		}
		sb.WriteString(body)
		sb.WriteString("\n")
	}
	filler := table.EmptyRows(m.pager.Page, m.pager.Size, len(m.all))
	sb.WriteString(strings.Repeat("\n", filler))

	sb.WriteString(m.paginationView())
	sb.WriteString("\n")
	if m.announce != "" {
		sb.WriteString(m.styles.Subtitle.Render(m.announce))
		sb.WriteString("\n")
	}
	if m.status != "" {
		sb.WriteString(m.styles.Info.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.keys))
	return m.styles.Content.Render(sb.String())
}

func (m OrderTableModel) paginationView() string {
	total := len(m.filtered)
	label := fmt.Sprintf("Rows per page: %d   %s   page %d/%d",
		m.pager.Size, m.pager.Label(total), m.pager.Page+1, m.pager.PageCount(total))
	if len(m.filtered) != len(m.all) {
		label += fmt.Sprintf("   (%d of %d orders)", total, len(m.all))
	}
	return m.styles.Muted.Render(label)
}

// editedCount returns how many records differ from the restore state.
func editedCount(current, seed []orders.Order) int {
	n := 0
	for i, o := range current {
		if i >= len(seed) || o != seed[i] {
			n++
		}
	}
	return n
}
