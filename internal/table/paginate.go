package table

import (
	"errors"
	"fmt"
)

// ErrInvalidPageSize is returned for a page size outside PageSizes.
var ErrInvalidPageSize = errors.New("table: invalid page size")

// PageSizes are the selectable rows-per-page options.
var PageSizes = []int{5, 10, 25}

// DefaultPageSize is the first option.
const DefaultPageSize = 5

// ValidPageSize reports whether size is one of PageSizes.
func ValidPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}

// NextPageSize returns the option after size, wrapping around.
func NextPageSize(size int) int {
	for i, s := range PageSizes {
		if s == size {
			return PageSizes[(i+1)%len(PageSizes)]
		}
	}
	return PageSizes[0]
}

// Paginate returns rows[page*size : page*size+size], clamped to len(rows).
func Paginate(rows []Row, page, size int) []Row {
	if page < 0 || size <= 0 {
		return nil
	}
	start := page * size
	if start >= len(rows) {
		return nil
	}
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// EmptyRows is the number of filler lines shown after the last row. It is
// only non-zero past the first page and measures against the full store
// length, not the filtered count.
func EmptyRows(page, size, storeLen int) int {
	if page <= 0 {
		return 0
	}
	if n := (page+1)*size - storeLen; n > 0 {
		return n
	}
	return 0
}

// Pager is the pagination state of the table.
type Pager struct {
	Page int
	Size int
}

// NewPager starts at page 0 with the given size, or DefaultPageSize.
func NewPager(size int) Pager {
	if !ValidPageSize(size) {
		size = DefaultPageSize
	}
	return Pager{Size: size}
}

// SetSize changes the page size and always returns to the first page.
func (p *Pager) SetSize(size int) error {
	if !ValidPageSize(size) {
		return fmt.Errorf("page size %d: %w", size, ErrInvalidPageSize)
	}
	p.Size = size
	p.Page = 0
	return nil
}

// CycleSize moves to the next page size option.
func (p *Pager) CycleSize() {
	p.Size = NextPageSize(p.Size)
	p.Page = 0
}

// PageCount is the number of pages for total rows; at least 1.
func (p Pager) PageCount(total int) int {
	if total <= 0 || p.Size <= 0 {
		return 1
	}
	return (total + p.Size - 1) / p.Size
}

// Next advances one page if there is one.
func (p *Pager) Next(total int) bool {
	if p.Page+1 >= p.PageCount(total) {
		return false
	}
	p.Page++
	return true
}

// Prev goes back one page if there is one.
func (p *Pager) Prev() bool {
	if p.Page == 0 {
		return false
	}
	p.Page--
	return true
}

// Clamp pulls the page back inside range after the data shrank.
func (p *Pager) Clamp(total int) {
	if last := p.PageCount(total) - 1; p.Page > last {
		p.Page = last
	}
}

// Window returns the visible rows.
func (p Pager) Window(rows []Row) []Row {
	return Paginate(rows, p.Page, p.Size)
}

// Label renders "from–to of count".
func (p Pager) Label(total int) string {
	if total == 0 {
		return "0–0 of 0"
	}
	from := p.Page*p.Size + 1
	to := from + p.Size - 1
	if to > total {
		to = total
	}
	if from > total {
		from = total
	}
	return fmt.Sprintf("%d–%d of %d", from, to, total)
}
