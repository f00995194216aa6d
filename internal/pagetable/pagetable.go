// Package pagetable provides a sparse, lazily allocated table mapping each
// value of a dense universe to its current position in a compact element
// list. The table is organized in fixed-size pages so that the back-reference
// storage grows with the value ranges actually touched instead of the full
// universe.
//
// Entries for values not currently stored are stale and must never be read;
// the owning container gates every Get behind its presence bitmap.
package pagetable

const (
	// PageSize is the number of slots per page.
	PageSize  = 16
	pageShift = 4
	pageMask  = PageSize - 1
)

type page [PageSize]uint32

// Table maps values to element-list positions, page by page.
type Table struct {
	pages []*page
}

// New creates an empty table with no pages allocated.
func New() *Table {
	return &Table{}
}

func indices(v uint32) (pageIdx int, slot uint32) {
	return int(v >> pageShift), v & pageMask
}

// Get returns the recorded position for v. The caller must have recorded a
// position for v via Set and not cleared it since; otherwise the result is
// stale.
func (t *Table) Get(v uint32) uint32 {
	pageIdx, slot := indices(v)
	return t.pages[pageIdx][slot]
}

// Set records pos as the position of v, allocating the owning page on first
// touch.
func (t *Table) Set(v, pos uint32) {
	pageIdx, slot := indices(v)
	if pageIdx >= len(t.pages) {
		grown := make([]*page, pageIdx+1)
		copy(grown, t.pages)
		t.pages = grown
	}
	if t.pages[pageIdx] == nil {
		t.pages[pageIdx] = new(page)
	}
	t.pages[pageIdx][slot] = pos
}

// Clear zeroes the slot for v so a stale position cannot be read by
// accident. No-op if the owning page was never allocated.
func (t *Table) Clear(v uint32) {
	pageIdx, slot := indices(v)
	if pageIdx < len(t.pages) && t.pages[pageIdx] != nil {
		t.pages[pageIdx][slot] = 0
	}
}

// Truncate drops pages that lie entirely past maxValue.
func (t *Table) Truncate(maxValue uint32) {
	lastPage, _ := indices(maxValue)
	if lastPage+1 < len(t.pages) {
		t.pages = t.pages[: lastPage+1 : lastPage+1]
	}
}

// Reset zeroes all allocated pages, keeping their allocations for reuse.
func (t *Table) Reset() {
	for _, p := range t.pages {
		if p != nil {
			*p = page{}
		}
	}
}

// Allocated returns the number of allocated pages.
func (t *Table) Allocated() int {
	n := 0
	for _, p := range t.pages {
		if p != nil {
			n++
		}
	}
	return n
}

// Clone returns a deep copy. Positions stored in pages index into the
// owner's element list, so a cloned owner needs its own page storage.
func (t *Table) Clone() *Table {
	pages := make([]*page, len(t.pages))
	for i, p := range t.pages {
		if p != nil {
			cp := *p
			pages[i] = &cp
		}
	}
	return &Table{pages: pages}
}
