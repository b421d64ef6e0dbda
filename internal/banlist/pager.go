package banlist

// Pager holds the page arithmetic of one browse session. It is a value type:
// navigation returns a new Pager and never mutates the receiver.
type Pager struct {
	EntryCount int
	PerPage    int
	Page       int
}

// NewPager clamps the requested page into [1, totalPages]. An empty list
// still has one page so the view always renders.
func NewPager(entryCount, perPage, requested int) Pager {
	if perPage <= 0 {
		perPage = 1
	}
	p := Pager{EntryCount: entryCount, PerPage: perPage, Page: requested}
	total := p.TotalPages()
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > total {
		p.Page = total
	}
	return p
}

func (p Pager) TotalPages() int {
	total := (p.EntryCount + p.PerPage - 1) / p.PerPage
	if total < 1 {
		total = 1
	}
	return total
}

// Prev steps back one page; a no-op on the first page.
func (p Pager) Prev() Pager {
	if p.Page > 1 {
		p.Page--
	}
	return p
}

// Next steps forward one page; a no-op on the last page.
func (p Pager) Next() Pager {
	if p.Page < p.TotalPages() {
		p.Page++
	}
	return p
}

func (p Pager) HasPrev() bool { return p.Page > 1 }

func (p Pager) HasNext() bool { return p.Page < p.TotalPages() }

// SinglePage reports whether navigation is pointless.
func (p Pager) SinglePage() bool { return p.TotalPages() <= 1 }

// Bounds returns the half-open slice window of the current page.
func (p Pager) Bounds() (start, end int) {
	start = (p.Page - 1) * p.PerPage
	if start > p.EntryCount {
		start = p.EntryCount
	}
	end = start + p.PerPage
	if end > p.EntryCount {
		end = p.EntryCount
	}
	return start, end
}
