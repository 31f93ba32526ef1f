package render

import (
	"fmt"
	"net/url"
)

// PageItem is one entry of a pagination control: a page number or an
// ellipsis marker standing for a collapsed gap.
type PageItem struct {
	Number   int
	Ellipsis bool
	Current  bool
	URL      string
}

// Pagination is the view model of a pagination control.
type Pagination struct {
	Items   []PageItem
	Current int
	Total   int
	PrevURL string // empty on the first page
	NextURL string // empty on the last page
}

// PageItems lists the first page, current-1..current+1 and the last
// page, with gaps collapsed to a single ellipsis. It returns nil when
// there is at most one page.
func PageItems(current, total int) []PageItem {
	if total <= 1 {
		return nil
	}

	items := []PageItem{{Number: 1}}
	start := max(2, current-1)
	end := min(total-1, current+1)

	if start > 2 {
		items = append(items, PageItem{Ellipsis: true})
	}
	for i := start; i <= end; i++ {
		items = append(items, PageItem{Number: i})
	}
	if end < total-1 {
		items = append(items, PageItem{Ellipsis: true})
	}
	items = append(items, PageItem{Number: total})

	for i := range items {
		items[i].Current = !items[i].Ellipsis && items[i].Number == current
	}
	return items
}

// NewPagination builds the control for basePath, or nil when it should
// be hidden.
func NewPagination(basePath string, current, total int) *Pagination {
	items := PageItems(current, total)
	if items == nil {
		return nil
	}

	pageURL := func(n int) string {
		return fmt.Sprintf("%s?%s", basePath, url.Values{"page": {fmt.Sprint(n)}}.Encode())
	}
	for i := range items {
		if !items[i].Ellipsis {
			items[i].URL = pageURL(items[i].Number)
		}
	}

	p := &Pagination{Items: items, Current: current, Total: total}
	if current > 1 {
		p.PrevURL = pageURL(current - 1)
	}
	if current < total {
		p.NextURL = pageURL(current + 1)
	}
	return p
}
