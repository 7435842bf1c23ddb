package domain

// Page is one page of a catalog listing.
type Page struct {
	Items []Product
	Page  int
	Size  int
	Total int64
}

// TotalPages returns the page count for the requested size.
func (p Page) TotalPages() int64 {
	if p.Size <= 0 {
		return 0
	}
	return (p.Total + int64(p.Size) - 1) / int64(p.Size)
}
