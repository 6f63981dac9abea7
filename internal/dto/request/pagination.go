package request

// Pagination carries the page query parameters shared by every listing
// endpoint. Page and PerPage are normalized before use.
type Pagination struct {
	Page    int
	PerPage int
}

func (p *Pagination) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 || p.PerPage > 100 {
		p.PerPage = 10
	}
}

func (p Pagination) Limit() int {
	return p.PerPage
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}
