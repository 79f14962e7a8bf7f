package pagination

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Pagination is the page/page_size query pair shared by every list endpoint.
type Pagination struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// Normalize clamps the requested page window to sane bounds.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
	return p
}

func (p Pagination) Limit() int { return p.PageSize }

func (p Pagination) Offset() int { return (p.Page - 1) * p.PageSize }

// PageInfo describes the list window actually returned.
type PageInfo struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
}

// NewPageInfo builds the response page descriptor for a normalized window.
func NewPageInfo(p Pagination, total int64) PageInfo {
	pages := int(total) / p.PageSize
	if int(total)%p.PageSize != 0 {
		pages++
	}
	return PageInfo{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalCount: total,
		TotalPages: pages,
	}
}
