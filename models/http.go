package models

// Defaults and bounds applied to task list requests.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// TaskFilter represents search criteria for listing a user's tasks.
// Only unencrypted columns can be used for database-level filtering.
type TaskFilter struct {
	// UserID filters records by owner. Always required.
	UserID int64 `json:"-"`

	// Page is the 1-based page number.
	Page int `json:"page"`

	// Limit is the page size.
	Limit int `json:"limit"`

	// Status narrows the result to tasks in one state. Empty means any.
	Status TaskStatus `json:"status,omitempty"`

	// Search is a case-insensitive substring matched against the title.
	Search string `json:"search,omitempty"`
}

// Offset returns the number of rows to skip for the filter's page.
func (f TaskFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// Pagination describes the position of a page inside a filtered result set.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// NewPagination computes the pagination block for a page of filter with
// total matching rows.
func NewPagination(filter TaskFilter, total int64) Pagination {
	var totalPages int64
	if filter.Limit > 0 {
		totalPages = (total + int64(filter.Limit) - 1) / int64(filter.Limit)
	}

	return Pagination{
		Page:       filter.Page,
		Limit:      filter.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// TaskPage is one page of a user's tasks.
type TaskPage struct {
	Tasks      []Task
	Pagination Pagination
}
