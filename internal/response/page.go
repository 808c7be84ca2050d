package response

// Page is a paginated result set.
type Page struct {
	Data        interface{} `json:"data"`
	Total       int64       `json:"total"`
	CurrentPage int         `json:"current_page"`
	PerPage     int         `json:"per_page"`
	LastPage    int         `json:"last_page"`
}

// NewPage builds a page envelope. LastPage is never below 1, even for an
// empty result set.
func NewPage(data interface{}, total int64, currentPage, perPage int) Page {
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}
	return Page{
		Data:        data,
		Total:       total,
		CurrentPage: currentPage,
		PerPage:     perPage,
		LastPage:    lastPage,
	}
}
