package dto

// PageRequest pagination for list endpoints (page/limit -> offset/limit).
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Normalize applies defaults and bounds.
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Offset converts page/limit into a row offset.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageResponse pagination metadata in responses.
type PageResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// ErrorResponse HTTP error envelope. Detail carries internal error text in
// development mode only.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}
