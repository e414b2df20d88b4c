package utils

import "math"

// PaginationParams holds pagination request parameters
type PaginationParams struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// PaginationMeta holds pagination response metadata
type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

// GetPaginationParams extracts page and limit with defaults
// Default: page=1, limit=20
func GetPaginationParams(page, limit int) PaginationParams {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return PaginationParams{
		Page:  page,
		Limit: limit,
	}
}

// CalculateOffset returns the SQL offset
func (p PaginationParams) CalculateOffset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// NewPaginationMeta builds response metadata from a total row count
func NewPaginationMeta(p PaginationParams, totalCount int64) PaginationMeta {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = int(math.Ceil(float64(totalCount) / float64(p.Limit)))
	}
	return PaginationMeta{
		Page:       p.Page,
		Limit:      p.Limit,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}
