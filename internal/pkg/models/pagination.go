package models

import "math"

// MaxPage bounds the page number a listing accepts
const MaxPage = 10000

// PageRequest is a 1-based page selector
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Normalize clamps the request to a valid page and limit
func (p PageRequest) Normalize(defaultLimit, maxLimit int) PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	if maxLimit > 0 && p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

// Offset returns the number of items before the page, saturated to the
// int32 range Firestore offsets are sent in
func (p PageRequest) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt32/p.Limit {
		return math.MaxInt32
	}
	return (p.Page - 1) * p.Limit
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// NewPagination computes the envelope for total items at p
func NewPagination(total int64, p PageRequest) Pagination {
	pages := 0
	if p.Limit > 0 {
		pages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return Pagination{Total: total, Page: p.Page, Limit: p.Limit, TotalPages: pages}
}

// Page is one page of a listing
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}
