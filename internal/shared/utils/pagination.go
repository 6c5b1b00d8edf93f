package utils

import (
	"math"
	"net/url"
	"strconv"
)

// MaxPageSize caps every paginated listing.
const MaxPageSize = 100

// MaxPage keeps Offset from overflowing.
const MaxPage = math.MaxInt / MaxPageSize

// PageRequest is a zero-based page request.
type PageRequest struct {
	Page int
	Size int
}

// ParsePageRequest reads ?page= and ?size= (page defaults to 0, size to
// defaultSize, size is capped at MaxPageSize).
func ParsePageRequest(q url.Values, defaultSize int) PageRequest {
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 0 {
		page = 0
	}
	if page > MaxPage {
		page = MaxPage
	}
	size, err := strconv.Atoi(q.Get("size"))
	if err != nil || size <= 0 {
		size = defaultSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return PageRequest{Page: page, Size: size}
}

func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// PageMetadata describes a page of results.
type PageMetadata struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
}

// PageResponse is the listing envelope.
type PageResponse[T any] struct {
	Data     []T          `json:"data"`
	Metadata PageMetadata `json:"metadata"`
}

func NewPageResponse[T any](items []T, total int, req PageRequest) PageResponse[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if req.Size > 0 {
		totalPages = (total + req.Size - 1) / req.Size
	}
	return PageResponse[T]{
		Data: items,
		Metadata: PageMetadata{
			Total:      total,
			Page:       req.Page,
			PerPage:    req.Size,
			TotalPages: totalPages,
		},
	}
}
