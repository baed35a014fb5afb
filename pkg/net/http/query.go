package http

import (
	"strconv"
	"strings"
)

// Pagination is an offset/limit window over a repository listing.
type Pagination struct {
	Offset uint64
	Limit  uint64
}

// QueryHeader entity from query parameter from get apis.
type QueryHeader struct {
	Limit int
	Page  int
}

// ValidateParameters validate and return struct of default parameters.
func ValidateParameters(params map[string]string) *QueryHeader {
	limit := 100

	page := 1

	for key, value := range params {
		switch {
		case strings.Contains(key, "limit"):
			limit, _ = strconv.Atoi(value)
		case strings.Contains(key, "page"):
			page, _ = strconv.Atoi(value)
		}
	}

	return &QueryHeader{
		Limit: limit,
		Page:  page,
	}
}

// ToOffsetPagination converts a page/limit query into an offset/limit window.
func (q *QueryHeader) ToOffsetPagination() Pagination {
	page := q.Page
	if page < 1 {
		page = 1
	}

	limit := q.Limit
	if limit < 1 {
		limit = 100
	}

	return Pagination{
		Offset: uint64(page-1) * uint64(limit),
		Limit:  uint64(limit),
	}
}
