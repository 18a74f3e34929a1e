package helpers

import (
	"net/http"
	"strconv"

	"slotswapper/internal/domain"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ParsePagination reads the page and page_size query parameters, falling back
// to sane defaults and clamping page_size to an upper bound.
func ParsePagination(r *http.Request) domain.PaginationParams {
	params := domain.PaginationParams{Page: 1, PageSize: defaultPageSize}

	if raw := r.URL.Query().Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			params.Page = page
		}
	}
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			if size > maxPageSize {
				size = maxPageSize
			}
			params.PageSize = size
		}
	}
	return params
}

// PaginationMeta describes the page window of a list response.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationMeta computes the meta block for a list response.
func NewPaginationMeta(params domain.PaginationParams, totalItems int) PaginationMeta {
	totalPages := 0
	if params.PageSize > 0 {
		totalPages = (totalItems + params.PageSize - 1) / params.PageSize
	}
	return PaginationMeta{
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
