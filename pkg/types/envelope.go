package types

import "time"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// CodeOK is the BaseResponse code of a successful response.
const CodeOK = 0

// BaseResponse is the uniform wrapper applied to every API response.
type BaseResponse[T any] struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Data      T      `json:"data"`
	Success   bool   `json:"success"`
	Timestamp int64  `json:"timestamp"`
}

// OK wraps data in a successful BaseResponse stamped with the current time.
func OK[T any](data T) BaseResponse[T] {
	return BaseResponse[T]{
		Code:      CodeOK,
		Message:   "ok",
		Data:      data,
		Success:   true,
		Timestamp: time.Now().UnixMilli(),
	}
}

// Fail builds an unsuccessful BaseResponse carrying the zero value of T.
func Fail[T any](code int, message string) BaseResponse[T] {
	return BaseResponse[T]{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	}
}

// Time returns Timestamp as a time.Time.
func (r BaseResponse[T]) Time() time.Time {
	return time.UnixMilli(r.Timestamp)
}

// PaginationRequest selects one page of a list. Page is 1-based.
type PaginationRequest struct {
	Page     int        `json:"page"`
	PageSize int        `json:"pageSize"`
	Sort     *string    `json:"sort,omitempty"`
	Order    *SortOrder `json:"order,omitempty"`
}

// DefaultPagination returns the first page with the default page size.
func DefaultPagination() PaginationRequest {
	return PaginationRequest{Page: 1, PageSize: DefaultPageSize}
}

func (p PaginationRequest) Validate() error {
	var errs fieldErrors
	if p.Page < 1 {
		errs.add("page", "must be at least 1")
	}
	if p.PageSize < 1 {
		errs.add("pageSize", "must be at least 1")
	} else if p.PageSize > MaxPageSize {
		errs.add("pageSize", "must be at most 100")
	}
	if p.Sort != nil && *p.Sort == "" {
		errs.add("sort", "must not be empty")
	}
	if p.Order != nil && !p.Order.IsValid() {
		errs.add("order", "invalid value")
	}
	return errs.err()
}

// Offset returns the number of items preceding the requested page.
func (p PaginationRequest) Offset() int {
	if p.Page < 1 || p.PageSize < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Limit returns PageSize clamped to [1, MaxPageSize], defaulting when unset.
func (p PaginationRequest) Limit() int {
	switch {
	case p.PageSize < 1:
		return DefaultPageSize
	case p.PageSize > MaxPageSize:
		return MaxPageSize
	}
	return p.PageSize
}

// PaginationResponse is one page of items plus the totals needed to page further.
type PaginationResponse[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// NewPaginationResponse builds a page and derives TotalPages from total and pageSize.
// A nil items slice is replaced by an empty one so it encodes as [].
func NewPaginationResponse[T any](items []T, total, page, pageSize int) PaginationResponse[T] {
	if items == nil {
		items = []T{}
	}
	return PaginationResponse[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: TotalPages(total, pageSize),
	}
}

// TotalPages returns ceil(total / pageSize), or 0 when either is not positive.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

func (p PaginationResponse[T]) HasNext() bool { return p.Page < p.TotalPages }

func (p PaginationResponse[T]) HasPrev() bool { return p.Page > 1 }
