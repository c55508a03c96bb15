package pagination

import "math"

const (
	DefaultPage = 1
	DefaultSize = 50
	MaxSize     = 100
)

// Params are 1-based page coordinates as received from a client.
type Params struct {
	Page int
	Size int
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Size
}

func (p Params) Limit() int {
	return p.Size
}

// Page is what a storage lookup returns: one slice of rows plus the total.
type Page[T any] struct {
	Items []T
	Total int64
	Page  int
	Size  int
}

// Pagination is the response envelope.
type Pagination[T any] struct {
	Results         []T   `json:"results"`
	TotalCount      int64 `json:"total_count"`
	Page            int   `json:"page"`
	Size            int   `json:"size"`
	NextPageNum     int   `json:"next_page_num"`
	PreviousPageNum int   `json:"previous_page_num"`
}

// Factory normalizes client params and builds envelopes.
type Factory struct {
	defaultSize int
	maxSize     int
}

func NewFactory(defaultSize, maxSize int) *Factory {
	if maxSize <= 0 {
		maxSize = MaxSize
	}
	if defaultSize <= 0 || defaultSize > maxSize {
		defaultSize = DefaultSize
		if defaultSize > maxSize {
			defaultSize = maxSize
		}
	}
	return &Factory{defaultSize: defaultSize, maxSize: maxSize}
}

func (f *Factory) Params(page, size int) Params {
	if f == nil {
		f = NewFactory(DefaultSize, MaxSize)
	}
	if page < 1 {
		page = DefaultPage
	}
	if size < 1 {
		size = f.defaultSize
	}
	if size > f.maxSize {
		size = f.maxSize
	}
	// keep Offset within an int32 so it never wraps on any platform
	if maxPage := math.MaxInt32/size + 1; page > maxPage {
		page = maxPage
	}
	return Params{Page: page, Size: size}
}

// Wrap converts a storage page into the response envelope, keeping item
// order and page metadata as returned by the lookup.
func Wrap[S any, T any](page Page[S], mapFn func(S) T) Pagination[T] {
	results := make([]T, 0, len(page.Items))
	for _, item := range page.Items {
		results = append(results, mapFn(item))
	}
	out := Pagination[T]{
		Results:         results,
		TotalCount:      page.Total,
		Page:            page.Page,
		Size:            page.Size,
		NextPageNum:     -1,
		PreviousPageNum: -1,
	}
	if page.Size > 0 && page.Page > 0 && page.Page < math.MaxInt {
		lastPage := page.Total / int64(page.Size)
		if page.Total%int64(page.Size) != 0 {
			lastPage++
		}
		if int64(page.Page) < lastPage {
			out.NextPageNum = page.Page + 1
		}
	}
	if page.Page > 1 {
		out.PreviousPageNum = page.Page - 1
	}
	return out
}
