// Package pagination slices an already-fetched list into fixed-size pages and
// computes the page-number window shown under console tables.
package pagination

// MaxVisiblePages caps the page-number buttons rendered at once.
const MaxVisiblePages = 10

// Page is one slice of a list plus the numbers needed to render its pager.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int   `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	Window     []int `json:"window"`
}

// Paginate returns items[(page-1)*size : page*size]. Pages outside
// [1, TotalPages] are clamped; an empty list still reports page 1.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = 1
	}
	total := len(items)
	totalPages := TotalPages(total, size)

	current := page
	if current < 1 {
		current = 1
	}
	if last := max(totalPages, 1); current > last {
		current = last
	}

	start := min((current-1)*size, total)
	end := min(current*size, total)

	slice := make([]T, end-start)
	copy(slice, items[start:end])

	return Page[T]{
		Items:      slice,
		Page:       current,
		PageSize:   size,
		TotalItems: total,
		TotalPages: totalPages,
		Window:     Window(current, totalPages),
	}
}

// TotalPages is ceil(total/size).
func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Window returns the page numbers to render. Once totalPages exceeds
// MaxVisiblePages the window slides so the current page stays centered.
func Window(current, totalPages int) []int {
	if totalPages <= 0 {
		return []int{}
	}
	start, end := 1, totalPages
	if totalPages > MaxVisiblePages {
		start = current - MaxVisiblePages/2
		start = max(start, 1)
		start = min(start, totalPages-MaxVisiblePages+1)
		end = start + MaxVisiblePages - 1
	}
	out := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		out = append(out, p)
	}
	return out
}
