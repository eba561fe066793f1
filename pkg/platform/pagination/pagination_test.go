package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type PaginationSuite struct {
	suite.Suite
}

func TestPaginationSuite(t *testing.T) {
	suite.Run(t, new(PaginationSuite))
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// TestSliceMatchesFormula checks displayed = full[(p-1)*size : p*size] and
// totalPages = ceil(len/size) across list lengths, sizes and pages.
func (s *PaginationSuite) TestSliceMatchesFormula() {
	for _, size := range []int{6, 10} {
		for n := 0; n <= 35; n++ {
			full := seq(n)
			wantPages := (n + size - 1) / size
			for p := 1; p <= wantPages; p++ {
				got := Paginate(full, p, size)
				end := min(p*size, n)
				s.Equal(full[(p-1)*size:end], got.Items, "n=%d size=%d page=%d", n, size, p)
				s.Equal(wantPages, got.TotalPages)
				s.Equal(n, got.TotalItems)
			}
		}
	}
}

func (s *PaginationSuite) TestClamping() {
	s.Run("page below range clamps to first", func() {
		got := Paginate(seq(25), 0, 10)
		s.Equal(1, got.Page)
		s.Equal(seq(10), got.Items)
	})

	s.Run("page above range clamps to last", func() {
		got := Paginate(seq(25), 9, 10)
		s.Equal(3, got.Page)
		s.Equal([]int{21, 22, 23, 24, 25}, got.Items)
	})

	s.Run("empty list is page one with no items", func() {
		got := Paginate([]string{}, 4, 6)
		s.Equal(1, got.Page)
		s.Equal(0, got.TotalPages)
		s.NotNil(got.Items)
		s.Empty(got.Items)
		s.Empty(got.Window)
	})

	s.Run("returned items do not alias the source", func() {
		full := seq(12)
		got := Paginate(full, 1, 6)
		got.Items[0] = 99
		s.Equal(1, full[0])
	})
}

func (s *PaginationSuite) TestWindow() {
	s.Run("small totals show every page", func() {
		s.Equal(seq(7), Window(3, 7))
		s.Equal(seq(10), Window(10, 10))
	})

	s.Run("window is capped and anchored at the start", func() {
		s.Equal(seq(10), Window(1, 40))
		s.Equal(seq(10), Window(6, 40))
	})

	s.Run("window slides to center the current page", func() {
		got := Window(20, 40)
		s.Len(got, MaxVisiblePages)
		s.Equal(15, got[0])
		s.Equal(24, got[len(got)-1])
		s.Contains(got, 20)
	})

	s.Run("window is anchored at the end", func() {
		got := Window(40, 40)
		s.Equal(31, got[0])
		s.Equal(40, got[len(got)-1])
	})
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(6, 6))
	assert.Equal(t, 2, TotalPages(7, 6))
	assert.Equal(t, 0, TotalPages(5, 0))
}
