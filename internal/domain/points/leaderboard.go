package points

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/fluxcrew/lifecycle/internal/domain"
)

// Standing is one leaderboard row.
type Standing struct {
	Rank   int
	Member string
	Points int
}

// Page is a slice of the ranked leaderboard.
type Page struct {
	Standings []Standing
	Page      int
	Pages     int
	Total     int
}

// Rank orders totals by points descending, then member id ascending, and
// assigns 1-based ranks.
func Rank(totals map[string]int) []Standing {
	out := make([]Standing, 0, len(totals))
	for member, pts := range totals {
		out = append(out, Standing{Member: member, Points: pts})
	}
	slices.SortFunc(out, func(a, b Standing) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		return cmp.Compare(a.Member, b.Member)
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// Paginate returns the 0-based page of size rows. An empty leaderboard has a
// single empty page 0.
func Paginate(standings []Standing, page, size int) (Page, error) {
	if size < 1 {
		return Page{}, domain.NewValidationError("page_size", fmt.Sprintf("must be >= 1, got %d", size))
	}
	pages := max((len(standings)+size-1)/size, 1)
	if page < 0 || page >= pages {
		return Page{}, domain.NewValidationError("page", fmt.Sprintf("must be between 0 and %d, got %d", pages-1, page))
	}

	start := page * size
	end := min(start+size, len(standings))
	return Page{
		Standings: standings[start:end],
		Page:      page,
		Pages:     pages,
		Total:     len(standings),
	}, nil
}
