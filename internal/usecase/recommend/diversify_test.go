package recommend

import (
	"testing"

	"github.com/gemacjr/product-recommender-engine/internal/domain"
)

func TestDiversify_RoundRobinAcrossCategories(t *testing.T) {
	candidates := []domain.Product{
		inCategory(1, domain.CategoryElectronics),
		inCategory(2, domain.CategoryElectronics),
		inCategory(3, domain.CategoryBooks),
		inCategory(4, domain.CategorySportsOutdoors),
		inCategory(5, domain.CategoryElectronics),
	}

	got := diversify(candidates, 4)

	wantIDs := []int64{1, 3, 4, 2}
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d products, want %d", len(got), len(wantIDs))
	}
	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Errorf("position %d: got %d, want %d", i, got[i].ID, want)
		}
	}
}

func TestDiversify_WrapsAroundWhenGroupsExhaust(t *testing.T) {
	candidates := []domain.Product{
		inCategory(1, domain.CategoryElectronics),
		inCategory(2, domain.CategoryElectronics),
		inCategory(3, domain.CategoryElectronics),
		inCategory(4, domain.CategoryBooks),
	}

	got := diversify(candidates, 4)

	if len(got) != 4 {
		t.Fatalf("got %d products, want 4", len(got))
	}
	// First pass takes one per category, later passes drain the remainder.
	wantIDs := []int64{1, 4, 2, 3}
	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Errorf("position %d: got %d, want %d", i, got[i].ID, want)
		}
	}
}

func TestDiversify_FewerCandidatesThanLimit(t *testing.T) {
	candidates := []domain.Product{
		inCategory(1, domain.CategoryBooks),
		inCategory(2, domain.CategoryToysGames),
	}

	got := diversify(candidates, 10)
	if len(got) != 2 {
		t.Errorf("got %d products, want all 2 candidates", len(got))
	}
}

func TestDiversify_EmptyInputs(t *testing.T) {
	if got := diversify(nil, 5); len(got) != 0 {
		t.Errorf("nil candidates: got %d products", len(got))
	}
	if got := diversify([]domain.Product{inCategory(1, domain.CategoryBooks)}, 0); len(got) != 0 {
		t.Errorf("zero limit: got %d products", len(got))
	}
}
