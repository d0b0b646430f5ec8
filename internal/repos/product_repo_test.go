package repos_test

import (
	"testing"

	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"edshop/internal/domain"
	"edshop/internal/repos"
)

func testRepo(t *testing.T) *repos.ProductRepo {
	t.Helper()
	db, err := repos.OpenDB(":memory:", 0)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return repos.NewProductRepo(db)
}

func fixture() []domain.Product {
	return []domain.Product{
		{Name: "Chemise EDS 1", Description: "Produit de haute qualité", Category: "homme", Price: 39.90, ImagesJSON: `["a.jpg","b.jpg"]`, Quantity: 5},
		{Name: "Jean EDS 2", Description: "Confort et style", Category: "homme", Price: 49.90, ImagesJSON: `["c.jpg"]`, Quantity: 3},
		{Name: "Robe EDS 3", Description: "Design élégant et moderne", Category: "femme", Price: 59.90, ImagesJSON: `["d.jpg"]`, Quantity: 8},
		{Name: "Jouets EDS 4", Description: "Pour toutes les occasions", Category: "enfant", Price: 19.90, ImagesJSON: `["e.jpg"]`, Quantity: 0},
	}
}

func TestListAndCountShareTheFilter(t *testing.T) {
	repo := testRepo(t)
	if err := repo.ReplaceAll(fixture()); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name     string
		category string
		search   string
		want     int
	}{
		{"all", "", "", 4},
		{"category homme", "homme", "", 2},
		{"category femme", "femme", "", 1},
		{"search in name", "", "chemise", 1},
		{"search uppercase", "", "CHEMISE", 1},
		{"search in description", "", "élégant", 1},
		{"search no match", "", "zzzz", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items, err := repo.List(tc.category, tc.search, 10, 0)
			if err != nil {
				t.Fatal(err)
			}
			total, err := repo.Count(tc.category, tc.search)
			if err != nil {
				t.Fatal(err)
			}
			if len(items) != tc.want || total != tc.want {
				t.Fatalf("want %d matches, got len=%d total=%d", tc.want, len(items), total)
			}
		})
	}
}

func TestListPaginatesInStableOrder(t *testing.T) {
	repo := testRepo(t)
	if err := repo.ReplaceAll(fixture()); err != nil {
		t.Fatal(err)
	}

	first, err := repo.List("", "", 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	second, err := repo.List("", "", 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("want two pages of 2, got %d and %d", len(first), len(second))
	}
	if first[1].ID >= second[0].ID {
		t.Fatalf("pages must not overlap: %d vs %d", first[1].ID, second[0].ID)
	}

	past, err := repo.List("", "", 2, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(past) != 0 {
		t.Fatalf("past-the-end offset must be empty, got %d items", len(past))
	}
}

func TestGetDecodesImages(t *testing.T) {
	repo := testRepo(t)
	if err := repo.ReplaceAll(fixture()); err != nil {
		t.Fatal(err)
	}
	items, err := repo.List("", "chemise", 1, 0)
	if err != nil || len(items) != 1 {
		t.Fatalf("fixture lookup failed: %v", err)
	}

	p, err := repo.Get(items[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	imgs := p.Images()
	if len(imgs) != 2 || p.PrimaryImage() != "a.jpg" {
		t.Fatalf("want 2 images with primary a.jpg, got %v", imgs)
	}
}

func TestReplaceAllTruncatesFirst(t *testing.T) {
	repo := testRepo(t)
	if err := repo.ReplaceAll(fixture()); err != nil {
		t.Fatal(err)
	}
	if err := repo.ReplaceAll(fixture()[:1]); err != nil {
		t.Fatal(err)
	}
	total, err := repo.Count("", "")
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 {
		t.Fatalf("want 1 product after replace, got %d", total)
	}
}
