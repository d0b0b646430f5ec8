package handlers_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"edshop/internal/config"
	"edshop/internal/domain"
	"edshop/internal/http/handlers"
	"edshop/internal/repos"
)

// newAPIApp wires only the JSON routes; page routes need templates and
// are exercised manually.
func newAPIApp(t *testing.T, ps []domain.Product) (*fiber.App, *repos.ProductRepo) {
	t.Helper()
	db, err := repos.OpenDB(":memory:", 0)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	prodRepo := repos.NewProductRepo(db)
	if len(ps) > 0 {
		if err := prodRepo.ReplaceAll(ps); err != nil {
			t.Fatal(err)
		}
	}

	deps := handlers.NewDeps(db, config.Config{SeedCount: 30})
	app := fiber.New()
	api := app.Group("/api/v1")
	api.Get("/products", deps.CatalogHandler.Products)
	api.Post("/orders", deps.OrderHandler.Place)
	api.Post("/chat", deps.ChatHandler.Reply)
	api.Post("/admin/reseed", deps.AdminHandler.RunReseed)

	return app, prodRepo
}

func apiFixture(n int) []domain.Product {
	cats := []string{"homme", "femme", "enfant"}
	out := make([]domain.Product, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.Product{
			Name:       fmt.Sprintf("Article EDS %d", i+1),
			Category:   cats[i%3],
			Price:      29.90,
			ImagesJSON: `["a.jpg"]`,
		})
	}
	return out
}

type pageResp struct {
	Items []struct {
		ID       int64   `json:"id"`
		Name     string  `json:"name"`
		Category string  `json:"category"`
		Price    float64 `json:"price"`
		Image    string  `json:"image"`
	} `json:"items"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
	Page       int `json:"page"`
}

func getProducts(t *testing.T, app *fiber.App, query string) pageResp {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/products"+query, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status %d", query, resp.StatusCode)
	}
	var out pageResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	return out
}

func TestProductsAPINormalizesInput(t *testing.T) {
	app, _ := newAPIApp(t, apiFixture(30))

	all := getProducts(t, app, "")
	if all.Total != 30 || len(all.Items) != 12 || all.TotalPages != 3 {
		t.Fatalf("browse-all: %+v", all)
	}
	if all.Items[0].Image != "a.jpg" {
		t.Fatalf("items must expose the primary image, got %q", all.Items[0].Image)
	}

	// An out-of-set category is dropped, not an error
	bogus := getProducts(t, app, "?category=admin")
	if bogus.Total != 30 {
		t.Fatalf("category=admin must behave as unfiltered, total=%d", bogus.Total)
	}

	// Valid category filters and wins over search
	homme := getProducts(t, app, "?category=homme&search=zzzz")
	if homme.Total != 10 {
		t.Fatalf("category=homme: want 10, got %d", homme.Total)
	}

	// One-character search is dropped
	short := getProducts(t, app, "?search=x")
	if short.Total != 30 {
		t.Fatalf("1-char search must behave as unfiltered, total=%d", short.Total)
	}

	// Two characters that match nothing: empty success, not a failure
	miss := getProducts(t, app, "?search=zz")
	if miss.Total != 0 || len(miss.Items) != 0 {
		t.Fatalf("no-match search: %+v", miss)
	}

	// Junk page defaults to 1; past-the-end page is empty but counted
	junk := getProducts(t, app, "?page=abc")
	if junk.Page != 1 {
		t.Fatalf("page=abc must default to 1, got %d", junk.Page)
	}
	past := getProducts(t, app, "?page=99")
	if len(past.Items) != 0 || past.Total != 30 || past.TotalPages != 3 {
		t.Fatalf("past-the-end page: %+v", past)
	}
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestOrderIntake(t *testing.T) {
	app, _ := newAPIApp(t, apiFixture(3))

	// Missing address
	resp := postJSON(t, app, "/api/v1/orders",
		`{"name":"Awa","phone":"0612345678","address":"","items":[{"id":1,"name":"Article EDS 1","price":29.9,"quantity":1}],"total":29.9}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing address: want 400, got %d", resp.StatusCode)
	}

	// Empty cart
	resp = postJSON(t, app, "/api/v1/orders",
		`{"name":"Awa","phone":"0612345678","address":"Paris","items":[],"total":0}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty cart: want 400, got %d", resp.StatusCode)
	}

	// Valid submission
	resp = postJSON(t, app, "/api/v1/orders",
		`{"name":"Awa","phone":"0612345678","address":"12 rue des Lilas","items":[{"id":1,"name":"Article EDS 1","price":29.9,"image":"a.jpg","quantity":2}],"total":59.8}`)
	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("valid order: want 201, got %d body=%s", resp.StatusCode, body)
	}
	var out struct {
		OrderID string `json:"orderId"`
		Status  string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.OrderID == "" || out.Status != "pending" {
		t.Fatalf("bad order response: %+v", out)
	}
}

func TestChatEndpoint(t *testing.T) {
	app, _ := newAPIApp(t, nil)

	resp := postJSON(t, app, "/api/v1/chat", `{"message":"délai de livraison ?"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("chat: want 200, got %d", resp.StatusCode)
	}
	var out struct {
		Reply string `json:"reply"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.Reply, "livraison") {
		t.Fatalf("unexpected reply: %q", out.Reply)
	}
}

func TestReseedEndpointReplacesCatalog(t *testing.T) {
	app, repo := newAPIApp(t, apiFixture(3))

	resp := postJSON(t, app, "/api/v1/admin/reseed", ``)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("reseed: want 200, got %d", resp.StatusCode)
	}
	var out struct {
		Seeded int `json:"seeded"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Seeded != 30 {
		t.Fatalf("want 30 seeded (config count), got %d", out.Seeded)
	}

	total, err := repo.Count("", "")
	if err != nil {
		t.Fatal(err)
	}
	if total != 30 {
		t.Fatalf("catalog should hold 30 products after reseed, got %d", total)
	}
}
