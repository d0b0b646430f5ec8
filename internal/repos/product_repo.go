package repos

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"edshop/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id, name, COALESCE(description,'') AS description, price, category, images, quantity, created_at`

// filtered applies the category/search predicate to a builder. Both the
// page query and the count query go through here so they can never use
// diverging WHERE clauses.
func filtered(b sq.SelectBuilder, category, search string) sq.SelectBuilder {
	if category != "" {
		b = b.Where(sq.Eq{"category": category})
	}
	if search != "" {
		pat := "%" + strings.ToLower(search) + "%"
		b = b.Where(sq.Or{
			sq.Like{"LOWER(name)": pat},
			sq.Like{"LOWER(description)": pat},
		})
	}
	return b
}

// List fetches one page of the filtered catalog in stable id order.
// Presentation shuffling is the service's job, not the store's.
func (r *ProductRepo) List(category, search string, limit, offset int) ([]domain.Product, error) {
	query, args, err := filtered(sq.Select(productCols).From("products"), category, search).
		OrderBy("id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, err
	}
	out := []domain.Product{}
	if err := r.db.Select(&out, query, args...); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the total matching the same predicate as List, ignoring
// pagination.
func (r *ProductRepo) Count(category, search string) (int, error) {
	query, args, err := filtered(sq.Select("COUNT(*)").From("products"), category, search).ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := r.db.Get(&n, query, args...); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	return p, err
}

// ReplaceAll truncates the catalog and bulk-inserts the given products in
// one transaction. This is the only write path to the products table.
func (r *ProductRepo) ReplaceAll(ps []domain.Product) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM products`); err != nil {
		return err
	}
	for _, p := range ps {
		if _, err := tx.Exec(`
			INSERT INTO products(name, description, price, category, images, quantity, created_at)
			VALUES(?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		`, p.Name, p.Description, p.Price, p.Category, p.ImagesJSON, p.Quantity); err != nil {
			return err
		}
	}
	return tx.Commit()
}
