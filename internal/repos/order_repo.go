package repos

import (
	"github.com/jmoiron/sqlx"

	"edshop/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// Create inserts a new order with its snapshotted line items.
func (r *OrderRepo) Create(o domain.Order) error {
	_, err := r.db.Exec(`
	  INSERT INTO orders
	    (id, customer_name, customer_phone, customer_address, items, total, status, created_at)
	  VALUES
	    (?,  ?,             ?,              ?,                ?,     ?,     ?,      CURRENT_TIMESTAMP)
	`, o.ID, o.Name, o.Phone, o.Address, o.ItemsJSON, o.Total, o.Status)
	return err
}

func (r *OrderRepo) Get(id string) (domain.Order, error) {
	var o domain.Order
	err := r.db.Get(&o, `
		SELECT id, customer_name, customer_phone, customer_address, items, total, status, created_at
		FROM orders
		WHERE id = ?
	`, id)
	return o, err
}

// ListLatest returns the most recent orders for the dashboard.
func (r *OrderRepo) ListLatest(limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 100
	}
	out := []domain.Order{}
	err := r.db.Select(&out, `
		SELECT id, customer_name, customer_phone, customer_address, items, total, status, created_at
		FROM orders
		ORDER BY datetime(created_at) DESC
		LIMIT ?
	`, limit)
	return out, err
}

func (r *OrderRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM orders`)
	return n, err
}

func (r *OrderRepo) UpdateStatus(id, status string) error {
	_, err := r.db.Exec(`UPDATE orders SET status = ? WHERE id = ?`, status, id)
	return err
}
