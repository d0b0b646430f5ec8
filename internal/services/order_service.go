package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"edshop/internal/domain"
	"edshop/internal/repos"
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrEmptyCart    = errors.New("cart is empty")
)

// Intake is a checkout submission as received from the browser-local cart.
type Intake struct {
	Name    string             `json:"name"`
	Phone   string             `json:"phone"`
	Address string             `json:"address"`
	Items   []domain.OrderLine `json:"items"`
	Total   float64            `json:"total"`
}

type OrderService struct {
	Orders *repos.OrderRepo
}

func NewOrderService(orders *repos.OrderRepo) *OrderService {
	return &OrderService{Orders: orders}
}

// Place validates the submission and persists it as an immutable snapshot.
// The total is recomputed from the submitted lines; the client value is
// returned alongside so callers can log a mismatch.
func (s *OrderService) Place(in Intake) (domain.Order, float64, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	address := strings.TrimSpace(in.Address)
	if name == "" || phone == "" || address == "" {
		return domain.Order{}, 0, ErrMissingField
	}
	if len(in.Items) == 0 {
		return domain.Order{}, 0, ErrEmptyCart
	}

	total := 0.0
	for _, it := range in.Items {
		if it.Qty < 1 {
			return domain.Order{}, 0, fmt.Errorf("line %d: %w", it.ProductID, ErrEmptyCart)
		}
		total += it.Price * float64(it.Qty)
	}

	itemsJSON, err := json.Marshal(in.Items)
	if err != nil {
		return domain.Order{}, 0, err
	}

	o := domain.Order{
		ID:        uuid.NewString(),
		Name:      name,
		Phone:     phone,
		Address:   address,
		ItemsJSON: string(itemsJSON),
		Total:     total,
		Status:    "pending",
	}
	if err := s.Orders.Create(o); err != nil {
		return domain.Order{}, 0, err
	}
	return o, in.Total, nil
}
