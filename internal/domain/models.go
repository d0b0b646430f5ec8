package domain

import "encoding/json"

type Product struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price"`
	Category    string  `db:"category" json:"category"` // homme | femme | enfant
	ImagesJSON  string  `db:"images" json:"-"`
	Quantity    int     `db:"quantity" json:"quantity"`
	CreatedAt   string  `db:"created_at" json:"createdAt"`
}

// Images decodes the serialized image list. The first entry is the
// primary display image.
func (p Product) Images() []string {
	var out []string
	if err := json.Unmarshal([]byte(p.ImagesJSON), &out); err != nil {
		return nil
	}
	return out
}

func (p Product) PrimaryImage() string {
	imgs := p.Images()
	if len(imgs) == 0 {
		return ""
	}
	return imgs[0]
}

// MarshalJSON flattens the stored image list into the API shape the
// storefront cart snapshots from.
func (p Product) MarshalJSON() ([]byte, error) {
	type alias Product
	return json.Marshal(struct {
		alias
		Images []string `json:"images"`
		Image  string   `json:"image"`
	}{alias(p), p.Images(), p.PrimaryImage()})
}

// OrderLine is one snapshotted cart line as submitted at checkout.
// It never references a live product row.
type OrderLine struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Qty       int     `json:"quantity"`
}

type Order struct {
	ID        string  `db:"id" json:"id"`
	Name      string  `db:"customer_name" json:"name"`
	Phone     string  `db:"customer_phone" json:"phone"`
	Address   string  `db:"customer_address" json:"address"`
	ItemsJSON string  `db:"items" json:"-"`
	Total     float64 `db:"total" json:"total"`
	Status    string  `db:"status" json:"status"` // pending | shipped | delivered | cancelled
	CreatedAt string  `db:"created_at" json:"createdAt"`
}

func (o Order) Lines() []OrderLine {
	var out []OrderLine
	if err := json.Unmarshal([]byte(o.ItemsJSON), &out); err != nil {
		return nil
	}
	return out
}

type ChatReply struct {
	Reply string `json:"reply"`
}
