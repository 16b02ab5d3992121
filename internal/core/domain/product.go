package domain

import "time"

// Product is a catalog entry, keyed by Name within the catalog.
type Product struct {
	Name        string
	Description string
	Price       Amount
	Quantity    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewProduct(name string, description string, price Amount, quantity int) *Product {
	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// IsValid reports whether the product may be admitted into a catalog.
func (p *Product) IsValid() bool {
	return p.Name != "" && p.Price.IsPositive() && p.Quantity > 0
}

// Clone returns a copy that shares no state with p.
func (p *Product) Clone() *Product {
	c := *p
	return &c
}
