package domain

import "fmt"

// StockPolicy decides whether transactions move the on-hand quantity.
type StockPolicy string

const (
	// StockPolicyChecked checks the quantity on sale but never changes it.
	StockPolicyChecked StockPolicy = "checked"
	// StockPolicyTracked decrements the quantity on sale and increments it on purchase.
	StockPolicyTracked StockPolicy = "tracked"
)

func (p StockPolicy) IsValid() bool {
	return p == StockPolicyChecked || p == StockPolicyTracked
}

func ParseStockPolicy(s string) (StockPolicy, error) {
	p := StockPolicy(s)
	if !p.IsValid() {
		return "", fmt.Errorf("unknown stock policy: %q", s)
	}
	return p, nil
}
