package domain

import (
	"time"

	"github.com/google/uuid"
)

// SaleRecord is an immutable entry of the sale log. It references its
// product by name only.
type SaleRecord struct {
	ID          string
	ProductName string
	Quantity    int
	SalePrice   Amount
	RecordedAt  time.Time
}

func NewSaleRecord(productName string, quantity int, salePrice Amount) SaleRecord {
	return SaleRecord{
		ID:          uuid.NewString(),
		ProductName: productName,
		Quantity:    quantity,
		SalePrice:   salePrice,
		RecordedAt:  time.Now(),
	}
}

func (r SaleRecord) LineTotal() Amount {
	return r.SalePrice.Multiply(r.Quantity)
}

// PurchaseRecord is an immutable entry of the purchase log.
type PurchaseRecord struct {
	ID            string
	ProductName   string
	Quantity      int
	PurchasePrice Amount
	RecordedAt    time.Time
}

func NewPurchaseRecord(productName string, quantity int, purchasePrice Amount) PurchaseRecord {
	return PurchaseRecord{
		ID:            uuid.NewString(),
		ProductName:   productName,
		Quantity:      quantity,
		PurchasePrice: purchasePrice,
		RecordedAt:    time.Now(),
	}
}

func (r PurchaseRecord) LineTotal() Amount {
	return r.PurchasePrice.Multiply(r.Quantity)
}

func CalculateTotalSales(records []SaleRecord) Amount {
	total := Amount{}
	for _, r := range records {
		total = total.Add(r.LineTotal())
	}
	return total
}

func CalculateTotalPurchases(records []PurchaseRecord) Amount {
	total := Amount{}
	for _, r := range records {
		total = total.Add(r.LineTotal())
	}
	return total
}
