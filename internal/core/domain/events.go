package domain

import "time"

type ProductChange string

const (
	ProductChangeAdded   ProductChange = "added"
	ProductChangeEdited  ProductChange = "edited"
	ProductChangeDeleted ProductChange = "deleted"
)

type ProductChangedEvent struct {
	Change      ProductChange `json:"change"`
	Name        string        `json:"name"`
	OldName     string        `json:"old_name,omitempty"`
	Description string        `json:"description,omitempty"`
	Price       Amount        `json:"price"`
	Quantity    int           `json:"quantity"`
	ChangedAt   time.Time     `json:"changed_at"`
}

func (e *ProductChangedEvent) GetName() string {
	return "product." + string(e.Change)
}

func (e *ProductChangedEvent) GetEntityName() string {
	return "product"
}

func NewProductChangedEvent(change ProductChange, oldName string, product *Product) *ProductChangedEvent {
	return &ProductChangedEvent{
		Change:      change,
		Name:        product.Name,
		OldName:     oldName,
		Description: product.Description,
		Price:       product.Price,
		Quantity:    product.Quantity,
		ChangedAt:   time.Now(),
	}
}

type SaleRecordedEvent struct {
	RecordID    string    `json:"record_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	SalePrice   Amount    `json:"sale_price"`
	LineTotal   Amount    `json:"line_total"`
	RecordedAt  time.Time `json:"recorded_at"`
}

func (e *SaleRecordedEvent) GetName() string {
	return "sale.recorded"
}

func (e *SaleRecordedEvent) GetEntityName() string {
	return "sale"
}

func NewSaleRecordedEvent(record SaleRecord) *SaleRecordedEvent {
	return &SaleRecordedEvent{
		RecordID:    record.ID,
		ProductName: record.ProductName,
		Quantity:    record.Quantity,
		SalePrice:   record.SalePrice,
		LineTotal:   record.LineTotal(),
		RecordedAt:  record.RecordedAt,
	}
}

type PurchaseRecordedEvent struct {
	RecordID      string    `json:"record_id"`
	ProductName   string    `json:"product_name"`
	Quantity      int       `json:"quantity"`
	PurchasePrice Amount    `json:"purchase_price"`
	LineTotal     Amount    `json:"line_total"`
	RecordedAt    time.Time `json:"recorded_at"`
}

func (e *PurchaseRecordedEvent) GetName() string {
	return "purchase.recorded"
}

func (e *PurchaseRecordedEvent) GetEntityName() string {
	return "purchase"
}

func NewPurchaseRecordedEvent(record PurchaseRecord) *PurchaseRecordedEvent {
	return &PurchaseRecordedEvent{
		RecordID:      record.ID,
		ProductName:   record.ProductName,
		Quantity:      record.Quantity,
		PurchasePrice: record.PurchasePrice,
		LineTotal:     record.LineTotal(),
		RecordedAt:    record.RecordedAt,
	}
}
