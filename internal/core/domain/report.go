package domain

// Report is a snapshot of the ledger: catalog lines, then sales and their
// total, then purchases and their total, then the profit.
type Report struct {
	Products       []ProductLine  `json:"products"`
	Sales          []SaleLine     `json:"sales"`
	TotalSales     Amount         `json:"total_sales"`
	Purchases      []PurchaseLine `json:"purchases"`
	TotalPurchases Amount         `json:"total_purchases"`
	TotalProfit    Amount         `json:"total_profit"`
}

type ProductLine struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Amount `json:"price"`
	Quantity    int    `json:"quantity"`
}

type SaleLine struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	SalePrice   Amount `json:"sale_price"`
	LineTotal   Amount `json:"line_total"`
}

type PurchaseLine struct {
	ProductName   string `json:"product_name"`
	Quantity      int    `json:"quantity"`
	PurchasePrice Amount `json:"purchase_price"`
	LineTotal     Amount `json:"line_total"`
}

// NewReport builds a report from the catalog and the two logs, keeping their order.
func NewReport(products []*Product, sales []SaleRecord, purchases []PurchaseRecord) *Report {
	report := &Report{
		Products:  make([]ProductLine, len(products)),
		Sales:     make([]SaleLine, len(sales)),
		Purchases: make([]PurchaseLine, len(purchases)),
	}

	for i, p := range products {
		report.Products[i] = ProductLine{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Quantity:    p.Quantity,
		}
	}

	for i, s := range sales {
		report.Sales[i] = SaleLine{
			ProductName: s.ProductName,
			Quantity:    s.Quantity,
			SalePrice:   s.SalePrice,
			LineTotal:   s.LineTotal(),
		}
	}

	for i, p := range purchases {
		report.Purchases[i] = PurchaseLine{
			ProductName:   p.ProductName,
			Quantity:      p.Quantity,
			PurchasePrice: p.PurchasePrice,
			LineTotal:     p.LineTotal(),
		}
	}

	report.TotalSales = CalculateTotalSales(sales)
	report.TotalPurchases = CalculateTotalPurchases(purchases)
	report.TotalProfit = report.TotalSales.Sub(report.TotalPurchases)
	return report
}
