package service

import (
	"context"
	"fmt"

	"github.com/rafaelleal24/inventory/internal/core/domain"
	"github.com/rafaelleal24/inventory/internal/core/logger"
	"github.com/rafaelleal24/inventory/internal/core/serviceerrors"
)

func validateTransaction(quantity int, price domain.Amount) error {
	if quantity <= 0 {
		return serviceerrors.NewInvalidTransactionError(fmt.Sprintf("invalid transaction details: quantity must be positive, got %d", quantity))
	}
	if price.IsNegative() {
		return serviceerrors.NewInvalidTransactionError(fmt.Sprintf("invalid transaction details: price must not be negative, got %s", price))
	}
	return nil
}

// transactionProduct looks name up for a sale or purchase. Callers hold the
// write lock.
func (s *LedgerService) transactionProduct(ctx context.Context, name string) (*domain.Product, error) {
	product, err := s.catalog.GetByName(ctx, name)
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return nil, serviceerrors.NewTransactionProductNotFoundError(name)
		}
		return nil, err
	}
	return product, nil
}

// restoreQuantity undoes a stock adjustment whose record could not be appended.
func (s *LedgerService) restoreQuantity(ctx context.Context, name string, delta int) {
	if err := s.catalog.AdjustQuantity(ctx, name, delta); err != nil {
		logger.Error(ctx, "transaction: stock compensation failed", err, map[string]any{
			"product": name,
			"delta":   delta,
		})
	}
}

// RecordSale appends a sale of quantity units of productName. The product
// must have at least quantity units on hand. An unknown product is reported
// before invalid details.
func (s *LedgerService) RecordSale(ctx context.Context, productName string, quantity int, salePrice domain.Amount) (*domain.SaleRecord, error) {
	var record domain.SaleRecord
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		product, err := s.transactionProduct(txCtx, productName)
		if err != nil {
			return err
		}
		if err := validateTransaction(quantity, salePrice); err != nil {
			return err
		}
		if quantity > product.Quantity {
			return serviceerrors.NewInsufficientStockError(productName, quantity, product.Quantity)
		}

		record = domain.NewSaleRecord(productName, quantity, salePrice)

		tracked := s.stockPolicy == domain.StockPolicyTracked
		if tracked {
			if err := s.catalog.AdjustQuantity(txCtx, productName, -quantity); err != nil {
				return err
			}
		}
		if err := s.sales.Append(txCtx, record); err != nil {
			if tracked {
				s.restoreQuantity(txCtx, productName, quantity)
			}
			return fmt.Errorf("append sale: %w", err)
		}

		s.committed(txCtx, domain.NewSaleRecordedEvent(record))
		return nil
	})
	if err != nil {
		logRejection(ctx, "transaction: record sale failed", err, map[string]any{
			"product":  productName,
			"quantity": quantity,
		})
		return nil, err
	}

	logger.Info(ctx, "Sale recorded", map[string]any{
		"record_id": record.ID,
		"product":   productName,
		"quantity":  quantity,
		"total":     record.LineTotal().String(),
	})
	return &record, nil
}

// RecordPurchase appends a purchase of quantity units of productName.
func (s *LedgerService) RecordPurchase(ctx context.Context, productName string, quantity int, purchasePrice domain.Amount) (*domain.PurchaseRecord, error) {
	var record domain.PurchaseRecord
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.transactionProduct(txCtx, productName); err != nil {
			return err
		}
		if err := validateTransaction(quantity, purchasePrice); err != nil {
			return err
		}

		record = domain.NewPurchaseRecord(productName, quantity, purchasePrice)

		tracked := s.stockPolicy == domain.StockPolicyTracked
		if tracked {
			if err := s.catalog.AdjustQuantity(txCtx, productName, quantity); err != nil {
				return err
			}
		}
		if err := s.purchases.Append(txCtx, record); err != nil {
			if tracked {
				s.restoreQuantity(txCtx, productName, -quantity)
			}
			return fmt.Errorf("append purchase: %w", err)
		}

		s.committed(txCtx, domain.NewPurchaseRecordedEvent(record))
		return nil
	})
	if err != nil {
		logRejection(ctx, "transaction: record purchase failed", err, map[string]any{
			"product":  productName,
			"quantity": quantity,
		})
		return nil, err
	}

	logger.Info(ctx, "Purchase recorded", map[string]any{
		"record_id": record.ID,
		"product":   productName,
		"quantity":  quantity,
		"total":     record.LineTotal().String(),
	})
	return &record, nil
}

func (s *LedgerService) Sales(ctx context.Context) ([]domain.SaleRecord, error) {
	var records []domain.SaleRecord
	err := s.txManager.WithReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		records, err = s.sales.GetAll(txCtx)
		return err
	})
	return records, err
}

func (s *LedgerService) Purchases(ctx context.Context) ([]domain.PurchaseRecord, error) {
	var records []domain.PurchaseRecord
	err := s.txManager.WithReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		records, err = s.purchases.GetAll(txCtx)
		return err
	})
	return records, err
}

func (s *LedgerService) TotalSales(ctx context.Context) (domain.Amount, error) {
	records, err := s.Sales(ctx)
	if err != nil {
		return domain.Amount{}, err
	}
	return domain.CalculateTotalSales(records), nil
}

func (s *LedgerService) TotalPurchases(ctx context.Context) (domain.Amount, error) {
	records, err := s.Purchases(ctx)
	if err != nil {
		return domain.Amount{}, err
	}
	return domain.CalculateTotalPurchases(records), nil
}

// TotalProfit is total sales minus total purchases, read from one snapshot.
// It is negative when more was spent than earned.
func (s *LedgerService) TotalProfit(ctx context.Context) (domain.Amount, error) {
	var profit domain.Amount
	err := s.txManager.WithReadOnly(ctx, func(txCtx context.Context) error {
		sales, err := s.sales.GetAll(txCtx)
		if err != nil {
			return err
		}
		purchases, err := s.purchases.GetAll(txCtx)
		if err != nil {
			return err
		}
		profit = domain.CalculateTotalSales(sales).Sub(domain.CalculateTotalPurchases(purchases))
		return nil
	})
	return profit, err
}
