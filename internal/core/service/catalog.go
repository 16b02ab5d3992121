package service

import (
	"context"

	"github.com/rafaelleal24/inventory/internal/core/domain"
	"github.com/rafaelleal24/inventory/internal/core/logger"
	"github.com/rafaelleal24/inventory/internal/core/serviceerrors"
)

func (s *LedgerService) AddProduct(ctx context.Context, product *domain.Product) error {
	if product == nil || !product.IsValid() {
		return serviceerrors.NewInvalidProductError("invalid product details: name, positive price and positive quantity are required")
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.catalog.Create(txCtx, product); err != nil {
			return err
		}
		s.committed(txCtx, domain.NewProductChangedEvent(domain.ProductChangeAdded, "", product))
		return nil
	})
	if err != nil {
		logRejection(ctx, "catalog: add product failed", err, map[string]any{"product": product.Name})
		return err
	}

	logger.Info(ctx, "Product added", map[string]any{"product": product.Name})
	return nil
}

// EditProduct replaces the product stored under name. The replacement may
// rename it, as long as the new name is free.
func (s *LedgerService) EditProduct(ctx context.Context, name string, product *domain.Product) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.catalog.GetByName(txCtx, name); err != nil {
			return err
		}
		if product == nil || !product.IsValid() {
			return serviceerrors.NewInvalidProductError("invalid product details: name, positive price and positive quantity are required")
		}
		if err := s.catalog.Replace(txCtx, name, product); err != nil {
			return err
		}

		oldName := ""
		if product.Name != name {
			oldName = name
		}
		s.committed(txCtx, domain.NewProductChangedEvent(domain.ProductChangeEdited, oldName, product))
		return nil
	})
	if err != nil {
		logRejection(ctx, "catalog: edit product failed", err, map[string]any{"product": name})
		return err
	}

	logger.Info(ctx, "Product edited", map[string]any{"product": name, "new_name": product.Name})
	return nil
}

// DeleteProduct removes name from the catalog. Recorded transactions that
// reference it are kept.
func (s *LedgerService) DeleteProduct(ctx context.Context, name string) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.catalog.GetByName(txCtx, name)
		if err != nil {
			return err
		}
		if err := s.catalog.Delete(txCtx, name); err != nil {
			return err
		}
		s.committed(txCtx, domain.NewProductChangedEvent(domain.ProductChangeDeleted, "", existing))
		return nil
	})
	if err != nil {
		logRejection(ctx, "catalog: delete product failed", err, map[string]any{"product": name})
		return err
	}

	logger.Info(ctx, "Product deleted", map[string]any{"product": name})
	return nil
}

// GetProduct returns nil without an error when name is not in the catalog.
func (s *LedgerService) GetProduct(ctx context.Context, name string) (*domain.Product, error) {
	var product *domain.Product
	err := s.txManager.WithReadOnly(ctx, func(txCtx context.Context) error {
		p, err := s.catalog.GetByName(txCtx, name)
		if err != nil {
			if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
				return nil
			}
			return err
		}
		product = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *LedgerService) ProductExists(ctx context.Context, name string) (bool, error) {
	product, err := s.GetProduct(ctx, name)
	if err != nil {
		return false, err
	}
	return product != nil, nil
}

// Products returns the catalog in insertion order.
func (s *LedgerService) Products(ctx context.Context) ([]*domain.Product, error) {
	var products []*domain.Product
	err := s.txManager.WithReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		products, err = s.catalog.GetAll(txCtx)
		return err
	})
	return products, err
}
