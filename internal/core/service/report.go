package service

import (
	"context"
	"fmt"

	"github.com/rafaelleal24/inventory/internal/core/domain"
	"github.com/rafaelleal24/inventory/internal/core/logger"
)

func (s *LedgerService) reportCacheKey() string {
	return fmt.Sprintf("report:%s:v%d", s.id, s.version.Load())
}

// GenerateReport snapshots the catalog and both logs. Reports are cached per
// ledger version, so a cached report is never older than the last mutation.
func (s *LedgerService) GenerateReport(ctx context.Context) (*domain.Report, error) {
	var report *domain.Report
	err := s.txManager.WithReadOnly(ctx, func(txCtx context.Context) error {
		key := s.reportCacheKey()

		if s.reportCache != nil {
			cached, err := s.reportCache.Get(txCtx, key)
			if err != nil {
				logger.Error(ctx, "cache: get report failed", err, map[string]any{"key": key})
			}
			if cached != nil {
				logger.Debug(ctx, "report found in cache", map[string]any{"key": key})
				report = cached
				return nil
			}
		}

		products, err := s.catalog.GetAll(txCtx)
		if err != nil {
			return err
		}
		sales, err := s.sales.GetAll(txCtx)
		if err != nil {
			return err
		}
		purchases, err := s.purchases.GetAll(txCtx)
		if err != nil {
			return err
		}
		report = domain.NewReport(products, sales, purchases)

		if s.reportCache != nil {
			if err := s.reportCache.Set(txCtx, key, report, s.reportCacheTTL); err != nil {
				logger.Error(ctx, "cache: set report failed", err, map[string]any{"key": key})
			}
		}
		return nil
	})
	if err != nil {
		logger.Error(ctx, "report: generate failed", err, nil)
		return nil, err
	}
	return report, nil
}
