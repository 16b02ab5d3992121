package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/rafaelleal24/inventory/internal/core/domain"
	"github.com/rafaelleal24/inventory/internal/core/logger"
	"github.com/rafaelleal24/inventory/internal/core/port"
	"github.com/rafaelleal24/inventory/internal/core/serviceerrors"
)

const defaultReportCacheTTL = 5 * time.Minute

// LedgerDeps wires a LedgerService. Catalog, Sales, Purchases, Verifier and
// TxManager are required; the rest may be left nil.
type LedgerDeps struct {
	Catalog   port.CatalogPort
	Sales     port.RecordLogPort[domain.SaleRecord]
	Purchases port.RecordLogPort[domain.PurchaseRecord]
	Verifier  port.CredentialVerifier
	TxManager port.TransactionManager

	StockPolicy domain.StockPolicy

	ReportCache    port.CachePort[domain.Report]
	ReportCacheTTL time.Duration

	Outbox port.OutboxPort

	RateLimiter     port.RateLimiterPort
	AuthMaxAttempts int
	AuthWindow      time.Duration
}

// LedgerService is the inventory ledger: the catalog, the sale and purchase
// logs and the digest of the operator credentials.
type LedgerService struct {
	id     string
	digest domain.Digest

	catalog     port.CatalogPort
	sales       port.RecordLogPort[domain.SaleRecord]
	purchases   port.RecordLogPort[domain.PurchaseRecord]
	verifier    port.CredentialVerifier
	txManager   port.TransactionManager
	stockPolicy domain.StockPolicy

	reportCache    port.CachePort[domain.Report]
	reportCacheTTL time.Duration
	outbox         port.OutboxPort

	rateLimiter     port.RateLimiterPort
	authMaxAttempts int
	authWindow      time.Duration

	// version counts committed mutations. It is only written inside a
	// transaction, so a reader holding the read lock sees a stable value.
	version atomic.Uint64
}

// NewLedgerService creates an empty ledger guarded by the digest of the
// given credentials. The credentials themselves are not kept.
func NewLedgerService(username, password string, deps LedgerDeps) (*LedgerService, error) {
	switch {
	case deps.Catalog == nil:
		return nil, errors.New("ledger: catalog is required")
	case deps.Sales == nil:
		return nil, errors.New("ledger: sale log is required")
	case deps.Purchases == nil:
		return nil, errors.New("ledger: purchase log is required")
	case deps.Verifier == nil:
		return nil, errors.New("ledger: credential verifier is required")
	case deps.TxManager == nil:
		return nil, errors.New("ledger: transaction manager is required")
	}

	policy := deps.StockPolicy
	if policy == "" {
		policy = domain.StockPolicyChecked
	}
	if !policy.IsValid() {
		return nil, fmt.Errorf("ledger: unknown stock policy %q", policy)
	}

	digest, err := deps.Verifier.Digest(username, password)
	if err != nil {
		return nil, fmt.Errorf("ledger: %w", err)
	}

	ttl := deps.ReportCacheTTL
	if ttl <= 0 {
		ttl = defaultReportCacheTTL
	}

	return &LedgerService{
		id:              uuid.NewString(),
		digest:          digest,
		catalog:         deps.Catalog,
		sales:           deps.Sales,
		purchases:       deps.Purchases,
		verifier:        deps.Verifier,
		txManager:       deps.TxManager,
		stockPolicy:     policy,
		reportCache:     deps.ReportCache,
		reportCacheTTL:  ttl,
		outbox:          deps.Outbox,
		rateLimiter:     deps.RateLimiter,
		authMaxAttempts: deps.AuthMaxAttempts,
		authWindow:      deps.AuthWindow,
	}, nil
}

func (s *LedgerService) StockPolicy() domain.StockPolicy {
	return s.stockPolicy
}

// Authenticate returns nil only for the exact pair the ledger was created with.
// When throttling is enabled, a successful attempt clears the failures
// counted for username.
func (s *LedgerService) Authenticate(ctx context.Context, username, password string) error {
	if err := s.throttle(ctx, username); err != nil {
		return err
	}

	ok, err := s.verifier.Verify(s.digest, username, password)
	if err != nil {
		logger.Error(ctx, "auth: verify failed", err, nil)
		return fmt.Errorf("authenticate: %w", err)
	}
	if !ok {
		logger.Warn(ctx, "auth: invalid credentials", map[string]any{"username": username})
		return serviceerrors.NewInvalidCredentialsError()
	}

	s.clearAttempts(ctx, username)
	return nil
}

// WithAuthentication runs fn once if the credentials are valid. Nothing is
// remembered between calls: every mutation authenticates on its own.
func (s *LedgerService) WithAuthentication(ctx context.Context, username, password string, fn func(ctx context.Context) error) error {
	if err := s.Authenticate(ctx, username, password); err != nil {
		return err
	}
	return fn(ctx)
}

func (s *LedgerService) throttle(ctx context.Context, username string) error {
	if s.rateLimiter == nil || s.authMaxAttempts <= 0 {
		return nil
	}

	allowed, err := s.rateLimiter.Allow(ctx, attemptsKey(username), s.authMaxAttempts, s.authWindow)
	if err != nil {
		logger.Error(ctx, "auth: rate limiter failed", err, map[string]any{"username": username})
		return nil
	}
	if !allowed {
		logger.Warn(ctx, "auth: too many attempts", map[string]any{"username": username})
		return serviceerrors.NewTooManyAttemptsError(username)
	}
	return nil
}

func (s *LedgerService) clearAttempts(ctx context.Context, username string) {
	if s.rateLimiter == nil || s.authMaxAttempts <= 0 {
		return
	}
	if err := s.rateLimiter.Reset(ctx, attemptsKey(username)); err != nil {
		logger.Error(ctx, "auth: rate limiter reset failed", err, map[string]any{"username": username})
	}
}

func attemptsKey(username string) string {
	return "auth:" + username
}

// committed must be called inside WithTransaction once a mutation has been
// fully applied.
func (s *LedgerService) committed(ctx context.Context, event domain.Event) {
	s.version.Add(1)

	if s.outbox == nil {
		return
	}
	if err := s.outbox.Enqueue(ctx, event); err != nil {
		logger.Error(ctx, "outbox: enqueue failed", err, map[string]any{
			"event_name":  event.GetName(),
			"entity_name": event.GetEntityName(),
		})
	}
}

// logRejection keeps expected rejections out of the error log.
func logRejection(ctx context.Context, message string, err error, attrs map[string]any) {
	var svcErr *serviceerrors.ServiceError
	if errors.As(err, &svcErr) {
		if attrs == nil {
			attrs = map[string]any{}
		}
		attrs["reason"] = string(svcErr.Reason)
		logger.Debug(ctx, message, attrs)
		return
	}
	logger.Error(ctx, message, err, attrs)
}
