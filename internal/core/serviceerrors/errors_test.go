package serviceerrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsOfKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind ErrorKind
		want bool
	}{
		{"matching kind", NewNotFoundError("x"), KindNotFound, true},
		{"other kind", NewConflictError("x"), KindNotFound, false},
		{"wrapped", fmt.Errorf("op: %w", NewDuplicateProductError("Widget")), KindConflict, true},
		{"plain error", errors.New("boom"), KindNotFound, false},
		{"nil", nil, KindNotFound, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOfKind(tt.err, tt.kind); got != tt.want {
				t.Errorf("IsOfKind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorsIs(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"same reason different message", NewInsufficientStockError("Widget", 10, 5), ErrInsufficientStock, true},
		{"catalog vs transaction not found", NewCatalogProductNotFoundError("Widget"), ErrTransactionProductNotFound, false},
		{"transaction not found", NewTransactionProductNotFoundError("Widget"), ErrTransactionProductNotFound, true},
		{"wrapped", fmt.Errorf("add: %w", NewInvalidProductError("bad")), ErrInvalidProduct, true},
		{"kind only target", NewDuplicateProductError("Widget"), NewConflictError(""), true},
		{"credentials", NewInvalidCredentialsError(), ErrInvalidCredentials, true},
		{"too many attempts is not invalid credentials", NewTooManyAttemptsError("admin"), ErrInvalidCredentials, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasReason(t *testing.T) {
	err := fmt.Errorf("ledger: %w", NewCatalogProductNotFoundError("Widget"))

	if !HasReason(err, DomainCatalog, ReasonProductNotFound) {
		t.Fatal("expected catalog product_not_found")
	}
	if HasReason(err, DomainTransaction, ReasonProductNotFound) {
		t.Fatal("did not expect transaction product_not_found")
	}
}

func TestConstructors_DoNotMutateSentinels(t *testing.T) {
	_ = NewDuplicateProductError("Widget")
	if ErrDuplicateProduct.Message != "product already exists" {
		t.Fatalf("sentinel message changed to %q", ErrDuplicateProduct.Message)
	}
}
