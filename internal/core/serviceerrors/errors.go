package serviceerrors

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindConflict
	KindUnprocessableEntity
	KindInvalidRequest
	KindUnauthorized
	KindTooManyRequests
)

// Domain is the part of the ledger that rejected the request.
type Domain string

const (
	DomainAuth        Domain = "auth"
	DomainCatalog     Domain = "catalog"
	DomainTransaction Domain = "transaction"
)

type Reason string

const (
	ReasonInvalidCredentials Reason = "invalid_credentials"
	ReasonTooManyAttempts    Reason = "too_many_attempts"
	ReasonInvalidProduct     Reason = "invalid_product"
	ReasonDuplicateProduct   Reason = "duplicate_product"
	ReasonProductNotFound    Reason = "product_not_found"
	ReasonInsufficientStock  Reason = "insufficient_stock"
	ReasonInvalidTransaction Reason = "invalid_transaction"
)

// Sentinels for errors.Is. Only Domain and Reason are compared, so the
// errors returned by the constructors below match them whatever their message.
var (
	ErrInvalidCredentials         = &ServiceError{Kind: KindUnauthorized, Domain: DomainAuth, Reason: ReasonInvalidCredentials, Message: "invalid username or password"}
	ErrTooManyAttempts            = &ServiceError{Kind: KindTooManyRequests, Domain: DomainAuth, Reason: ReasonTooManyAttempts, Message: "too many authentication attempts"}
	ErrInvalidProduct             = &ServiceError{Kind: KindUnprocessableEntity, Domain: DomainCatalog, Reason: ReasonInvalidProduct, Message: "invalid product details"}
	ErrDuplicateProduct           = &ServiceError{Kind: KindConflict, Domain: DomainCatalog, Reason: ReasonDuplicateProduct, Message: "product already exists"}
	ErrCatalogProductNotFound     = &ServiceError{Kind: KindNotFound, Domain: DomainCatalog, Reason: ReasonProductNotFound, Message: "product not found"}
	ErrTransactionProductNotFound = &ServiceError{Kind: KindNotFound, Domain: DomainTransaction, Reason: ReasonProductNotFound, Message: "product does not exist"}
	ErrInsufficientStock          = &ServiceError{Kind: KindUnprocessableEntity, Domain: DomainTransaction, Reason: ReasonInsufficientStock, Message: "out of stock"}
	ErrInvalidTransaction         = &ServiceError{Kind: KindInvalidRequest, Domain: DomainTransaction, Reason: ReasonInvalidTransaction, Message: "invalid transaction details"}
)

func IsOfKind(err error, kind ErrorKind) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind == kind
	}
	return false
}

func HasReason(err error, domain Domain, reason Reason) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Domain == domain && svcErr.Reason == reason
	}
	return false
}

type ServiceError struct {
	Kind    ErrorKind
	Domain  Domain
	Reason  Reason
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// Is matches on Domain and Reason. A target without a Reason matches on Kind.
func (e *ServiceError) Is(target error) bool {
	t, ok := target.(*ServiceError)
	if !ok {
		return false
	}
	if t.Reason == "" {
		return t.Kind == e.Kind
	}
	return t.Domain == e.Domain && t.Reason == e.Reason
}

func NewNotFoundError(message string) *ServiceError {
	return &ServiceError{Kind: KindNotFound, Message: message}
}

func NewConflictError(message string) *ServiceError {
	return &ServiceError{Kind: KindConflict, Message: message}
}

func NewUnprocessableEntityError(message string) *ServiceError {
	return &ServiceError{Kind: KindUnprocessableEntity, Message: message}
}

func NewInvalidRequestError(message string) *ServiceError {
	return &ServiceError{Kind: KindInvalidRequest, Message: message}
}

func NewInvalidCredentialsError() *ServiceError {
	return withMessage(ErrInvalidCredentials, ErrInvalidCredentials.Message)
}

func NewTooManyAttemptsError(username string) *ServiceError {
	return withMessage(ErrTooManyAttempts, fmt.Sprintf("too many authentication attempts for %q, try again later", username))
}

func NewInvalidProductError(message string) *ServiceError {
	return withMessage(ErrInvalidProduct, message)
}

func NewDuplicateProductError(name string) *ServiceError {
	return withMessage(ErrDuplicateProduct, fmt.Sprintf("product %q already exists", name))
}

func NewCatalogProductNotFoundError(name string) *ServiceError {
	return withMessage(ErrCatalogProductNotFound, fmt.Sprintf("product %q not found", name))
}

func NewTransactionProductNotFoundError(name string) *ServiceError {
	return withMessage(ErrTransactionProductNotFound, fmt.Sprintf("product %q does not exist", name))
}

func NewInsufficientStockError(name string, requested, available int) *ServiceError {
	return withMessage(ErrInsufficientStock, fmt.Sprintf("out of stock: %d of %q requested, %d available", requested, name, available))
}

func NewInvalidTransactionError(message string) *ServiceError {
	return withMessage(ErrInvalidTransaction, message)
}

func withMessage(base *ServiceError, message string) *ServiceError {
	e := *base
	e.Message = message
	return &e
}
