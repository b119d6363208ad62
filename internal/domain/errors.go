package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies workflow failures so the transport layer can map them
// to status codes without inspecting message text.
type ErrorKind string

const (
	// KindValidation missing/malformed input, enum violation, bad date format
	KindValidation ErrorKind = "validation"
	// KindNotFound referenced employee/referral/case does not exist
	KindNotFound ErrorKind = "not_found"
	// KindTenantMismatch referenced entity belongs to a different tenant.
	// Reported as a generic denial; must not reveal that the entity exists.
	KindTenantMismatch ErrorKind = "tenant_mismatch"
	// KindMismatch referral/employee or case/employee linkage inconsistency
	KindMismatch ErrorKind = "mismatch"
)

// Error is the typed failure returned by workflow operations.
type Error struct {
	Kind   ErrorKind
	Field  string // offending field, empty when not field-specific
	Detail string // human-readable message, safe to return to the caller
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// NewValidationError creates a field-specific validation failure
func NewValidationError(field, detail string) *Error {
	return &Error{Kind: KindValidation, Field: field, Detail: detail}
}

// NewNotFoundError creates a not-found failure for the named entity
func NewNotFoundError(detail string) *Error {
	return &Error{Kind: KindNotFound, Detail: detail}
}

// NewTenantMismatchError creates a cross-tenant denial. The detail is always
// the same generic message so callers cannot probe other tenants' data.
func NewTenantMismatchError() *Error {
	return &Error{Kind: KindTenantMismatch, Detail: "Cross-tenant access denied"}
}

// NewMismatchError creates a linkage-inconsistency failure
func NewMismatchError(detail string) *Error {
	return &Error{Kind: KindMismatch, Detail: detail}
}

// KindOf extracts the ErrorKind from err, or "" for infrastructure errors.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}
