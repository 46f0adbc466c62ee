package domain

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrUpstream           = errors.New("upstream request failed")
	ErrStorage            = errors.New("storage failure")
	ErrUnauthorizedAccess = errors.New("unauthorized access")
)

// ValidationError reports malformed or missing input. Fields maps the
// offending field name to the rule it broke.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, rule string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: rule}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ConflictError is returned when a food item with the same fdcId is already
// stored. Existing holds that stored record.
type ConflictError struct {
	Existing FoodItem
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: fdcId %s", ErrFoodItemExists.Error(), e.Existing.FdcID)
}

func (e *ConflictError) Unwrap() error { return ErrFoodItemExists }

// UpstreamError describes a failed call to the USDA API.
type UpstreamError struct {
	Op         string
	StatusCode int
	Detail     string
	Err        error
}

func (e *UpstreamError) Error() string {
	var b strings.Builder
	b.WriteString("usda: ")
	b.WriteString(e.Op)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " returned status %d", e.StatusCode)
	} else {
		b.WriteString(" failed")
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	} else if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Is lets callers match on the operation-specific sentinels as well as the
// generic ErrUpstream. A 404 from the food endpoint also counts as not found.
func (e *UpstreamError) Is(target error) bool {
	switch target {
	case ErrUpstream:
		return true
	case ErrFoodItemNotFound:
		return e.Op == OpFetchFood && e.StatusCode == http.StatusNotFound
	case ErrCatalogUnavailable:
		return e.Op == OpFetchNutrients
	case ErrSearchFailed:
		return e.Op == OpSearchFoods
	}
	return false
}

// StorageError wraps a persistence failure so it matches ErrStorage.
func StorageError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}
