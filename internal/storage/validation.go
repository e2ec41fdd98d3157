// Package storage provides the data persistence layer for the entwine application.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spiritatlas/entwine/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrNilParameter   = errors.New("parameter cannot be nil")
	ErrInvalidProfile = errors.New("invalid profile")
	ErrInvalidReport  = errors.New("invalid report")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateProfile validates a profile before persistence.
func validateProfile(p *model.Profile) error {
	if p == nil {
		return fmt.Errorf("%w: profile", ErrNilParameter)
	}
	if p.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidProfile)
	}
	if p.ProfileName == "" {
		return fmt.Errorf("%w: missing profile name", ErrInvalidProfile)
	}
	return nil
}

// validateReport validates a report before persistence.
func validateReport(r *model.CompatibilityReport) error {
	if r == nil {
		return fmt.Errorf("%w: report", ErrNilParameter)
	}
	if r.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidReport)
	}
	if r.ProfileA == nil || r.ProfileB == nil {
		return fmt.Errorf("%w: missing profiles", ErrInvalidReport)
	}
	return nil
}
