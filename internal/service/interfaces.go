// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/spiritatlas/entwine/internal/model"
)

// Storage defines the contract for our persistence layer. The analysis
// pipeline depends only on resolved Profile records; storage details
// never leak into the engine.
type Storage interface {
	// Profile operations
	SaveProfile(ctx context.Context, profile *model.Profile) error
	GetProfile(ctx context.Context, id string) (*model.Profile, error)
	ListProfiles(ctx context.Context) ([]*model.Profile, error)
	DeleteProfile(ctx context.Context, id string) error

	// Report operations
	SaveReport(ctx context.Context, report *model.CompatibilityReport) error
	GetReport(ctx context.Context, id string) (*model.CompatibilityReport, error)
	GetReportsByProfile(ctx context.Context, profileID string) ([]*model.CompatibilityReport, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
