package reconciler

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/anticrisis/internal/domain"
)

type Servicer interface {
	ProfilesAfter(ctx context.Context, afterID int64, limit uint) ([]int64, error)
	ReconcileProfiles(ctx context.Context, userIDs []int64) ([]domain.CounterDrift, error)
}
