package usecase

import (
	"context"
	"sort"
	"time"

	"form-data-backend/internal/domain"
)

// HealthCheck pings one dependency
type HealthCheck func(ctx context.Context) error

type healthUsecase struct {
	checks  map[string]HealthCheck
	timeout time.Duration
}

// NewHealthUsecase takes named dependency checks, e.g. "database"
func NewHealthUsecase(checks map[string]HealthCheck) domain.HealthUsecase {
	return &healthUsecase{checks: checks, timeout: 2 * time.Second}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	names := make([]string, 0, len(u.checks))
	for name := range u.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make(map[string]string, len(names)+1)
	healthy := true
	for _, name := range names {
		if err := u.checks[name](ctx); err != nil {
			result[name] = "down"
			healthy = false
			continue
		}
		result[name] = "up"
	}

	if healthy {
		result["status"] = "healthy"
	} else {
		result["status"] = "unhealthy"
	}
	return result, healthy
}
