package usecase

import (
	"context"
	"time"
)

// HealthCheck probes one dependency
type HealthCheck func(ctx context.Context) error

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	checks map[string]HealthCheck
}

// NewHealthUsecase creates a health usecase probing the named dependencies
func NewHealthUsecase(checks map[string]HealthCheck) HealthUsecase {
	return &healthUsecase{checks: checks}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	result := map[string]string{"status": "ok"}
	for name, check := range u.checks {
		if check == nil {
			result[name] = "disabled"
			continue
		}
		if err := check(ctx); err != nil {
			result[name] = "down"
			result["status"] = "degraded"
			continue
		}
		result[name] = "ok"
	}
	return result
}
