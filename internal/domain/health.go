package domain

import "context"

type HealthUsecase interface {
	// Check reports "healthy" only when every dependency answers
	Check(ctx context.Context) (map[string]string, bool)
}
