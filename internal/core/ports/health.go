package ports

import "context"

// HealthChecker reports readiness of a backing dependency.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}
