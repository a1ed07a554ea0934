package obs

import (
	"context"
	"time"

	"delivery-time-service/internal/platform/logger"
)

// Time logs the duration of an operation when the returned func is called.
// Usage: defer obs.Time(ctx, "op.name")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)
		l := logger.C(ctx)

		if errp != nil && *errp != nil {
			l.Warn().Str("op", name).Dur("dur", dur).Err(*errp).Msg("operation failed")
			return
		}
		l.Debug().Str("op", name).Dur("dur", dur).Msg("operation done")
	}
}
