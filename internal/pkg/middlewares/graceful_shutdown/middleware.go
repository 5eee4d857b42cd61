package graceful_shutdown

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"

	"fulfillment/internal/generated/dto"
)

const codeShuttingDown = "SHUTTING_DOWN"

func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isShuttingDown.Load() && ongoingCtx.Err() != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(dto.Error{
					Code:    codeShuttingDown,
					Message: "service is shutting down",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
