package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/optivision/optivision/internal/analytics"
	"github.com/optivision/optivision/internal/redisx"
)

// dashboard serves the analytics summary, cached in Redis for a few
// minutes so the landing page does not recompute on every reload.
func (h *ShopHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	var key string
	if h.Redis != nil {
		key = fmt.Sprintf(redisx.KeyDashboard, h.Service)
		if s, err := h.Redis.Get(ctx, key).Result(); err == nil && s != "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(s))
			return
		}
	}

	sum := analytics.Compute(h.Store.Customers(), h.Store.Orders(), h.Store.Inventory())
	b, _ := json.Marshal(sum)
	if h.Redis != nil {
		if err := h.Redis.Set(ctx, key, b, redisx.TTLDashboard).Err(); err != nil {
			h.Log.Warn("dashboard cache set failed", zap.Error(err))
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}
