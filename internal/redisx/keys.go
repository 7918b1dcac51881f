package redisx

import "time"

const (
	// Store snapshot blob: snapshot:{name} -> JSON of the three collections
	KeySnapshot = "snapshot:%s"

	// Cached dashboard summary: dashboard:{service} -> analytics JSON
	KeyDashboard = "dashboard:%s"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLDashboard = 5 * time.Minute
	TTLDedup     = 48 * time.Hour
)
