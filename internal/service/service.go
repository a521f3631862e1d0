package service

// Package service contains the use cases in front of the repositories:
// identity stamping, derived notifications, listing caps, dashboard counts,
// and sample-data seeding. No persistence details live here.

import (
	"encoding/json"
	"errors"
	"log"
	"time"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("not found")
)

// Listing caps. Callers needing more see a truncated result; truncation is
// logged because the response shape carries no explicit signal for it.
const (
	RecordListCap       = 1000
	NotificationListCap = 100
)

// UserListCap bounds the unfiltered user/obra listings.
const UserListCap = 1000

// PlaceholderUserName is substituted when the resolved caller id has no
// user document. Acceptable because users are never updated or deleted.
const PlaceholderUserName = "Site User"

// logJSON writes one JSON object per line, same shape as the rest of the
// service's structured logs.
func logJSON(data map[string]any) {
	data["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		data["level"] = "info"
	}
	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal log entry: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}

// warnTruncated logs when a listing hit its cap, so the documented
// no-pagination limitation is at least visible in logs.
func warnTruncated(collection, obraID string, cap int) {
	logJSON(map[string]any{
		"level":      "warn",
		"component":  "service",
		"event":      "listing_truncated",
		"collection": collection,
		"obra_id":    obraID,
		"cap":        cap,
	})
}
