package model

import "time"

// Notification is a derived feed item created as a side effect of another
// record's creation. IsRead flips true via a dedicated call; the document
// is otherwise immutable.
type Notification struct {
	ID        string           `json:"id"`
	ObraID    string           `json:"obra_id"`
	UserID    string           `json:"user_id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

// DashboardStats is the six-count per-site summary. Each count is computed
// independently; concurrent writes may make them mutually inconsistent.
type DashboardStats struct {
	DiaryEntries        int `json:"diary_entries"`
	Photos              int `json:"photos"`
	MaterialRequests    int `json:"material_requests"`
	PendingRequests     int `json:"pending_requests"`
	ServiceMeasurements int `json:"service_measurements"`
	UnreadNotifications int `json:"unread_notifications"`
}
