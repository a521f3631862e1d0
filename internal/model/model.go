package model

// Package model contains the domain documents stored by the service.
// These are pure data structures with no database-specific dependencies or
// tags; they can be used across layers (HTTP, service, repository) without
// coupling to persistence.

// UserRole is the closed set of roles a user can hold on a site.
type UserRole string

const (
	RoleSiteForeman        UserRole = "site-foreman"
	RoleEngineer           UserRole = "engineer"
	RolePlanningTechnician UserRole = "planning-technician"
)

// Valid reports whether the role is one of the declared values.
func (r UserRole) Valid() bool {
	switch r {
	case RoleSiteForeman, RoleEngineer, RolePlanningTechnician:
		return true
	}
	return false
}

// MaterialPriority is the closed set of priorities for a material request.
type MaterialPriority string

const (
	PriorityLow    MaterialPriority = "low"
	PriorityMedium MaterialPriority = "medium"
	PriorityHigh   MaterialPriority = "high"
	PriorityUrgent MaterialPriority = "urgent"
)

// Valid reports whether the priority is one of the declared values.
func (p MaterialPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// MeasurementStatus is the closed set of states for a service measurement.
type MeasurementStatus string

const (
	MeasurementStarted    MeasurementStatus = "started"
	MeasurementInProgress MeasurementStatus = "in-progress"
	MeasurementCompleted  MeasurementStatus = "completed"
	MeasurementPaused     MeasurementStatus = "paused"
)

// Valid reports whether the status is one of the declared values.
func (s MeasurementStatus) Valid() bool {
	switch s {
	case MeasurementStarted, MeasurementInProgress, MeasurementCompleted, MeasurementPaused:
		return true
	}
	return false
}

// NotificationType identifies which entity kind a notification was derived from.
type NotificationType string

const (
	NotificationDiary       NotificationType = "diary"
	NotificationPhoto       NotificationType = "photo"
	NotificationMaterial    NotificationType = "material_request"
	NotificationMeasurement NotificationType = "service_measurement"
)

// Default statuses for the open free-text status fields. MaterialRequest
// status looks enum-like but any string is accepted on update; see
// MaterialRequest.Status.
const (
	ObraStatusActive             = "active"
	MaterialRequestStatusPending = "pending"
)
