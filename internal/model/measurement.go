package model

import "time"

// ServiceMeasurement records progress of a named work item, optionally
// evidenced by photo ids and a signature blob. Photo ids are a convention,
// not enforced against the photos collection.
type ServiceMeasurement struct {
	ID            string            `json:"id"`
	ObraID        string            `json:"obra_id"`
	UserID        string            `json:"user_id"`
	UserName      string            `json:"user_name"`
	ServiceName   string            `json:"service_name"`
	Description   string            `json:"description"`
	Quantity      float64           `json:"quantity"`
	Unit          string            `json:"unit"`
	Status        MeasurementStatus `json:"status"`
	StartDate     time.Time         `json:"start_date"`
	EndDate       *time.Time        `json:"end_date,omitempty"`
	Photos        []string          `json:"photos"`
	SignatureData *string           `json:"signature_data,omitempty"`
	Observations  string            `json:"observations"`
	CreatedAt     time.Time         `json:"created_at"`
}

// ServiceMeasurementCreate is the creation payload for a ServiceMeasurement.
type ServiceMeasurementCreate struct {
	ObraID        string            `json:"obra_id"`
	ServiceName   string            `json:"service_name"`
	Description   string            `json:"description"`
	Quantity      float64           `json:"quantity"`
	Unit          string            `json:"unit"`
	Status        MeasurementStatus `json:"status"`
	StartDate     time.Time         `json:"start_date"`
	EndDate       *time.Time        `json:"end_date,omitempty"`
	Photos        []string          `json:"photos"`
	SignatureData *string           `json:"signature_data,omitempty"`
	Observations  string            `json:"observations"`
}

// Validate checks required fields, the status enum, and numeric constraints.
func (c *ServiceMeasurementCreate) Validate() error {
	var errs fieldErrors
	errs.requireString("obra_id", c.ObraID)
	errs.requireString("service_name", c.ServiceName)
	errs.requireString("description", c.Description)
	if c.Quantity <= 0 {
		errs.add("quantity")
	}
	errs.requireString("unit", c.Unit)
	if !c.Status.Valid() {
		errs.add("status")
	}
	if c.StartDate.IsZero() {
		errs.add("start_date")
	}
	return errs.err()
}
