package model

import "time"

// MaterialRequest tracks a supply need from submission through an
// open-ended status. Priority is a closed set; Status looks enum-like but
// is deliberately an unconstrained string because the status-update call
// accepts any value.
type MaterialRequest struct {
	ID            string           `json:"id"`
	ObraID        string           `json:"obra_id"`
	UserID        string           `json:"user_id"`
	UserName      string           `json:"user_name"`
	MaterialName  string           `json:"material_name"`
	Quantity      float64          `json:"quantity"`
	Unit          string           `json:"unit"`
	Priority      MaterialPriority `json:"priority"`
	Justification string           `json:"justification"`
	Status        string           `json:"status"`
	RequestedDate time.Time        `json:"requested_date"`
	NeededDate    time.Time        `json:"needed_date"`
	CreatedAt     time.Time        `json:"created_at"`
}

// MaterialRequestCreate is the creation payload for a MaterialRequest.
type MaterialRequestCreate struct {
	ObraID        string           `json:"obra_id"`
	MaterialName  string           `json:"material_name"`
	Quantity      float64          `json:"quantity"`
	Unit          string           `json:"unit"`
	Priority      MaterialPriority `json:"priority"`
	Justification string           `json:"justification"`
	NeededDate    time.Time        `json:"needed_date"`
}

// Validate checks required fields, the priority enum, and numeric constraints.
func (c *MaterialRequestCreate) Validate() error {
	var errs fieldErrors
	errs.requireString("obra_id", c.ObraID)
	errs.requireString("material_name", c.MaterialName)
	if c.Quantity <= 0 {
		errs.add("quantity")
	}
	errs.requireString("unit", c.Unit)
	if !c.Priority.Valid() {
		errs.add("priority")
	}
	errs.requireString("justification", c.Justification)
	if c.NeededDate.IsZero() {
		errs.add("needed_date")
	}
	return errs.err()
}
