package model

import "time"

// Obra is a construction site, the tenancy unit every operational record
// belongs to. Status is free text and defaults to "active".
type Obra struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Location        string    `json:"location"`
	Description     string    `json:"description"`
	StartDate       time.Time `json:"start_date"`
	ExpectedEndDate time.Time `json:"expected_end_date"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// ObraCreate is the creation payload for an Obra.
type ObraCreate struct {
	Name            string    `json:"name"`
	Location        string    `json:"location"`
	Description     string    `json:"description"`
	StartDate       time.Time `json:"start_date"`
	ExpectedEndDate time.Time `json:"expected_end_date"`
}

// Validate checks required fields and date presence.
func (c *ObraCreate) Validate() error {
	var errs fieldErrors
	errs.requireString("name", c.Name)
	errs.requireString("location", c.Location)
	errs.requireString("description", c.Description)
	if c.StartDate.IsZero() {
		errs.add("start_date")
	}
	if c.ExpectedEndDate.IsZero() {
		errs.add("expected_end_date")
	}
	return errs.err()
}
