package model

import "time"

// Photo is an image record attached to a site. The image payload is a
// whole base64-encoded blob stored with the document.
type Photo struct {
	ID          string    `json:"id"`
	ObraID      string    `json:"obra_id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageData   string    `json:"image_data"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	CreatedAt   time.Time `json:"created_at"`
}

// PhotoCreate is the creation payload for a Photo.
type PhotoCreate struct {
	ObraID      string   `json:"obra_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageData   string   `json:"image_data"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// Validate checks required fields and coordinate ranges.
func (c *PhotoCreate) Validate() error {
	var errs fieldErrors
	errs.requireString("obra_id", c.ObraID)
	errs.requireString("title", c.Title)
	errs.requireString("description", c.Description)
	errs.requireString("image_data", c.ImageData)
	if c.Latitude != nil && (*c.Latitude < -90 || *c.Latitude > 90) {
		errs.add("latitude")
	}
	if c.Longitude != nil && (*c.Longitude < -180 || *c.Longitude > 180) {
		errs.add("longitude")
	}
	return errs.err()
}
