package model

import "time"

// User is a field-staff account. Users are created once and never updated
// or deleted, which is why other documents may denormalize the user name.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	ObraIDs   []string  `json:"obra_ids"`
	CreatedAt time.Time `json:"created_at"`
}

// UserCreate is the creation payload for a User.
type UserCreate struct {
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Role    UserRole `json:"role"`
	ObraIDs []string `json:"obra_ids"`
}

// Validate checks required fields and the role enum.
func (c *UserCreate) Validate() error {
	var errs fieldErrors
	errs.requireString("name", c.Name)
	errs.requireString("email", c.Email)
	if !c.Role.Valid() {
		errs.add("role")
	}
	return errs.err()
}
