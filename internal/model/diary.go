package model

import "time"

// DiaryEntry is a daily log of conditions, workforce, and activity for one
// site. Entries are immutable once created. Date is stamped server-side at
// creation regardless of client input.
type DiaryEntry struct {
	ID            string    `json:"id"`
	ObraID        string    `json:"obra_id"`
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name"`
	Date          time.Time `json:"date"`
	Weather       string    `json:"weather"`
	Temperature   string    `json:"temperature"`
	WorkersCount  int       `json:"workers_count"`
	Activities    string    `json:"activities"`
	MaterialsUsed string    `json:"materials_used"`
	EquipmentUsed string    `json:"equipment_used"`
	Incidents     string    `json:"incidents"`
	Observations  string    `json:"observations"`
	CreatedAt     time.Time `json:"created_at"`
}

// DiaryEntryCreate is the creation payload for a DiaryEntry. Identity and
// date fields are stamped by the service.
type DiaryEntryCreate struct {
	ObraID        string `json:"obra_id"`
	Weather       string `json:"weather"`
	Temperature   string `json:"temperature"`
	WorkersCount  int    `json:"workers_count"`
	Activities    string `json:"activities"`
	MaterialsUsed string `json:"materials_used"`
	EquipmentUsed string `json:"equipment_used"`
	Incidents     string `json:"incidents"`
	Observations  string `json:"observations"`
}

// Validate checks required fields and numeric constraints.
func (c *DiaryEntryCreate) Validate() error {
	var errs fieldErrors
	errs.requireString("obra_id", c.ObraID)
	errs.requireString("weather", c.Weather)
	errs.requireString("temperature", c.Temperature)
	if c.WorkersCount < 0 {
		errs.add("workers_count")
	}
	errs.requireString("activities", c.Activities)
	errs.requireString("materials_used", c.MaterialsUsed)
	errs.requireString("equipment_used", c.EquipmentUsed)
	return errs.err()
}
