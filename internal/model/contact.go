package model

import (
	"encoding/json"
	"time"
)

// ContactStatusNew is the status of a freshly submitted contact message.
const ContactStatusNew = "new"

// Contact is a message submitted through the website contact form.
type Contact struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Service   string     `json:"service"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"createdAt"`
	Status    string     `json:"status"`
	Notes     string     `json:"notes,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// ContactPatch carries the admin-editable fields of a contact.
// Empty strings leave the stored value untouched.
type ContactPatch struct {
	Status string
	Notes  string
}

// Apply merges the patch into c and stamps the update time.
func (p ContactPatch) Apply(c *Contact, at time.Time) {
	if p.Status != "" {
		c.Status = p.Status
	}
	if p.Notes != "" {
		c.Notes = p.Notes
	}
	c.UpdatedAt = &at
}

// contactJSON has Contact's fields without its methods.
type contactJSON Contact

// MarshalJSON writes timestamps with millisecond precision.
func (c Contact) MarshalJSON() ([]byte, error) {
	out := struct {
		contactJSON
		CreatedAt string  `json:"createdAt"`
		UpdatedAt *string `json:"updatedAt,omitempty"`
	}{
		contactJSON: contactJSON(c),
		CreatedAt:   FormatTimestamp(c.CreatedAt),
	}
	if c.UpdatedAt != nil {
		u := FormatTimestamp(*c.UpdatedAt)
		out.UpdatedAt = &u
	}
	return json.Marshal(out)
}
