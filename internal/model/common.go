package model

import "time"

// Meta carries the fields every upstream record shares. The upstream API is
// inconsistent about identifiers: newer endpoints emit `id`, older ones emit
// `_id`. Normalize folds the legacy field into the canonical ID once, at the
// decode boundary, so nothing downstream has to chase both spellings.
type Meta struct {
	ID        string    `json:"id,omitempty"`
	LegacyID  string    `json:"_id,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

func (m *Meta) Normalize() {
	if m.ID == "" {
		m.ID = m.LegacyID
	}
	m.LegacyID = ""
}

// Normalizable is implemented by every entity via the embedded Meta.
type Normalizable interface {
	Normalize()
}
