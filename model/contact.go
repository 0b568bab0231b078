package model

import "time"

// ContactEntity represents the contacts table entity. A contact always
// belongs to exactly one user; UserID never changes after creation.
type ContactEntity struct {
	ID        uint64    `db:"id" json:"id"`
	Firstname string    `db:"firstname" json:"firstname"`
	Lastname  string    `db:"lastname" json:"lastname"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Birthday  Date      `db:"birthday" json:"birthday"`
	UserID    uint64    `db:"user_id" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ContactFilter holds the optional search criteria. Empty fields are
// not part of the query.
type ContactFilter struct {
	Firstname string
	Lastname  string
	Email     string
}

// HasCriteria reports whether at least one filter field is set.
func (f *ContactFilter) HasCriteria() bool {
	return f != nil && (f.Firstname != "" || f.Lastname != "" || f.Email != "")
}

// ContactRequest is the request body for creating or replacing a contact.
// Update replaces all five fields at once, so the same shape is used for both.
type ContactRequest struct {
	Firstname string `json:"firstname" validate:"required,max=30"`
	Lastname  string `json:"lastname" validate:"required,max=30"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,phone,max=15"`
	Birthday  Date   `json:"birthday" validate:"required"`
}
