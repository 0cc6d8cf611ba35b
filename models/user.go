package models

// User is the sole record kept by the user store.
//
// ID is assigned by the store on insert and never changes afterwards.
// Name and Email are free text: neither is unique and neither is normalized,
// so two records may share a name. Created is an ISO-date-like string stamped
// once at insert time from a fixed, caller-supplied value.
type User struct {
	// ID is the store-assigned primary key.
	ID int64 `json:"id" db:"id"`

	// Name is the user's display name. Lookups by name are exact and
	// case-sensitive.
	Name string `json:"name" db:"name"`

	// Email is the only field that may be changed after creation.
	Email string `json:"email" db:"email"`

	// Created is the creation stamp, e.g. "2024-01-01".
	Created string `json:"created" db:"created"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserEmailUpdate is the request body of an email replacement.
type UserEmailUpdate struct {
	Email string `json:"email"`
}
