package models

import "time"

type Patient struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	DOB       string    `json:"dob"`
	Address   string    `json:"address"`
	Notes     string    `json:"notes"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NewPatient struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	DOB     string `json:"dob"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// PatientPatch carries the mutable patient fields; a nil pointer means the
// field was absent from the request body.
type PatientPatch struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	DOB     *string `json:"dob"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
	Status  *string `json:"status"`
}
