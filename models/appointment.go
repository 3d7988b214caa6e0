package models

import "time"

type Appointment struct {
	ID          int64     `json:"id"`
	PatientName string    `json:"patientName"`
	DoctorName  string    `json:"doctorName"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Reason      string    `json:"reason"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type NewAppointment struct {
	PatientName string `json:"patientName"`
	DoctorName  string `json:"doctorName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
}

// AppointmentUpdate covers the PUT body: any subset of the four mutable
// fields may be present, up to a full replacement in one call.
type AppointmentUpdate struct {
	Status *string `json:"status"`
	Reason *string `json:"reason"`
	Date   *string `json:"date"`
	Time   *string `json:"time"`
}
