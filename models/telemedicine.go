package models

type TelemedicineAppointment struct {
	ID        int64  `json:"id"`
	Specialty string `json:"specialty"`
	DateTime  string `json:"date_time"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

type TelemedicineAppointmentRequest struct {
	Specialty string `json:"specialty"`
	DateTime  string `json:"date_time"`
	Notes     string `json:"notes"`
	Status    string `json:"status"`
}

type TelemedicinePrescriptionRequest struct {
	Medication   string `json:"medication"`
	Dosage       string `json:"dosage"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions"`
	Status       string `json:"status"`
}

type TelemedicineMessageRequest struct {
	Text   string `json:"text"`
	Sender string `json:"sender"`
}
