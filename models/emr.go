package models

// EMRPatient is the patient snapshot inside an EMR aggregate. Age is derived
// by the assembler from DOB.
type EMRPatient struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	DOB           string `json:"dob"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	Address       string `json:"address"`
	Insurance     string `json:"insurance"`
	FamilyHistory string `json:"family_history"`
	Status        string `json:"status"`
}

type EMROverview struct {
	Vitals    string `json:"vitals"`
	Allergies string `json:"allergies"`
}

// EMRLab is a lab row as embedded in the aggregate, without the patient join.
type EMRLab struct {
	ID             int64  `json:"id"`
	PatientID      int64  `json:"patient_id"`
	TestType       string `json:"test_type"`
	TestDate       string `json:"test_date"`
	Result         string `json:"result"`
	TechnicianName string `json:"technician_name"`
}

type Medication struct {
	ID        int64  `json:"id"`
	PatientID int64  `json:"patient_id"`
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	StartDate string `json:"start_date"`
	Status    string `json:"status"`
}

// ChartEntry is a generic clinical chart row used by the collections whose
// source tables are optional (history, visits, progress and SOAP notes).
type ChartEntry struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Detail     string `json:"detail"`
	RecordedAt string `json:"recorded_at"`
}

type Alert struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// EMRRecord is the full aggregate. Every collection key is always present
// and non-nil, so consumers never need existence checks.
type EMRRecord struct {
	Patient       *EMRPatient  `json:"patient"`
	Overview      EMROverview  `json:"overview"`
	FamilyHistory string       `json:"family_history"`
	History       []ChartEntry `json:"history"`
	Visits        []ChartEntry `json:"visits"`
	ProgressNotes []ChartEntry `json:"progress_notes"`
	SoapNotes     []ChartEntry `json:"soap_notes"`
	Labs          []EMRLab     `json:"labs"`
	Medications   []Medication `json:"medications"`
	Alerts        []Alert      `json:"alerts"`
}
