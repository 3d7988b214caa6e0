package models

// LabRecord is a lab/imaging row joined with its patient's name and dob.
type LabRecord struct {
	ID             int64  `json:"id"`
	TestType       string `json:"test_type"`
	TestDate       string `json:"test_date"`
	Result         string `json:"result"`
	TechnicianName string `json:"technician_name"`
	PatientName    string `json:"patient_name"`
	PatientDOB     string `json:"patient_dob"`
}

type LabRecordRequest struct {
	TestType       string `json:"testType"`
	TestDate       string `json:"testDate"`
	Result         string `json:"result"`
	TechnicianName string `json:"technicianName"`
}
