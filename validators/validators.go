package validators

import (
	"regexp"
	"strings"

	"hms_back_end_go/errs"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\d{10}$`)
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe  = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)
)

func Email(v string) error {
	if !emailRe.MatchString(v) {
		return &errs.ValidationError{Field: "email", Reason: "Invalid email format"}
	}
	return nil
}

func Phone(v string) error {
	if !phoneRe.MatchString(v) {
		return &errs.ValidationError{Field: "phone", Reason: "Phone number must be 10 digits"}
	}
	return nil
}

func Date(v string) error {
	if !dateRe.MatchString(v) {
		return &errs.ValidationError{Field: "date", Reason: "Invalid date format (use YYYY-MM-DD)"}
	}
	return nil
}

func ClockTime(v string) error {
	if !timeRe.MatchString(v) {
		return &errs.ValidationError{Field: "time", Reason: "Invalid time format (use HH:MM or HH:MM:SS)"}
	}
	return nil
}

// NormalizeTime pads HH:MM to HH:MM:SS for the TIME column.
func NormalizeTime(v string) (string, error) {
	if len(strings.Split(v, ":")) == 2 {
		return v + ":00", nil
	}
	return v, nil
}

// PatientStatus restricts the patient status to its two-value enum.
func PatientStatus(v string) error {
	if v != "Not Attended" && v != "Attended" {
		return &errs.ValidationError{Field: "status", Reason: "Invalid status value"}
	}
	return nil
}
