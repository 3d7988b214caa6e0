package emr

import (
	"context"
	"log"
	"strings"
	"time"

	"hms_back_end_go/models"
)

// PatientFetcher loads the primary patient snapshot. It must return a
// *errs.NotFoundError when the patient does not exist.
type PatientFetcher func(ctx context.Context, patientID int64) (*models.EMRPatient, error)

// Child collection fetchers. Any failure is tolerated: the assembler
// substitutes an empty collection and continues.
type LabFetcher func(ctx context.Context, patientID int64) ([]models.EMRLab, error)
type MedicationFetcher func(ctx context.Context, patientID int64) ([]models.Medication, error)
type ChartFetcher func(ctx context.Context, patientID int64) ([]models.ChartEntry, error)

// Assembler composes the EMR aggregate from a primary patient record and a
// set of independently fallible child collections. A nil child fetcher
// yields an empty collection without a fetch.
type Assembler struct {
	Patient       PatientFetcher
	Labs          LabFetcher
	Medications   MedicationFetcher
	History       ChartFetcher
	Visits        ChartFetcher
	ProgressNotes ChartFetcher
	SoapNotes     ChartFetcher

	// NoAlertsPlaceholder keeps the historical behavior of returning one
	// synthetic "No alerts" entry when no lab result is abnormal.
	NoAlertsPlaceholder bool

	// Now is the clock for age derivation and the placeholder timestamp.
	// Defaults to time.Now.
	Now func() time.Time
}

func (a *Assembler) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// Assemble builds the aggregate for patientID. The patient fetch runs first;
// when it fails no child fetch is attempted. The result always carries every
// collection key non-nil.
func (a *Assembler) Assemble(ctx context.Context, patientID int64) (*models.EMRRecord, error) {
	patient, err := a.Patient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	patient.Age = wholeYears(patient.DOB, a.now())

	rec := &models.EMRRecord{
		Patient:       patient,
		Overview:      models.EMROverview{Vitals: "No vitals", Allergies: "No allergies"},
		FamilyHistory: "No family history",
		History:       []models.ChartEntry{},
		Visits:        []models.ChartEntry{},
		ProgressNotes: []models.ChartEntry{},
		SoapNotes:     []models.ChartEntry{},
		Labs:          []models.EMRLab{},
		Medications:   []models.Medication{},
		Alerts:        []models.Alert{},
	}
	if patient.FamilyHistory != "" {
		rec.FamilyHistory = patient.FamilyHistory
	} else {
		patient.FamilyHistory = rec.FamilyHistory
	}

	if a.Labs != nil {
		if rows, err := a.Labs(ctx, patientID); err != nil {
			log.Printf("emr: labs skipped for patient %d: %v", patientID, err)
		} else if rows != nil {
			rec.Labs = rows
		}
	}
	if a.Medications != nil {
		if rows, err := a.Medications(ctx, patientID); err != nil {
			log.Printf("emr: medications skipped for patient %d: %v", patientID, err)
		} else if rows != nil {
			rec.Medications = rows
		}
	}
	rec.History = a.chart(ctx, a.History, "history", patientID)
	rec.Visits = a.chart(ctx, a.Visits, "visits", patientID)
	rec.ProgressNotes = a.chart(ctx, a.ProgressNotes, "progress_notes", patientID)
	rec.SoapNotes = a.chart(ctx, a.SoapNotes, "soap_notes", patientID)

	rec.Alerts = a.deriveAlerts(rec.Labs)
	return rec, nil
}

func (a *Assembler) chart(ctx context.Context, fetch ChartFetcher, key string, patientID int64) []models.ChartEntry {
	if fetch == nil {
		return []models.ChartEntry{}
	}
	rows, err := fetch(ctx, patientID)
	if err != nil {
		log.Printf("emr: %s skipped for patient %d: %v", key, patientID, err)
		return []models.ChartEntry{}
	}
	if rows == nil {
		return []models.ChartEntry{}
	}
	return rows
}

func (a *Assembler) deriveAlerts(labs []models.EMRLab) []models.Alert {
	alerts := []models.Alert{}
	for _, lab := range labs {
		if strings.Contains(strings.ToLower(lab.Result), "abnormal") {
			alerts = append(alerts, models.Alert{
				Message:   "Abnormal lab: " + lab.TestType,
				Timestamp: lab.TestDate,
			})
		}
	}
	if len(alerts) == 0 && a.NoAlertsPlaceholder {
		alerts = append(alerts, models.Alert{
			Message:   "No alerts",
			Timestamp: a.now().Format(time.RFC3339),
		})
	}
	return alerts
}

// wholeYears is the integer number of whole years between a YYYY-MM-DD date
// of birth and now. An unparseable dob yields 0.
func wholeYears(dob string, now time.Time) int {
	born, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return 0
	}
	years := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}
