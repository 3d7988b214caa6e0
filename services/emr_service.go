package services

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"

	"hms_back_end_go/emr"
	"hms_back_end_go/errs"
	"hms_back_end_go/models"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// placeholderAlertsEnabled controls the synthetic "No alerts" entry emitted
// when no lab result is abnormal. On unless EMR_PLACEHOLDER_ALERTS disables it.
func placeholderAlertsEnabled() bool {
	v := os.Getenv("EMR_PLACEHOLDER_ALERTS")
	if v == "" {
		return true
	}
	return v == "1" || strings.EqualFold(v, "true")
}

func newEMRAssembler(pool *pgxpool.Pool) *emr.Assembler {
	return &emr.Assembler{
		Patient: func(ctx context.Context, patientID int64) (*models.EMRPatient, error) {
			var p models.EMRPatient
			err := pool.QueryRow(ctx,
				`SELECT id, name, email, phone, TO_CHAR(dob, 'YYYY-MM-DD'), COALESCE(address, ''), COALESCE(notes, ''), status
				 FROM patients WHERE id = $1`, patientID).
				Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.DOB, &p.Address, &p.FamilyHistory, &p.Status)
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, &errs.NotFoundError{Entity: "Patient"}
			}
			if err != nil {
				return nil, err
			}
			p.Gender = "N/A"
			p.Insurance = "N/A"
			return &p, nil
		},
		Labs: func(ctx context.Context, patientID int64) ([]models.EMRLab, error) {
			rows, err := pool.Query(ctx,
				`SELECT id, patient_id, test_type, TO_CHAR(test_date, 'YYYY-MM-DD'), COALESCE(result, ''), COALESCE(technician_name, '')
				 FROM lab_imaging WHERE patient_id = $1 ORDER BY test_date DESC`, patientID)
			if err != nil {
				return nil, err
			}
			defer rows.Close()

			labs := []models.EMRLab{}
			for rows.Next() {
				var l models.EMRLab
				if err := rows.Scan(&l.ID, &l.PatientID, &l.TestType, &l.TestDate, &l.Result, &l.TechnicianName); err != nil {
					return nil, err
				}
				labs = append(labs, l)
			}
			return labs, rows.Err()
		},
		Medications: func(ctx context.Context, patientID int64) ([]models.Medication, error) {
			rows, err := pool.Query(ctx,
				`SELECT id, patient_id, name, COALESCE(dosage, ''), COALESCE(frequency, ''), COALESCE(TO_CHAR(start_date, 'YYYY-MM-DD'), ''), COALESCE(status, '')
				 FROM medications WHERE patient_id = $1 ORDER BY id DESC`, patientID)
			if err != nil {
				return nil, err
			}
			defer rows.Close()

			medications := []models.Medication{}
			for rows.Next() {
				var m models.Medication
				if err := rows.Scan(&m.ID, &m.PatientID, &m.Name, &m.Dosage, &m.Frequency, &m.StartDate, &m.Status); err != nil {
					return nil, err
				}
				medications = append(medications, m)
			}
			return medications, rows.Err()
		},
		// History, visits and note tables are not provisioned yet; the
		// assembler keeps their keys present as empty collections.
		NoAlertsPlaceholder: placeholderAlertsEnabled(),
	}
}

func GetPatientEMR(c *gin.Context, pool *pgxpool.Pool) {
	patientID, ok := parseID(c, "patientId", "Patient")
	if !ok {
		return
	}

	record, err := newEMRAssembler(pool).Assemble(c, patientID)
	if err != nil {
		errs.JSON(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}
