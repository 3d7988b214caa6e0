package services

import (
	"errors"
	"net/http"

	"hms_back_end_go/errs"
	"hms_back_end_go/models"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

func ListTelemedicineAppointments(c *gin.Context, pool *pgxpool.Pool) {
	patientID, ok := parseID(c, "patientId", "Patient")
	if !ok {
		return
	}

	rows, err := pool.Query(c,
		`SELECT id, COALESCE(specialty, ''), TO_CHAR(date_time, 'YYYY-MM-DD"T"HH24:MI:SS'), COALESCE(status, ''), COALESCE(notes, '')
		 FROM telemedicine_appointments
		 WHERE patient_id = $1
		 ORDER BY date_time ASC`, patientID)
	if err != nil {
		errs.JSON(c, err)
		return
	}
	defer rows.Close()

	appointments := []models.TelemedicineAppointment{}
	for rows.Next() {
		var a models.TelemedicineAppointment
		if err := rows.Scan(&a.ID, &a.Specialty, &a.DateTime, &a.Status, &a.Notes); err != nil {
			errs.JSON(c, err)
			return
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		errs.JSON(c, err)
		return
	}

	c.JSON(http.StatusOK, appointments)
}

func CreateTelemedicineAppointment(c *gin.Context, pool *pgxpool.Pool) {
	patientID, ok := parseID(c, "patientId", "Patient")
	if !ok {
		return
	}

	var req models.TelemedicineAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	var id int64
	err := pool.QueryRow(c,
		`INSERT INTO telemedicine_appointments (patient_id, specialty, date_time, notes, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		patientID, req.Specialty, req.DateTime, req.Notes, req.Status).Scan(&id)
	if err != nil {
		errs.JSON(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Appointment scheduled"})
}

func CancelTelemedicineAppointment(c *gin.Context, pool *pgxpool.Pool) {
	id, ok := parseID(c, "id", "Appointment")
	if !ok {
		return
	}

	tag, err := pool.Exec(c, "DELETE FROM telemedicine_appointments WHERE id = $1", id)
	if err != nil {
		errs.JSON(c, err)
		return
	}
	if tag.RowsAffected() == 0 {
		errs.JSON(c, &errs.NotFoundError{Entity: "Appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}

func CreateTelemedicinePrescription(c *gin.Context, pool *pgxpool.Pool) {
	patientID, ok := parseID(c, "patientId", "Patient")
	if !ok {
		return
	}

	var req models.TelemedicinePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	var id int64
	err := pool.QueryRow(c,
		`INSERT INTO telemedicine_prescriptions (patient_id, medication, dosage, duration, instructions, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		patientID, req.Medication, req.Dosage, req.Duration, req.Instructions, req.Status).Scan(&id)
	if err != nil {
		errs.JSON(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Prescription sent"})
}

// GetTelemedicineEMR returns the simplified chart summary shown inside a
// telemedicine session; the full aggregate lives under /api/emr.
func GetTelemedicineEMR(c *gin.Context, pool *pgxpool.Pool) {
	patientID, ok := parseID(c, "patientId", "Patient")
	if !ok {
		return
	}

	var name string
	err := pool.QueryRow(c, "SELECT name FROM patients WHERE id = $1", patientID).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			errs.JSON(c, &errs.NotFoundError{Entity: "Patient"})
		} else {
			errs.JSON(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":    name,
		"history": "Sample medical history...",
		"labs":    "Recent labs: Normal",
	})
}

func CreateTelemedicineMessage(c *gin.Context, pool *pgxpool.Pool) {
	patientID, ok := parseID(c, "patientId", "Patient")
	if !ok {
		return
	}

	var req models.TelemedicineMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	var id int64
	err := pool.QueryRow(c,
		`INSERT INTO telemedicine_messages (patient_id, text, sender, timestamp)
		 VALUES ($1, $2, $3, NOW())
		 RETURNING id`,
		patientID, req.Text, req.Sender).Scan(&id)
	if err != nil {
		errs.JSON(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}
