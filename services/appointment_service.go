package services

import (
	"errors"
	"fmt"
	"net/http"

	"hms_back_end_go/errs"
	"hms_back_end_go/models"
	"hms_back_end_go/updates"
	"hms_back_end_go/validators"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

var appointmentResolver = updates.NewResolver(
	updates.Rule{Column: "status"},
	updates.Rule{Column: "reason"},
	updates.Rule{Column: "date", Validate: validators.Date},
	updates.Rule{Column: "time", Validate: validators.ClockTime, Transform: validators.NormalizeTime},
)

const appointmentColumns = `id, patient_name, doctor_name, TO_CHAR(date, 'YYYY-MM-DD'), TO_CHAR(time, 'HH24:MI:SS'), reason, status, created_at, updated_at`

func scanAppointment(row pgx.Row) (models.Appointment, error) {
	var a models.Appointment
	err := row.Scan(&a.ID, &a.PatientName, &a.DoctorName, &a.Date, &a.Time, &a.Reason, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func ListAppointments(c *gin.Context, pool *pgxpool.Pool) {
	query := "SELECT " + appointmentColumns + " FROM appointments"
	params := []interface{}{}

	whereClause := []string{}
	if v := c.Query("patientName"); v != "" {
		params = append(params, "%"+v+"%")
		whereClause = append(whereClause, fmt.Sprintf("patient_name ILIKE $%d", len(params)))
	}
	if v := c.Query("date"); v != "" {
		params = append(params, v)
		whereClause = append(whereClause, fmt.Sprintf("date = $%d", len(params)))
	}
	if v := c.Query("status"); v != "" {
		params = append(params, v)
		whereClause = append(whereClause, fmt.Sprintf("status = $%d", len(params)))
	}

	for i, cond := range whereClause {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY date ASC, time ASC"

	rows, err := pool.Query(c, query, params...)
	if err != nil {
		errs.JSON(c, err)
		return
	}
	defer rows.Close()

	appointments := []models.Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
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

func GetAppointmentByID(c *gin.Context, pool *pgxpool.Pool) {
	id, ok := parseID(c, "id", "Appointment")
	if !ok {
		return
	}

	a, err := scanAppointment(pool.QueryRow(c, "SELECT "+appointmentColumns+" FROM appointments WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			errs.JSON(c, &errs.NotFoundError{Entity: "Appointment"})
		} else {
			errs.JSON(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, a)
}

func CreateAppointment(c *gin.Context, pool *pgxpool.Pool) {
	var req models.NewAppointment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.PatientName == "" || req.DoctorName == "" || req.Date == "" || req.Time == "" || req.Reason == "" {
		errs.JSON(c, &errs.ValidationError{Reason: "Missing required fields: patientName, doctorName, date, time, reason"})
		return
	}
	if err := validators.Date(req.Date); err != nil {
		errs.JSON(c, err)
		return
	}
	if err := validators.ClockTime(req.Time); err != nil {
		errs.JSON(c, err)
		return
	}
	fullTime, err := validators.NormalizeTime(req.Time)
	if err != nil {
		errs.JSON(c, err)
		return
	}

	status := req.Status
	if status == "" {
		status = "scheduled"
	}

	var id int64
	err = pool.QueryRow(c,
		`INSERT INTO appointments (patient_name, doctor_name, date, time, reason, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		req.PatientName, req.DoctorName, req.Date, fullTime, req.Reason, status).Scan(&id)
	if err != nil {
		errs.JSON(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Appointment created successfully"})
}

// UpdateAppointment accepts any subset of status/reason/date/time, up to a
// full replacement in one call.
func UpdateAppointment(c *gin.Context, pool *pgxpool.Pool) {
	id, ok := parseID(c, "id", "Appointment")
	if !ok {
		return
	}

	var req models.AppointmentUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	var patch updates.Patch
	patch.Set("status", req.Status)
	patch.Set("reason", req.Reason)
	patch.Set("date", req.Date)
	patch.Set("time", req.Time)

	var status, reason, date, clock string
	err := pool.QueryRow(c,
		`SELECT status, reason, TO_CHAR(date, 'YYYY-MM-DD'), TO_CHAR(time, 'HH24:MI:SS')
		 FROM appointments WHERE id = $1`, id).
		Scan(&status, &reason, &date, &clock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			errs.JSON(c, &errs.NotFoundError{Entity: "Appointment"})
		} else {
			errs.JSON(c, err)
		}
		return
	}
	current := map[string]string{"status": status, "reason": reason, "date": date, "time": clock}

	clause, err := appointmentResolver.Resolve(current, patch)
	if err != nil {
		errs.JSON(c, err)
		return
	}

	set, args := clause.SetClause(1)
	args = append(args, id)
	tag, err := pool.Exec(c,
		fmt.Sprintf("UPDATE appointments SET %s, updated_at = NOW() WHERE id = $%d", set, len(args)),
		args...)
	if err != nil {
		errs.JSON(c, err)
		return
	}
	if tag.RowsAffected() == 0 {
		errs.JSON(c, &errs.NoOpError{Reason: "No changes applied"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment updated"})
}

func DeleteAppointment(c *gin.Context, pool *pgxpool.Pool) {
	id, ok := parseID(c, "id", "Appointment")
	if !ok {
		return
	}

	tag, err := pool.Exec(c, "DELETE FROM appointments WHERE id = $1", id)
	if err != nil {
		errs.JSON(c, err)
		return
	}
	if tag.RowsAffected() == 0 {
		errs.JSON(c, &errs.NotFoundError{Entity: "Appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted"})
}
