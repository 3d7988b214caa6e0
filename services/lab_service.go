package services

import (
	"net/http"

	"hms_back_end_go/errs"
	"hms_back_end_go/models"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const labColumns = `
	l.id,
	l.test_type,
	TO_CHAR(l.test_date, 'YYYY-MM-DD'),
	COALESCE(l.result, ''),
	COALESCE(l.technician_name, ''),
	p.name,
	TO_CHAR(p.dob, 'YYYY-MM-DD')`

func scanLabRecords(rows pgx.Rows) ([]models.LabRecord, error) {
	records := []models.LabRecord{}
	for rows.Next() {
		var r models.LabRecord
		if err := rows.Scan(&r.ID, &r.TestType, &r.TestDate, &r.Result, &r.TechnicianName, &r.PatientName, &r.PatientDOB); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func ListLabRecords(c *gin.Context, pool *pgxpool.Pool) {
	rows, err := pool.Query(c,
		`SELECT `+labColumns+`
		 FROM lab_imaging l
		 JOIN patients p ON l.patient_id = p.id
		 ORDER BY l.test_date DESC`)
	if err != nil {
		errs.JSON(c, err)
		return
	}
	defer rows.Close()

	records, err := scanLabRecords(rows)
	if err != nil {
		errs.JSON(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func ListLabRecordsForPatient(c *gin.Context, pool *pgxpool.Pool) {
	patientID, ok := parseID(c, "patientId", "Patient")
	if !ok {
		return
	}

	rows, err := pool.Query(c,
		`SELECT `+labColumns+`
		 FROM lab_imaging l
		 JOIN patients p ON l.patient_id = p.id
		 WHERE l.patient_id = $1
		 ORDER BY l.test_date DESC`, patientID)
	if err != nil {
		errs.JSON(c, err)
		return
	}
	defer rows.Close()

	records, err := scanLabRecords(rows)
	if err != nil {
		errs.JSON(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func CreateLabRecord(c *gin.Context, pool *pgxpool.Pool) {
	patientID, ok := parseID(c, "patientId", "Patient")
	if !ok {
		return
	}

	var req models.LabRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	var id int64
	err := pool.QueryRow(c,
		`INSERT INTO lab_imaging (patient_id, test_type, test_date, result, technician_name)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		patientID, req.TestType, req.TestDate, req.Result, req.TechnicianName).Scan(&id)
	if err != nil {
		errs.JSON(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Lab record added"})
}

func UpdateLabRecord(c *gin.Context, pool *pgxpool.Pool) {
	id, ok := parseID(c, "id", "Lab record")
	if !ok {
		return
	}

	var req models.LabRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	tag, err := pool.Exec(c,
		`UPDATE lab_imaging
		 SET test_type = $1, test_date = $2, result = $3, technician_name = $4
		 WHERE id = $5`,
		req.TestType, req.TestDate, req.Result, req.TechnicianName, id)
	if err != nil {
		errs.JSON(c, err)
		return
	}
	if tag.RowsAffected() == 0 {
		errs.JSON(c, &errs.NotFoundError{Entity: "Lab record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lab record updated successfully"})
}

func DeleteLabRecord(c *gin.Context, pool *pgxpool.Pool) {
	id, ok := parseID(c, "id", "Lab record")
	if !ok {
		return
	}

	tag, err := pool.Exec(c, "DELETE FROM lab_imaging WHERE id = $1", id)
	if err != nil {
		errs.JSON(c, err)
		return
	}
	if tag.RowsAffected() == 0 {
		errs.JSON(c, &errs.NotFoundError{Entity: "Lab record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lab record deleted successfully"})
}
