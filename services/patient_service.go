package services

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"hms_back_end_go/errs"
	"hms_back_end_go/models"
	"hms_back_end_go/updates"
	"hms_back_end_go/validators"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// Mutable patient fields. Status carries the toggle pair: the "toggle"
// sentinel flips between the two states instead of setting a literal value.
var patientResolver = updates.NewResolver(
	updates.Rule{Column: "name"},
	updates.Rule{Column: "email", Validate: validators.Email},
	updates.Rule{Column: "phone", Validate: validators.Phone},
	updates.Rule{Column: "dob"},
	updates.Rule{Column: "address"},
	updates.Rule{Column: "notes"},
	updates.Rule{Column: "status", Validate: validators.PatientStatus, Toggle: [2]string{"Not Attended", "Attended"}},
)

const patientColumns = `id, name, email, phone, TO_CHAR(dob, 'YYYY-MM-DD'), COALESCE(address, ''), COALESCE(notes, ''), status, created_at, updated_at`

func scanPatient(row pgx.Row) (models.Patient, error) {
	var p models.Patient
	err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.DOB, &p.Address, &p.Notes, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func parseID(c *gin.Context, param, entity string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		errs.JSON(c, &errs.NotFoundError{Entity: entity})
		return 0, false
	}
	return id, true
}

func ListPatients(c *gin.Context, pool *pgxpool.Pool) {
	search := strings.TrimSpace(c.DefaultQuery("search", ""))

	query := "SELECT " + patientColumns + " FROM patients"
	params := []interface{}{}
	if search != "" {
		query += " WHERE name ILIKE $1 OR email ILIKE $1"
		params = append(params, "%"+search+"%")
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := pool.Query(c, query, params...)
	if err != nil {
		errs.JSON(c, err)
		return
	}
	defer rows.Close()

	patients := []models.Patient{}
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			errs.JSON(c, err)
			return
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		errs.JSON(c, err)
		return
	}

	c.JSON(http.StatusOK, patients)
}

func GetPatientByID(c *gin.Context, pool *pgxpool.Pool) {
	id, ok := parseID(c, "id", "Patient")
	if !ok {
		return
	}

	p, err := scanPatient(pool.QueryRow(c, "SELECT "+patientColumns+" FROM patients WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			errs.JSON(c, &errs.NotFoundError{Entity: "Patient"})
		} else {
			errs.JSON(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, p)
}

func CreatePatient(c *gin.Context, pool *pgxpool.Pool) {
	var req models.NewPatient
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.Name == "" || req.Email == "" || req.Phone == "" || req.DOB == "" {
		errs.JSON(c, &errs.ValidationError{Reason: "Missing required fields"})
		return
	}
	if err := validators.Email(req.Email); err != nil {
		errs.JSON(c, err)
		return
	}
	if err := validators.Phone(req.Phone); err != nil {
		errs.JSON(c, err)
		return
	}

	var id int64
	err := pool.QueryRow(c,
		`INSERT INTO patients (name, email, phone, dob, address, notes, status)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), 'Not Attended')
		 RETURNING id`,
		req.Name, req.Email, req.Phone, req.DOB, req.Address, req.Notes).Scan(&id)
	if err != nil {
		errs.JSON(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Patient added successfully", "patientId": id})
}

func UpdatePatient(c *gin.Context, pool *pgxpool.Pool) {
	id, ok := parseID(c, "id", "Patient")
	if !ok {
		return
	}

	var req models.PatientPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	var patch updates.Patch
	patch.Set("name", req.Name)
	patch.Set("email", req.Email)
	patch.Set("phone", req.Phone)
	patch.Set("dob", req.DOB)
	patch.Set("address", req.Address)
	patch.Set("notes", req.Notes)
	patch.Set("status", req.Status)

	// Row existence is checked before the patch is resolved.
	var name, email, phone, dob, address, notes, status string
	err := pool.QueryRow(c,
		`SELECT name, email, phone, TO_CHAR(dob, 'YYYY-MM-DD'), COALESCE(address, ''), COALESCE(notes, ''), status
		 FROM patients WHERE id = $1`, id).
		Scan(&name, &email, &phone, &dob, &address, &notes, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			errs.JSON(c, &errs.NotFoundError{Entity: "Patient"})
		} else {
			errs.JSON(c, err)
		}
		return
	}
	current := map[string]string{
		"name": name, "email": email, "phone": phone, "dob": dob,
		"address": address, "notes": notes, "status": status,
	}

	clause, err := patientResolver.Resolve(current, patch)
	if err != nil {
		errs.JSON(c, err)
		return
	}

	set, args := clause.SetClause(1)
	args = append(args, id)
	tag, err := pool.Exec(c,
		fmt.Sprintf("UPDATE patients SET %s, updated_at = NOW() WHERE id = $%d", set, len(args)),
		args...)
	if err != nil {
		errs.JSON(c, err)
		return
	}
	if tag.RowsAffected() == 0 {
		errs.JSON(c, &errs.NoOpError{Reason: "No changes applied"})
		return
	}

	log.Printf("Updated patient %d: %d field(s)", id, len(clause.Assignments))
	c.JSON(http.StatusOK, gin.H{"message": "Patient updated successfully"})
}

func DeletePatient(c *gin.Context, pool *pgxpool.Pool) {
	id, ok := parseID(c, "id", "Patient")
	if !ok {
		return
	}

	tag, err := pool.Exec(c, "DELETE FROM patients WHERE id = $1", id)
	if err != nil {
		errs.JSON(c, err)
		return
	}
	if tag.RowsAffected() == 0 {
		errs.JSON(c, &errs.NotFoundError{Entity: "Patient"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted successfully"})
}
