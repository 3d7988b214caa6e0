package services

import (
	"errors"
	"math"
	"net/http"

	"hms_back_end_go/errs"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

func GetPatientCount(c *gin.Context, pool *pgxpool.Pool) {
	var total int64
	if err := pool.QueryRow(c, "SELECT COUNT(*) FROM patients").Scan(&total); err != nil {
		errs.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}

func GetAppointmentsToday(c *gin.Context, pool *pgxpool.Pool) {
	var today int64
	if err := pool.QueryRow(c, "SELECT COUNT(*) FROM appointments WHERE date = CURRENT_DATE").Scan(&today); err != nil {
		errs.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"today": today})
}

func GetPendingBilling(c *gin.Context, pool *pgxpool.Pool) {
	var pending float64
	if err := pool.QueryRow(c, "SELECT COALESCE(SUM(amount_due), 0) FROM billing WHERE status = 'pending'").Scan(&pending); err != nil {
		errs.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pending": pending})
}

func GetBedOccupancy(c *gin.Context, pool *pgxpool.Pool) {
	var occupied, total int
	err := pool.QueryRow(c, "SELECT occupied_beds, total_beds FROM beds_status LIMIT 1").Scan(&occupied, &total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			errs.JSON(c, &errs.NotFoundError{Entity: "Bed data"})
		} else {
			errs.JSON(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"occupancy": occupancyPercent(occupied, total)})
}

func occupancyPercent(occupied, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(occupied) / float64(total) * 100))
}
