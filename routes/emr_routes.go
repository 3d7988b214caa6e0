package routes

import (
	"hms_back_end_go/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
)

func SetupEMRRoutes(r *gin.Engine, pool *pgxpool.Pool) {
	r.GET("/api/emr/:patientId", func(c *gin.Context) {
		services.GetPatientEMR(c, pool)
	})
}
