package routes

import (
	"hms_back_end_go/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
)

func SetupLabRoutes(r *gin.Engine, pool *pgxpool.Pool) {
	r.GET("/api/lab", func(c *gin.Context) {
		services.ListLabRecords(c, pool)
	})

	r.GET("/api/lab/:patientId", func(c *gin.Context) {
		services.ListLabRecordsForPatient(c, pool)
	})

	r.POST("/api/lab/:patientId", func(c *gin.Context) {
		services.CreateLabRecord(c, pool)
	})

	r.PUT("/api/lab/:id", func(c *gin.Context) {
		services.UpdateLabRecord(c, pool)
	})

	r.DELETE("/api/lab/:id", func(c *gin.Context) {
		services.DeleteLabRecord(c, pool)
	})
}
