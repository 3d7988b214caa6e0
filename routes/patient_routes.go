package routes

import (
	"hms_back_end_go/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
)

func SetupPatientRoutes(r *gin.Engine, pool *pgxpool.Pool) {
	r.GET("/api/patients", func(c *gin.Context) {
		services.ListPatients(c, pool)
	})

	r.GET("/api/patients/:id", func(c *gin.Context) {
		services.GetPatientByID(c, pool)
	})

	r.POST("/api/patients", func(c *gin.Context) {
		services.CreatePatient(c, pool)
	})

	r.PATCH("/api/patients/:id", func(c *gin.Context) {
		services.UpdatePatient(c, pool)
	})

	r.DELETE("/api/patients/:id", func(c *gin.Context) {
		services.DeletePatient(c, pool)
	})
}
