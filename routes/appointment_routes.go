package routes

import (
	"hms_back_end_go/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
)

func SetupAppointmentRoutes(r *gin.Engine, pool *pgxpool.Pool) {
	r.GET("/api/appointments", func(c *gin.Context) {
		services.ListAppointments(c, pool)
	})

	r.GET("/api/appointments/:id", func(c *gin.Context) {
		services.GetAppointmentByID(c, pool)
	})

	r.POST("/api/appointments", func(c *gin.Context) {
		services.CreateAppointment(c, pool)
	})

	r.PUT("/api/appointments/:id", func(c *gin.Context) {
		services.UpdateAppointment(c, pool)
	})

	r.DELETE("/api/appointments/:id", func(c *gin.Context) {
		services.DeleteAppointment(c, pool)
	})
}
