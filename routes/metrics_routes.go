package routes

import (
	"hms_back_end_go/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
)

func SetupMetricsRoutes(r *gin.Engine, pool *pgxpool.Pool) {
	r.GET("/metrics/patients", func(c *gin.Context) {
		services.GetPatientCount(c, pool)
	})

	r.GET("/metrics/appointments", func(c *gin.Context) {
		services.GetAppointmentsToday(c, pool)
	})

	r.GET("/metrics/billing", func(c *gin.Context) {
		services.GetPendingBilling(c, pool)
	})

	r.GET("/metrics/beds", func(c *gin.Context) {
		services.GetBedOccupancy(c, pool)
	})
}
