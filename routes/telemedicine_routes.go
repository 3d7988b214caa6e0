package routes

import (
	"hms_back_end_go/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
)

func SetupTelemedicineRoutes(r *gin.Engine, pool *pgxpool.Pool) {
	r.GET("/api/telemedicine/appointments/:patientId", func(c *gin.Context) {
		services.ListTelemedicineAppointments(c, pool)
	})

	r.POST("/api/telemedicine/appointments/:patientId", func(c *gin.Context) {
		services.CreateTelemedicineAppointment(c, pool)
	})

	r.DELETE("/api/telemedicine/appointments/:id", func(c *gin.Context) {
		services.CancelTelemedicineAppointment(c, pool)
	})

	r.POST("/api/telemedicine/prescriptions/:patientId", func(c *gin.Context) {
		services.CreateTelemedicinePrescription(c, pool)
	})

	r.GET("/api/telemedicine/patients/:patientId/emr", func(c *gin.Context) {
		services.GetTelemedicineEMR(c, pool)
	})

	r.POST("/api/telemedicine/messages/:patientId", func(c *gin.Context) {
		services.CreateTelemedicineMessage(c, pool)
	})
}
