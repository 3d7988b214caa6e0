package routes

import (
	"hms_back_end_go/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
)

func SetupUserRoutes(r *gin.Engine, pool *pgxpool.Pool) {
	r.POST("/register", func(c *gin.Context) {
		services.RegisterUser(c, pool)
	})

	r.POST("/login", func(c *gin.Context) {
		services.LoginUser(c, pool)
	})

	r.POST("/forgot", func(c *gin.Context) {
		services.ForgotPassword(c, pool)
	})

	r.POST("/reset", func(c *gin.Context) {
		services.ResetPassword(c, pool)
	})
}
