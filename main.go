package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"hms_back_end_go/db"
	"hms_back_end_go/routes"
	"hms_back_end_go/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	r := gin.Default()

	config := cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Content-Length", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}
	r.Use(cors.New(config))

	// Initialize database
	pool, err := db.InitDatabase()
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	defer pool.Close()

	// Static frontend
	r.Static("/public", "./public")
	r.StaticFile("/reset.html", "./public/reset.html")
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	r.GET("/ws", services.ServeTelemedicineWs)

	// Initialize routes
	routes.SetupPatientRoutes(r, pool)
	routes.SetupAppointmentRoutes(r, pool)
	routes.SetupLabRoutes(r, pool)
	routes.SetupEMRRoutes(r, pool)
	routes.SetupTelemedicineRoutes(r, pool)
	routes.SetupUserRoutes(r, pool)
	routes.SetupMetricsRoutes(r, pool)

	r.NoRoute(func(c *gin.Context) {
		log.Printf("Unmatched route: %s", c.Request.URL.Path)
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	r.Run(":" + port)
}
