package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/nick-riduck/bike-course-simulator/internal/api/handlers"
	"github.com/nick-riduck/bike-course-simulator/internal/api/middleware"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	wd, err := os.Getwd()
	if err == nil {
		log.Printf("Working directory: %s", wd)
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	courseDir := os.Getenv("COURSE_DIR")
	riderDir := os.Getenv("RIDER_DIR")
	canonicalRiderFile := os.Getenv("CANONICAL_RIDER_FILE")

	planHandler := handlers.NewPlanHandler(courseDir)
	riderHandler := handlers.NewRiderHandler(riderDir)
	strategyHandler := handlers.NewStrategyHandler()
	courseHandler := handlers.NewCourseHandler(courseDir, canonicalRiderFile)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/plans", planHandler.RunPlan)
		api.GET("/plans/:id/trace", planHandler.GetTrace)
		api.POST("/plans/compare", planHandler.ComparePlans)

		api.GET("/riders", riderHandler.ListRiders)
		api.GET("/riders/:id", riderHandler.GetRider)

		api.GET("/strategies", strategyHandler.ListStrategies)

		api.GET("/courses", courseHandler.ListCourses)
		api.GET("/courses/rank", courseHandler.RankCourses)
	}

	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/dist"
	}
	if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		log.Printf("Serving static files from %s", staticDir)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
