package main

import (
	"net/http"
	"os"

	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/config"
	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/database"
	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/handlers"
	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/logger"
	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/middleware"
	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/monitoring"
	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/roster"
	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/services"

	_ "github.com/Shyamantha-C/exam-tool-backend-clean/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title           Exam Tool API
// @version         1.0
// @description     Online-exam administration backend: roster upload, question authoring, single-attempt exam taking and grading
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey AdminToken
// @in header
// @name X-ADMIN-TOKEN
// @description Opaque admin capability issued by /api/admin/login

func main() {
	cfg := config.Load()
	logger.Init(cfg.Mode)
	monitoring.Init()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	rosterStore := roster.NewStore()
	loadRosterFile(rosterStore, cfg.RosterPath)

	authService := services.NewAuthService(db, cfg.JWTSecret)
	studentService := services.NewStudentService(db, rosterStore)
	questionService := services.NewQuestionService(db)
	examService := services.NewExamService(db)
	scheduleService := services.NewScheduleService()

	authHandler := handlers.NewAuthHandler(authService)
	rosterHandler := handlers.NewRosterHandler(rosterStore, cfg.RosterPath)
	questionHandler := handlers.NewQuestionHandler(questionService)
	examHandler := handlers.NewExamHandler(examService, studentService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)

	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-ADMIN-TOKEN"},
		AllowCredentials: true,
	}))
	r.Use(monitoring.MetricsMiddleware())

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", monitoring.PrometheusHandler())

	api := r.Group("/api")
	{
		admin := api.Group("/admin")
		{
			admin.POST("/login", authHandler.AdminLogin)

			guarded := admin.Group("")
			guarded.Use(middleware.AdminAuth(authService))
			{
				guarded.POST("/upload-students", rosterHandler.Upload)
				guarded.GET("/excel-students", rosterHandler.List)
				guarded.DELETE("/delete-excel-student", rosterHandler.Delete)
				guarded.POST("/add-question", questionHandler.Add)
				guarded.GET("/questions", questionHandler.List)
				guarded.POST("/set-exam-time", scheduleHandler.Set)
			}
		}

		api.GET("/exam-time", scheduleHandler.Get)
		api.POST("/student/login", examHandler.StudentLogin)
		api.POST("/start", examHandler.Start)
		api.GET("/questions_for/:attempt_id", examHandler.Questions)
		api.POST("/submit", examHandler.Submit)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}

	logger.Log.Info("server starting", zap.String("port", cfg.ServerPort))
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logger.Log.Fatal("failed to start server", zap.Error(err))
	}
}

// loadRosterFile primes the roster at process start. A missing file is
// fine (empty roster until an admin uploads one); a malformed file is not.
func loadRosterFile(store *roster.Store, path string) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Log.Warn("roster file not found", zap.String("path", path))
		return
	}

	rows, err := roster.ParseFile(path)
	if err != nil {
		logger.Log.Fatal("failed to load roster", zap.Error(err))
	}

	count := store.Load(rows)
	monitoring.RosterEntries.Set(float64(count))
	logger.Log.Info("roster loaded", zap.Int("students", count))
}
