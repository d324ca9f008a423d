package main

import (
	"context"
	"log"
	"os"

	_ "panelapi/api/swagger" // swagger docs
	"panelapi/internal/database"
	"panelapi/internal/handler"
	"panelapi/internal/middleware"
	"panelapi/internal/repository"
	"panelapi/internal/serial"
	"panelapi/internal/service"
	"panelapi/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Budget Panel API
// @version         1.0
// @description     Construction budget admin panel: payment request workflow, projects, letters and daily reports.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbSslMode := os.Getenv("DB_SSLMODE")

	if dbHost == "" {
		dbHost = "localhost"
	}
	if dbPort == "" {
		dbPort = "5432"
	}
	if dbUser == "" {
		dbUser = "postgres"
	}
	if dbPassword == "" {
		dbPassword = "postgres"
	}
	if dbName == "" {
		dbName = "postgres"
	}
	if dbSslMode == "" {
		dbSslMode = "disable"
	}

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	db, err := database.NewConnection(dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	middleware.InitPermissionMiddleware(db)

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	serials := serial.NewService(db)

	userRepo := repository.NewUserRepository(db)
	requestRepo := repository.NewPaymentRequestRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	budgetRepo := repository.NewBudgetCodeRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	dailyReportRepo := repository.NewDailyReportRepository(db)

	userService := service.NewUserService(userRepo, db)
	requestService := service.NewPaymentRequestService(requestRepo, auditRepo, txManager, serials, wsHub)
	tagService := service.NewTagService(db)
	unitService := service.NewUnitService(db)
	currencyService := service.NewCurrencyService(db)
	budgetService := service.NewBudgetCodeService(budgetRepo)
	projectService := service.NewProjectService(projectRepo)
	dailyReportService := service.NewDailyReportService(dailyReportRepo, db)
	letterService := service.NewLetterService(db, serials)
	roleService := service.NewRoleService(db)
	reportService := service.NewReportService(db)
	auditService := service.NewAuditService(auditRepo)

	// Seed workflow roles and permission catalog
	if err := roleService.SeedDefaults(context.Background()); err != nil {
		log.Println("WARNING: Failed to seed default roles:", err)
	}

	// Initialize Handlers
	userHandler := handler.NewUserHandler(userService)
	requestHandler := handler.NewPaymentRequestHandler(requestService, serials)
	tagHandler := handler.NewTagHandler(tagService)
	unitHandler := handler.NewUnitHandler(unitService)
	currencyHandler := handler.NewCurrencyHandler(currencyService)
	budgetHandler := handler.NewBudgetCodeHandler(budgetService)
	projectHandler := handler.NewProjectHandler(projectService)
	dailyReportHandler := handler.NewDailyReportHandler(dailyReportService)
	letterHandler := handler.NewLetterHandler(letterService)
	roleHandler := handler.NewRoleHandler(roleService)
	reportHandler := handler.NewReportHandler(reportService)
	auditHandler := handler.NewAuditHandler(auditService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:5174"} // Frontend URL
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// Register API Routes
	userHandler.RegisterRoutes(router.Group(""))
	requestHandler.RegisterRoutes(router.Group(""))
	tagHandler.RegisterRoutes(router.Group(""))
	unitHandler.RegisterRoutes(router.Group(""))
	currencyHandler.RegisterRoutes(router.Group(""))
	budgetHandler.RegisterRoutes(router.Group(""))
	projectHandler.RegisterRoutes(router.Group(""))
	dailyReportHandler.RegisterRoutes(router.Group(""))
	letterHandler.RegisterRoutes(router.Group(""))
	roleHandler.RegisterRoutes(router.Group(""))
	reportHandler.RegisterRoutes(router.Group(""))
	auditHandler.RegisterRoutes(router.Group(""))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
