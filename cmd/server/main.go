package main

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"rxinsight/docs"
	"rxinsight/internal/auth"
	"rxinsight/internal/cache"
	"rxinsight/internal/config"
	"rxinsight/internal/db"
	"rxinsight/internal/handler"
	"rxinsight/internal/model"
	"rxinsight/internal/repository"
	"rxinsight/internal/router"
	"rxinsight/internal/service"
)

// @title Pharma Research Dashboard API
// @version 1.0
// @description Signup/login plus read-only queries over the imported pharmaceutical datasets.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	// Store selection is decided here, by configuration, once. Services
	// receive their stores through constructors and nothing else touches
	// process-wide state.
	var gormDB *gorm.DB
	switch {
	case cfg.HasMySQL():
		var err error
		gormDB, err = db.NewMySQL(cfg.MySQLDSN())
		if err != nil {
			log.Fatalf("database init: %v", err)
		}
		log.Printf("using mysql store at %s/%s", cfg.MySQLHost, cfg.MySQLDatabase)
	case cfg.HasSQLite():
		var err error
		gormDB, err = db.NewSQLite(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("database init: %v", err)
		}
		log.Printf("using sqlite store at %s", cfg.SQLitePath)
	default:
		log.Printf("no relational store configured; credentials fall back to %s and data endpoints answer 501", cfg.UsersFile)
	}

	if gormDB != nil {
		if err := gormDB.AutoMigrate(
			&model.User{},
			&model.Drug{},
			&model.RegionalMedicine{},
			&model.PharmaCompany{},
			&model.Supplier{},
			&model.Customer{},
			&model.Medicine{},
			&model.Sale{},
		); err != nil {
			log.Fatalf("auto-migrate: %v", err)
		}
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if !cacheClient.Ping(context.Background()) {
		log.Printf("redis unreachable at %s; serving without cached views", cfg.RedisAddr)
	}

	// Credential store: relational when available, JSON file otherwise.
	var credStore repository.CredentialStore
	if gormDB != nil {
		credStore = repository.NewCredentialStore(gormDB)
	} else {
		credStore = repository.NewJSONFileCredentialStore(cfg.UsersFile)
	}

	// Data repositories stay nil without a relational store; the services
	// turn that into a distinguishable not-configured failure.
	var (
		drugRepo      repository.DrugRepository
		regionalRepo  repository.RegionalMedicineRepository
		companyRepo   repository.CompanyRepository
		inventoryRepo repository.InventoryRepository
	)
	if gormDB != nil {
		drugRepo = repository.NewDrugRepository(gormDB)
		regionalRepo = repository.NewRegionalMedicineRepository(gormDB)
		companyRepo = repository.NewCompanyRepository(gormDB)
		inventoryRepo = repository.NewInventoryRepository(gormDB)
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(credStore, jwtService, tokenStore)
	drugService := service.NewDrugService(drugRepo)
	medicineService := service.NewRegionalMedicineService(regionalRepo)
	companyService := service.NewCompanyService(companyRepo, cacheClient)
	inventoryService := service.NewInventoryService(inventoryRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	drugHandler := handler.NewDrugHandler(drugService)
	medicineHandler := handler.NewMedicineHandler(medicineService, companyService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		drugHandler,
		medicineHandler,
		inventoryHandler,
	)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}
	log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
