package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"rxinsight/internal/config"
	"rxinsight/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	drugHandler *handler.DrugHandler,
	medicineHandler *handler.MedicineHandler,
	inventoryHandler *handler.InventoryHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Auth
	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Drug queries
	api.GET("/drugs/search", drugHandler.Search)
	api.GET("/drugs/condition", drugHandler.ByCondition)
	api.GET("/drugs/advanced-search", drugHandler.AdvancedSearch)
	api.GET("/drugs/top-rated", drugHandler.TopRated)
	api.GET("/drugs/:drugName", drugHandler.Detail)

	// Regional catalog and companies
	api.GET("/medicines-india/search", medicineHandler.Search)
	api.GET("/pharma-companies", medicineHandler.Companies)

	// Inventory listings
	api.GET("/medicines", inventoryHandler.Medicines)
	api.GET("/suppliers", inventoryHandler.Suppliers)
	api.GET("/customers", inventoryHandler.Customers)
	api.GET("/sales", inventoryHandler.Sales)

	// Analytics
	api.GET("/analytics/low-stock", inventoryHandler.LowStock)
	api.GET("/analytics/expiring-soon", inventoryHandler.ExpiringSoon)
	api.GET("/analytics/sales-summary", inventoryHandler.SalesSummary)

	// Secured routes (require JWT authentication). The default token lookup
	// strips the "Bearer " prefix from the Authorization header.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	secured.GET("/me", authHandler.Me)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
