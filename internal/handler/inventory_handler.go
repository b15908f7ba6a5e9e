package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"rxinsight/internal/model"
	"rxinsight/internal/service"
)

// InventoryHandler handles the inventory listings and analytics endpoints.
type InventoryHandler struct {
	inventoryService service.InventoryService
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// MedicineListResponse is the inventory medicine payload, shared by the full
// listing and both analytics views.
type MedicineListResponse struct {
	Medicines []model.Medicine `json:"medicines"`
	Count     int              `json:"count"`
	Threshold int              `json:"threshold,omitempty"`
	Days      int              `json:"days,omitempty"`
}

// SupplierListResponse is the supplier listing payload.
type SupplierListResponse struct {
	Suppliers []model.Supplier `json:"suppliers"`
	Count     int              `json:"count"`
}

// CustomerListResponse is the customer listing payload.
type CustomerListResponse struct {
	Customers []model.Customer `json:"customers"`
	Count     int              `json:"count"`
}

// SaleListResponse is the sales listing payload.
type SaleListResponse struct {
	Sales []model.Sale `json:"sales"`
	Count int          `json:"count"`
}

// SalesSummaryResponse is the aggregated sales payload.
type SalesSummaryResponse struct {
	Summary []model.SalesSummaryRow `json:"summary"`
	Count   int                     `json:"count"`
}

// Medicines godoc
// @Summary List the medicine inventory
// @Tags inventory
// @Produce json
// @Success 200 {object} MedicineListResponse
// @Failure 501 {object} errors.ErrorResponse
// @Router /medicines [get]
func (h *InventoryHandler) Medicines(c echo.Context) error {
	medicines, err := h.inventoryService.ListMedicines(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MedicineListResponse{Medicines: medicines, Count: len(medicines)})
}

// Suppliers godoc
// @Summary List suppliers
// @Tags inventory
// @Produce json
// @Success 200 {object} SupplierListResponse
// @Failure 501 {object} errors.ErrorResponse
// @Router /suppliers [get]
func (h *InventoryHandler) Suppliers(c echo.Context) error {
	suppliers, err := h.inventoryService.ListSuppliers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SupplierListResponse{Suppliers: suppliers, Count: len(suppliers)})
}

// Customers godoc
// @Summary List customers
// @Tags inventory
// @Produce json
// @Success 200 {object} CustomerListResponse
// @Failure 501 {object} errors.ErrorResponse
// @Router /customers [get]
func (h *InventoryHandler) Customers(c echo.Context) error {
	customers, err := h.inventoryService.ListCustomers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, CustomerListResponse{Customers: customers, Count: len(customers)})
}

// Sales godoc
// @Summary List sales
// @Tags inventory
// @Produce json
// @Success 200 {object} SaleListResponse
// @Failure 501 {object} errors.ErrorResponse
// @Router /sales [get]
func (h *InventoryHandler) Sales(c echo.Context) error {
	sales, err := h.inventoryService.ListSales(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SaleListResponse{Sales: sales, Count: len(sales)})
}

// LowStock godoc
// @Summary List medicines with stock below a threshold
// @Tags analytics
// @Produce json
// @Param threshold query int false "Stock threshold (default 50)"
// @Success 200 {object} MedicineListResponse
// @Failure 501 {object} errors.ErrorResponse
// @Router /analytics/low-stock [get]
func (h *InventoryHandler) LowStock(c echo.Context) error {
	threshold, _ := strconv.Atoi(c.QueryParam("threshold"))

	medicines, effective, err := h.inventoryService.LowStock(c.Request().Context(), threshold)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MedicineListResponse{
		Medicines: medicines,
		Count:     len(medicines),
		Threshold: effective,
	})
}

// ExpiringSoon godoc
// @Summary List medicines expiring within a window
// @Tags analytics
// @Produce json
// @Param days query int false "Window in days (default 30)"
// @Success 200 {object} MedicineListResponse
// @Failure 501 {object} errors.ErrorResponse
// @Router /analytics/expiring-soon [get]
func (h *InventoryHandler) ExpiringSoon(c echo.Context) error {
	days, _ := strconv.Atoi(c.QueryParam("days"))

	medicines, effective, err := h.inventoryService.ExpiringSoon(c.Request().Context(), days)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MedicineListResponse{
		Medicines: medicines,
		Count:     len(medicines),
		Days:      effective,
	})
}

// SalesSummary godoc
// @Summary Daily sales aggregate for the most recent 30 sale dates
// @Tags analytics
// @Produce json
// @Success 200 {object} SalesSummaryResponse
// @Failure 501 {object} errors.ErrorResponse
// @Router /analytics/sales-summary [get]
func (h *InventoryHandler) SalesSummary(c echo.Context) error {
	summary, err := h.inventoryService.SalesSummary(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SalesSummaryResponse{Summary: summary, Count: len(summary)})
}
