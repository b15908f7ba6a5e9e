package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"rxinsight/internal/model"
	"rxinsight/internal/service"
)

// MedicineHandler handles the regional medicine and pharma company endpoints.
type MedicineHandler struct {
	medicineService service.RegionalMedicineService
	companyService  service.CompanyService
}

// NewMedicineHandler creates a new medicine handler.
func NewMedicineHandler(medicineService service.RegionalMedicineService, companyService service.CompanyService) *MedicineHandler {
	return &MedicineHandler{
		medicineService: medicineService,
		companyService:  companyService,
	}
}

// RegionalMedicineListResponse is the regional medicine search payload.
type RegionalMedicineListResponse struct {
	Medicines []model.RegionalMedicine `json:"medicines"`
	Count     int                      `json:"count"`
	Message   string                   `json:"message,omitempty"`
}

// CompanyListResponse is the pharma company listing payload.
type CompanyListResponse struct {
	Companies []model.PharmaCompany `json:"companies"`
	Count     int                   `json:"count"`
}

// Search godoc
// @Summary Search the regional medicine catalog
// @Tags medicines
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} RegionalMedicineListResponse
// @Failure 501 {object} errors.ErrorResponse
// @Router /medicines-india/search [get]
func (h *MedicineHandler) Search(c echo.Context) error {
	medicines, message, err := h.medicineService.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, RegionalMedicineListResponse{
		Medicines: medicines,
		Count:     len(medicines),
		Message:   message,
	})
}

// Companies godoc
// @Summary List pharma companies with their IPC subclasses
// @Tags medicines
// @Produce json
// @Success 200 {object} CompanyListResponse
// @Failure 501 {object} errors.ErrorResponse
// @Router /pharma-companies [get]
func (h *MedicineHandler) Companies(c echo.Context) error {
	companies, err := h.companyService.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, CompanyListResponse{
		Companies: companies,
		Count:     len(companies),
	})
}
