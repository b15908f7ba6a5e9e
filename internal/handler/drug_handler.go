package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"rxinsight/internal/model"
	"rxinsight/internal/repository"
	"rxinsight/internal/service"
)

// DrugHandler handles the drug query endpoints.
type DrugHandler struct {
	drugService service.DrugService
}

// NewDrugHandler creates a new drug handler.
func NewDrugHandler(drugService service.DrugService) *DrugHandler {
	return &DrugHandler{drugService: drugService}
}

// DrugListResponse is the common list payload of the drug endpoints.
type DrugListResponse struct {
	Drugs     []model.Drug            `json:"drugs"`
	Count     int                     `json:"count"`
	Condition string                  `json:"condition,omitempty"`
	Filters   *repository.DrugFilters `json:"filters,omitempty"`
	Message   string                  `json:"message,omitempty"`
}

// Search godoc
// @Summary Search drugs by name or condition
// @Tags drugs
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} DrugListResponse
// @Failure 501 {object} errors.ErrorResponse
// @Router /drugs/search [get]
func (h *DrugHandler) Search(c echo.Context) error {
	drugs, message, err := h.drugService.SearchByName(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, DrugListResponse{
		Drugs:   drugs,
		Count:   len(drugs),
		Message: message,
	})
}

// ByCondition godoc
// @Summary List drugs treating a condition, best rated first
// @Tags drugs
// @Produce json
// @Param condition query string true "Medical condition"
// @Success 200 {object} DrugListResponse
// @Failure 501 {object} errors.ErrorResponse
// @Router /drugs/condition [get]
func (h *DrugHandler) ByCondition(c echo.Context) error {
	condition := c.QueryParam("condition")
	if condition == "" {
		return c.JSON(http.StatusOK, DrugListResponse{
			Drugs:   []model.Drug{},
			Message: service.NeedSearchTermMessage,
		})
	}

	drugs, err := h.drugService.SearchByCondition(c.Request().Context(), condition)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, DrugListResponse{
		Drugs:     drugs,
		Count:     len(drugs),
		Condition: condition,
		Message:   fmt.Sprintf("Found %d drugs for %q", len(drugs), condition),
	})
}

// AdvancedSearch godoc
// @Summary Search drugs with combined filters
// @Tags drugs
// @Produce json
// @Param name query string false "Drug name fragment"
// @Param condition query string false "Condition fragment"
// @Param minRating query number false "Minimum rating"
// @Param rxOtc query string false "Rx/OTC flag"
// @Success 200 {object} DrugListResponse
// @Failure 501 {object} errors.ErrorResponse
// @Router /drugs/advanced-search [get]
func (h *DrugHandler) AdvancedSearch(c echo.Context) error {
	filters := repository.DrugFilters{
		Name:      c.QueryParam("name"),
		Condition: c.QueryParam("condition"),
		RxOTC:     c.QueryParam("rxOtc"),
	}
	if raw := c.QueryParam("minRating"); raw != "" {
		if minRating, err := strconv.ParseFloat(raw, 64); err == nil {
			filters.MinRating = &minRating
		}
	}

	drugs, err := h.drugService.AdvancedSearch(c.Request().Context(), filters)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, DrugListResponse{
		Drugs:   drugs,
		Count:   len(drugs),
		Filters: &filters,
	})
}

// TopRated godoc
// @Summary List the highest rated drugs
// @Tags drugs
// @Produce json
// @Param limit query int false "Row cap (default 10)"
// @Success 200 {object} DrugListResponse
// @Failure 501 {object} errors.ErrorResponse
// @Router /drugs/top-rated [get]
func (h *DrugHandler) TopRated(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	drugs, err := h.drugService.TopRated(c.Request().Context(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, DrugListResponse{
		Drugs:   drugs,
		Count:   len(drugs),
		Message: fmt.Sprintf("Top %d rated drugs", len(drugs)),
	})
}

// Detail godoc
// @Summary Aggregate view of one drug across its conditions
// @Tags drugs
// @Produce json
// @Param drugName path string true "Drug name"
// @Success 200 {object} service.DrugDetail
// @Failure 404 {object} errors.ErrorResponse
// @Failure 501 {object} errors.ErrorResponse
// @Router /drugs/{drugName} [get]
func (h *DrugHandler) Detail(c echo.Context) error {
	name, err := url.PathUnescape(c.Param("drugName"))
	if err != nil {
		name = c.Param("drugName")
	}

	detail, err := h.drugService.GetDrugDetail(c.Request().Context(), name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}
