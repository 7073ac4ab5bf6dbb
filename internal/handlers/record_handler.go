package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "truckledger/internal/errors"
	"truckledger/internal/pagination"
	"truckledger/internal/services"
)

// RecordHandler handles daily record requests.
type RecordHandler struct {
	recordService services.RecordServicer
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(recordService services.RecordServicer) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// AddRecordRequest represents the request payload for recording a day.
// The cash balance is a pointer so an explicit zero passes validation.
type AddRecordRequest struct {
	CashBalance *float64 `json:"cash_balance" binding:"required"`
}

// AddRecord handles running one daily tick for a profile.
// @Summary     Add a daily record
// @Description Record the observed cash balance for the current day: amortize loans, derive the financial snapshot, append it to the history, and advance the day counter.
// @Tags        records
// @Accept      json
// @Produce     json
// @Param       id      path string           true "Profile ID"
// @Param       request body AddRecordRequest true "Observed cash balance"
// @Success     201 {object} models.DailyRecord "Record appended"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Profile not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{id}/records [post]
func (h *RecordHandler) AddRecord(c *gin.Context) {
	profileID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	record, err := h.recordService.AddRecord(profileID, *req.CashBalance)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"record": record})
}

// GetRecords handles the retrieval of a profile's record history.
// @Summary     Get daily records
// @Description Get a paginated record history in ascending day order
// @Tags        records
// @Accept      json
// @Produce     json
// @Param       id        path  string true  "Profile ID"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.DailyRecord] "Paginated records"
// @Failure     400 {object} ErrorResponse "Invalid profile ID"
// @Failure     404 {object} ErrorResponse "Profile not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{id}/records [get]
func (h *RecordHandler) GetRecords(c *gin.Context) {
	profileID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.recordService.GetRecords(profileID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSummary handles the retrieval of the dashboard overview.
// @Summary     Get profile summary
// @Description Get the current day, weekday name, latest record, and live fleet counts
// @Tags        records
// @Accept      json
// @Produce     json
// @Param       id path string true "Profile ID"
// @Success     200 {object} services.Summary "Dashboard summary"
// @Failure     400 {object} ErrorResponse "Invalid profile ID"
// @Failure     404 {object} ErrorResponse "Profile not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{id}/summary [get]
func (h *RecordHandler) GetSummary(c *gin.Context) {
	profileID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.recordService.GetSummary(profileID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
