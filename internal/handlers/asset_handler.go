package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "truckledger/internal/errors"
	"truckledger/internal/models"
	"truckledger/internal/services"
)

// AssetHandler handles asset ledger requests for all five managed
// collections.
type AssetHandler struct {
	assetService services.AssetServicer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService services.AssetServicer) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// UpsertGarageRequest represents the request payload for upserting a garage.
// An empty ID inserts; a known ID replaces that row.
type UpsertGarageRequest struct {
	ID       string  `json:"id" binding:"omitempty,uuid"`
	Day      *int    `json:"day" binding:"omitempty,gte=0"`
	Location string  `json:"location" binding:"required,min=1,max=100"`
	Size     string  `json:"size" binding:"required,garage_size"`
	Value    float64 `json:"value" binding:"gte=0"`
}

// UpsertTruckRequest represents the request payload for upserting a truck.
type UpsertTruckRequest struct {
	ID        string  `json:"id" binding:"omitempty,uuid"`
	Day       *int    `json:"day" binding:"omitempty,gte=0"`
	Brand     string  `json:"brand" binding:"max=100"`
	Model     string  `json:"model" binding:"max=100"`
	Value     float64 `json:"value" binding:"gte=0"`
	Condition int     `json:"condition" binding:"gte=0,lte=100"`
}

// UpsertTrailerRequest represents the request payload for upserting a trailer.
type UpsertTrailerRequest struct {
	ID        string  `json:"id" binding:"omitempty,uuid"`
	Day       *int    `json:"day" binding:"omitempty,gte=0"`
	BodyType  string  `json:"body_type" binding:"max=100"`
	Model     string  `json:"model" binding:"max=100"`
	Value     float64 `json:"value" binding:"gte=0"`
	Condition int     `json:"condition" binding:"gte=0,lte=100"`
}

// UpsertDriverRequest represents the request payload for upserting a driver.
type UpsertDriverRequest struct {
	ID     string  `json:"id" binding:"omitempty,uuid"`
	Day    *int    `json:"day" binding:"omitempty,gte=0"`
	Name   string  `json:"name" binding:"required,min=1,max=100"`
	City   string  `json:"city" binding:"max=100"`
	Salary float64 `json:"salary" binding:"gte=0"`
}

// UpsertLoanRequest represents the request payload for upserting a loan.
// A nil remaining balance defaults to the principal on insert and leaves
// the balance untouched on update.
type UpsertLoanRequest struct {
	ID               string   `json:"id" binding:"omitempty,uuid"`
	Day              *int     `json:"day" binding:"omitempty,gte=0"`
	Amount           float64  `json:"amount" binding:"gte=0"`
	Term             int      `json:"term" binding:"gte=0"`
	InterestRate     float64  `json:"interest_rate" binding:"gte=0,lte=100"`
	DailyInstallment float64  `json:"daily_installment" binding:"gte=0"`
	Remaining        *float64 `json:"remaining" binding:"omitempty,gte=0"`
}

// UpsertGarage handles inserting or replacing a garage.
// @Summary     Upsert a garage
// @Description Insert a garage, or replace the one matching the given id
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       id      path string              true "Profile ID"
// @Param       request body UpsertGarageRequest true "Garage details"
// @Success     200 {object} models.Garage "Stored garage"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Profile not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{id}/garages [put]
func (h *AssetHandler) UpsertGarage(c *gin.Context) {
	profileID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpsertGarageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	garage, err := h.assetService.UpsertGarage(profileID, services.GarageInput{
		ID:       req.ID,
		Day:      req.Day,
		Location: req.Location,
		Size:     models.GarageSize(req.Size),
		Value:    req.Value,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"garage": garage})
}

// RemoveGarage handles removing a garage from the ledger.
// @Summary     Remove a garage
// @Description Remove a garage by id; removing an absent id is a no-op
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       id      path string true "Profile ID"
// @Param       assetID path string true "Garage ID"
// @Success     200 {object} MessageResponse "Garage removed"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Profile not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{id}/garages/{assetID} [delete]
func (h *AssetHandler) RemoveGarage(c *gin.Context) {
	profileID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	garageID, err := parseUUIDParam(c, "assetID")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.assetService.RemoveGarage(profileID, garageID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Garage removed successfully"})
}

// UpsertTruck handles inserting or replacing a truck.
// @Summary     Upsert a truck
// @Description Insert a truck, or replace the one matching the given id
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       id      path string             true "Profile ID"
// @Param       request body UpsertTruckRequest true "Truck details"
// @Success     200 {object} models.Truck "Stored truck"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Profile not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{id}/trucks [put]
func (h *AssetHandler) UpsertTruck(c *gin.Context) {
	profileID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpsertTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	truck, err := h.assetService.UpsertTruck(profileID, services.TruckInput{
		ID:        req.ID,
		Day:       req.Day,
		Brand:     req.Brand,
		Model:     req.Model,
		Value:     req.Value,
		Condition: req.Condition,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"truck": truck})
}

// RemoveTruck handles removing a truck from the ledger.
// @Summary     Remove a truck
// @Description Remove a truck by id; removing an absent id is a no-op
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       id      path string true "Profile ID"
// @Param       assetID path string true "Truck ID"
// @Success     200 {object} MessageResponse "Truck removed"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Profile not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{id}/trucks/{assetID} [delete]
func (h *AssetHandler) RemoveTruck(c *gin.Context) {
	profileID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	truckID, err := parseUUIDParam(c, "assetID")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.assetService.RemoveTruck(profileID, truckID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Truck removed successfully"})
}

// UpsertTrailer handles inserting or replacing a trailer.
// @Summary     Upsert a trailer
// @Description Insert a trailer, or replace the one matching the given id
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       id      path string               true "Profile ID"
// @Param       request body UpsertTrailerRequest true "Trailer details"
// @Success     200 {object} models.Trailer "Stored trailer"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Profile not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{id}/trailers [put]
func (h *AssetHandler) UpsertTrailer(c *gin.Context) {
	profileID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpsertTrailerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	trailer, err := h.assetService.UpsertTrailer(profileID, services.TrailerInput{
		ID:        req.ID,
		Day:       req.Day,
		BodyType:  req.BodyType,
		Model:     req.Model,
		Value:     req.Value,
		Condition: req.Condition,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trailer": trailer})
}

// RemoveTrailer handles removing a trailer from the ledger.
// @Summary     Remove a trailer
// @Description Remove a trailer by id; removing an absent id is a no-op
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       id      path string true "Profile ID"
// @Param       assetID path string true "Trailer ID"
// @Success     200 {object} MessageResponse "Trailer removed"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Profile not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{id}/trailers/{assetID} [delete]
func (h *AssetHandler) RemoveTrailer(c *gin.Context) {
	profileID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	trailerID, err := parseUUIDParam(c, "assetID")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.assetService.RemoveTrailer(profileID, trailerID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trailer removed successfully"})
}

// UpsertDriver handles inserting or replacing a driver.
// @Summary     Upsert a driver
// @Description Insert a driver, or replace the one matching the given id
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       id      path string              true "Profile ID"
// @Param       request body UpsertDriverRequest true "Driver details"
// @Success     200 {object} models.Driver "Stored driver"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Profile not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{id}/drivers [put]
func (h *AssetHandler) UpsertDriver(c *gin.Context) {
	profileID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpsertDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	driver, err := h.assetService.UpsertDriver(profileID, services.DriverInput{
		ID:     req.ID,
		Day:    req.Day,
		Name:   req.Name,
		City:   req.City,
		Salary: req.Salary,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"driver": driver})
}

// RemoveDriver handles removing a driver from the ledger.
// @Summary     Remove a driver
// @Description Remove a driver by id; removing an absent id is a no-op
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       id      path string true "Profile ID"
// @Param       assetID path string true "Driver ID"
// @Success     200 {object} MessageResponse "Driver removed"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Profile not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{id}/drivers/{assetID} [delete]
func (h *AssetHandler) RemoveDriver(c *gin.Context) {
	profileID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	driverID, err := parseUUIDParam(c, "assetID")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.assetService.RemoveDriver(profileID, driverID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Driver removed successfully"})
}

// UpsertLoan handles inserting or replacing a loan.
// @Summary     Upsert a loan
// @Description Insert a loan, or replace the one matching the given id
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       id      path string            true "Profile ID"
// @Param       request body UpsertLoanRequest true "Loan details"
// @Success     200 {object} models.Loan "Stored loan"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Profile not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{id}/loans [put]
func (h *AssetHandler) UpsertLoan(c *gin.Context) {
	profileID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpsertLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	loan, err := h.assetService.UpsertLoan(profileID, services.LoanInput{
		ID:               req.ID,
		Day:              req.Day,
		Amount:           req.Amount,
		Term:             req.Term,
		InterestRate:     req.InterestRate,
		DailyInstallment: req.DailyInstallment,
		Remaining:        req.Remaining,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"loan": loan})
}

// RemoveLoan handles removing a loan from the ledger.
// @Summary     Remove a loan
// @Description Remove a loan by id; removing an absent id is a no-op
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       id      path string true "Profile ID"
// @Param       assetID path string true "Loan ID"
// @Success     200 {object} MessageResponse "Loan removed"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Profile not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{id}/loans/{assetID} [delete]
func (h *AssetHandler) RemoveLoan(c *gin.Context) {
	profileID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	loanID, err := parseUUIDParam(c, "assetID")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.assetService.RemoveLoan(profileID, loanID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Loan removed successfully"})
}

// ClearLoan handles paying off a loan in full.
// @Summary     Clear a loan
// @Description Zero the remaining balance of a loan immediately; the loan stays in the ledger
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       id      path string true "Profile ID"
// @Param       assetID path string true "Loan ID"
// @Success     200 {object} models.Loan "Cleared loan"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Profile or loan not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{id}/loans/{assetID}/clear [post]
func (h *AssetHandler) ClearLoan(c *gin.Context) {
	profileID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	loanID, err := parseUUIDParam(c, "assetID")
	if err != nil {
		respondWithError(c, err)
		return
	}

	loan, err := h.assetService.ClearLoan(profileID, loanID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"loan": loan})
}
