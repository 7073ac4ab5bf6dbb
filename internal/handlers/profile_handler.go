package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "truckledger/internal/errors"
	"truckledger/internal/models"
	"truckledger/internal/pagination"
	"truckledger/internal/services"
)

// ProfileHandler handles profile lifecycle requests.
type ProfileHandler struct {
	profileService services.ProfileServicer
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService services.ProfileServicer) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// CreateProfileRequest represents the request payload for creating a profile.
type CreateProfileRequest struct {
	Game             string  `json:"game" binding:"required,game_variant"`
	PlayerName       string  `json:"player_name" binding:"required,min=1,max=100"`
	CompanyName      string  `json:"company_name" binding:"required,min=1,max=100"`
	Currency         string  `json:"currency" binding:"required,currency_code"`
	StartingLocation string  `json:"starting_location" binding:"max=100"`
	StartingDay      int     `json:"starting_day" binding:"gte=0"`
	StartingWeekday  int     `json:"starting_weekday" binding:"gte=0,lte=6"`
	StartingCash     float64 `json:"starting_cash" binding:"gte=0"`
}

// CreateProfile handles the creation of a new game profile.
// @Summary     Create a profile
// @Description Create a new game profile. Profiles starting at day 0 are seeded with a starter garage and a day-0 record.
// @Tags        profiles
// @Accept      json
// @Produce     json
// @Param       request body CreateProfileRequest true "Profile details"
// @Success     201 {object} models.Profile "Profile created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	profile, err := h.profileService.CreateProfile(services.CreateProfileInput{
		Game:             models.GameVariant(req.Game),
		PlayerName:       req.PlayerName,
		CompanyName:      req.CompanyName,
		Currency:         req.Currency,
		StartingLocation: req.StartingLocation,
		StartingDay:      req.StartingDay,
		StartingWeekday:  req.StartingWeekday,
		StartingCash:     req.StartingCash,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"profile": profile})
}

// ListProfiles handles the retrieval of the profile index.
// @Summary     List profiles
// @Description Get a paginated list of game profiles in creation order
// @Tags        profiles
// @Accept      json
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Profile] "Paginated profiles"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles [get]
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.profileService.ListProfiles(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetProfile handles the retrieval of a full profile aggregate.
// @Summary     Get profile by ID
// @Description Get a profile with its asset collections and record history
// @Tags        profiles
// @Accept      json
// @Produce     json
// @Param       id path string true "Profile ID"
// @Success     200 {object} models.Profile "Profile details"
// @Failure     400 {object} ErrorResponse "Invalid profile ID"
// @Failure     404 {object} ErrorResponse "Profile not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profileID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	profile, err := h.profileService.GetProfile(profileID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// DeleteProfile handles the destruction of a profile and everything it owns.
// @Summary     Delete profile
// @Description Delete a profile with its assets, loans, and record history
// @Tags        profiles
// @Accept      json
// @Produce     json
// @Param       id path string true "Profile ID"
// @Success     200 {object} MessageResponse "Profile deleted"
// @Failure     400 {object} ErrorResponse "Invalid profile ID"
// @Failure     404 {object} ErrorResponse "Profile not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{id} [delete]
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	profileID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.profileService.DeleteProfile(profileID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile deleted successfully"})
}
