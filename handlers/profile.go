package handlers

import (
	"errors"
	"net/http"

	profileRepo "trimly/database/repository/profile"
	"trimly/middleware"
	"trimly/models"
	"trimly/services/assistant"
	"trimly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ProfileHandler serves the shop profile and weekly hours.
type ProfileHandler struct {
	Profiles  profileRepo.ProfileRepository
	Briefings *assistant.BriefingCache
	Validate  *validator.Validate
}

func NewProfileHandler(repo profileRepo.ProfileRepository, briefings *assistant.BriefingCache) *ProfileHandler {
	return &ProfileHandler{Profiles: repo, Briefings: briefings, Validate: validator.New()}
}

// Get returns the shop's profile and weekly hours.
func (h *ProfileHandler) Get(c *gin.Context) {
	shopID := middleware.ShopID(c)

	profile, err := h.Profiles.GetProfile(c.Request.Context(), shopID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Shop profile not configured", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load profile", err.Error())
		return
	}

	hours, err := h.Profiles.GetHours(c.Request.Context(), shopID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load hours", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile, "hours": hours})
}

type saveProfileRequest struct {
	Profile *models.ShopProfile    `json:"profile"`
	Hours   []models.BusinessHours `json:"hours"`
}

// Save upserts the shop's profile and any provided weekday hours.
func (h *ProfileHandler) Save(c *gin.Context) {
	var req saveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid profile payload", err.Error())
		return
	}

	shopID := middleware.ShopID(c)

	if req.Profile != nil {
		req.Profile.ShopID = shopID
		if err := h.Validate.Struct(req.Profile); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid profile", err.Error())
			return
		}
		if err := h.Profiles.UpsertProfile(c.Request.Context(), req.Profile); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to save profile", err.Error())
			return
		}
	}

	for i := range req.Hours {
		entry := &req.Hours[i]
		entry.ShopID = shopID
		if err := h.Validate.Struct(entry); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid hours entry", err.Error())
			return
		}
		if err := entry.CheckWindow(); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid hours entry", err.Error())
			return
		}
		if err := h.Profiles.UpsertHours(c.Request.Context(), entry); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to save hours", err.Error())
			return
		}
	}

	if h.Briefings != nil {
		h.Briefings.Invalidate(c.Request.Context(), shopID)
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}
