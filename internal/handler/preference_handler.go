package handler

import (
	"context"
	"net/http"
	"strconv"

	"newsapp/internal/model"

	"github.com/gin-gonic/gin"
)

type PreferenceStore interface {
	AddPreferences(ctx context.Context, userID int64, weights map[int64]int) ([]model.UserPreference, error)
	UserPreferences(ctx context.Context, userID int64) ([]model.UserPreference, error)
}

type PreferenceHandler struct {
	service PreferenceStore
}

func NewPreferenceHandler(service PreferenceStore) *PreferenceHandler {
	return &PreferenceHandler{service: service}
}

func (h *PreferenceHandler) GetPreferences(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	prefs, err := h.service.UserPreferences(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err, "error fetching preferences")
		return
	}

	c.JSON(http.StatusOK, toPreferenceResponses(prefs))
}

func (h *PreferenceHandler) SetPreferences(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var req PreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	saved, err := h.service.AddPreferences(c.Request.Context(), userID, req.Preferences)
	if err != nil {
		writeError(c, err, "error saving preferences")
		return
	}

	c.JSON(http.StatusOK, toPreferenceResponses(saved))
}

func toPreferenceResponses(prefs []model.UserPreference) []PreferenceResponse {
	res := make([]PreferenceResponse, 0, len(prefs))
	for _, pref := range prefs {
		res = append(res, PreferenceResponse{
			ID:         pref.UserPreferenceID,
			UserID:     pref.UserID,
			CategoryID: pref.CategoryID,
			Preference: pref.Preference,
		})
	}
	return res
}
