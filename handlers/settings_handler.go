package handlers

import (
	"picboard/helper"
	"picboard/models"
	"picboard/services"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService services.SettingsService
	Helper          *helper.HTTPHelper
}

func NewSettingsHandler(settingsService services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, Helper: &helper.HTTPHelper{}}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	h.Helper.SendSuccess(c, "Settings loaded", h.settingsService.Snapshot())
}

// UpdateSettings persists the site settings and swaps the in-memory
// snapshot. Admin only.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.settingsService.Update(req); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Settings updated", h.settingsService.Snapshot())
}
