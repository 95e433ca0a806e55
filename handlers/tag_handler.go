package handlers

import (
	"picboard/helper"
	"picboard/models"
	"picboard/services"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService services.TagService
	Helper     *helper.HTTPHelper
}

func NewTagHandler(tagService services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService, Helper: &helper.HTTPHelper{}}
}

// SuggestTags completes the query token under the caret.
func (h *TagHandler) SuggestTags(c *gin.Context) {
	var req models.SuggestTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	suggestions, err := h.tagService.Suggest(req.Text, req.Caret)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Suggestions loaded", gin.H{"suggestions": suggestions})
}

// EditTag renames a tag, merging it into the target when the new name is
// already taken. Admin only.
func (h *TagHandler) EditTag(c *gin.Context) {
	var req models.EditTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.tagService.RenameOrMerge(req.Tag, req.NewTag); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Tag updated", h.Helper.EmptyJsonMap())
}

// CleanTags deletes every tag no post references anymore. Admin only.
func (h *TagHandler) CleanTags(c *gin.Context) {
	removed, err := h.tagService.GarbageCollect()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Tags cleaned", gin.H{"removed": removed})
}
