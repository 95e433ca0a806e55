package handlers

import (
	"strconv"

	"picboard/helper"
	"picboard/middleware"
	"picboard/models"
	"picboard/services"

	"github.com/gin-gonic/gin"
)

type PoolHandler struct {
	poolService services.PoolService
	Helper      *helper.HTTPHelper
}

func NewPoolHandler(poolService services.PoolService) *PoolHandler {
	return &PoolHandler{poolService: poolService, Helper: &helper.HTTPHelper{}}
}

func (h *PoolHandler) CreatePool(c *gin.Context) {
	var req models.CreatePoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	viewer := middleware.Identity(c)
	pool, err := h.poolService.Create(req.Name, viewer)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Pool created", pool)
}

func (h *PoolHandler) GetPools(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	viewer := middleware.Identity(c)
	pools, totalPages, err := h.poolService.List(viewer, params.Limit, params.Page)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Pools loaded", gin.H{
		"pools":  pools,
		"paging": h.Helper.GeneratePaging(params.Page, params.Limit, totalPages),
	})
}

// GetPool answers the pool with one page of its posts in pool order.
func (h *PoolHandler) GetPool(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid pool ID", h.Helper.EmptyJsonMap())
		return
	}

	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	viewer := middleware.Identity(c)
	pool, err := h.poolService.Get(uint(id), viewer)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	posts, totalPages, err := h.poolService.Contents(uint(id), viewer, params.Limit, params.Page)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Pool loaded", gin.H{
		"pool":   pool,
		"posts":  posts,
		"paging": h.Helper.GeneratePaging(params.Page, params.Limit, totalPages),
	})
}

func (h *PoolHandler) RenamePool(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid pool ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.RenamePoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	viewer := middleware.Identity(c)
	if err := h.poolService.Rename(uint(id), req.Name, viewer); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Pool renamed", h.Helper.EmptyJsonMap())
}

func (h *PoolHandler) SetPoolVisibility(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid pool ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.PoolVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	viewer := middleware.Identity(c)
	if err := h.poolService.SetVisibility(uint(id), req.IsPublic, viewer); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Pool updated", h.Helper.EmptyJsonMap())
}

func (h *PoolHandler) DeletePool(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid pool ID", h.Helper.EmptyJsonMap())
		return
	}

	viewer := middleware.Identity(c)
	if err := h.poolService.Delete(uint(id), viewer); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Pool deleted", h.Helper.EmptyJsonMap())
}

func (h *PoolHandler) AddPoolPost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid pool ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.AddPoolPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	viewer := middleware.Identity(c)
	membership, err := h.poolService.Append(uint(id), req.PostID, viewer)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Post added to pool", membership)
}

// SortPool moves one post between positions in the pool order.
func (h *PoolHandler) SortPool(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid pool ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.SortPoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	viewer := middleware.Identity(c)
	position, err := h.poolService.Move(uint(id), req.OldIndex, req.NewIndex, viewer)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Pool sorted", gin.H{"position": position})
}

func (h *PoolHandler) RemovePoolPost(c *gin.Context) {
	membershipID, err := strconv.ParseUint(c.Param("poolPostId"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid pool post ID", h.Helper.EmptyJsonMap())
		return
	}

	viewer := middleware.Identity(c)
	if err := h.poolService.RemovePost(uint(membershipID), viewer); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Post removed from pool", h.Helper.EmptyJsonMap())
}
