package handlers

import (
	"strconv"

	"picboard/helper"
	"picboard/middleware"
	"picboard/models"
	"picboard/services"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService   services.PostService
	searchService services.SearchService
	Helper        *helper.HTTPHelper
}

func NewPostHandler(postService services.PostService, searchService services.SearchService) *PostHandler {
	return &PostHandler{
		postService:   postService,
		searchService: searchService,
		Helper:        &helper.HTTPHelper{},
	}
}

// SearchPosts answers one page of overview rows for a tag query. Anonymous
// callers only see public posts.
func (h *PostHandler) SearchPosts(c *gin.Context) {
	var params models.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	viewer := middleware.Identity(c)
	posts, totalPages, err := h.searchService.Search(params.Tags, viewer, params.Limit, params.Page)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Posts loaded", gin.H{
		"posts":  posts,
		"paging": h.Helper.GeneratePaging(params.Page, params.Limit, totalPages),
	})
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	post, err := h.postService.Create(req, userID.(uint))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Post created", post)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid post ID", h.Helper.EmptyJsonMap())
		return
	}

	viewer := middleware.Identity(c)
	details, err := h.postService.Details(uint(id), viewer)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Post loaded", details)
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid post ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdatePostDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	viewer := middleware.Identity(c)
	details, err := h.postService.UpdateDetails(uint(id), req, viewer)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Post updated", details)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid post ID", h.Helper.EmptyJsonMap())
		return
	}

	viewer := middleware.Identity(c)
	if err := h.postService.Delete(uint(id), viewer); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Post deleted", h.Helper.EmptyJsonMap())
}
