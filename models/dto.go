package models

import "time"

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CreatePostRequest carries already-stored media references. Decoding and
// thumbnailing happen outside this service.
type CreatePostRequest struct {
	Media           string `json:"media" binding:"required"`
	MediaType       string `json:"media_type" binding:"required,oneof=image video"`
	Width           int    `json:"width" binding:"required,min=1"`
	Height          int    `json:"height" binding:"required,min=1"`
	Thumbnail       string `json:"thumbnail" binding:"required"`
	ThumbnailWidth  int    `json:"thumbnail_width" binding:"required,min=1"`
	ThumbnailHeight int    `json:"thumbnail_height" binding:"required,min=1"`
	Tags            string `json:"tags"`
}

type UpdatePostDetailsRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	IsPublic    bool     `json:"is_public"`
	Rating      Rating   `json:"rating" binding:"required"`
	Sources     []string `json:"sources"`
	Tags        string   `json:"tags"`
	ParentID    *uint    `json:"parent_id"`
}

type SearchParams struct {
	Tags  string `form:"tags"`
	Page  int    `form:"page,default=1"`
	Limit int    `form:"limit,default=50"`
}

type ListParams struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=25"`
}

// PostOverview is the row shape search pages are made of. Tags is the
// space-joined, sorted set of tag display names.
type PostOverview struct {
	ID          uint      `json:"id"`
	Thumbnail   string    `json:"thumbnail"`
	Media       string    `json:"media"`
	MediaType   string    `json:"media_type"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	UploadedAt  time.Time `json:"uploaded_at"`
	Rating      Rating    `json:"rating"`
	Tags        string    `json:"tags"`
}

// PoolPostRow is one pool membership joined with its post, ordered by
// Position when listed.
type PoolPostRow struct {
	ID         uint    `json:"id"`
	Thumbnail  string  `json:"thumbnail"`
	MediaType  string  `json:"media_type"`
	Rating     Rating  `json:"rating"`
	PoolPostID uint    `json:"pool_post_id"`
	Position   float64 `json:"position"`
	Tags       string  `json:"tags"`
}

// PoolWithPosition is one pool containing a given post, with that post's
// membership position in it.
type PoolWithPosition struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Position float64 `json:"position"`
}

// PostPoolData describes where a post sits inside one pool that contains it.
type PostPoolData struct {
	PoolID         uint   `json:"pool_id"`
	Name           string `json:"name"`
	PreviousPostID *uint  `json:"previous_post_id"`
	NextPostID     *uint  `json:"next_post_id"`
}

type PostDetails struct {
	Post     Post           `json:"post"`
	Tags     []Tag          `json:"tags"`
	Sources  []PostSource   `json:"sources"`
	Parent   *PostOverview  `json:"parent,omitempty"`
	Children []PostOverview `json:"children"`
	Pools    []PostPoolData `json:"pools"`
	CanEdit  bool           `json:"can_edit"`
}

type CreatePoolRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type RenamePoolRequest struct {
	Name string `json:"name" binding:"required"`
}

type PoolVisibilityRequest struct {
	IsPublic bool `json:"is_public"`
}

type AddPoolPostRequest struct {
	PostID uint `json:"post_id" binding:"required"`
}

type SortPoolRequest struct {
	OldIndex int `json:"old_index" binding:"min=0"`
	NewIndex int `json:"new_index" binding:"min=0"`
}

type EditTagRequest struct {
	Tag    string `json:"tag" binding:"required"`
	NewTag string `json:"new_tag" binding:"required"`
}

type SuggestTagsRequest struct {
	Text  string `json:"text"`
	Caret int    `json:"caret" binding:"min=0"`
}

// TagSuggestion pairs the display text of a completion with the literal
// token to splice into the query (the negated form keeps its "-").
type TagSuggestion struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type UpdateSettingsRequest struct {
	ApplicationName string `json:"application_name"`
	BaseURL         string `json:"base_url"`
	AgeConfirmation bool   `json:"age_confirmation"`
}
