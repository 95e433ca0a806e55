package models

import (
	"time"
)

// Post rows are hard-deleted: tag garbage collection and pool membership
// cascades count live association rows, so soft-deleted posts must not
// linger in the join tables.
type Post struct {
	ID              uint      `json:"id" gorm:"primarykey"`
	UploaderID      uint      `json:"uploader_id" gorm:"not null;index"`
	Uploader        *User     `json:"uploader,omitempty" gorm:"foreignKey:UploaderID"`
	Media           string    `json:"media" gorm:"not null"`
	MediaType       string    `json:"media_type" gorm:"not null"`
	Width           int       `json:"width" gorm:"not null"`
	Height          int       `json:"height" gorm:"not null"`
	Thumbnail       string    `json:"thumbnail" gorm:"not null"`
	ThumbnailWidth  int       `json:"thumbnail_width" gorm:"not null"`
	ThumbnailHeight int       `json:"thumbnail_height" gorm:"not null"`
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	Rating          Rating    `json:"rating" gorm:"type:varchar(1);not null;default:'u';index"`
	IsPublic        bool      `json:"is_public" gorm:"not null;default:false;index"`
	ParentID        *uint     `json:"parent_id" gorm:"index"`
	UploadedAt      time.Time `json:"uploaded_at" gorm:"not null"`
	Tags            []Tag     `json:"tags,omitempty" gorm:"many2many:tag_posts;"`
}

type PostSource struct {
	ID     uint   `json:"id" gorm:"primarykey"`
	PostID uint   `json:"post_id" gorm:"not null;index"`
	URL    string `json:"url" gorm:"not null"`
}
