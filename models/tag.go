package models

// Tag keeps the display casing in Name; NormalizedName is the lowercased
// form used for uniqueness, matching and merging.
type Tag struct {
	ID             uint   `json:"id" gorm:"primarykey"`
	Name           string `json:"name" gorm:"not null"`
	NormalizedName string `json:"normalized_name" gorm:"uniqueIndex;not null"`
}

// TagPost links a post to a tag. A (tag, post) pair appears at most once.
type TagPost struct {
	ID     uint `json:"id" gorm:"primarykey"`
	TagID  uint `json:"tag_id" gorm:"not null;uniqueIndex:idx_tag_posts_tag_post"`
	PostID uint `json:"post_id" gorm:"not null;uniqueIndex:idx_tag_posts_tag_post;index"`
}
