package models

type Pool struct {
	ID         uint   `json:"id" gorm:"primarykey"`
	Name       string `json:"name" gorm:"uniqueIndex;not null"`
	UploaderID uint   `json:"uploader_id" gorm:"not null;index"`
	IsPublic   bool   `json:"is_public" gorm:"not null;default:false;index"`
}

// PoolPost is a pool membership. Position is a fractional ordering key:
// sorting memberships by position ascending reproduces the user-visible
// order. Positions are never renumbered; inserts and moves pick a key
// between the neighbors instead.
type PoolPost struct {
	ID       uint    `json:"id" gorm:"primarykey"`
	PoolID   uint    `json:"pool_id" gorm:"not null;uniqueIndex:idx_pool_posts_pool_post"`
	PostID   uint    `json:"post_id" gorm:"not null;uniqueIndex:idx_pool_posts_pool_post;index"`
	Position float64 `json:"position" gorm:"not null"`
}
