package models

import "time"

type User struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	IsAdmin   bool      `json:"is_admin" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Identity is the acting user attached to a request. A nil *Identity means
// anonymous. It is all the visibility predicate needs to know.
type Identity struct {
	ID      uint
	IsAdmin bool
}

// CanEdit reports whether the identity may modify a row owned by ownerID.
func (id *Identity) CanEdit(ownerID uint) bool {
	if id == nil {
		return false
	}
	return id.IsAdmin || id.ID == ownerID
}
