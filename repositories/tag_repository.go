package repositories

import (
	"picboard/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepository interface {
	InsertIgnore(tags []models.Tag) error
	GetByNormalizedName(name string) (*models.Tag, error)
	GetByNormalizedNames(names []string) ([]models.Tag, error)
	ForPost(postID uint) ([]models.Tag, error)
	SearchByPrefix(prefix string, limit int) ([]models.Tag, error)
	ReplaceForPost(postID uint, tagIDs []uint) error
	Rename(id uint, name, normalizedName string) error
	Merge(oldID, newID uint) error
	DeleteDangling() (int64, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// InsertIgnore creates any tags whose normalized name is new; an existing
// normalized name is a no-op, not an error. Concurrent callers inserting
// the same name converge on one surviving row. Callers re-select afterwards
// because insert-ignore does not report which rows survived.
func (r *tagRepository) InsertIgnore(tags []models.Tag) error {
	if len(tags) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "normalized_name"}},
		DoNothing: true,
	}).Create(&tags).Error
}

func (r *tagRepository) GetByNormalizedName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("normalized_name = ?", name).First(&tag).Error
	return &tag, err
}

func (r *tagRepository) GetByNormalizedNames(names []string) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Where("normalized_name IN ?", names).Find(&tags).Error
	return tags, err
}

func (r *tagRepository) ForPost(postID uint) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Joins("INNER JOIN tag_posts ON tag_posts.tag_id = tags.id").
		Where("tag_posts.post_id = ?", postID).
		Order("tags.name ASC").
		Find(&tags).Error
	return tags, err
}

func (r *tagRepository) SearchByPrefix(prefix string, limit int) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Where("normalized_name LIKE ?", prefix+"%").
		Order("name ASC").Limit(limit).Find(&tags).Error
	return tags, err
}

// ReplaceForPost swaps the post's whole association set in one transaction
// so a partial failure cannot leave it half-rewritten.
func (r *tagRepository) ReplaceForPost(postID uint, tagIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.TagPost{}).Error; err != nil {
			return err
		}
		if len(tagIDs) == 0 {
			return nil
		}
		links := make([]models.TagPost, 0, len(tagIDs))
		for _, tagID := range tagIDs {
			links = append(links, models.TagPost{PostID: postID, TagID: tagID})
		}
		return tx.Create(&links).Error
	})
}

func (r *tagRepository) Rename(id uint, name, normalizedName string) error {
	return r.db.Model(&models.Tag{}).Where("id = ?", id).
		Updates(map[string]any{"name": name, "normalized_name": normalizedName}).Error
}

// Merge re-points every association of oldID to newID unless the post
// already carries newID, drops whatever associations to oldID remain, then
// deletes the old tag row. All-or-nothing.
func (r *tagRepository) Merge(oldID, newID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		already := tx.Model(&models.TagPost{}).Select("post_id").Where("tag_id = ?", newID)
		if err := tx.Model(&models.TagPost{}).
			Where("tag_id = ? AND post_id NOT IN (?)", oldID, already).
			Update("tag_id", newID).Error; err != nil {
			return err
		}
		if err := tx.Where("tag_id = ?", oldID).Delete(&models.TagPost{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tag{}, oldID).Error
	})
}

// DeleteDangling removes every tag with zero associations and reports how
// many went.
func (r *tagRepository) DeleteDangling() (int64, error) {
	res := r.db.Exec("DELETE FROM tags WHERE id IN (" +
		"SELECT tags.id FROM tags" +
		" LEFT JOIN tag_posts ON tag_posts.tag_id = tags.id" +
		" GROUP BY tags.id HAVING COUNT(tag_posts.id) = 0)")
	return res.RowsAffected, res.Error
}
