package repositories

import (
	"picboard/models"
	"picboard/query"

	"gorm.io/gorm"
)

type PoolRepository interface {
	Create(pool *models.Pool) error
	GetByID(id uint) (*models.Pool, error)
	List(visibility query.Predicate, limit, offset int) ([]models.Pool, error)
	Count(visibility query.Predicate) (int64, error)
	UpdateName(id uint, name string) error
	UpdateVisibility(id uint, isPublic bool) error
	Delete(id uint) error
	MaxPosition(poolID uint) (*float64, error)
	AddMembership(membership *models.PoolPost) error
	GetMembership(id uint) (*models.PoolPost, error)
	RemoveMembership(id uint) error
	UpdatePosition(membershipID uint, position float64) error
	Contents(poolID uint, visibility query.Predicate, limit, offset int) ([]models.PoolPostRow, error)
	CountContents(poolID uint, visibility query.Predicate) (int64, error)
	PoolsForPost(postID uint, visibility query.Predicate) ([]models.PoolWithPosition, error)
}

type poolRepository struct {
	db *gorm.DB
}

func NewPoolRepository(db *gorm.DB) PoolRepository {
	return &poolRepository{db: db}
}

func (r *poolRepository) Create(pool *models.Pool) error {
	return r.db.Create(pool).Error
}

func (r *poolRepository) GetByID(id uint) (*models.Pool, error) {
	var pool models.Pool
	err := r.db.First(&pool, id).Error
	return &pool, err
}

func (r *poolRepository) List(visibility query.Predicate, limit, offset int) ([]models.Pool, error) {
	where, args := query.ToSQL(visibility)

	var pools []models.Pool
	err := r.db.Where(where, args...).Order("pools.id").
		Limit(limit).Offset(offset).Find(&pools).Error
	return pools, err
}

func (r *poolRepository) Count(visibility query.Predicate) (int64, error) {
	where, args := query.ToSQL(visibility)

	var total int64
	err := r.db.Model(&models.Pool{}).Where(where, args...).Count(&total).Error
	return total, err
}

func (r *poolRepository) UpdateName(id uint, name string) error {
	return r.db.Model(&models.Pool{}).Where("id = ?", id).Update("name", name).Error
}

func (r *poolRepository) UpdateVisibility(id uint, isPublic bool) error {
	return r.db.Model(&models.Pool{}).Where("id = ?", id).Update("is_public", isPublic).Error
}

// Delete removes the pool and its memberships together.
func (r *poolRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pool_id = ?", id).Delete(&models.PoolPost{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Pool{}, id).Error
	})
}

// MaxPosition returns nil for an empty pool.
func (r *poolRepository) MaxPosition(poolID uint) (*float64, error) {
	var max *float64
	err := r.db.Raw("SELECT MAX(position) FROM pool_posts WHERE pool_id = ?", poolID).Scan(&max).Error
	return max, err
}

func (r *poolRepository) AddMembership(membership *models.PoolPost) error {
	return r.db.Create(membership).Error
}

func (r *poolRepository) GetMembership(id uint) (*models.PoolPost, error) {
	var membership models.PoolPost
	err := r.db.First(&membership, id).Error
	return &membership, err
}

func (r *poolRepository) RemoveMembership(id uint) error {
	return r.db.Delete(&models.PoolPost{}, id).Error
}

func (r *poolRepository) UpdatePosition(membershipID uint, position float64) error {
	return r.db.Model(&models.PoolPost{}).Where("id = ?", membershipID).
		Update("position", position).Error
}

const poolContentsSelect = "SELECT posts.id, posts.thumbnail, posts.media_type, posts.rating," +
	" pool_posts.id AS pool_post_id, pool_posts.position," +
	" COALESCE(string_agg(tags.name, ' ' ORDER BY tags.name), '') AS tags" +
	" FROM posts" +
	" INNER JOIN pool_posts ON pool_posts.post_id = posts.id" +
	" LEFT JOIN tag_posts ON tag_posts.post_id = posts.id" +
	" LEFT JOIN tags ON tags.id = tag_posts.tag_id"

// Contents returns the pool's memberships joined with their posts, sorted
// by position ascending. The visibility predicate applies to the posts, so
// a viewer's index space matches what that viewer is shown. limit <= 0
// means no limit.
func (r *poolRepository) Contents(poolID uint, visibility query.Predicate, limit, offset int) ([]models.PoolPostRow, error) {
	where, args := query.ToSQL(visibility)
	args = append([]any{poolID}, args...)

	sql := poolContentsSelect +
		" WHERE pool_posts.pool_id = ? AND " + where +
		" GROUP BY posts.id, pool_posts.id ORDER BY pool_posts.position ASC"
	if limit > 0 {
		sql += " LIMIT ? OFFSET ?"
		args = append(args, limit, offset)
	}

	var rows []models.PoolPostRow
	err := r.db.Raw(sql, args...).Scan(&rows).Error
	return rows, err
}

func (r *poolRepository) CountContents(poolID uint, visibility query.Predicate) (int64, error) {
	where, args := query.ToSQL(visibility)
	args = append([]any{poolID}, args...)

	var total int64
	err := r.db.Raw("SELECT COUNT(*) FROM posts"+
		" INNER JOIN pool_posts ON pool_posts.post_id = posts.id"+
		" WHERE pool_posts.pool_id = ? AND "+where, args...).Scan(&total).Error
	return total, err
}

// PoolsForPost lists every pool containing the post that the visibility
// predicate (over pools) allows, with the post's position in each.
func (r *poolRepository) PoolsForPost(postID uint, visibility query.Predicate) ([]models.PoolWithPosition, error) {
	where, args := query.ToSQL(visibility)
	args = append([]any{postID}, args...)

	var rows []models.PoolWithPosition
	err := r.db.Raw("SELECT pools.id, pools.name, pool_posts.position FROM pools"+
		" INNER JOIN pool_posts ON pool_posts.pool_id = pools.id"+
		" WHERE pool_posts.post_id = ? AND "+where+
		" ORDER BY pools.id", args...).Scan(&rows).Error
	return rows, err
}
