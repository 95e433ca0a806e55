package repositories

import (
	"picboard/models"
	"picboard/query"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	Update(post *models.Post) error
	Delete(id uint) error
	SearchOverviews(plan query.SearchPlan, limit, offset int) ([]models.PostOverview, error)
	CountSearch(plan query.SearchPlan) (int64, error)
	Sources(postID uint) ([]models.PostSource, error)
	ReplaceSources(postID uint, urls []string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.First(&post, id).Error
	return &post, err
}

func (r *postRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// Delete removes the post and everything hanging off it in one
// transaction. Children keep existing with their parent reference cleared.
func (r *postRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).Where("parent_id = ?", id).Update("parent_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.TagPost{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.PoolPost{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.PostSource{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}

const overviewSelect = "SELECT posts.id, posts.thumbnail, posts.media, posts.media_type," +
	" posts.title, posts.description, posts.uploaded_at, posts.rating," +
	" COALESCE(string_agg(tags.name, ' ' ORDER BY tags.name), '') AS tags" +
	" FROM posts"

const (
	overviewLeftJoins = " LEFT JOIN tag_posts ON tag_posts.post_id = posts.id" +
		" LEFT JOIN tags ON tags.id = tag_posts.tag_id"
	overviewInnerJoins = " INNER JOIN tag_posts ON tag_posts.post_id = posts.id" +
		" INNER JOIN tags ON tags.id = tag_posts.tag_id"
)

// SearchOverviews runs the compiled plan and returns one aggregated row per
// post, newest first. limit <= 0 means no limit.
func (r *postRepository) SearchOverviews(plan query.SearchPlan, limit, offset int) ([]models.PostOverview, error) {
	where, args := query.ToSQL(plan.Where)

	sql := overviewSelect
	if plan.TagJoin == query.TagJoinInner {
		sql += overviewInnerJoins
	} else {
		sql += overviewLeftJoins
	}
	sql += " WHERE " + where + " GROUP BY posts.id ORDER BY posts.id DESC"
	if limit > 0 {
		sql += " LIMIT ? OFFSET ?"
		args = append(args, limit, offset)
	}

	var rows []models.PostOverview
	err := r.db.Raw(sql, args...).Scan(&rows).Error
	return rows, err
}

// CountSearch counts the posts matching the plan. The plan's predicates
// only reference posts columns and self-contained subqueries, so no join is
// needed here.
func (r *postRepository) CountSearch(plan query.SearchPlan) (int64, error) {
	where, args := query.ToSQL(plan.Where)

	var total int64
	err := r.db.Raw("SELECT COUNT(*) FROM posts WHERE "+where, args...).Scan(&total).Error
	return total, err
}

func (r *postRepository) Sources(postID uint) ([]models.PostSource, error) {
	var sources []models.PostSource
	err := r.db.Where("post_id = ?", postID).Order("id").Find(&sources).Error
	return sources, err
}

// ReplaceSources swaps the post's source list wholesale, all-or-nothing.
func (r *postRepository) ReplaceSources(postID uint, urls []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.PostSource{}).Error; err != nil {
			return err
		}
		if len(urls) == 0 {
			return nil
		}
		sources := make([]models.PostSource, 0, len(urls))
		for _, url := range urls {
			if url == "" {
				continue
			}
			sources = append(sources, models.PostSource{PostID: postID, URL: url})
		}
		if len(sources) == 0 {
			return nil
		}
		return tx.Create(&sources).Error
	})
}
