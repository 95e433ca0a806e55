package services

import (
	"errors"
	"strings"

	"picboard/models"
	"picboard/query"
	"picboard/repositories"

	"gorm.io/gorm"
)

type PoolService interface {
	Create(name string, viewer *models.Identity) (*models.Pool, error)
	List(viewer *models.Identity, pageSize, page int) ([]models.Pool, int64, error)
	Get(id uint, viewer *models.Identity) (*models.Pool, error)
	Rename(id uint, name string, viewer *models.Identity) error
	SetVisibility(id uint, isPublic bool, viewer *models.Identity) error
	Delete(id uint, viewer *models.Identity) error
	// Append adds a post at the end of the pool and returns the membership.
	Append(poolID, postID uint, viewer *models.Identity) (*models.PoolPost, error)
	RemovePost(membershipID uint, viewer *models.Identity) error
	// Move reorders one membership by index within the viewer-visible
	// sequence and returns the position it was assigned. Concurrent moves in
	// the same pool are not serialized; both compute bounds from their own
	// snapshot read.
	Move(poolID uint, oldIndex, newIndex int, viewer *models.Identity) (float64, error)
	Contents(poolID uint, viewer *models.Identity, pageSize, page int) ([]models.PoolPostRow, int64, error)
	// PoolData reports, for each pool containing the post that the viewer
	// may see, the neighboring post ids in that pool's order.
	PoolData(postID uint, viewer *models.Identity) ([]models.PostPoolData, error)
}

type poolService struct {
	poolRepo repositories.PoolRepository
	postRepo repositories.PostRepository
}

func NewPoolService(poolRepo repositories.PoolRepository, postRepo repositories.PostRepository) PoolService {
	return &poolService{poolRepo: poolRepo, postRepo: postRepo}
}

func (s *poolService) Create(name string, viewer *models.Identity) (*models.Pool, error) {
	if viewer == nil {
		return nil, models.ErrorForbidden{}
	}
	if strings.TrimSpace(name) == "" {
		return nil, models.ErrorBadRequest{Message: "pool name cannot be empty"}
	}
	pool := &models.Pool{Name: name, UploaderID: viewer.ID}
	if err := s.poolRepo.Create(pool); err != nil {
		return nil, err
	}
	return pool, nil
}

func (s *poolService) List(viewer *models.Identity, pageSize, page int) ([]models.Pool, int64, error) {
	if pageSize < 1 {
		return nil, 0, models.ErrorBadRequest{Message: "page size must be positive"}
	}
	visibility := query.Visibility(viewer, "pools")

	total, err := s.poolRepo.Count(visibility)
	if err != nil {
		return nil, 0, err
	}
	pools, err := s.poolRepo.List(visibility, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, 0, err
	}
	return pools, pageCount(total, pageSize), nil
}

// Get resolves the pool and answers not-found for pools the viewer may not
// see, so private pools are indistinguishable from absent ones.
func (s *poolService) Get(id uint, viewer *models.Identity) (*models.Pool, error) {
	pool, err := s.poolRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "pool not found"}
		}
		return nil, err
	}
	if !pool.IsPublic && !viewer.CanEdit(pool.UploaderID) {
		return nil, models.ErrorNotFound{Message: "pool not found"}
	}
	return pool, nil
}

func (s *poolService) editable(id uint, viewer *models.Identity) (*models.Pool, error) {
	pool, err := s.Get(id, viewer)
	if err != nil {
		return nil, err
	}
	if !viewer.CanEdit(pool.UploaderID) {
		return nil, models.ErrorForbidden{}
	}
	return pool, nil
}

func (s *poolService) Rename(id uint, name string, viewer *models.Identity) error {
	if strings.TrimSpace(name) == "" {
		return models.ErrorBadRequest{Message: "pool name cannot be empty"}
	}
	pool, err := s.editable(id, viewer)
	if err != nil {
		return err
	}
	return s.poolRepo.UpdateName(pool.ID, name)
}

func (s *poolService) SetVisibility(id uint, isPublic bool, viewer *models.Identity) error {
	pool, err := s.editable(id, viewer)
	if err != nil {
		return err
	}
	return s.poolRepo.UpdateVisibility(pool.ID, isPublic)
}

func (s *poolService) Delete(id uint, viewer *models.Identity) error {
	pool, err := s.editable(id, viewer)
	if err != nil {
		return err
	}
	return s.poolRepo.Delete(pool.ID)
}

func (s *poolService) Append(poolID, postID uint, viewer *models.Identity) (*models.PoolPost, error) {
	pool, err := s.editable(poolID, viewer)
	if err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "post not found"}
		}
		return nil, err
	}
	if !post.IsPublic && !viewer.CanEdit(post.UploaderID) {
		return nil, models.ErrorNotFound{Message: "post not found"}
	}

	max, err := s.poolRepo.MaxPosition(pool.ID)
	if err != nil {
		return nil, err
	}
	membership := &models.PoolPost{
		PoolID:   pool.ID,
		PostID:   post.ID,
		Position: AppendPosition(max),
	}
	if err := s.poolRepo.AddMembership(membership); err != nil {
		return nil, err
	}
	return membership, nil
}

func (s *poolService) RemovePost(membershipID uint, viewer *models.Identity) error {
	membership, err := s.poolRepo.GetMembership(membershipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "pool entry not found"}
		}
		return err
	}
	if _, err := s.editable(membership.PoolID, viewer); err != nil {
		return err
	}
	return s.poolRepo.RemoveMembership(membership.ID)
}

func (s *poolService) Move(poolID uint, oldIndex, newIndex int, viewer *models.Identity) (float64, error) {
	if _, err := s.editable(poolID, viewer); err != nil {
		return 0, err
	}

	rows, err := s.poolRepo.Contents(poolID, query.Visibility(viewer, "posts"), 0, 0)
	if err != nil {
		return 0, err
	}

	positions := make([]float64, len(rows))
	for i, row := range rows {
		positions[i] = row.Position
	}
	position, err := MovePosition(positions, oldIndex, newIndex)
	if err != nil {
		return 0, err
	}
	if oldIndex == newIndex {
		return position, nil
	}

	if err := s.poolRepo.UpdatePosition(rows[oldIndex].PoolPostID, position); err != nil {
		return 0, err
	}
	return position, nil
}

func (s *poolService) Contents(poolID uint, viewer *models.Identity, pageSize, page int) ([]models.PoolPostRow, int64, error) {
	if pageSize < 1 {
		return nil, 0, models.ErrorBadRequest{Message: "page size must be positive"}
	}
	if _, err := s.Get(poolID, viewer); err != nil {
		return nil, 0, err
	}

	visibility := query.Visibility(viewer, "posts")
	total, err := s.poolRepo.CountContents(poolID, visibility)
	if err != nil {
		return nil, 0, err
	}
	rows, err := s.poolRepo.Contents(poolID, visibility, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, 0, err
	}
	return rows, pageCount(total, pageSize), nil
}

func (s *poolService) PoolData(postID uint, viewer *models.Identity) ([]models.PostPoolData, error) {
	pools, err := s.poolRepo.PoolsForPost(postID, query.Visibility(viewer, "pools"))
	if err != nil {
		return nil, err
	}

	data := make([]models.PostPoolData, 0, len(pools))
	for _, pool := range pools {
		rows, err := s.poolRepo.Contents(pool.ID, query.Visibility(viewer, "posts"), 0, 0)
		if err != nil {
			return nil, err
		}
		for i, row := range rows {
			if row.ID != postID {
				continue
			}
			entry := models.PostPoolData{PoolID: pool.ID, Name: pool.Name}
			if i > 0 {
				entry.PreviousPostID = &rows[i-1].ID
			}
			if i+1 < len(rows) {
				entry.NextPostID = &rows[i+1].ID
			}
			data = append(data, entry)
			break
		}
	}
	return data, nil
}
