package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"picboard/models"
	"picboard/query"
	"picboard/repositories"

	"gorm.io/gorm"
)

type PostService interface {
	// Create stores a post from already-uploaded media references and
	// attaches its initial tags. Decoding and thumbnailing are not this
	// service's business.
	Create(req models.CreatePostRequest, uploaderID uint) (*models.Post, error)
	// Details returns the post with tags, sources, visibility-filtered
	// parent/children overviews and pool neighbor data. Posts the viewer
	// may not see answer not-found.
	Details(id uint, viewer *models.Identity) (*models.PostDetails, error)
	UpdateDetails(id uint, req models.UpdatePostDetailsRequest, viewer *models.Identity) (*models.PostDetails, error)
	// Delete removes the post and dispatches best-effort media file cleanup
	// in the background; cleanup failures are not surfaced.
	Delete(id uint, viewer *models.Identity) error
}

type postService struct {
	postRepo   repositories.PostRepository
	tagRepo    repositories.TagRepository
	tagSvc     TagService
	poolSvc    PoolService
	filesDir   string
	removeFile func(string) error
}

func NewPostService(
	postRepo repositories.PostRepository,
	tagRepo repositories.TagRepository,
	tagSvc TagService,
	poolSvc PoolService,
	filesDir string,
) PostService {
	return &postService{
		postRepo:   postRepo,
		tagRepo:    tagRepo,
		tagSvc:     tagSvc,
		poolSvc:    poolSvc,
		filesDir:   filesDir,
		removeFile: os.Remove,
	}
}

func (s *postService) Create(req models.CreatePostRequest, uploaderID uint) (*models.Post, error) {
	post := &models.Post{
		UploaderID:      uploaderID,
		Media:           req.Media,
		MediaType:       req.MediaType,
		Width:           req.Width,
		Height:          req.Height,
		Thumbnail:       req.Thumbnail,
		ThumbnailWidth:  req.ThumbnailWidth,
		ThumbnailHeight: req.ThumbnailHeight,
		Rating:          models.RatingUnrated,
		UploadedAt:      time.Now().UTC(),
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	tags, err := s.tagSvc.UpsertTags(req.Tags)
	if err != nil {
		return nil, err
	}
	if len(tags) > 0 {
		if err := s.tagRepo.ReplaceForPost(post.ID, tagIDs(tags)); err != nil {
			return nil, err
		}
	}
	return post, nil
}

func (s *postService) Details(id uint, viewer *models.Identity) (*models.PostDetails, error) {
	post, err := s.visiblePost(id, viewer)
	if err != nil {
		return nil, err
	}

	tags, err := s.tagRepo.ForPost(post.ID)
	if err != nil {
		return nil, err
	}
	sources, err := s.postRepo.Sources(post.ID)
	if err != nil {
		return nil, err
	}

	base := query.CompileSearch(query.TokenSets{}, viewer)

	var parent *models.PostOverview
	if post.ParentID != nil {
		rows, err := s.postRepo.SearchOverviews(
			base.With(query.Compare{Column: "posts.id", Op: "=", Value: *post.ParentID}), 1, 0)
		if err != nil {
			return nil, err
		}
		if len(rows) > 0 {
			parent = &rows[0]
		}
	}

	children, err := s.postRepo.SearchOverviews(
		base.With(query.Compare{Column: "posts.parent_id", Op: "=", Value: post.ID}), 0, 0)
	if err != nil {
		return nil, err
	}

	pools, err := s.poolSvc.PoolData(post.ID, viewer)
	if err != nil {
		return nil, err
	}

	return &models.PostDetails{
		Post:     *post,
		Tags:     tags,
		Sources:  sources,
		Parent:   parent,
		Children: children,
		Pools:    pools,
		CanEdit:  viewer.CanEdit(post.UploaderID),
	}, nil
}

func (s *postService) UpdateDetails(id uint, req models.UpdatePostDetailsRequest, viewer *models.Identity) (*models.PostDetails, error) {
	post, err := s.editablePost(id, viewer)
	if err != nil {
		return nil, err
	}
	if !req.Rating.Valid() {
		return nil, models.ErrorBadRequest{Message: "unknown rating"}
	}

	post.Title = optional(req.Title)
	post.Description = optional(req.Description)
	post.IsPublic = req.IsPublic
	post.Rating = req.Rating
	post.ParentID = s.resolveParent(req.ParentID, post.ID, viewer)

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	if err := s.postRepo.ReplaceSources(post.ID, req.Sources); err != nil {
		return nil, err
	}

	tags, err := s.tagSvc.UpsertTags(req.Tags)
	if err != nil {
		return nil, err
	}
	if err := s.tagRepo.ReplaceForPost(post.ID, tagIDs(tags)); err != nil {
		return nil, err
	}

	return s.Details(post.ID, viewer)
}

func (s *postService) Delete(id uint, viewer *models.Identity) error {
	post, err := s.editablePost(id, viewer)
	if err != nil {
		return err
	}
	if err := s.postRepo.Delete(post.ID); err != nil {
		return err
	}

	go func(media, thumbnail string) {
		_ = s.removeFile(filepath.Join(s.filesDir, media))
		_ = s.removeFile(filepath.Join(s.filesDir, thumbnail))
	}(post.Media, post.Thumbnail)

	return nil
}

func (s *postService) visiblePost(id uint, viewer *models.Identity) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "post not found"}
		}
		return nil, err
	}
	if !post.IsPublic && !viewer.CanEdit(post.UploaderID) {
		return nil, models.ErrorNotFound{Message: "post not found"}
	}
	return post, nil
}

func (s *postService) editablePost(id uint, viewer *models.Identity) (*models.Post, error) {
	post, err := s.visiblePost(id, viewer)
	if err != nil {
		return nil, err
	}
	if !viewer.CanEdit(post.UploaderID) {
		return nil, models.ErrorForbidden{}
	}
	return post, nil
}

// resolveParent keeps a parent reference only when it points at a visible,
// distinct post; anything else clears it.
func (s *postService) resolveParent(parentID *uint, selfID uint, viewer *models.Identity) *uint {
	if parentID == nil || *parentID == selfID {
		return nil
	}
	parent, err := s.visiblePost(*parentID, viewer)
	if err != nil {
		return nil
	}
	return &parent.ID
}

func tagIDs(tags []models.Tag) []uint {
	ids := make([]uint, len(tags))
	for i, tag := range tags {
		ids[i] = tag.ID
	}
	return ids
}

func optional(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
