package services

import (
	"testing"
	"time"

	"picboard/models"
	"picboard/repositories"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type postServiceMocks struct {
	postRepo *repositories.MockPostRepository
	tagRepo  *repositories.MockTagRepository
	poolRepo *repositories.MockPoolRepository
}

func newTestPostService(ctrl *gomock.Controller) (PostService, postServiceMocks) {
	m := postServiceMocks{
		postRepo: repositories.NewMockPostRepository(ctrl),
		tagRepo:  repositories.NewMockTagRepository(ctrl),
		poolRepo: repositories.NewMockPoolRepository(ctrl),
	}
	tagSvc := NewTagService(m.tagRepo)
	poolSvc := NewPoolService(m.poolRepo, m.postRepo)
	return NewPostService(m.postRepo, m.tagRepo, tagSvc, poolSvc, "files"), m
}

func TestPostService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestPostService(ctrl)

	req := models.CreatePostRequest{
		Media:           "abc.png",
		MediaType:       "image",
		Width:           800,
		Height:          600,
		Thumbnail:       "abc_thumb.webp",
		ThumbnailWidth:  200,
		ThumbnailHeight: 150,
		Tags:            "forest",
	}

	m.postRepo.EXPECT().Create(gomock.Any()).DoAndReturn(
		func(post *models.Post) error {
			post.ID = 5
			return nil
		})
	m.tagRepo.EXPECT().InsertIgnore(gomock.Any()).Return(nil)
	m.tagRepo.EXPECT().GetByNormalizedNames(gomock.Any()).Return(
		[]models.Tag{{ID: 1, Name: "forest", NormalizedName: "forest"}}, nil)
	m.tagRepo.EXPECT().ReplaceForPost(uint(5), []uint{1}).Return(nil)

	post, err := svc.Create(req, 3)
	require.NoError(t, err)
	assert.Equal(t, uint(5), post.ID)
	assert.Equal(t, uint(3), post.UploaderID)

	// New posts start unrated and private.
	assert.Equal(t, models.RatingUnrated, post.Rating)
	assert.False(t, post.IsPublic)
	assert.WithinDuration(t, time.Now().UTC(), post.UploadedAt, time.Minute)
}

func TestPostService_Details(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestPostService(ctrl)

	t.Run("private posts are invisible to strangers", func(t *testing.T) {
		m.postRepo.EXPECT().GetByID(uint(5)).Return(
			&models.Post{ID: 5, UploaderID: 3, IsPublic: false}, nil)

		_, err := svc.Details(5, &models.Identity{ID: 8})
		require.Error(t, err)
		assert.IsType(t, models.ErrorNotFound{}, err)
	})

	t.Run("missing posts are not found", func(t *testing.T) {
		m.postRepo.EXPECT().GetByID(uint(5)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Details(5, nil)
		require.Error(t, err)
		assert.IsType(t, models.ErrorNotFound{}, err)
	})

	t.Run("owner gets the full picture", func(t *testing.T) {
		parentID := uint(2)
		viewer := &models.Identity{ID: 3}

		m.postRepo.EXPECT().GetByID(uint(5)).Return(
			&models.Post{ID: 5, UploaderID: 3, IsPublic: false, ParentID: &parentID}, nil)
		m.tagRepo.EXPECT().ForPost(uint(5)).Return(
			[]models.Tag{{ID: 1, Name: "forest", NormalizedName: "forest"}}, nil)
		m.postRepo.EXPECT().Sources(uint(5)).Return(
			[]models.PostSource{{ID: 1, PostID: 5, URL: "https://example.com"}}, nil)
		m.postRepo.EXPECT().SearchOverviews(gomock.Any(), 1, 0).Return(
			[]models.PostOverview{{ID: 2}}, nil)
		m.postRepo.EXPECT().SearchOverviews(gomock.Any(), 0, 0).Return(
			[]models.PostOverview{{ID: 7}}, nil)
		m.poolRepo.EXPECT().PoolsForPost(uint(5), gomock.Any()).Return(nil, nil)

		details, err := svc.Details(5, viewer)
		require.NoError(t, err)
		assert.Equal(t, uint(5), details.Post.ID)
		require.NotNil(t, details.Parent)
		assert.Equal(t, uint(2), details.Parent.ID)
		require.Len(t, details.Children, 1)
		assert.Equal(t, uint(7), details.Children[0].ID)
		assert.True(t, details.CanEdit)
	})

	t.Run("anonymous viewers of a public post cannot edit it", func(t *testing.T) {
		m.postRepo.EXPECT().GetByID(uint(5)).Return(
			&models.Post{ID: 5, UploaderID: 3, IsPublic: true}, nil)
		m.tagRepo.EXPECT().ForPost(uint(5)).Return(nil, nil)
		m.postRepo.EXPECT().Sources(uint(5)).Return(nil, nil)
		m.postRepo.EXPECT().SearchOverviews(gomock.Any(), 0, 0).Return(nil, nil)
		m.poolRepo.EXPECT().PoolsForPost(uint(5), gomock.Any()).Return(nil, nil)

		details, err := svc.Details(5, nil)
		require.NoError(t, err)
		assert.False(t, details.CanEdit)
	})
}

func TestPostService_UpdateDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestPostService(ctrl)

	owner := &models.Identity{ID: 3}

	t.Run("strangers may not edit", func(t *testing.T) {
		m.postRepo.EXPECT().GetByID(uint(5)).Return(
			&models.Post{ID: 5, UploaderID: 3, IsPublic: true}, nil)

		_, err := svc.UpdateDetails(5, models.UpdatePostDetailsRequest{Rating: models.RatingSafe}, &models.Identity{ID: 8})
		require.Error(t, err)
		assert.IsType(t, models.ErrorForbidden{}, err)
	})

	t.Run("unknown rating is rejected", func(t *testing.T) {
		m.postRepo.EXPECT().GetByID(uint(5)).Return(
			&models.Post{ID: 5, UploaderID: 3}, nil)

		_, err := svc.UpdateDetails(5, models.UpdatePostDetailsRequest{Rating: "x"}, owner)
		require.Error(t, err)
		assert.IsType(t, models.ErrorBadRequest{}, err)
	})

	t.Run("a post cannot parent itself", func(t *testing.T) {
		selfID := uint(5)
		m.postRepo.EXPECT().GetByID(uint(5)).Return(
			&models.Post{ID: 5, UploaderID: 3}, nil).Times(2)

		var updated *models.Post
		m.postRepo.EXPECT().Update(gomock.Any()).DoAndReturn(
			func(post *models.Post) error {
				updated = post
				return nil
			})
		m.postRepo.EXPECT().ReplaceSources(uint(5), gomock.Nil()).Return(nil)
		m.tagRepo.EXPECT().ReplaceForPost(uint(5), []uint{}).Return(nil)
		m.tagRepo.EXPECT().ForPost(uint(5)).Return(nil, nil)
		m.postRepo.EXPECT().Sources(uint(5)).Return(nil, nil)
		m.postRepo.EXPECT().SearchOverviews(gomock.Any(), 0, 0).Return(nil, nil)
		m.poolRepo.EXPECT().PoolsForPost(uint(5), gomock.Any()).Return(nil, nil)

		_, err := svc.UpdateDetails(5, models.UpdatePostDetailsRequest{
			Rating:   models.RatingSafe,
			ParentID: &selfID,
		}, owner)
		require.NoError(t, err)
		assert.Nil(t, updated.ParentID)
	})

	t.Run("blank title and description clear the fields", func(t *testing.T) {
		m.postRepo.EXPECT().GetByID(uint(5)).Return(
			&models.Post{ID: 5, UploaderID: 3}, nil).Times(2)

		var updated *models.Post
		m.postRepo.EXPECT().Update(gomock.Any()).DoAndReturn(
			func(post *models.Post) error {
				updated = post
				return nil
			})
		m.postRepo.EXPECT().ReplaceSources(uint(5), []string{"https://example.com"}).Return(nil)
		m.tagRepo.EXPECT().InsertIgnore(gomock.Any()).Return(nil)
		m.tagRepo.EXPECT().GetByNormalizedNames(gomock.Any()).Return(
			[]models.Tag{{ID: 1, Name: "forest", NormalizedName: "forest"}}, nil)
		m.tagRepo.EXPECT().ReplaceForPost(uint(5), []uint{1}).Return(nil)
		m.tagRepo.EXPECT().ForPost(uint(5)).Return(nil, nil)
		m.postRepo.EXPECT().Sources(uint(5)).Return(nil, nil)
		m.postRepo.EXPECT().SearchOverviews(gomock.Any(), 0, 0).Return(nil, nil)
		m.poolRepo.EXPECT().PoolsForPost(uint(5), gomock.Any()).Return(nil, nil)

		_, err := svc.UpdateDetails(5, models.UpdatePostDetailsRequest{
			Title:    "  ",
			Rating:   models.RatingSafe,
			IsPublic: true,
			Sources:  []string{"https://example.com"},
			Tags:     "forest",
		}, owner)
		require.NoError(t, err)
		assert.Nil(t, updated.Title)
		assert.Nil(t, updated.Description)
		assert.True(t, updated.IsPublic)
		assert.Equal(t, models.RatingSafe, updated.Rating)
	})
}

func TestPostService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := postServiceMocks{
		postRepo: repositories.NewMockPostRepository(ctrl),
		tagRepo:  repositories.NewMockTagRepository(ctrl),
		poolRepo: repositories.NewMockPoolRepository(ctrl),
	}

	removed := make(chan string, 2)
	svc := &postService{
		postRepo: m.postRepo,
		tagRepo:  m.tagRepo,
		tagSvc:   NewTagService(m.tagRepo),
		poolSvc:  NewPoolService(m.poolRepo, m.postRepo),
		filesDir: "files",
		removeFile: func(path string) error {
			removed <- path
			return nil
		},
	}

	t.Run("deletes the post and cleans up its files", func(t *testing.T) {
		m.postRepo.EXPECT().GetByID(uint(5)).Return(
			&models.Post{ID: 5, UploaderID: 3, Media: "abc.png", Thumbnail: "abc_thumb.webp"}, nil)
		m.postRepo.EXPECT().Delete(uint(5)).Return(nil)

		require.NoError(t, svc.Delete(5, &models.Identity{ID: 3}))

		paths := map[string]bool{}
		for i := 0; i < 2; i++ {
			select {
			case path := <-removed:
				paths[path] = true
			case <-time.After(time.Second):
				t.Fatal("file cleanup never ran")
			}
		}
		assert.True(t, paths["files/abc.png"])
		assert.True(t, paths["files/abc_thumb.webp"])
	})

	t.Run("strangers may not delete", func(t *testing.T) {
		m.postRepo.EXPECT().GetByID(uint(5)).Return(
			&models.Post{ID: 5, UploaderID: 3, IsPublic: true}, nil)

		err := svc.Delete(5, &models.Identity{ID: 8})
		require.Error(t, err)
		assert.IsType(t, models.ErrorForbidden{}, err)
	})

	t.Run("admins may delete anything", func(t *testing.T) {
		m.postRepo.EXPECT().GetByID(uint(5)).Return(
			&models.Post{ID: 5, UploaderID: 3, Media: "a", Thumbnail: "b"}, nil)
		m.postRepo.EXPECT().Delete(uint(5)).Return(nil)

		require.NoError(t, svc.Delete(5, &models.Identity{ID: 99, IsAdmin: true}))
		<-removed
		<-removed
	})
}
