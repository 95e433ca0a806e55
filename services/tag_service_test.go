package services

import (
	"testing"

	"picboard/models"
	"picboard/repositories"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTagService_UpsertTags(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTagRepo := repositories.NewMockTagRepository(ctrl)
	svc := NewTagService(mockTagRepo)

	t.Run("creates missing tags and resolves the survivors", func(t *testing.T) {
		mockTagRepo.EXPECT().InsertIgnore(gomock.Any()).DoAndReturn(
			func(tags []models.Tag) error {
				byNormalized := map[string]string{}
				for _, tag := range tags {
					byNormalized[tag.NormalizedName] = tag.Name
				}
				require.Equal(t, map[string]string{"forest": "Forest", "river": "river"}, byNormalized)
				return nil
			})
		mockTagRepo.EXPECT().GetByNormalizedNames(gomock.Any()).DoAndReturn(
			func(names []string) ([]models.Tag, error) {
				require.ElementsMatch(t, []string{"forest", "river"}, names)
				return []models.Tag{
					{ID: 2, Name: "river", NormalizedName: "river"},
					{ID: 1, Name: "Forest", NormalizedName: "forest"},
				}, nil
			})

		// First casing wins within one request; output is sorted by name.
		tags, err := svc.UpsertTags("Forest river FOREST")
		require.NoError(t, err)
		require.Len(t, tags, 2)
		assert.Equal(t, "Forest", tags[0].Name)
		assert.Equal(t, "river", tags[1].Name)
	})

	t.Run("search syntax tokens are dropped", func(t *testing.T) {
		tags, err := svc.UpsertTags("-forest rating:s")
		require.NoError(t, err)
		assert.Empty(t, tags)
	})

	t.Run("empty input touches nothing", func(t *testing.T) {
		tags, err := svc.UpsertTags("   ")
		require.NoError(t, err)
		assert.Empty(t, tags)
	})
}

func TestTagService_RenameOrMerge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTagRepo := repositories.NewMockTagRepository(ctrl)
	svc := NewTagService(mockTagRepo)

	tests := []struct {
		name        string
		oldTag      string
		newTag      string
		setup       func()
		wantErr     bool
		wantErrType error
	}{
		{
			name:   "plain rename",
			oldTag: "forest",
			newTag: "woods",
			setup: func() {
				mockTagRepo.EXPECT().GetByNormalizedName("forest").Return(&models.Tag{ID: 1, Name: "forest", NormalizedName: "forest"}, nil)
				mockTagRepo.EXPECT().GetByNormalizedName("woods").Return(nil, gorm.ErrRecordNotFound)
				mockTagRepo.EXPECT().Rename(uint(1), "woods", "woods").Return(nil)
			},
		},
		{
			name:   "casing change renames the same row",
			oldTag: "forest",
			newTag: "Forest",
			setup: func() {
				mockTagRepo.EXPECT().GetByNormalizedName("forest").Return(&models.Tag{ID: 1, Name: "forest", NormalizedName: "forest"}, nil).Times(2)
				mockTagRepo.EXPECT().Rename(uint(1), "Forest", "forest").Return(nil)
			},
		},
		{
			name:   "existing target merges",
			oldTag: "woods",
			newTag: "forest",
			setup: func() {
				mockTagRepo.EXPECT().GetByNormalizedName("woods").Return(&models.Tag{ID: 2, Name: "woods", NormalizedName: "woods"}, nil)
				mockTagRepo.EXPECT().GetByNormalizedName("forest").Return(&models.Tag{ID: 1, Name: "forest", NormalizedName: "forest"}, nil)
				mockTagRepo.EXPECT().Merge(uint(2), uint(1)).Return(nil)
			},
		},
		{
			name:   "unknown tag",
			oldTag: "ghost",
			newTag: "forest",
			setup: func() {
				mockTagRepo.EXPECT().GetByNormalizedName("ghost").Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr:     true,
			wantErrType: models.ErrorNotFound{},
		},
		{
			name:        "multiple old tokens",
			oldTag:      "forest river",
			newTag:      "woods",
			setup:       func() {},
			wantErr:     true,
			wantErrType: models.ErrorBadRequest{},
		},
		{
			name:        "multiple new tokens",
			oldTag:      "forest",
			newTag:      "deep woods",
			setup:       func() {},
			wantErr:     true,
			wantErrType: models.ErrorBadRequest{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			err := svc.RenameOrMerge(tt.oldTag, tt.newTag)
			if tt.wantErr {
				require.Error(t, err)
				assert.IsType(t, tt.wantErrType, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTagService_GarbageCollect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTagRepo := repositories.NewMockTagRepository(ctrl)
	svc := NewTagService(mockTagRepo)

	mockTagRepo.EXPECT().DeleteDangling().Return(int64(3), nil)

	removed, err := svc.GarbageCollect()
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestTagService_Suggest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTagRepo := repositories.NewMockTagRepository(ctrl)
	svc := NewTagService(mockTagRepo)

	t.Run("rating prefix lists rating values", func(t *testing.T) {
		suggestions, err := svc.Suggest("rating:", 7)
		require.NoError(t, err)
		require.Len(t, suggestions, 4)
		assert.Equal(t, "rating:u", suggestions[0].Name)
		assert.Equal(t, "rating:u", suggestions[0].Value)
	})

	t.Run("typed rating stem filters the list", func(t *testing.T) {
		suggestions, err := svc.Suggest("rating:s", 8)
		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		assert.Equal(t, "rating:s", suggestions[0].Name)
	})

	t.Run("negated rating keeps its negation in the value", func(t *testing.T) {
		suggestions, err := svc.Suggest("-rating:e", 9)
		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		assert.Equal(t, "rating:e", suggestions[0].Name)
		assert.Equal(t, "-rating:e", suggestions[0].Value)
	})

	t.Run("tag stem searches by prefix", func(t *testing.T) {
		mockTagRepo.EXPECT().SearchByPrefix("fore", 10).Return([]models.Tag{
			{ID: 1, Name: "Forest", NormalizedName: "forest"},
		}, nil)

		suggestions, err := svc.Suggest("fore", 4)
		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		assert.Equal(t, "Forest", suggestions[0].Name)
		assert.Equal(t, "Forest", suggestions[0].Value)
	})

	t.Run("negated tag stem negates the value", func(t *testing.T) {
		mockTagRepo.EXPECT().SearchByPrefix("fore", 10).Return([]models.Tag{
			{ID: 1, Name: "Forest", NormalizedName: "forest"},
		}, nil)

		suggestions, err := svc.Suggest("-fore", 5)
		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		assert.Equal(t, "-Forest", suggestions[0].Value)
	})

	t.Run("nothing under the caret suggests nothing", func(t *testing.T) {
		suggestions, err := svc.Suggest("forest ", 7)
		require.NoError(t, err)
		assert.Empty(t, suggestions)
	})
}
