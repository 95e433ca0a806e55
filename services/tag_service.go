package services

import (
	"errors"
	"sort"
	"strings"

	"picboard/models"
	"picboard/query"
	"picboard/repositories"

	"gorm.io/gorm"
)

type TagService interface {
	// UpsertTags resolves whitespace-separated raw tag names into tag rows,
	// creating the ones whose normalized form does not exist yet. Tokens
	// carrying search syntax ("-", "rating:") are dropped.
	UpsertTags(text string) ([]models.Tag, error)
	// RenameOrMerge renames a tag; when the new normalized name already
	// belongs to a different tag the two are merged and the old row deleted.
	RenameOrMerge(oldTag, newTag string) error
	// GarbageCollect deletes every tag with zero associations.
	GarbageCollect() (int64, error)
	// Suggest completes the token under the caret, offering either rating
	// values or prefix-matched tag names. It never queries posts.
	Suggest(text string, caret int) ([]models.TagSuggestion, error)
	ForPost(postID uint) ([]models.Tag, error)
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) UpsertTags(text string) ([]models.Tag, error) {
	byNormalized := map[string]string{}
	for _, token := range strings.Fields(text) {
		if strings.HasPrefix(token, query.NegativePrefix) || strings.HasPrefix(token, query.RatingPrefix) {
			continue
		}
		normalized := strings.ToLower(token)
		if _, seen := byNormalized[normalized]; !seen {
			byNormalized[normalized] = token
		}
	}
	if len(byNormalized) == 0 {
		return nil, nil
	}

	tags := make([]models.Tag, 0, len(byNormalized))
	names := make([]string, 0, len(byNormalized))
	for normalized, name := range byNormalized {
		tags = append(tags, models.Tag{Name: name, NormalizedName: normalized})
		names = append(names, normalized)
	}

	// Insert-ignore then re-select: the storage layer's conflict-do-nothing
	// insert does not return the surviving rows.
	if err := s.tagRepo.InsertIgnore(tags); err != nil {
		return nil, err
	}
	resolved, err := s.tagRepo.GetByNormalizedNames(names)
	if err != nil {
		return nil, err
	}
	sort.Slice(resolved, func(i, j int) bool { return resolved[i].Name < resolved[j].Name })
	return resolved, nil
}

func (s *tagService) RenameOrMerge(oldTag, newTag string) error {
	oldFields := strings.Fields(oldTag)
	if len(oldFields) != 1 {
		return models.ErrorBadRequest{Message: "expected a single tag to edit"}
	}
	newFields := strings.Fields(newTag)
	if len(newFields) != 1 {
		return models.ErrorBadRequest{Message: "expected a single new tag"}
	}
	newName := newFields[0]
	oldNormalized := strings.ToLower(oldFields[0])
	newNormalized := strings.ToLower(newName)

	oldRow, err := s.tagRepo.GetByNormalizedName(oldNormalized)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "tag not found"}
		}
		return err
	}

	newRow, err := s.tagRepo.GetByNormalizedName(newNormalized)
	switch {
	case err == nil && newRow.ID != oldRow.ID:
		return s.tagRepo.Merge(oldRow.ID, newRow.ID)
	case err == nil || errors.Is(err, gorm.ErrRecordNotFound):
		// Plain rename; also the casing-only case where old and new
		// normalize to the same row.
		return s.tagRepo.Rename(oldRow.ID, newName, newNormalized)
	default:
		return err
	}
}

func (s *tagService) GarbageCollect() (int64, error) {
	return s.tagRepo.DeleteDangling()
}

func (s *tagService) Suggest(text string, caret int) ([]models.TagSuggestion, error) {
	kind, stem, negated := query.CurrentToken(text, caret)

	switch kind {
	case query.CompleteRating:
		suggestions := []models.TagSuggestion{}
		for _, rating := range models.AllRatings {
			candidate := query.RatingPrefix + string(rating)
			if !strings.HasPrefix(candidate, stem) {
				continue
			}
			value := candidate
			if negated {
				value = query.NegativePrefix + candidate
			}
			suggestions = append(suggestions, models.TagSuggestion{Name: candidate, Value: value})
		}
		return suggestions, nil

	case query.CompleteTag:
		tags, err := s.tagRepo.SearchByPrefix(stem, 10)
		if err != nil {
			return nil, err
		}
		suggestions := make([]models.TagSuggestion, 0, len(tags))
		for _, tag := range tags {
			value := tag.Name
			if negated {
				value = query.NegativePrefix + tag.Name
			}
			suggestions = append(suggestions, models.TagSuggestion{Name: tag.Name, Value: value})
		}
		return suggestions, nil

	default:
		return nil, nil
	}
}

func (s *tagService) ForPost(postID uint) ([]models.Tag, error) {
	return s.tagRepo.ForPost(postID)
}
