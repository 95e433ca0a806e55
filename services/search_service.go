package services

import (
	"picboard/models"
	"picboard/query"
	"picboard/repositories"
)

type SearchService interface {
	// Search runs one query string for one viewer and returns the requested
	// page of overview rows plus the total page count.
	Search(text string, viewer *models.Identity, pageSize, page int) ([]models.PostOverview, int64, error)
}

type searchService struct {
	postRepo repositories.PostRepository
}

func NewSearchService(postRepo repositories.PostRepository) SearchService {
	return &searchService{postRepo: postRepo}
}

func (s *searchService) Search(text string, viewer *models.Identity, pageSize, page int) ([]models.PostOverview, int64, error) {
	if pageSize < 1 {
		return nil, 0, models.ErrorBadRequest{Message: "page size must be positive"}
	}

	tokens := query.Classify(text)
	plan := query.CompileSearch(tokens, viewer)

	total, err := s.postRepo.CountSearch(plan)
	if err != nil {
		return nil, 0, err
	}

	rows, err := s.postRepo.SearchOverviews(plan, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, 0, err
	}

	return rows, pageCount(total, pageSize), nil
}
