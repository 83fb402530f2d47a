package usecases

import (
	"context"
	"fmt"
	"strings"

	"quotecraft/internal/application/contact/dto"
	"quotecraft/internal/domain/contact"
	"quotecraft/internal/shared/logger"
)

const defaultPageSize = 20

type SearchContactsQuery struct {
	Search   string
	Page     int
	PageSize int
}

type SearchContactsResult struct {
	Contacts []*dto.ContactDTO `json:"contacts"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

type SearchContactsUseCase struct {
	repo   contact.Repository
	logger logger.Interface
}

func NewSearchContactsUseCase(repo contact.Repository, logger logger.Interface) *SearchContactsUseCase {
	return &SearchContactsUseCase{repo: repo, logger: logger}
}

// Execute splits the search string into keywords, each matching any of
// first name, last name, email, phone or country; results come back newest
// first.
func (uc *SearchContactsUseCase) Execute(ctx context.Context, q SearchContactsQuery) (*SearchContactsResult, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = defaultPageSize
	}

	contacts, total, err := uc.repo.Search(ctx, contact.SearchQuery{
		Keywords: strings.Fields(q.Search),
		Page:     q.Page,
		PageSize: q.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("contact search failed", "error", err, "search", q.Search)
		return nil, fmt.Errorf("contact search failed: %w", err)
	}

	return &SearchContactsResult{
		Contacts: dto.ToContactDTOList(contacts),
		Total:    total,
		Page:     q.Page,
		PageSize: q.PageSize,
	}, nil
}
