package services

import (
	"context"

	"account-manager-api/internal/application/ports"
	domain "account-manager-api/internal/domain/changelog"
)

type ChangelogService struct {
	changelogRepository domain.Repository
}

func NewChangelogService(changelogRepository domain.Repository) ports.ChangelogService {
	return &ChangelogService{
		changelogRepository: changelogRepository,
	}
}

func (cs *ChangelogService) FindEntries(ctx context.Context) (domain.Entries, error) {
	entries, err := cs.changelogRepository.FetchEntries(ctx)
	if err != nil {
		return nil, err
	}

	return entries, nil
}
