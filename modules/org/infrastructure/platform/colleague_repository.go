package platform

import (
	"context"

	"github.com/pkg/errors"

	"github.com/vinbees/hive-sdk/modules/org/domain/aggregates/colleague"
	"github.com/vinbees/hive-sdk/pkg/vinbees"
)

type ColleagueAPI interface {
	GetColleagues(ctx context.Context) ([]vinbees.Colleague, error)
}

type PlatformColleagueRepository struct {
	api ColleagueAPI
}

func NewColleagueRepository(api ColleagueAPI) colleague.Repository {
	return &PlatformColleagueRepository{api: api}
}

func (r *PlatformColleagueRepository) GetAll(ctx context.Context) ([]colleague.Colleague, error) {
	dtos, err := r.api.GetColleagues(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch colleagues")
	}
	people := make([]colleague.Colleague, 0, len(dtos))
	for _, dto := range dtos {
		people = append(people, colleague.New(dto.ID, dto.Name, dto.Role, dto.Avatar, dto.ManagerID))
	}
	return people, nil
}
