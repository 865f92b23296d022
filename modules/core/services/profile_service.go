package services

import (
	"context"
	"strings"

	"github.com/vinbees/hive-sdk/pkg/serrors"
	"github.com/vinbees/hive-sdk/pkg/vinbees"
)

var ErrEmptyName = serrors.NewError("PROFILE_EMPTY_NAME", "name cannot be empty", "")

type ProfileAPI interface {
	GetProfile(ctx context.Context) (*vinbees.Profile, error)
	UpdateProfile(ctx context.Context, p *vinbees.Profile) (*vinbees.Profile, error)
}

// ProfileService exposes the viewer's own profile. Gamification fields
// (level, xp, honey, reputation) are backend-owned and pass through untouched.
type ProfileService struct {
	api ProfileAPI
}

func NewProfileService(api ProfileAPI) *ProfileService {
	return &ProfileService{api: api}
}

func (s *ProfileService) Get(ctx context.Context) (*vinbees.Profile, error) {
	return s.api.GetProfile(ctx)
}

func (s *ProfileService) Update(ctx context.Context, p *vinbees.Profile) (*vinbees.Profile, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return nil, ErrEmptyName
	}
	return s.api.UpdateProfile(ctx, p)
}
