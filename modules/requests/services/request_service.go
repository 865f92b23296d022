package services

import (
	"context"

	orgservices "github.com/vinbees/hive-sdk/modules/org/services"
	"github.com/vinbees/hive-sdk/pkg/serrors"
	"github.com/vinbees/hive-sdk/pkg/vinbees"
)

var (
	ErrBadRequestAction = serrors.NewError("REQUEST_BAD_ACTION", "request response must be approve or reject", "")
)

type RequestsAPI interface {
	GetProfile(ctx context.Context) (*vinbees.Profile, error)
	GetRequests(ctx context.Context, view string) ([]vinbees.Request, error)
	SaveRequest(ctx context.Context, req *vinbees.Request) (*vinbees.Request, error)
	SubmitRequest(ctx context.Context, requestID string) error
	RespondToRequest(ctx context.Context, requestID, action string) error
}

// RequestService handles generic approval requests. The subordinate view is
// cut down to requests whose creator actually reports to the viewer through
// the org chart, not merely everything the viewer did not create.
type RequestService struct {
	api RequestsAPI
	org *orgservices.OrgChartService
}

func NewRequestService(api RequestsAPI, org *orgservices.OrgChartService) *RequestService {
	return &RequestService{api: api, org: org}
}

func (s *RequestService) My(ctx context.Context) ([]vinbees.Request, error) {
	return s.api.GetRequests(ctx, "my")
}

// Subordinate returns requests created inside the viewer's reporting line,
// the viewer's own excluded.
func (s *RequestService) Subordinate(ctx context.Context) ([]vinbees.Request, error) {
	profile, err := s.api.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	graph, err := s.org.Graph()
	if err != nil {
		if rerr := s.org.Refresh(ctx); rerr != nil {
			return nil, rerr
		}
		if graph, err = s.org.Graph(); err != nil {
			return nil, err
		}
	}

	requests, err := s.api.GetRequests(ctx, "subordinate")
	if err != nil {
		return nil, err
	}

	mine := make([]vinbees.Request, 0, len(requests))
	for _, req := range requests {
		if req.CreatedBy == profile.ID {
			continue
		}
		if graph.IsInSubtree(profile.ID, req.CreatedBy) {
			mine = append(mine, req)
		}
	}
	return mine, nil
}

func (s *RequestService) Save(ctx context.Context, req *vinbees.Request) (*vinbees.Request, error) {
	return s.api.SaveRequest(ctx, req)
}

func (s *RequestService) Submit(ctx context.Context, requestID string) error {
	return s.api.SubmitRequest(ctx, requestID)
}

func (s *RequestService) Respond(ctx context.Context, requestID, action string) error {
	if action != "approve" && action != "reject" {
		return ErrBadRequestAction
	}
	return s.api.RespondToRequest(ctx, requestID, action)
}
