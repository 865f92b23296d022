package services

import (
	"context"
	"sync"

	"github.com/vinbees/hive-sdk/modules/org/domain/aggregates/colleague"
	"github.com/vinbees/hive-sdk/modules/org/domain/orggraph"
	"github.com/vinbees/hive-sdk/pkg/eventbus"
	"github.com/vinbees/hive-sdk/pkg/serrors"
)

var ErrNotLoaded = serrors.NewError("ORG_NOT_LOADED", "org chart has not been loaded yet", "call Refresh before navigating")

// OrgChartService owns the org graph and the navigation cursor. The graph is
// rebuilt wholesale on every refresh; a failed refresh keeps the prior graph
// intact so navigation keeps working on stale data.
type OrgChartService struct {
	repo      colleague.Repository
	publisher eventbus.EventBus

	mu        sync.RWMutex
	graph     *orggraph.Graph
	currentID int64
	query     string
}

func NewOrgChartService(repo colleague.Repository, publisher eventbus.EventBus) *OrgChartService {
	return &OrgChartService{repo: repo, publisher: publisher}
}

// Refresh fetches the colleague list and swaps in a freshly built graph. The
// cursor is kept when the node survives the rebuild, otherwise it snaps back
// to the default root.
func (s *OrgChartService) Refresh(ctx context.Context) error {
	people, err := s.repo.GetAll(ctx)
	if err != nil {
		return err
	}
	graph := orggraph.Build(people)

	s.mu.Lock()
	s.graph = graph
	if !graph.Contains(s.currentID) {
		if root, ok := graph.DefaultRoot(); ok {
			s.currentID = root.ID()
		} else {
			s.currentID = 0
		}
	}
	s.mu.Unlock()

	s.publisher.Publish(colleague.RefreshedEvent{Count: graph.Len()})
	return nil
}

func (s *OrgChartService) Graph() (*orggraph.Graph, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.graph == nil {
		return nil, ErrNotLoaded
	}
	return s.graph, nil
}

// Current returns the node under the cursor.
func (s *OrgChartService) Current() (colleague.Colleague, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.graph == nil {
		return colleague.Colleague{}, ErrNotLoaded
	}
	node, ok := s.graph.Node(s.currentID)
	if !ok {
		return colleague.Colleague{}, ErrNotLoaded
	}
	return node, nil
}

// NavigateTo moves the cursor to id and leaves search mode. Unknown ids leave
// the cursor where it was.
func (s *OrgChartService) NavigateTo(id int64) (colleague.Colleague, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.graph == nil {
		return colleague.Colleague{}, ErrNotLoaded
	}
	node, ok := s.graph.Node(id)
	if !ok {
		current, _ := s.graph.Node(s.currentID)
		return current, nil
	}
	s.currentID = id
	s.query = ""
	return node, nil
}

// Search records the query and runs it against the current graph. A cleared
// query returns the service to browse mode.
func (s *OrgChartService) Search(query string, limit int) (orggraph.SearchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.graph == nil {
		return orggraph.SearchResult{}, ErrNotLoaded
	}
	s.query = query
	return orggraph.Search(s.graph, query, limit), nil
}

func (s *OrgChartService) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}
