package services_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinbees/hive-sdk/modules/org/domain/aggregates/colleague"
	"github.com/vinbees/hive-sdk/modules/org/services"
	"github.com/vinbees/hive-sdk/pkg/eventbus"
	"github.com/vinbees/hive-sdk/pkg/logging"
)

type stubRepo struct {
	people []colleague.Colleague
	err    error
}

func (r *stubRepo) GetAll(_ context.Context) ([]colleague.Colleague, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.people, nil
}

func ptr(v int64) *int64 { return &v }

func seedRepo() *stubRepo {
	return &stubRepo{people: []colleague.Colleague{
		colleague.New(100, "Queen Bee", "CEO", "", nil),
		colleague.New(102, "Killer Bee", "Head of Security", "", ptr(100)),
		colleague.New(103, "Worker Bee", "Forager", "", ptr(102)),
	}}
}

func newBus() eventbus.EventBus {
	return eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.ErrorLevel))
}

func TestOrgChartService_Refresh(t *testing.T) {
	repo := seedRepo()
	svc := services.NewOrgChartService(repo, newBus())

	_, err := svc.Current()
	require.ErrorIs(t, err, services.ErrNotLoaded)

	require.NoError(t, svc.Refresh(context.Background()))

	current, err := svc.Current()
	require.NoError(t, err)
	assert.Equal(t, int64(100), current.ID())
}

func TestOrgChartService_RefreshPublishes(t *testing.T) {
	bus := newBus()
	var got colleague.RefreshedEvent
	bus.Subscribe(func(e colleague.RefreshedEvent) { got = e })

	svc := services.NewOrgChartService(seedRepo(), bus)
	require.NoError(t, svc.Refresh(context.Background()))
	assert.Equal(t, 3, got.Count)
}

func TestOrgChartService_RefreshFailureKeepsGraph(t *testing.T) {
	repo := seedRepo()
	svc := services.NewOrgChartService(repo, newBus())
	require.NoError(t, svc.Refresh(context.Background()))

	_, err := svc.NavigateTo(103)
	require.NoError(t, err)

	repo.err = errors.New("backend down")
	require.Error(t, svc.Refresh(context.Background()))

	current, err := svc.Current()
	require.NoError(t, err)
	assert.Equal(t, int64(103), current.ID())
}

func TestOrgChartService_Navigate(t *testing.T) {
	svc := services.NewOrgChartService(seedRepo(), newBus())
	require.NoError(t, svc.Refresh(context.Background()))

	_, err := svc.Search("worker", 0)
	require.NoError(t, err)
	assert.Equal(t, "worker", svc.Query())

	node, err := svc.NavigateTo(102)
	require.NoError(t, err)
	assert.Equal(t, int64(102), node.ID())
	assert.Empty(t, svc.Query(), "navigation leaves search mode")

	// Unknown target leaves the cursor alone.
	node, err = svc.NavigateTo(999)
	require.NoError(t, err)
	assert.Equal(t, int64(102), node.ID())
}

func TestOrgChartService_CursorSnapsAfterRebuild(t *testing.T) {
	repo := seedRepo()
	svc := services.NewOrgChartService(repo, newBus())
	require.NoError(t, svc.Refresh(context.Background()))

	_, err := svc.NavigateTo(103)
	require.NoError(t, err)

	// Worker leaves the hive; the cursor falls back to the default root.
	repo.people = repo.people[:2]
	require.NoError(t, svc.Refresh(context.Background()))

	current, err := svc.Current()
	require.NoError(t, err)
	assert.Equal(t, int64(100), current.ID())
}
