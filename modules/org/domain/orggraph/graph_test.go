package orggraph_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinbees/hive-sdk/modules/org/domain/aggregates/colleague"
	"github.com/vinbees/hive-sdk/modules/org/domain/orggraph"
)

func ptr(v int64) *int64 { return &v }

func hive() []colleague.Colleague {
	return []colleague.Colleague{
		colleague.New(100, "Queen Bee", "CEO", "", nil),
		colleague.New(101, "Royal Advisor", "CFO", "", ptr(100)),
		colleague.New(102, "Killer Bee", "Head of Security", "", ptr(100)),
		colleague.New(103, "Worker Bee", "Forager", "", ptr(102)),
		colleague.New(104, "Drone Bee", "Hive Support", "", ptr(102)),
		colleague.New(105, "Nurse Bee", "Brood Care", "", ptr(101)),
	}
}

func TestBuild_Roots(t *testing.T) {
	t.Run("single root forest", func(t *testing.T) {
		g := orggraph.Build(hive())
		roots := g.Roots()
		require.Len(t, roots, 1)
		assert.Equal(t, int64(100), roots[0].ID())
	})

	t.Run("self managed and dangling manager become roots", func(t *testing.T) {
		g := orggraph.Build([]colleague.Colleague{
			colleague.New(1, "Ada", "Eng", "", ptr(1)),
			colleague.New(2, "Bea", "Eng", "", ptr(999)),
			colleague.New(3, "Cal", "Eng", "", ptr(1)),
		})
		roots := g.Roots()
		require.Len(t, roots, 2)
		assert.Equal(t, "Ada", roots[0].Name())
		assert.Equal(t, "Bea", roots[1].Name())
		assert.Len(t, g.DirectReports(1), 1)
	})

	t.Run("duplicate ids keep first position and last fields", func(t *testing.T) {
		g := orggraph.Build([]colleague.Colleague{
			colleague.New(1, "Old Name", "Eng", "", nil),
			colleague.New(2, "Bea", "Eng", "", ptr(1)),
			colleague.New(1, "New Name", "Lead", "", nil),
		})
		assert.Equal(t, 2, g.Len())
		first := g.All()[0]
		assert.Equal(t, int64(1), first.ID())
		assert.Equal(t, "New Name", first.Name())
		assert.Equal(t, "Lead", first.Role())
	})
}

func TestBuild_ChildOrdering(t *testing.T) {
	g := orggraph.Build([]colleague.Colleague{
		colleague.New(1, "Boss", "CEO", "", nil),
		colleague.New(2, "zoe", "Eng", "", ptr(1)),
		colleague.New(3, "Anna", "Eng", "", ptr(1)),
		colleague.New(4, "anna", "QA", "", ptr(1)),
	})
	kids := g.DirectReports(1)
	require.Len(t, kids, 3)
	// Case-insensitive name order, input order breaking the Anna/anna tie.
	assert.Equal(t, int64(3), kids[0].ID())
	assert.Equal(t, int64(4), kids[1].ID())
	assert.Equal(t, "zoe", kids[2].Name())
}

func TestDefaultRoot(t *testing.T) {
	t.Run("first root", func(t *testing.T) {
		root, ok := orggraph.Build(hive()).DefaultRoot()
		require.True(t, ok)
		assert.Equal(t, int64(100), root.ID())
	})

	t.Run("cycle only graph falls back to first node", func(t *testing.T) {
		g := orggraph.Build([]colleague.Colleague{
			colleague.New(1, "Ada", "Eng", "", ptr(2)),
			colleague.New(2, "Bea", "Eng", "", ptr(1)),
		})
		require.Empty(t, g.Roots())
		root, ok := g.DefaultRoot()
		require.True(t, ok)
		assert.Equal(t, int64(1), root.ID())
	})

	t.Run("empty graph", func(t *testing.T) {
		_, ok := orggraph.Build(nil).DefaultRoot()
		assert.False(t, ok)
	})
}

func TestBreadcrumb(t *testing.T) {
	g := orggraph.Build(hive())

	t.Run("root to node", func(t *testing.T) {
		chain := g.Breadcrumb(103)
		require.Len(t, chain, 3)
		assert.Equal(t, int64(100), chain[0].ID())
		assert.Equal(t, int64(102), chain[1].ID())
		assert.Equal(t, int64(103), chain[2].ID())
	})

	t.Run("root is its own chain", func(t *testing.T) {
		chain := g.Breadcrumb(100)
		require.Len(t, chain, 1)
		assert.Equal(t, int64(100), chain[0].ID())
	})

	t.Run("unknown id", func(t *testing.T) {
		assert.Empty(t, g.Breadcrumb(999))
	})

	t.Run("cycle terminates", func(t *testing.T) {
		cyclic := orggraph.Build([]colleague.Colleague{
			colleague.New(1, "Ada", "Eng", "", ptr(2)),
			colleague.New(2, "Bea", "Eng", "", ptr(1)),
		})
		chain := cyclic.Breadcrumb(1)
		require.NotEmpty(t, chain)
		assert.Equal(t, int64(1), chain[len(chain)-1].ID())
		assert.LessOrEqual(t, len(chain), 2)
	})
}

func TestManager(t *testing.T) {
	g := orggraph.Build(hive())

	m, ok := g.Manager(103)
	require.True(t, ok)
	assert.Equal(t, int64(102), m.ID())

	_, ok = g.Manager(100)
	assert.False(t, ok)

	_, ok = g.Manager(999)
	assert.False(t, ok)
}

func TestIsInSubtree(t *testing.T) {
	g := orggraph.Build(hive())

	assert.True(t, g.IsInSubtree(102, 103))
	assert.True(t, g.IsInSubtree(100, 105))
	assert.True(t, g.IsInSubtree(103, 103))
	assert.False(t, g.IsInSubtree(101, 103))
	assert.False(t, g.IsInSubtree(103, 102))
}

func TestSearch(t *testing.T) {
	g := orggraph.Build(hive())

	t.Run("matches name and role", func(t *testing.T) {
		res := orggraph.Search(g, "bee", 0)
		assert.Equal(t, 6, res.Total)
		assert.False(t, res.IsLimited)

		res = orggraph.Search(g, "SECURITY", 0)
		require.Len(t, res.Results, 1)
		assert.Equal(t, int64(102), res.Results[0].ID())
	})

	t.Run("trims and lowercases", func(t *testing.T) {
		res := orggraph.Search(g, "  Killer  ", 0)
		require.Len(t, res.Results, 1)
		assert.Equal(t, "Killer Bee", res.Results[0].Name())
	})

	t.Run("empty and whitespace queries match nothing", func(t *testing.T) {
		assert.Empty(t, orggraph.Search(g, "", 0).Results)
		assert.Empty(t, orggraph.Search(g, "   ", 0).Results)
	})

	t.Run("cap keeps exact total", func(t *testing.T) {
		people := make([]colleague.Colleague, 0, 200)
		for i := int64(1); i <= 200; i++ {
			people = append(people, colleague.New(i, fmt.Sprintf("Worker %03d", i), "Forager", "", nil))
		}
		res := orggraph.Search(orggraph.Build(people), "worker", 0)
		assert.Len(t, res.Results, orggraph.SearchLimit)
		assert.Equal(t, 200, res.Total)
		assert.True(t, res.IsLimited)
	})
}
