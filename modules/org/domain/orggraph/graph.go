package orggraph

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vinbees/hive-sdk/modules/org/domain/aggregates/colleague"
)

// SearchLimit caps how many matches a search copies out. The true total is
// still counted so the client can disclose "showing first N of M".
const SearchLimit = 150

// Graph is the derived org hierarchy: a forest built from the flat colleague
// list. It is immutable once built; any change to the source list requires a
// full rebuild, never a patch.
type Graph struct {
	nodes    map[int64]colleague.Colleague
	children map[int64][]colleague.Colleague
	roots    []colleague.Colleague
	all      []colleague.Colleague
}

// Build constructs the forest. A node becomes a root when its manager id is
// absent, self-referencing, or does not resolve to a known node. Duplicate ids
// keep their first position but last-written fields. Children and roots are
// ordered by case-insensitive name, input order breaking ties.
func Build(people []colleague.Colleague) *Graph {
	g := &Graph{
		nodes:    make(map[int64]colleague.Colleague, len(people)),
		children: make(map[int64][]colleague.Colleague, len(people)),
		all:      make([]colleague.Colleague, 0, len(people)),
	}

	order := make([]int64, 0, len(people))
	for _, p := range people {
		if _, seen := g.nodes[p.ID()]; !seen {
			order = append(order, p.ID())
		}
		g.nodes[p.ID()] = p
	}
	for _, id := range order {
		g.all = append(g.all, g.nodes[id])
	}

	for _, node := range g.all {
		managerID, ok := node.ManagerID()
		if !ok || managerID == node.ID() {
			g.roots = append(g.roots, node)
			continue
		}
		if _, known := g.nodes[managerID]; !known {
			g.roots = append(g.roots, node)
			continue
		}
		g.children[managerID] = append(g.children[managerID], node)
	}

	coll := collate.New(language.Und, collate.IgnoreCase)
	for id := range g.children {
		sortByName(coll, g.children[id])
	}
	sortByName(coll, g.roots)

	return g
}

func sortByName(coll *collate.Collator, nodes []colleague.Colleague) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return coll.CompareString(nodes[i].Name(), nodes[j].Name()) < 0
	})
}

func (g *Graph) Len() int { return len(g.all) }

// All returns every node in first-insertion order.
func (g *Graph) All() []colleague.Colleague { return g.all }

func (g *Graph) Node(id int64) (colleague.Colleague, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

func (g *Graph) Contains(id int64) bool {
	_, ok := g.nodes[id]
	return ok
}

// Roots returns the top-level people, name-ordered. Multiple roots are normal.
func (g *Graph) Roots() []colleague.Colleague { return g.roots }

// DefaultRoot is where navigation lands when the chart opens: the first root,
// or the first node at all when malformed input left the forest rootless.
func (g *Graph) DefaultRoot() (colleague.Colleague, bool) {
	if len(g.roots) > 0 {
		return g.roots[0], true
	}
	if len(g.all) > 0 {
		return g.all[0], true
	}
	return colleague.Colleague{}, false
}

// DirectReports returns the name-ordered children of id, empty for unknown ids.
func (g *Graph) DirectReports(id int64) []colleague.Colleague {
	return g.children[id]
}

// Manager resolves the manager of id, reporting false for roots and unknowns.
func (g *Graph) Manager(id int64) (colleague.Colleague, bool) {
	node, ok := g.nodes[id]
	if !ok {
		return colleague.Colleague{}, false
	}
	managerID, ok := node.ManagerID()
	if !ok || managerID == node.ID() {
		return colleague.Colleague{}, false
	}
	m, ok := g.nodes[managerID]
	return m, ok
}

// Breadcrumb walks manager links upward from id and returns the chain ordered
// root first, id last. Unknown ids yield an empty chain. A visited set guards
// against cycles in malformed input; well-formed graphs cannot cycle because
// the root rules above break self and dangling links.
func (g *Graph) Breadcrumb(id int64) []colleague.Colleague {
	node, ok := g.nodes[id]
	if !ok {
		return nil
	}

	chain := make([]colleague.Colleague, 0, 8)
	visited := make(map[int64]struct{}, 8)
	for {
		if _, seen := visited[node.ID()]; seen {
			break
		}
		visited[node.ID()] = struct{}{}
		chain = append(chain, node)

		managerID, ok := node.ManagerID()
		if !ok {
			break
		}
		next, ok := g.nodes[managerID]
		if !ok {
			break
		}
		node = next
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// IsInSubtree reports whether descendantID sits below ancestorID (or is it).
func (g *Graph) IsInSubtree(ancestorID, descendantID int64) bool {
	for _, node := range g.Breadcrumb(descendantID) {
		if node.ID() == ancestorID {
			return true
		}
	}
	return false
}

type SearchResult struct {
	Results   []colleague.Colleague
	Total     int
	IsLimited bool
}

// Search matches the trimmed, lowercased query as a substring of each node's
// search key, scanning in stable build order. Matching keeps counting past the
// cap so Total is exact. Empty queries match nothing.
func Search(g *Graph, query string, limit int) SearchResult {
	if limit <= 0 {
		limit = SearchLimit
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return SearchResult{Results: []colleague.Colleague{}}
	}

	res := SearchResult{Results: make([]colleague.Colleague, 0, limit)}
	for _, node := range g.all {
		if !strings.Contains(node.SearchKey(), query) {
			continue
		}
		res.Total++
		if len(res.Results) < limit {
			res.Results = append(res.Results, node)
		}
	}
	res.IsLimited = res.Total > limit
	return res
}
