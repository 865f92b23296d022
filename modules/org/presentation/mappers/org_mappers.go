package mappers

import (
	"github.com/vinbees/hive-sdk/modules/org/domain/aggregates/colleague"
	"github.com/vinbees/hive-sdk/modules/org/domain/orggraph"
	"github.com/vinbees/hive-sdk/modules/org/presentation/viewmodels"
	"github.com/vinbees/hive-sdk/pkg/listwindow"
)

func ColleagueToViewModel(c colleague.Colleague, reportCount int) viewmodels.Colleague {
	vm := viewmodels.Colleague{
		ID:          c.ID(),
		Name:        c.Name(),
		Role:        c.Role(),
		Avatar:      c.Avatar(),
		ReportCount: reportCount,
	}
	if managerID, ok := c.ManagerID(); ok {
		id := managerID
		vm.ManagerID = &id
	}
	return vm
}

func ColleaguesToViewModels(g *orggraph.Graph, nodes []colleague.Colleague) []viewmodels.Colleague {
	out := make([]viewmodels.Colleague, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, ColleagueToViewModel(n, len(g.DirectReports(n.ID()))))
	}
	return out
}

// ChartToViewModel assembles the focused view: the cursor node, its chain up
// to the root and the scroll window over its direct reports.
func ChartToViewModel(g *orggraph.Graph, current colleague.Colleague, scrollTop int) viewmodels.ChartView {
	reports := g.DirectReports(current.ID())
	win := listwindow.Compute(listwindow.DefaultConfig(), len(reports), scrollTop)
	return viewmodels.ChartView{
		Current:       ColleagueToViewModel(current, len(reports)),
		Breadcrumb:    ColleaguesToViewModels(g, g.Breadcrumb(current.ID())),
		DirectReports: ColleaguesToViewModels(g, reports[win.StartIndex:win.EndIndex]),
		Window: viewmodels.ListWindow{
			StartIndex:     win.StartIndex,
			EndIndex:       win.EndIndex,
			OffsetY:        win.OffsetY,
			ViewportHeight: win.ViewportHeight,
			TotalCount:     len(reports),
		},
	}
}

func SearchToViewModel(g *orggraph.Graph, query string, res orggraph.SearchResult) viewmodels.SearchView {
	return viewmodels.SearchView{
		Query:     query,
		Results:   ColleaguesToViewModels(g, res.Results),
		Total:     res.Total,
		IsLimited: res.IsLimited,
	}
}
