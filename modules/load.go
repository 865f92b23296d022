package modules

import (
	"slices"

	"github.com/vinbees/hive-sdk/modules/core"
	"github.com/vinbees/hive-sdk/modules/inventory"
	"github.com/vinbees/hive-sdk/modules/marketplace"
	"github.com/vinbees/hive-sdk/modules/org"
	"github.com/vinbees/hive-sdk/modules/requests"
	"github.com/vinbees/hive-sdk/modules/timesheet"
	"github.com/vinbees/hive-sdk/modules/trips"
	"github.com/vinbees/hive-sdk/pkg/application"
	"github.com/vinbees/hive-sdk/pkg/vinbees"
)

// BuiltInModules wires every module against one shared backend client. The
// requests module reads the org chart, so org must register before it.
func BuiltInModules(client *vinbees.Client) []application.Module {
	return []application.Module{
		core.NewModule(client),
		org.NewModule(client),
		timesheet.NewModule(client),
		inventory.NewModule(client),
		marketplace.NewModule(client),
		trips.NewModule(client),
		requests.NewModule(client),
	}
}

var NavLinks = slices.Concat(
	core.NavItems,
	org.NavItems,
	timesheet.NavItems,
	inventory.NavItems,
	marketplace.NavItems,
	trips.NavItems,
	requests.NavItems,
)

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range externalModules {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
