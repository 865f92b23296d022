package inventory

import (
	"github.com/vinbees/hive-sdk/modules/inventory/presentation/controllers"
	"github.com/vinbees/hive-sdk/modules/inventory/services"
	"github.com/vinbees/hive-sdk/pkg/application"
	"github.com/vinbees/hive-sdk/pkg/spotlight"
	"github.com/vinbees/hive-sdk/pkg/vinbees"
)

func NewModule(client *vinbees.Client) application.Module {
	return &Module{client: client}
}

type Module struct {
	client *vinbees.Client
}

func (m *Module) Register(app application.Application) error {
	app.RegisterServices(
		services.NewInventoryService(m.client),
	)

	app.RegisterControllers(
		controllers.NewInventoryAPIController(app),
	)

	app.QuickLinks().Add(
		spotlight.NewQuickLink(InventoryLink.Name, InventoryLink.Href),
	)

	return nil
}

func (m *Module) Name() string {
	return "inventory"
}
