package marketplace

import (
	"github.com/vinbees/hive-sdk/modules/marketplace/presentation/controllers"
	"github.com/vinbees/hive-sdk/modules/marketplace/services"
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
		services.NewMarketplaceService(m.client),
	)

	app.RegisterControllers(
		controllers.NewMarketplaceAPIController(app),
	)

	app.QuickLinks().Add(
		spotlight.NewQuickLink(MarketplaceLink.Name, MarketplaceLink.Href),
	)

	return nil
}

func (m *Module) Name() string {
	return "marketplace"
}
