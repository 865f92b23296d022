package trips

import (
	"github.com/vinbees/hive-sdk/modules/trips/presentation/controllers"
	"github.com/vinbees/hive-sdk/modules/trips/services"
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
		services.NewTripService(m.client),
	)

	app.RegisterControllers(
		controllers.NewTripsAPIController(app),
	)

	app.QuickLinks().Add(
		spotlight.NewQuickLink(TripsLink.Name, TripsLink.Href),
	)

	return nil
}

func (m *Module) Name() string {
	return "trips"
}
