package core

import (
	"github.com/vinbees/hive-sdk/modules/core/presentation/controllers"
	"github.com/vinbees/hive-sdk/modules/core/services"
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
		services.NewProfileService(m.client),
	)

	app.RegisterControllers(
		controllers.NewCoreAPIController(app),
	)

	app.QuickLinks().Add(
		spotlight.NewQuickLink(ProfileLink.Name, ProfileLink.Href),
	)

	return nil
}

func (m *Module) Name() string {
	return "core"
}
