package org

import (
	"github.com/vinbees/hive-sdk/modules/org/infrastructure/platform"
	"github.com/vinbees/hive-sdk/modules/org/presentation/controllers"
	"github.com/vinbees/hive-sdk/modules/org/services"
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
		services.NewOrgChartService(platform.NewColleagueRepository(m.client), app.EventPublisher()),
	)

	app.RegisterControllers(
		controllers.NewOrgAPIController(app),
	)

	app.QuickLinks().Add(
		spotlight.NewQuickLink(HiveChartLink.Name, HiveChartLink.Href),
	)

	return nil
}

func (m *Module) Name() string {
	return "org"
}
