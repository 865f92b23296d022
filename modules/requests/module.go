package requests

import (
	orgservices "github.com/vinbees/hive-sdk/modules/org/services"
	"github.com/vinbees/hive-sdk/modules/requests/presentation/controllers"
	"github.com/vinbees/hive-sdk/modules/requests/services"
	"github.com/vinbees/hive-sdk/pkg/application"
	"github.com/vinbees/hive-sdk/pkg/spotlight"
	"github.com/vinbees/hive-sdk/pkg/vinbees"
)

func NewModule(client *vinbees.Client) application.Module {
	return &Module{client: client}
}

// Module depends on the org module for the reporting-line check and must be
// registered after it.
type Module struct {
	client *vinbees.Client
}

func (m *Module) Register(app application.Application) error {
	org := app.Service(orgservices.OrgChartService{}).(*orgservices.OrgChartService)

	app.RegisterServices(
		services.NewRequestService(m.client, org),
	)

	app.RegisterControllers(
		controllers.NewRequestsAPIController(app),
	)

	app.QuickLinks().Add(
		spotlight.NewQuickLink(RequestsLink.Name, RequestsLink.Href),
	)

	return nil
}

func (m *Module) Name() string {
	return "requests"
}
