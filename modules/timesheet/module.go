package timesheet

import (
	"github.com/vinbees/hive-sdk/modules/timesheet/infrastructure/platform"
	"github.com/vinbees/hive-sdk/modules/timesheet/presentation/controllers"
	"github.com/vinbees/hive-sdk/modules/timesheet/services"
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
		services.NewTimesheetService(platform.NewTimesheetRepository(m.client)),
		services.NewApprovalService(platform.NewApprovalRepository(m.client), app.Logger()),
	)

	app.RegisterControllers(
		controllers.NewTimesheetAPIController(app),
	)

	app.QuickLinks().Add(
		spotlight.NewQuickLink(MyHoursLink.Name, MyHoursLink.Href),
		spotlight.NewQuickLink(ApprovalsLink.Name, ApprovalsLink.Href),
	)

	return nil
}

func (m *Module) Name() string {
	return "timesheet"
}
