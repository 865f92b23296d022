package application

import (
	"fmt"
	"reflect"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/vinbees/hive-sdk/pkg/eventbus"
	"github.com/vinbees/hive-sdk/pkg/spotlight"
	"github.com/vinbees/hive-sdk/pkg/types"
)

// Controller is an HTTP-facing unit a module contributes to the router.
type Controller interface {
	Key() string
	Register(r *mux.Router)
}

// Module bundles the services, controllers and navigation of one business area.
type Module interface {
	Name() string
	Register(app Application) error
}

type Application interface {
	Logger() *logrus.Logger
	EventPublisher() eventbus.EventBus
	Spotlight() spotlight.Spotlight
	QuickLinks() *spotlight.QuickLinks

	Controllers() []Controller
	Middleware() []mux.MiddlewareFunc
	NavItems() []types.NavigationItem

	RegisterControllers(controllers ...Controller)
	RegisterMiddleware(middleware ...mux.MiddlewareFunc)
	RegisterNavItems(items ...types.NavigationItem)
	RegisterServices(services ...interface{})
	Service(service interface{}) interface{}
}

type ApplicationOptions struct {
	EventBus eventbus.EventBus
	Logger   *logrus.Logger
}

func New(opts *ApplicationOptions) Application {
	sl := spotlight.New()
	quickLinks := &spotlight.QuickLinks{}
	sl.Register(quickLinks)

	return &application{
		eventPublisher: opts.EventBus,
		logger:         opts.Logger,
		spotlight:      sl,
		quickLinks:     quickLinks,
		services:       make(map[reflect.Type]interface{}),
	}
}

type application struct {
	eventPublisher eventbus.EventBus
	logger         *logrus.Logger
	spotlight      spotlight.Spotlight
	quickLinks     *spotlight.QuickLinks
	controllers    map[string]Controller
	controllerKeys []string
	middleware     []mux.MiddlewareFunc
	navItems       []types.NavigationItem
	services       map[reflect.Type]interface{}
}

func (app *application) Logger() *logrus.Logger {
	return app.logger
}

func (app *application) EventPublisher() eventbus.EventBus {
	return app.eventPublisher
}

func (app *application) Spotlight() spotlight.Spotlight {
	return app.spotlight
}

func (app *application) QuickLinks() *spotlight.QuickLinks {
	return app.quickLinks
}

func (app *application) Controllers() []Controller {
	out := make([]Controller, 0, len(app.controllerKeys))
	for _, key := range app.controllerKeys {
		out = append(out, app.controllers[key])
	}
	return out
}

func (app *application) Middleware() []mux.MiddlewareFunc {
	return app.middleware
}

func (app *application) NavItems() []types.NavigationItem {
	return app.navItems
}

func (app *application) RegisterControllers(controllers ...Controller) {
	if app.controllers == nil {
		app.controllers = make(map[string]Controller)
	}
	for _, c := range controllers {
		if _, exists := app.controllers[c.Key()]; !exists {
			app.controllerKeys = append(app.controllerKeys, c.Key())
		}
		app.controllers[c.Key()] = c
	}
}

func (app *application) RegisterMiddleware(middleware ...mux.MiddlewareFunc) {
	app.middleware = append(app.middleware, middleware...)
}

func (app *application) RegisterNavItems(items ...types.NavigationItem) {
	app.navItems = append(app.navItems, items...)
}

func (app *application) RegisterServices(services ...interface{}) {
	for _, service := range services {
		serviceType := reflect.TypeOf(service).Elem()
		app.services[serviceType] = service
	}
}

// Service retrieves a service by its type.
func (app *application) Service(service interface{}) interface{} {
	serviceType := reflect.TypeOf(service)
	svc, exists := app.services[serviceType]
	if !exists {
		panic(fmt.Sprintf("service %s not found", serviceType.Name()))
	}
	return svc
}
