package main

import (
	"log"
	"net/http"
	"os"
	"runtime/debug"

	"github.com/vinbees/hive-sdk/modules"
	"github.com/vinbees/hive-sdk/pkg/application"
	"github.com/vinbees/hive-sdk/pkg/configuration"
	"github.com/vinbees/hive-sdk/pkg/eventbus"
	"github.com/vinbees/hive-sdk/pkg/httpapi"
	"github.com/vinbees/hive-sdk/pkg/metrics"
	"github.com/vinbees/hive-sdk/pkg/middleware"
	"github.com/vinbees/hive-sdk/pkg/server"
	"github.com/vinbees/hive-sdk/pkg/vinbees"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	logger := conf.Logger()

	if err := conf.Backend.Validate(); err != nil {
		log.Fatalf("invalid backend configuration: %v", err)
	}
	client := vinbees.NewClient(vinbees.Config{
		BaseURL:    conf.Backend.BaseURL,
		InitData:   conf.Backend.InitData,
		Timeout:    conf.Backend.Timeout,
		MaxRetries: conf.Backend.MaxRetries,
		RetryDelay: conf.Backend.RetryDelay,
		Logger:     logger,
	})

	app := application.New(&application.ApplicationOptions{
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
	})
	if err := modules.Load(app, modules.BuiltInModules(client)...); err != nil {
		log.Fatalf("failed to load modules: %v", err)
	}

	app.RegisterNavItems(modules.NavLinks...)
	app.RegisterMiddleware(middleware.WithLogger(logger))
	if conf.Prometheus.Enabled {
		app.RegisterControllers(metrics.NewPrometheusController(conf.Prometheus.Path))
	}

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpapi.WriteError(w, http.StatusNotFound, "NOT_FOUND", "no such endpoint", nil)
	})
	notAllowed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpapi.WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed on this endpoint", nil)
	})

	serverInstance := server.NewHTTPServer(app, notFound, notAllowed)
	log.Printf("Listening on: %s\n", conf.SocketAddress)
	if err := serverInstance.Start(conf.SocketAddress); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
