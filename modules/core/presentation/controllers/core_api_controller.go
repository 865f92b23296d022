package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vinbees/hive-sdk/modules/core/services"
	"github.com/vinbees/hive-sdk/pkg/application"
	"github.com/vinbees/hive-sdk/pkg/httpapi"
	"github.com/vinbees/hive-sdk/pkg/serrors"
	"github.com/vinbees/hive-sdk/pkg/spotlight"
	"github.com/vinbees/hive-sdk/pkg/vinbees"
)

type CoreAPIController struct {
	app      application.Application
	profiles *services.ProfileService
	basePath string
}

func NewCoreAPIController(app application.Application) application.Controller {
	return &CoreAPIController{
		app:      app,
		profiles: app.Service(services.ProfileService{}).(*services.ProfileService),
		basePath: "/core/api",
	}
}

func (c *CoreAPIController) Key() string {
	return c.basePath
}

func (c *CoreAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/profile", c.Profile).Methods(http.MethodGet)
	router.HandleFunc("/profile", c.UpdateProfile).Methods(http.MethodPut)
	router.HandleFunc("/spotlight", c.Spotlight).Methods(http.MethodGet)
	router.HandleFunc("/navigation", c.Navigation).Methods(http.MethodGet)
}

func (c *CoreAPIController) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := c.profiles.Get(r.Context())
	if err != nil {
		httpapi.WriteUpstreamError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, profile)
}

func (c *CoreAPIController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var profile vinbees.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		httpapi.WriteValidationError(w, map[string]string{"body": "malformed json"})
		return
	}
	updated, err := c.profiles.Update(r.Context(), &profile)
	if err != nil {
		var serr *serrors.Error
		if errors.As(err, &serr) {
			httpapi.WriteError(w, http.StatusUnprocessableEntity, serr.Code, serr.Message, nil)
			return
		}
		httpapi.WriteUpstreamError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, updated)
}

// Spotlight fuzzy-matches the registered quick actions of every module.
func (c *CoreAPIController) Spotlight(w http.ResponseWriter, r *http.Request) {
	items := c.app.Spotlight().Find(r.URL.Query().Get("q"))
	if items == nil {
		items = []spotlight.Item{}
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (c *CoreAPIController) Navigation(w http.ResponseWriter, r *http.Request) {
	httpapi.WriteJSON(w, http.StatusOK, map[string]any{"items": c.app.NavItems()})
}
