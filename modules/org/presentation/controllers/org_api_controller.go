package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/vinbees/hive-sdk/modules/org/domain/orggraph"
	"github.com/vinbees/hive-sdk/modules/org/presentation/mappers"
	"github.com/vinbees/hive-sdk/modules/org/services"
	"github.com/vinbees/hive-sdk/pkg/application"
	"github.com/vinbees/hive-sdk/pkg/configuration"
	"github.com/vinbees/hive-sdk/pkg/httpapi"
	"github.com/vinbees/hive-sdk/pkg/vinbees"
)

type OrgAPIController struct {
	app      application.Application
	chart    *services.OrgChartService
	basePath string
}

func NewOrgAPIController(app application.Application) application.Controller {
	return &OrgAPIController{
		app:      app,
		chart:    app.Service(services.OrgChartService{}).(*services.OrgChartService),
		basePath: "/org/api",
	}
}

func (c *OrgAPIController) Key() string {
	return c.basePath
}

func (c *OrgAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/chart", c.Chart).Methods(http.MethodGet)
	router.HandleFunc("/chart/search", c.Search).Methods(http.MethodGet)
	router.HandleFunc("/chart/navigate", c.Navigate).Methods(http.MethodPost)
	router.HandleFunc("/chart/refresh", c.Refresh).Methods(http.MethodPost)
}

func (c *OrgAPIController) Chart(w http.ResponseWriter, r *http.Request) {
	scrollTop := 0
	if v := strings.TrimSpace(r.URL.Query().Get("scrollTop")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			scrollTop = parsed
		}
	}

	graph, err := c.graphOrRefresh(w, r)
	if err != nil {
		return
	}
	current, err := c.chart.Current()
	if err != nil {
		httpapi.WriteError(w, http.StatusNotFound, "ORG_EMPTY", "org chart is empty", nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, mappers.ChartToViewModel(graph, current, scrollTop))
}

func (c *OrgAPIController) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	graph, err := c.graphOrRefresh(w, r)
	if err != nil {
		return
	}
	res, err := c.chart.Search(query, configuration.Use().OrgSearchLimit)
	if err != nil {
		httpapi.WriteUpstreamError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, mappers.SearchToViewModel(graph, query, res))
}

type navigateRequest struct {
	ID int64 `json:"id"`
}

func (c *OrgAPIController) Navigate(w http.ResponseWriter, r *http.Request) {
	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.WriteValidationError(w, map[string]string{"id": "must be a numeric colleague id"})
		return
	}

	graph, err := c.graphOrRefresh(w, r)
	if err != nil {
		return
	}
	current, err := c.chart.NavigateTo(req.ID)
	if err != nil {
		httpapi.WriteUpstreamError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, mappers.ChartToViewModel(graph, current, 0))
}

func (c *OrgAPIController) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := c.chart.Refresh(r.Context()); err != nil {
		c.writeBackendError(w, err)
		return
	}
	graph, _ := c.chart.Graph()
	httpapi.WriteJSON(w, http.StatusOK, map[string]any{"count": graph.Len()})
}

// graphOrRefresh lazily loads the chart on the first read request.
func (c *OrgAPIController) graphOrRefresh(w http.ResponseWriter, r *http.Request) (*orggraph.Graph, error) {
	g, err := c.chart.Graph()
	if errors.Is(err, services.ErrNotLoaded) {
		if err := c.chart.Refresh(r.Context()); err != nil {
			c.writeBackendError(w, err)
			return nil, err
		}
		g, err = c.chart.Graph()
	}
	if err != nil {
		httpapi.WriteUpstreamError(w, err)
		return nil, err
	}
	return g, nil
}

func (c *OrgAPIController) writeBackendError(w http.ResponseWriter, err error) {
	if errors.Is(err, vinbees.ErrUnauthorized) {
		httpapi.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "backend rejected the session", nil)
		return
	}
	httpapi.WriteUpstreamError(w, err)
}
