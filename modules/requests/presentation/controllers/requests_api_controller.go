package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vinbees/hive-sdk/modules/requests/presentation/controllers/dtos"
	"github.com/vinbees/hive-sdk/modules/requests/services"
	"github.com/vinbees/hive-sdk/pkg/application"
	"github.com/vinbees/hive-sdk/pkg/httpapi"
	"github.com/vinbees/hive-sdk/pkg/serrors"
	"github.com/vinbees/hive-sdk/pkg/vinbees"
)

type RequestsAPIController struct {
	app      application.Application
	requests *services.RequestService
	basePath string
}

func NewRequestsAPIController(app application.Application) application.Controller {
	return &RequestsAPIController{
		app:      app,
		requests: app.Service(services.RequestService{}).(*services.RequestService),
		basePath: "/requests/api",
	}
}

func (c *RequestsAPIController) Key() string {
	return c.basePath
}

func (c *RequestsAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/requests", c.List).Methods(http.MethodGet)
	router.HandleFunc("/requests", c.Save).Methods(http.MethodPost)
	router.HandleFunc("/requests/submit", c.Submit).Methods(http.MethodPost)
	router.HandleFunc("/requests/respond", c.Respond).Methods(http.MethodPost)
}

// List serves the creator's own requests by default; view=subordinate shows
// the viewer's reporting line instead.
func (c *RequestsAPIController) List(w http.ResponseWriter, r *http.Request) {
	var (
		requests []vinbees.Request
		err      error
	)
	if r.URL.Query().Get("view") == "subordinate" {
		requests, err = c.requests.Subordinate(r.Context())
	} else {
		requests, err = c.requests.My(r.Context())
	}
	if err != nil {
		httpapi.WriteUpstreamError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]any{"requests": requests})
}

func (c *RequestsAPIController) Save(w http.ResponseWriter, r *http.Request) {
	var dto dtos.SaveRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteValidationError(w, map[string]string{"body": "malformed json"})
		return
	}
	if fields, ok := dtos.Validate(&dto); !ok {
		httpapi.WriteValidationError(w, fields)
		return
	}
	saved, err := c.requests.Save(r.Context(), &vinbees.Request{
		ID:        dto.ID,
		Category:  dto.Category,
		ShortDesc: dto.ShortDesc,
		FullDesc:  dto.FullDesc,
	})
	if err != nil {
		httpapi.WriteUpstreamError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, saved)
}

func (c *RequestsAPIController) Submit(w http.ResponseWriter, r *http.Request) {
	var dto dtos.SubmitRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteValidationError(w, map[string]string{"body": "malformed json"})
		return
	}
	if fields, ok := dtos.Validate(&dto); !ok {
		httpapi.WriteValidationError(w, fields)
		return
	}
	if err := c.requests.Submit(r.Context(), dto.RequestID); err != nil {
		httpapi.WriteUpstreamError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (c *RequestsAPIController) Respond(w http.ResponseWriter, r *http.Request) {
	var dto dtos.RespondRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteValidationError(w, map[string]string{"body": "malformed json"})
		return
	}
	if fields, ok := dtos.Validate(&dto); !ok {
		httpapi.WriteValidationError(w, fields)
		return
	}
	if err := c.requests.Respond(r.Context(), dto.RequestID, dto.Action); err != nil {
		var serr *serrors.Error
		if errors.As(err, &serr) {
			httpapi.WriteError(w, http.StatusUnprocessableEntity, serr.Code, serr.Message, nil)
			return
		}
		httpapi.WriteUpstreamError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
