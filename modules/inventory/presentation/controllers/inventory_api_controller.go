package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vinbees/hive-sdk/modules/inventory/presentation/controllers/dtos"
	"github.com/vinbees/hive-sdk/modules/inventory/services"
	"github.com/vinbees/hive-sdk/pkg/application"
	"github.com/vinbees/hive-sdk/pkg/httpapi"
	"github.com/vinbees/hive-sdk/pkg/serrors"
)

type InventoryAPIController struct {
	app      application.Application
	items    *services.InventoryService
	basePath string
}

func NewInventoryAPIController(app application.Application) application.Controller {
	return &InventoryAPIController{
		app:      app,
		items:    app.Service(services.InventoryService{}).(*services.InventoryService),
		basePath: "/inventory/api",
	}
}

func (c *InventoryAPIController) Key() string {
	return c.basePath
}

func (c *InventoryAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/items", c.Items).Methods(http.MethodGet)
	router.HandleFunc("/audit", c.AuditQueue).Methods(http.MethodGet)
	router.HandleFunc("/audit", c.SubmitAudit).Methods(http.MethodPost)
	router.HandleFunc("/transfers", c.PendingTransfers).Methods(http.MethodGet)
	router.HandleFunc("/transfers", c.Transfer).Methods(http.MethodPost)
	router.HandleFunc("/transfers/respond", c.Respond).Methods(http.MethodPost)
}

func (c *InventoryAPIController) Items(w http.ResponseWriter, r *http.Request) {
	items, err := c.items.Items(r.Context())
	if err != nil {
		httpapi.WriteUpstreamError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (c *InventoryAPIController) AuditQueue(w http.ResponseWriter, r *http.Request) {
	items, err := c.items.AuditQueue(r.Context())
	if err != nil {
		httpapi.WriteUpstreamError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (c *InventoryAPIController) SubmitAudit(w http.ResponseWriter, r *http.Request) {
	var dto dtos.AuditResultDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteValidationError(w, map[string]string{"body": "malformed json"})
		return
	}
	if fields, ok := dtos.Validate(&dto); !ok {
		httpapi.WriteValidationError(w, fields)
		return
	}
	if err := c.items.SubmitAudit(r.Context(), dto.ItemID, *dto.Present); err != nil {
		httpapi.WriteUpstreamError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (c *InventoryAPIController) PendingTransfers(w http.ResponseWriter, r *http.Request) {
	transfers, err := c.items.PendingTransfers(r.Context())
	if err != nil {
		httpapi.WriteUpstreamError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]any{"transfers": transfers})
}

func (c *InventoryAPIController) Transfer(w http.ResponseWriter, r *http.Request) {
	var dto dtos.TransferItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteValidationError(w, map[string]string{"body": "malformed json"})
		return
	}
	if fields, ok := dtos.Validate(&dto); !ok {
		httpapi.WriteValidationError(w, fields)
		return
	}
	if err := c.items.Transfer(r.Context(), dto.RecipientID, dto.ItemID, dto.Quantity); err != nil {
		httpapi.WriteUpstreamError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (c *InventoryAPIController) Respond(w http.ResponseWriter, r *http.Request) {
	var dto dtos.TransferResponseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteValidationError(w, map[string]string{"body": "malformed json"})
		return
	}
	if fields, ok := dtos.Validate(&dto); !ok {
		httpapi.WriteValidationError(w, fields)
		return
	}
	if err := c.items.RespondToTransfer(r.Context(), dto.TransferID, dto.Action); err != nil {
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
