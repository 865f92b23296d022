package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vinbees/hive-sdk/modules/marketplace/presentation/controllers/dtos"
	"github.com/vinbees/hive-sdk/modules/marketplace/services"
	"github.com/vinbees/hive-sdk/pkg/application"
	"github.com/vinbees/hive-sdk/pkg/httpapi"
	"github.com/vinbees/hive-sdk/pkg/serrors"
	"github.com/vinbees/hive-sdk/pkg/vinbees"
)

type MarketplaceAPIController struct {
	app      application.Application
	market   *services.MarketplaceService
	basePath string
}

func NewMarketplaceAPIController(app application.Application) application.Controller {
	return &MarketplaceAPIController{
		app:      app,
		market:   app.Service(services.MarketplaceService{}).(*services.MarketplaceService),
		basePath: "/marketplace/api",
	}
}

func (c *MarketplaceAPIController) Key() string {
	return c.basePath
}

func (c *MarketplaceAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/listings", c.Listings).Methods(http.MethodGet)
	router.HandleFunc("/listings", c.CreateListing).Methods(http.MethodPost)
	router.HandleFunc("/buy", c.Buy).Methods(http.MethodPost)
	router.HandleFunc("/balance", c.Balance).Methods(http.MethodGet)
	router.HandleFunc("/send-honey", c.SendHoney).Methods(http.MethodPost)
}

func (c *MarketplaceAPIController) Listings(w http.ResponseWriter, r *http.Request) {
	listings, err := c.market.Listings(r.Context())
	if err != nil {
		httpapi.WriteUpstreamError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]any{"listings": listings})
}

func (c *MarketplaceAPIController) Balance(w http.ResponseWriter, r *http.Request) {
	balance, err := c.market.Balance(r.Context())
	if err != nil {
		httpapi.WriteUpstreamError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]any{
		"amount":   balance.Amount(),
		"currency": balance.Currency().Code,
		"display":  balance.Display(),
	})
}

func (c *MarketplaceAPIController) Buy(w http.ResponseWriter, r *http.Request) {
	var dto dtos.BuyDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteValidationError(w, map[string]string{"body": "malformed json"})
		return
	}
	if fields, ok := dtos.Validate(&dto); !ok {
		httpapi.WriteValidationError(w, fields)
		return
	}
	if err := c.market.Buy(r.Context(), dto.ListingID); err != nil {
		c.writeMarketError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (c *MarketplaceAPIController) CreateListing(w http.ResponseWriter, r *http.Request) {
	var dto dtos.CreateListingDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteValidationError(w, map[string]string{"body": "malformed json"})
		return
	}
	if fields, ok := dtos.Validate(&dto); !ok {
		httpapi.WriteValidationError(w, fields)
		return
	}
	listing := &vinbees.Listing{
		Name:        dto.Name,
		Price:       dto.Price,
		Description: dto.Description,
		Icon:        dto.Icon,
		Rarity:      dto.Rarity,
		Type:        dto.Type,
	}
	if err := c.market.CreateListing(r.Context(), listing); err != nil {
		c.writeMarketError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, map[string]bool{"success": true})
}

func (c *MarketplaceAPIController) SendHoney(w http.ResponseWriter, r *http.Request) {
	var dto dtos.SendHoneyDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteValidationError(w, map[string]string{"body": "malformed json"})
		return
	}
	if fields, ok := dtos.Validate(&dto); !ok {
		httpapi.WriteValidationError(w, fields)
		return
	}
	if err := c.market.SendHoney(r.Context(), dto.RecipientID, dto.Amount); err != nil {
		c.writeMarketError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (c *MarketplaceAPIController) writeMarketError(w http.ResponseWriter, err error) {
	var serr *serrors.Error
	if errors.As(err, &serr) {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, services.ErrListingNotFound) {
			status = http.StatusNotFound
		}
		httpapi.WriteError(w, status, serr.Code, serr.Message, nil)
		return
	}
	httpapi.WriteUpstreamError(w, err)
}
