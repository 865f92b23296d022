package services

import (
	"context"

	"github.com/Rhymond/go-money"

	"github.com/vinbees/hive-sdk/modules/marketplace/domain"
	"github.com/vinbees/hive-sdk/pkg/serrors"
	"github.com/vinbees/hive-sdk/pkg/vinbees"
)

var (
	ErrListingNotFound   = serrors.NewError("MARKET_LISTING_NOT_FOUND", "listing not found", "")
	ErrInsufficientHoney = serrors.NewError("MARKET_INSUFFICIENT_HONEY", "not enough honey", "top up or pick a cheaper listing")
	ErrBadAmount         = serrors.NewError("MARKET_BAD_AMOUNT", "amount must be positive", "")
)

type MarketplaceAPI interface {
	GetProfile(ctx context.Context) (*vinbees.Profile, error)
	GetMarketplace(ctx context.Context) ([]vinbees.Listing, error)
	BuyListing(ctx context.Context, listingID string) error
	CreateListing(ctx context.Context, listing *vinbees.Listing) error
	TransferHoney(ctx context.Context, recipientID, amount int64) error
}

// PricedListing pairs a backend listing with its price as proper money.
type PricedListing struct {
	vinbees.Listing
	HoneyPrice *money.Money
}

// MarketplaceService fronts the company store. Purchases and honey transfers
// precheck the wallet balance locally so obvious failures never hit the
// backend; the backend still revalidates.
type MarketplaceService struct {
	api MarketplaceAPI
}

func NewMarketplaceService(api MarketplaceAPI) *MarketplaceService {
	return &MarketplaceService{api: api}
}

func (s *MarketplaceService) Listings(ctx context.Context) ([]PricedListing, error) {
	listings, err := s.api.GetMarketplace(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PricedListing, 0, len(listings))
	for _, l := range listings {
		out = append(out, PricedListing{Listing: l, HoneyPrice: domain.Honey(int64(l.Price))})
	}
	return out, nil
}

func (s *MarketplaceService) Balance(ctx context.Context) (*money.Money, error) {
	profile, err := s.api.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Honey(profile.Honey), nil
}

func (s *MarketplaceService) Buy(ctx context.Context, listingID string) error {
	listings, err := s.Listings(ctx)
	if err != nil {
		return err
	}
	var target *PricedListing
	for i := range listings {
		if listings[i].ID == listingID {
			target = &listings[i]
			break
		}
	}
	if target == nil {
		return ErrListingNotFound
	}

	balance, err := s.Balance(ctx)
	if err != nil {
		return err
	}
	if enough, err := balance.GreaterThanOrEqual(target.HoneyPrice); err != nil || !enough {
		return ErrInsufficientHoney
	}
	return s.api.BuyListing(ctx, listingID)
}

func (s *MarketplaceService) CreateListing(ctx context.Context, listing *vinbees.Listing) error {
	if listing.Price <= 0 {
		return ErrBadAmount
	}
	return s.api.CreateListing(ctx, listing)
}

// SendHoney moves honey to another employee after a local balance precheck.
func (s *MarketplaceService) SendHoney(ctx context.Context, recipientID, amount int64) error {
	if amount <= 0 {
		return ErrBadAmount
	}
	balance, err := s.Balance(ctx)
	if err != nil {
		return err
	}
	if enough, err := balance.GreaterThanOrEqual(domain.Honey(amount)); err != nil || !enough {
		return ErrInsufficientHoney
	}
	return s.api.TransferHoney(ctx, recipientID, amount)
}
