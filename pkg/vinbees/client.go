package vinbees

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/vinbees/hive-sdk/pkg/serrors"
)

var (
	ErrUnauthorized = serrors.NewError("VINBEES_UNAUTHORIZED", "platform rejected the launch credentials", "")
	ErrUnavailable  = serrors.NewError("VINBEES_UNAVAILABLE", "platform did not answer after retries", "")
)

// Client talks to the VinBees HR platform HTTP API. All calls are synchronous,
// take a context and never mutate local state; callers decide what to do with
// a failure (usually: keep prior state and let the user retry).
type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	cfg = cfg.withDefaults()
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	var out Profile
	if err := c.call(ctx, http.MethodGet, "/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, p *Profile) (*Profile, error) {
	var out Profile
	if err := c.call(ctx, http.MethodPut, "/profile", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetColleagues(ctx context.Context) ([]Colleague, error) {
	var out []Colleague
	if err := c.call(ctx, http.MethodGet, "/colleagues", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetTimesheet(ctx context.Context, month string) (*Timesheet, error) {
	var out Timesheet
	path := "/timesheet?month=" + url.QueryEscape(month)
	if err := c.call(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SaveDailyReport(ctx context.Context, date string, report DailyReport) error {
	payload := struct {
		Date string `json:"date"`
		DailyReport
	}{Date: date, DailyReport: report}
	return c.call(ctx, http.MethodPost, "/timesheet/day", payload, nil)
}

func (c *Client) GetSubordinateTimesheets(ctx context.Context, month string) (map[string]SubordinateSheet, error) {
	var out map[string]SubordinateSheet
	path := "/timesheet/subordinates?month=" + url.QueryEscape(month)
	if err := c.call(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ApproveReports(ctx context.Context, refs []ReportRef) (*ApprovalResult, error) {
	var out ApprovalResult
	payload := struct {
		Reports []ReportRef `json:"reports"`
	}{Reports: refs}
	if err := c.call(ctx, http.MethodPost, "/timesheet/approve", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RejectReports(ctx context.Context, refs []ReportRef, reason string) (*RejectionResult, error) {
	var out RejectionResult
	payload := struct {
		Reports []ReportRef `json:"reports"`
		Reason  string      `json:"reason,omitempty"`
	}{Reports: refs, Reason: reason}
	if err := c.call(ctx, http.MethodPost, "/timesheet/reject", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetInventory(ctx context.Context) ([]InventoryItem, error) {
	var out []InventoryItem
	if err := c.call(ctx, http.MethodGet, "/inventory", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SendAuditResult(ctx context.Context, itemID int64, present bool) error {
	status := "missing"
	if present {
		status = "present"
	}
	payload := struct {
		ItemID int64  `json:"itemId"`
		Status string `json:"status"`
	}{ItemID: itemID, Status: status}
	return c.call(ctx, http.MethodPost, "/inventory/audit", payload, nil)
}

func (c *Client) TransferItem(ctx context.Context, recipientID, itemID int64, quantity int) error {
	payload := struct {
		RecipientID int64 `json:"recipientId"`
		ItemID      int64 `json:"itemId"`
		Quantity    int   `json:"quantity"`
	}{RecipientID: recipientID, ItemID: itemID, Quantity: quantity}
	return c.call(ctx, http.MethodPost, "/inventory/transfer", payload, nil)
}

func (c *Client) GetPendingTransfers(ctx context.Context) ([]IncomingTransfer, error) {
	var out []IncomingTransfer
	if err := c.call(ctx, http.MethodGet, "/inventory/transfer", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RespondToTransfer(ctx context.Context, transferID, action string) error {
	payload := struct {
		TransferID string `json:"transferId"`
		Action     string `json:"action"`
	}{TransferID: transferID, Action: action}
	return c.call(ctx, http.MethodPost, "/inventory/transfer/respond", payload, nil)
}

func (c *Client) TransferHoney(ctx context.Context, recipientID, amount int64) error {
	payload := struct {
		RecipientID int64 `json:"recipientId"`
		Amount      int64 `json:"amount"`
	}{RecipientID: recipientID, Amount: amount}
	return c.call(ctx, http.MethodPost, "/wallet/transfer", payload, nil)
}

func (c *Client) GetMarketplace(ctx context.Context) ([]Listing, error) {
	var out []Listing
	if err := c.call(ctx, http.MethodGet, "/marketplace", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) BuyListing(ctx context.Context, listingID string) error {
	payload := struct {
		ListingID string `json:"listingId"`
	}{ListingID: listingID}
	return c.call(ctx, http.MethodPost, "/marketplace/buy", payload, nil)
}

func (c *Client) CreateListing(ctx context.Context, listing *Listing) error {
	return c.call(ctx, http.MethodPost, "/marketplace/sell", listing, nil)
}

func (c *Client) GetTrips(ctx context.Context) ([]Trip, error) {
	var out []Trip
	if err := c.call(ctx, http.MethodGet, "/trips", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SaveTrip(ctx context.Context, trip *Trip) (*Trip, error) {
	var out Trip
	if err := c.call(ctx, http.MethodPost, "/trips", trip, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SubmitTrip(ctx context.Context, tripID string) error {
	payload := struct {
		TripID string `json:"tripId"`
	}{TripID: tripID}
	return c.call(ctx, http.MethodPost, "/trips/submit", payload, nil)
}

func (c *Client) GetRequests(ctx context.Context, view string) ([]Request, error) {
	var out []Request
	path := "/requests?view=" + url.QueryEscape(view)
	if err := c.call(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SaveRequest(ctx context.Context, req *Request) (*Request, error) {
	var out Request
	if err := c.call(ctx, http.MethodPost, "/requests", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SubmitRequest(ctx context.Context, requestID string) error {
	payload := struct {
		RequestID string `json:"requestId"`
	}{RequestID: requestID}
	return c.call(ctx, http.MethodPost, "/requests/submit", payload, nil)
}

func (c *Client) RespondToRequest(ctx context.Context, requestID, action string) error {
	payload := struct {
		RequestID string `json:"requestId"`
		Action    string `json:"action"`
	}{RequestID: requestID, Action: action}
	return c.call(ctx, http.MethodPost, "/requests/respond", payload, nil)
}

// call performs one logical API call with linear-backoff retries on transport
// errors and 5xx answers. 4xx answers are terminal.
func (c *Client) call(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "vinbees: encode request")
		}
	}

	var lastErr error
	for attempt := 0; attempt < c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * c.cfg.RetryDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		retriable, err := c.do(ctx, method, path, body, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retriable {
			return err
		}
		if c.cfg.Logger != nil {
			c.cfg.Logger.WithError(err).Warnf("vinbees: %s %s failed (attempt %d/%d)", method, path, attempt+1, c.cfg.MaxRetries)
		}
	}
	return errors.Wrap(ErrUnavailable, lastErr.Error())
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) (retriable bool, err error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return false, errors.Wrap(err, "vinbees: build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "tma "+c.cfg.InitData)

	resp, err := c.http.Do(req)
	if err != nil {
		return true, errors.Wrap(err, "vinbees: transport")
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return false, ErrUnauthorized
	case resp.StatusCode >= 500:
		return true, fmt.Errorf("vinbees: %s %s: status %d", method, path, resp.StatusCode)
	case resp.StatusCode >= 400:
		return false, fmt.Errorf("vinbees: %s %s: status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return false, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, errors.Wrap(err, "vinbees: decode response")
	}
	return false, nil
}
