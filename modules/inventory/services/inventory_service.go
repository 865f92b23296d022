package services

import (
	"context"

	"github.com/vinbees/hive-sdk/pkg/serrors"
	"github.com/vinbees/hive-sdk/pkg/vinbees"
)

var ErrBadTransferAction = serrors.NewError("TRANSFER_BAD_ACTION", "transfer response must be accept or reject", "")

type InventoryAPI interface {
	GetInventory(ctx context.Context) ([]vinbees.InventoryItem, error)
	SendAuditResult(ctx context.Context, itemID int64, present bool) error
	TransferItem(ctx context.Context, recipientID, itemID int64, quantity int) error
	GetPendingTransfers(ctx context.Context) ([]vinbees.IncomingTransfer, error)
	RespondToTransfer(ctx context.Context, transferID, action string) error
}

// InventoryService is a thin pass-through to the backend: items, audit
// answers and peer transfers. The backend owns all inventory state.
type InventoryService struct {
	api InventoryAPI
}

func NewInventoryService(api InventoryAPI) *InventoryService {
	return &InventoryService{api: api}
}

func (s *InventoryService) Items(ctx context.Context) ([]vinbees.InventoryItem, error) {
	return s.api.GetInventory(ctx)
}

// AuditQueue lists only the items flagged for the periodic audit.
func (s *InventoryService) AuditQueue(ctx context.Context) ([]vinbees.InventoryItem, error) {
	items, err := s.api.GetInventory(ctx)
	if err != nil {
		return nil, err
	}
	queue := make([]vinbees.InventoryItem, 0, len(items))
	for _, item := range items {
		if item.AuditRequired {
			queue = append(queue, item)
		}
	}
	return queue, nil
}

func (s *InventoryService) SubmitAudit(ctx context.Context, itemID int64, present bool) error {
	return s.api.SendAuditResult(ctx, itemID, present)
}

func (s *InventoryService) Transfer(ctx context.Context, recipientID, itemID int64, quantity int) error {
	return s.api.TransferItem(ctx, recipientID, itemID, quantity)
}

func (s *InventoryService) PendingTransfers(ctx context.Context) ([]vinbees.IncomingTransfer, error) {
	return s.api.GetPendingTransfers(ctx)
}

func (s *InventoryService) RespondToTransfer(ctx context.Context, transferID, action string) error {
	if action != "accept" && action != "reject" {
		return ErrBadTransferAction
	}
	return s.api.RespondToTransfer(ctx, transferID, action)
}
