// Package notification reacts to committed asset events: it warns a Slack
// channel when a model number runs low on available units and tells owners
// about allocations.
package notification

import (
	"context"
	"fmt"
	"time"

	assigneeapp "art/internal/application/assignee"
	"art/internal/domain/asset"
	vo "art/internal/domain/asset/valueobjects"
	"art/internal/domain/assignee"
	"art/internal/domain/catalog"
	"art/internal/domain/shared/events"
	"art/internal/infrastructure/cache"
	"art/internal/shared/logger"
)

const handlerTimeout = 30 * time.Second

type SlackNotifier interface {
	PostMessage(ctx context.Context, channel, text string) error
	DirectMessage(ctx context.Context, email, text string) error
}

type EmailSender interface {
	SendAllocationEmail(to, assetLabel string, allocated bool) error
}

type Deduplicator interface {
	TryAcquireAlertLock(ctx context.Context, alertType cache.AlertType, resourceID uint, ttl time.Duration) (bool, error)
	ClearAlert(ctx context.Context, alertType cache.AlertType, resourceID uint) error
}

type StockCounter interface {
	CountByStatusAndModelNumber(ctx context.Context, status vo.AssetStatus, modelNumberID uint) (int64, error)
}

type OwnerResolver interface {
	Resolve(ctx context.Context, assigneeID uint) (*assigneeapp.Resolved, error)
}

type Config struct {
	LowStockChannel   string
	LowStockThreshold int
	LowStockCooldown  time.Duration
}

// Handler subscribes to asset events. Slack and e-mail are optional; a nil
// notifier disables that channel. Failures are logged and never returned to
// the writer that produced the event.
type Handler struct {
	stock   StockCounter
	catalog catalog.Repository
	owners  OwnerResolver
	slack   SlackNotifier
	mail    EmailSender
	dedup   Deduplicator
	cfg     Config
	logger  logger.Interface
}

func NewHandler(
	stock StockCounter,
	catalogRepo catalog.Repository,
	owners OwnerResolver,
	slack SlackNotifier,
	mail EmailSender,
	dedup Deduplicator,
	cfg Config,
	logger logger.Interface,
) *Handler {
	return &Handler{
		stock:   stock,
		catalog: catalogRepo,
		owners:  owners,
		slack:   slack,
		mail:    mail,
		dedup:   dedup,
		cfg:     cfg,
		logger:  logger,
	}
}

// Register subscribes the handler to the asset event types.
func (h *Handler) Register(sub events.EventSubscriber) error {
	subscriptions := map[string]func(events.DomainEvent) error{
		asset.EventStatusChanged: h.onEvent,
		asset.EventAllocated:     h.onEvent,
		asset.EventDeallocated:   h.onEvent,
	}
	for eventType, fn := range subscriptions {
		if err := sub.Subscribe(eventType, events.NewSimpleEventHandler(eventType, fn)); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", eventType, err)
		}
	}
	return nil
}

func (h *Handler) onEvent(event events.DomainEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	switch e := event.(type) {
	case asset.StatusChangedEvent:
		h.HandleStatusChanged(ctx, e)
	case asset.AllocationChangedEvent:
		h.HandleAllocationChanged(ctx, e)
	default:
		h.logger.Warnw("unexpected event payload", "event_type", event.GetEventType())
	}
	return nil
}

// HandleStatusChanged warns the low stock channel once per cooldown when the
// available units of the asset's model number drop to the threshold.
func (h *Handler) HandleStatusChanged(ctx context.Context, e asset.StatusChangedEvent) {
	h.checkLowStock(ctx, e.ModelNumberID)
}

// SweepLowStock runs the low stock check for every model number. It catches
// stock that ran low without a status change, e.g. after a bulk import.
func (h *Handler) SweepLowStock(ctx context.Context) error {
	const pageSize = 100
	for page := 1; ; page++ {
		items, total, err := h.catalog.List(ctx, catalog.Filter{
			Level:    catalog.LevelModelNumber,
			Page:     page,
			PageSize: pageSize,
		})
		if err != nil {
			return fmt.Errorf("failed to list model numbers: %w", err)
		}
		for _, item := range items {
			if err := ctx.Err(); err != nil {
				return err
			}
			h.checkLowStock(ctx, item.ID())
		}
		if len(items) < pageSize || int64(page*pageSize) >= total {
			return nil
		}
	}
}

func (h *Handler) checkLowStock(ctx context.Context, modelNumberID uint) {
	available, err := h.stock.CountByStatusAndModelNumber(ctx, vo.StatusAvailable, modelNumberID)
	if err != nil {
		h.logger.Errorw("failed to count available assets", "model_number_id", modelNumberID, "error", err)
		return
	}

	if available > int64(h.cfg.LowStockThreshold) {
		if err := h.dedup.ClearAlert(ctx, cache.AlertTypeLowStock, modelNumberID); err != nil {
			h.logger.Warnw("failed to clear low stock alert", "model_number_id", modelNumberID, "error", err)
		}
		return
	}

	acquired, err := h.dedup.TryAcquireAlertLock(ctx, cache.AlertTypeLowStock, modelNumberID, h.cfg.LowStockCooldown)
	if err != nil {
		h.logger.Warnw("failed to acquire low stock alert lock", "model_number_id", modelNumberID, "error", err)
		return
	}
	if !acquired {
		h.logger.Debugw("low stock alert in cooldown", "model_number_id", modelNumberID)
		return
	}

	text := fmt.Sprintf(":warning: Low stock: only %d unit(s) of %s available", available, h.modelName(ctx, modelNumberID))
	if h.slack == nil {
		h.logger.Warnw("low stock", "model_number_id", modelNumberID, "available", available)
		return
	}
	if err := h.slack.PostMessage(ctx, h.cfg.LowStockChannel, text); err != nil {
		h.logger.Errorw("failed to post low stock warning", "model_number_id", modelNumberID, "error", err)
		return
	}
	h.logger.Infow("low stock warning posted", "model_number_id", modelNumberID, "available", available)
}

// HandleAllocationChanged messages the new owner and the previous owner.
func (h *Handler) HandleAllocationChanged(ctx context.Context, e asset.AllocationChangedEvent) {
	if e.CurrentOwnerID != nil {
		h.notifyOwner(ctx, *e.CurrentOwnerID, e.AssetLabel, true)
	}
	if e.PreviousOwnerID != nil {
		h.notifyOwner(ctx, *e.PreviousOwnerID, e.AssetLabel, false)
	}
}

func (h *Handler) notifyOwner(ctx context.Context, assigneeID uint, assetLabel string, allocated bool) {
	owner, err := h.owners.Resolve(ctx, assigneeID)
	if err != nil {
		h.logger.Warnw("failed to resolve asset owner", "assignee_id", assigneeID, "error", err)
		return
	}

	text := allocationText(owner, assetLabel, allocated)
	if owner.Kind != assignee.KindUser {
		if h.slack == nil {
			return
		}
		if err := h.slack.PostMessage(ctx, h.cfg.LowStockChannel, text); err != nil {
			h.logger.Warnw("failed to post allocation message", "assignee_id", assigneeID, "error", err)
		}
		return
	}

	if h.slack != nil {
		err := h.slack.DirectMessage(ctx, owner.Email, text)
		if err == nil {
			h.logger.Infow("allocation message sent", "assignee_id", assigneeID, "channel", "slack")
			return
		}
		h.logger.Warnw("failed to message owner on slack", "assignee_id", assigneeID, "error", err)
	}
	if h.mail == nil {
		return
	}
	if err := h.mail.SendAllocationEmail(owner.Email, assetLabel, allocated); err != nil {
		h.logger.Errorw("failed to e-mail owner", "assignee_id", assigneeID, "error", err)
		return
	}
	h.logger.Infow("allocation message sent", "assignee_id", assigneeID, "channel", "email")
}

func (h *Handler) modelName(ctx context.Context, id uint) string {
	item, err := h.catalog.GetByID(ctx, catalog.LevelModelNumber, id)
	if err != nil || item == nil {
		return fmt.Sprintf("model number #%d", id)
	}
	return item.Name()
}

func allocationText(owner *assigneeapp.Resolved, assetLabel string, allocated bool) string {
	if owner.Kind == assignee.KindUser {
		if allocated {
			return fmt.Sprintf("The asset %s has been allocated to you.", assetLabel)
		}
		return fmt.Sprintf("The asset %s is no longer allocated to you.", assetLabel)
	}
	if allocated {
		return fmt.Sprintf("The asset %s has been allocated to %s %s.", assetLabel, owner.Kind, owner.Name)
	}
	return fmt.Sprintf("The asset %s is no longer allocated to %s %s.", assetLabel, owner.Kind, owner.Name)
}
