package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	assigneeapp "art/internal/application/assignee"
	"art/internal/domain/asset"
	vo "art/internal/domain/asset/valueobjects"
	"art/internal/domain/assignee"
	"art/internal/domain/catalog"
	"art/internal/domain/shared/events"
	"art/internal/infrastructure/cache"
	"art/internal/shared/logger"
)

type fakeSlack struct {
	mu      sync.Mutex
	posts   []string
	dms     []string
	dmErr   error
	postErr error
}

func (f *fakeSlack) PostMessage(_ context.Context, channel, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts = append(f.posts, channel+": "+text)
	return f.postErr
}

func (f *fakeSlack) DirectMessage(_ context.Context, email, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dms = append(f.dms, email+": "+text)
	return f.dmErr
}

type fakeMail struct {
	sent []string
}

func (f *fakeMail) SendAllocationEmail(to, assetLabel string, allocated bool) error {
	state := "released"
	if allocated {
		state = "allocated"
	}
	f.sent = append(f.sent, to+" "+assetLabel+" "+state)
	return nil
}

type fakeStock map[uint]int64

func (f fakeStock) CountByStatusAndModelNumber(_ context.Context, status vo.AssetStatus, modelNumberID uint) (int64, error) {
	if status != vo.StatusAvailable {
		return 0, errors.New("unexpected status")
	}
	return f[modelNumberID], nil
}

type fakeOwners map[uint]*assigneeapp.Resolved

func (f fakeOwners) Resolve(_ context.Context, id uint) (*assigneeapp.Resolved, error) {
	if r, ok := f[id]; ok {
		return r, nil
	}
	return nil, errors.New("assignee not found")
}

type fakeCatalog struct {
	catalog.Repository
}

func (fakeCatalog) GetByID(_ context.Context, level catalog.Level, id uint) (*catalog.Item, error) {
	return catalog.ReconstructItem(id, level, "T480", nil, time.Now(), time.Now())
}

func (fakeCatalog) List(_ context.Context, filter catalog.Filter) ([]*catalog.Item, int64, error) {
	if filter.Level != catalog.LevelModelNumber || filter.Page > 1 {
		return nil, 2, nil
	}
	var items []*catalog.Item
	for _, id := range []uint{9, 10} {
		item, err := catalog.ReconstructItem(id, catalog.LevelModelNumber, "T480", uptr(3), time.Now(), time.Now())
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	return items, 2, nil
}

func newTestHandler(stock fakeStock, slack SlackNotifier, mail EmailSender, dedup Deduplicator) *Handler {
	owners := fakeOwners{
		1: {ID: 1, Kind: assignee.KindUser, RefID: 10, Name: "jane@example.com", Email: "jane@example.com"},
		2: {ID: 2, Kind: assignee.KindDepartment, RefID: 20, Name: "Finance"},
	}
	return NewHandler(stock, fakeCatalog{}, owners, slack, mail, dedup, Config{
		LowStockChannel:   "#it-assets",
		LowStockThreshold: 2,
		LowStockCooldown:  time.Hour,
	}, logger.NewDiscardLogger())
}

func statusEvent(modelNumberID uint) asset.StatusChangedEvent {
	return asset.StatusChangedEvent{
		BaseEvent:     events.NewBaseEvent(5, asset.EventStatusChanged),
		AssetLabel:    "IC001",
		ModelNumberID: modelNumberID,
		CurrentStatus: vo.StatusAllocated,
	}
}

func uptr(v uint) *uint { return &v }

func TestHandleStatusChanged_LowStockWarnsOncePerCooldown(t *testing.T) {
	slack := &fakeSlack{}
	h := newTestHandler(fakeStock{9: 1}, slack, nil, cache.NewMemoryAlertDeduplicator())

	h.HandleStatusChanged(context.Background(), statusEvent(9))
	h.HandleStatusChanged(context.Background(), statusEvent(9))

	require.Len(t, slack.posts, 1)
	assert.Contains(t, slack.posts[0], "#it-assets")
	assert.Contains(t, slack.posts[0], "only 1 unit(s) of T480")
}

func TestHandleStatusChanged_AboveThresholdClearsCooldown(t *testing.T) {
	slack := &fakeSlack{}
	stock := fakeStock{9: 0}
	h := newTestHandler(stock, slack, nil, cache.NewMemoryAlertDeduplicator())

	h.HandleStatusChanged(context.Background(), statusEvent(9))
	stock[9] = 5
	h.HandleStatusChanged(context.Background(), statusEvent(9))
	stock[9] = 2
	h.HandleStatusChanged(context.Background(), statusEvent(9))

	assert.Len(t, slack.posts, 2)
}

func TestHandleStatusChanged_WithoutSlack(t *testing.T) {
	h := newTestHandler(fakeStock{9: 0}, nil, nil, cache.NewMemoryAlertDeduplicator())
	assert.NotPanics(t, func() { h.HandleStatusChanged(context.Background(), statusEvent(9)) })
}

func TestSweepLowStock_WarnsForEachLowModelNumber(t *testing.T) {
	slack := &fakeSlack{}
	h := newTestHandler(fakeStock{9: 1, 10: 7}, slack, nil, cache.NewMemoryAlertDeduplicator())

	require.NoError(t, h.SweepLowStock(context.Background()))
	require.NoError(t, h.SweepLowStock(context.Background()))

	require.Len(t, slack.posts, 1)
	assert.Contains(t, slack.posts[0], "only 1 unit(s)")
}

func TestHandleAllocationChanged_MessagesUserOnSlack(t *testing.T) {
	slack := &fakeSlack{}
	mail := &fakeMail{}
	h := newTestHandler(fakeStock{}, slack, mail, cache.NewMemoryAlertDeduplicator())

	h.HandleAllocationChanged(context.Background(), asset.AllocationChangedEvent{
		BaseEvent:      events.NewBaseEvent(5, asset.EventAllocated),
		AssetLabel:     "IC001",
		CurrentOwnerID: uptr(1),
	})

	require.Len(t, slack.dms, 1)
	assert.Equal(t, "jane@example.com: The asset IC001 has been allocated to you.", slack.dms[0])
	assert.Empty(t, mail.sent)
}

func TestHandleAllocationChanged_FallsBackToEmail(t *testing.T) {
	slack := &fakeSlack{dmErr: errors.New("users_not_found")}
	mail := &fakeMail{}
	h := newTestHandler(fakeStock{}, slack, mail, cache.NewMemoryAlertDeduplicator())

	h.HandleAllocationChanged(context.Background(), asset.AllocationChangedEvent{
		BaseEvent:       events.NewBaseEvent(5, asset.EventDeallocated),
		AssetLabel:      "IC001",
		PreviousOwnerID: uptr(1),
	})

	assert.Equal(t, []string{"jane@example.com IC001 released"}, mail.sent)
}

func TestHandleAllocationChanged_EmailWhenSlackDisabled(t *testing.T) {
	mail := &fakeMail{}
	h := newTestHandler(fakeStock{}, nil, mail, cache.NewMemoryAlertDeduplicator())

	h.HandleAllocationChanged(context.Background(), asset.AllocationChangedEvent{
		BaseEvent:      events.NewBaseEvent(5, asset.EventAllocated),
		AssetLabel:     "IC001",
		CurrentOwnerID: uptr(1),
	})

	assert.Equal(t, []string{"jane@example.com IC001 allocated"}, mail.sent)
}

func TestHandleAllocationChanged_DepartmentOwnerPostsToChannel(t *testing.T) {
	slack := &fakeSlack{}
	h := newTestHandler(fakeStock{}, slack, nil, cache.NewMemoryAlertDeduplicator())

	h.HandleAllocationChanged(context.Background(), asset.AllocationChangedEvent{
		BaseEvent:       events.NewBaseEvent(5, asset.EventAllocated),
		AssetLabel:      "IC001",
		CurrentOwnerID:  uptr(2),
		PreviousOwnerID: uptr(404),
	})

	require.Len(t, slack.posts, 1)
	assert.Contains(t, slack.posts[0], "allocated to department Finance")
	assert.Empty(t, slack.dms)
}

func TestRegister_DeliversThroughDispatcher(t *testing.T) {
	slack := &fakeSlack{}
	h := newTestHandler(fakeStock{9: 0}, slack, nil, cache.NewMemoryAlertDeduplicator())

	dispatcher := events.NewInMemoryEventDispatcher(8, logger.NewDiscardLogger())
	require.NoError(t, h.Register(dispatcher))
	require.NoError(t, dispatcher.Start())
	defer func() { _ = dispatcher.Stop() }()

	require.NoError(t, dispatcher.Publish(statusEvent(9)))

	assert.Eventually(t, func() bool {
		slack.mu.Lock()
		defer slack.mu.Unlock()
		return len(slack.posts) == 1
	}, 2*time.Second, 10*time.Millisecond)
}
