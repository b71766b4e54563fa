package live

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Denniskaninu/chama-smart-sync/internal/models"
)

func receive(t *testing.T, sub *Subscription) Event {
	t.Helper()
	select {
	case ev, ok := <-sub.Events():
		require.True(t, ok, "channel closed")
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHubDeliversToGroupSubscribers(t *testing.T) {
	hub := NewHub(4)
	ctx := context.Background()

	a := hub.Subscribe(ctx, "g1")
	defer a.Close()
	b := hub.Subscribe(ctx, "g1")
	defer b.Close()
	other := hub.Subscribe(ctx, "g2")
	defer other.Close()

	assert.Equal(t, 2, hub.Subscribers("g1"))

	hub.Publish(Event{
		Kind:         KindContribution,
		GroupID:      "g1",
		Group:        &models.Group{ID: "g1", KittyBalance: 500},
		Contribution: &models.Contribution{ID: "c1", Amount: 500},
	})

	for _, sub := range []*Subscription{a, b} {
		ev := receive(t, sub)
		assert.Equal(t, KindContribution, ev.Kind)
		require.NotNil(t, ev.Group)
		require.NotNil(t, ev.Contribution)
		assert.Equal(t, int64(500), ev.Group.KittyBalance)
	}

	select {
	case ev := <-other.Events():
		t.Fatalf("unexpected event for other group: %+v", ev)
	default:
	}
}

func TestSubscriptionClose(t *testing.T) {
	hub := NewHub(1)
	sub := hub.Subscribe(context.Background(), "g1")

	sub.Close()
	sub.Close()

	_, ok := <-sub.Events()
	assert.False(t, ok, "events channel closed")
	assert.Equal(t, 0, hub.Subscribers("g1"))

	// Publishing after teardown is a no-op.
	hub.Publish(Event{Kind: KindGroup, GroupID: "g1"})
}

func TestSubscriptionClosesWithContext(t *testing.T) {
	hub := NewHub(1)
	ctx, cancel := context.WithCancel(context.Background())
	sub := hub.Subscribe(ctx, "g1")

	cancel()

	select {
	case <-sub.Done():
	case <-time.After(time.Second):
		t.Fatal("subscription not closed after context cancel")
	}
	assert.Equal(t, 0, hub.Subscribers("g1"))
}

func TestPublishClosesLaggingSubscriber(t *testing.T) {
	hub := NewHub(2)
	slow := hub.Subscribe(context.Background(), "g1")
	defer slow.Close()
	fast := hub.Subscribe(context.Background(), "g1")
	defer fast.Close()

	for i := int64(1); i <= 2; i++ {
		hub.Publish(Event{Kind: KindGroup, GroupID: "g1", Group: &models.Group{KittyBalance: i}})
		receive(t, fast)
	}

	done := make(chan struct{})
	go func() {
		hub.Publish(Event{Kind: KindGroup, GroupID: "g1", Group: &models.Group{KittyBalance: 3}})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}

	for i := int64(1); i <= 2; i++ {
		ev := receive(t, slow)
		assert.Equal(t, i, ev.Group.KittyBalance, "events buffered before the overflow are kept")
	}
	_, ok := <-slow.Events()
	assert.False(t, ok, "lagging subscription is closed")
	assert.ErrorIs(t, slow.Err(), ErrLagged)
	select {
	case <-slow.Done():
	default:
		t.Fatal("lagging subscription not torn down")
	}

	assert.Equal(t, int64(3), receive(t, fast).Group.KittyBalance)
	assert.NoError(t, fast.Err())
	assert.Equal(t, 1, hub.Subscribers("g1"))
}

func TestClosedSubscriptionIsNotLagged(t *testing.T) {
	hub := NewHub(1)
	sub := hub.Subscribe(context.Background(), "g1")
	sub.Close()
	assert.NoError(t, sub.Err())
}

func TestConcurrentPublishAndClose(t *testing.T) {
	hub := NewHub(8)
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		sub := hub.Subscribe(context.Background(), "g1")
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				hub.Publish(Event{Kind: KindMessage, GroupID: "g1"})
			}
		}()
		go func() {
			defer wg.Done()
			sub.Close()
		}()
	}

	wg.Wait()
	assert.Equal(t, 0, hub.Subscribers("g1"))
}
