package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToMatchingSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []Event
	d.Subscribe(EventSessionSignedIn, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})
	d.Subscribe(EventSessionSignedOut, func(_ context.Context, e Event) error {
		t.Fatal("sign-out handler must not fire for sign-in events")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventSessionSignedIn, UserID: "u1", Token: "tok"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "u1", got[0].UserID)
	require.True(t, got[0].Live())
}

func TestDispatcherSubscribeAll(t *testing.T) {
	d := NewInMemoryDispatcher()

	var count int
	d.SubscribeAll(func(_ context.Context, e Event) error {
		count++
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventSessionSignedIn}))
	require.NoError(t, d.Publish(context.Background(), Event{Type: EventSessionSignedOut}))
	require.Equal(t, 2, count)
}

func TestDispatcherUnsubscribeStopsDelivery(t *testing.T) {
	d := NewInMemoryDispatcher()

	var count int
	unsub := d.Subscribe(EventSessionSignedIn, func(_ context.Context, _ Event) error {
		count++
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventSessionSignedIn}))
	unsub()
	unsub() // double unsubscribe is a no-op
	require.NoError(t, d.Publish(context.Background(), Event{Type: EventSessionSignedIn}))

	require.Equal(t, 1, count)
}

func TestDispatcherLiveFlag(t *testing.T) {
	require.False(t, Event{Type: EventSessionSignedOut}.Live())
	require.True(t, Event{Type: EventSessionSignedIn, Token: "t"}.Live())
}
