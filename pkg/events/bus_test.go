package events

import (
	"testing"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	b := NewBus()

	var a, c int
	b.Subscribe(CartUpdated, func() { a++ })
	b.Subscribe(CartUpdated, func() { c++ })

	b.Publish(CartUpdated)
	b.Publish(CartUpdated)

	if a != 2 || c != 2 {
		t.Errorf("expected both subscribers to fire twice, got %d and %d", a, c)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := NewBus()

	var n int
	unsub := b.Subscribe(CartUpdated, func() { n++ })

	b.Publish(CartUpdated)
	unsub()
	b.Publish(CartUpdated)

	if n != 1 {
		t.Errorf("expected 1 delivery after unsubscribe, got %d", n)
	}

	// double unsubscribe must not panic
	unsub()
}

func TestPublishUnknownEventIsNoop(t *testing.T) {
	b := NewBus()
	b.Publish("nothing-listens-here")
}

func TestLateSubscriberMissesEarlierPublish(t *testing.T) {
	b := NewBus()

	b.Publish(CartUpdated)

	var n int
	b.Subscribe(CartUpdated, func() { n++ })
	if n != 0 {
		t.Errorf("subscriber registered after publish saw %d deliveries", n)
	}
}

func TestDeliveryIsSynchronous(t *testing.T) {
	b := NewBus()

	fired := false
	b.Subscribe(CartUpdated, func() { fired = true })

	b.Publish(CartUpdated)
	if !fired {
		t.Error("handler did not run before Publish returned")
	}
}

func TestHandlerMayUnsubscribeItself(t *testing.T) {
	b := NewBus()

	var n int
	var unsub func()
	unsub = b.Subscribe(CartUpdated, func() {
		n++
		unsub()
	})

	b.Publish(CartUpdated)
	b.Publish(CartUpdated)

	if n != 1 {
		t.Errorf("self-unsubscribing handler fired %d times", n)
	}
}
