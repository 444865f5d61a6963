package services

import (
	"context"
	"testing"

	"kgs-gunshop/models"
)

func TestCartHubFansOutToAllSessionObservers(t *testing.T) {
	hub := NewCartHub(nil)
	a := hub.Subscribe("s1")
	b := hub.Subscribe("s1")
	defer hub.Unsubscribe("s1", a)
	defer hub.Unsubscribe("s1", b)

	hub.Publish(context.Background(), "s1", models.CartView{TotalItems: 3})

	for _, ch := range []chan models.CartView{a, b} {
		select {
		case view := <-ch:
			if view.TotalItems != 3 {
				t.Errorf("unexpected snapshot: %+v", view)
			}
		default:
			t.Fatal("observer missed the snapshot")
		}
	}
}

func TestCartHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewCartHub(nil)
	ch := hub.Subscribe("s1")
	hub.Unsubscribe("s1", ch)

	if _, ok := <-ch; ok {
		t.Fatal("expected a closed channel after unsubscribe")
	}

	// publishing to a session with no observers left must not panic
	hub.Publish(context.Background(), "s1", models.CartView{})
}

func TestCartHubDropsWhenObserverFallsBehind(t *testing.T) {
	hub := NewCartHub(nil)
	ch := hub.Subscribe("s1")
	defer hub.Unsubscribe("s1", ch)

	for i := 0; i < 20; i++ {
		hub.Publish(context.Background(), "s1", models.CartView{TotalItems: i})
	}

	view := <-ch
	if view.TotalItems != 0 {
		t.Errorf("expected the oldest buffered snapshot first, got %+v", view)
	}
}
