package services

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"

	"kgs-gunshop/models"
)

// CartHub fans cart snapshots out to the UI surfaces watching a session
// (navbar badge, slider, cart page). With Redis configured the snapshots ride
// its pub/sub channels, so observers connected to other instances see
// mutations too; without it the hub delivers in-process. Subscribers that
// fall behind miss intermediate snapshots rather than block a mutation.
type CartHub struct {
	mu     sync.RWMutex
	client *redis.Client
	subs   map[string]*sessionSubs
}

type sessionSubs struct {
	chans  map[chan models.CartView]struct{}
	pubsub *redis.PubSub
}

// NewCartHub builds a hub. A nil client keeps the fanout in-process only.
func NewCartHub(client *redis.Client) *CartHub {
	return &CartHub{client: client, subs: make(map[string]*sessionSubs)}
}

func cartChannel(sessionID string) string {
	return "cart:" + sessionID
}

// Subscribe registers an observer for one session's cart changes. The first
// observer of a session opens its Redis subscription when Redis is active.
func (h *CartHub) Subscribe(sessionID string) chan models.CartView {
	ch := make(chan models.CartView, 8)
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.subs[sessionID]
	if set == nil {
		set = &sessionSubs{chans: make(map[chan models.CartView]struct{})}
		h.subs[sessionID] = set
		if h.client != nil {
			set.pubsub = h.client.Subscribe(context.Background(), cartChannel(sessionID))
			go h.relay(sessionID, set.pubsub)
		}
	}
	set.chans[ch] = struct{}{}
	return ch
}

// Unsubscribe removes the observer and closes its channel. The last observer
// of a session tears its Redis subscription down.
func (h *CartHub) Unsubscribe(sessionID string, ch chan models.CartView) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.subs[sessionID]
	if !ok {
		return
	}
	if _, ok := set.chans[ch]; ok {
		delete(set.chans, ch)
		close(ch)
	}
	if len(set.chans) == 0 {
		if set.pubsub != nil {
			set.pubsub.Close()
		}
		delete(h.subs, sessionID)
	}
}

// Publish delivers a snapshot to every observer of the session. With Redis
// active the snapshot goes through pub/sub, and the relay loop brings it back
// to this instance's own subscribers along with everyone else's.
func (h *CartHub) Publish(ctx context.Context, sessionID string, view models.CartView) {
	if h.client != nil {
		data, err := json.Marshal(view)
		if err != nil {
			log.Println("Failed to encode cart snapshot:", err)
			return
		}
		if err := h.client.Publish(ctx, cartChannel(sessionID), data).Err(); err != nil {
			log.Println("Failed to publish cart snapshot:", err)
		}
		return
	}
	h.fanout(sessionID, view)
}

func (h *CartHub) relay(sessionID string, pubsub *redis.PubSub) {
	for msg := range pubsub.Channel() {
		var view models.CartView
		if err := json.Unmarshal([]byte(msg.Payload), &view); err != nil {
			log.Println("Failed to decode cart snapshot:", err)
			continue
		}
		h.fanout(sessionID, view)
	}
}

func (h *CartHub) fanout(sessionID string, view models.CartView) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	set, ok := h.subs[sessionID]
	if !ok {
		return
	}
	for ch := range set.chans {
		select {
		case ch <- view:
		default:
		}
	}
}
