package services

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yeremiapane/seblak-listyaning/models"
	"github.com/yeremiapane/seblak-listyaning/utils"
)

// OrderLister is the read the watcher polls; *client.Client satisfies it.
type OrderLister interface {
	ListAdminOrders(ctx context.Context) ([]models.Order, error)
}

// OrderEvent is emitted for an order seen for the first time or whose
// status moved since the previous poll. Previous is empty for new orders.
type OrderEvent struct {
	Order    models.Order
	Previous models.OrderStatus
}

func (e OrderEvent) IsNew() bool { return e.Previous == "" }

// OrderWatcher polls the admin order list on a fixed interval. There is no
// ordering guarantee against writes landing between polls.
type OrderWatcher struct {
	Source   OrderLister
	Interval time.Duration
	OnEvent  func(OrderEvent)

	mu      sync.Mutex
	seen    map[int]models.OrderStatus
	primed  bool
	skipOld bool
}

// NewOrderWatcher reports orders already present at the first poll only
// when reportExisting is true.
func NewOrderWatcher(source OrderLister, interval time.Duration, reportExisting bool, onEvent func(OrderEvent)) *OrderWatcher {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &OrderWatcher{
		Source:   source,
		Interval: interval,
		OnEvent:  onEvent,
		seen:     make(map[int]models.OrderStatus),
		skipOld:  !reportExisting,
	}
}

// Run polls immediately and then on every tick until ctx is cancelled.
func (w *OrderWatcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	w.poll(ctx)
	for {
		select {
		case <-ticker.C:
			w.poll(ctx)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *OrderWatcher) poll(ctx context.Context) {
	list, err := w.Source.ListAdminOrders(ctx)
	if err != nil {
		if ctx.Err() == nil {
			utils.ErrorLogger.Errorf("Error fetching orders: %v", err)
		}
		return
	}
	for _, ev := range w.Diff(list) {
		if w.OnEvent != nil {
			w.OnEvent(ev)
		}
	}
}

// Diff records list as the latest snapshot and returns the events it
// implies relative to the previous one, oldest order first.
func (w *OrderWatcher) Diff(list []models.Order) []OrderEvent {
	w.mu.Lock()
	defer w.mu.Unlock()

	var events []OrderEvent
	for i := len(list) - 1; i >= 0; i-- {
		o := list[i]
		prev, known := w.seen[o.ID]
		w.seen[o.ID] = o.Status
		switch {
		case !known && w.skipOld && !w.primed:
		case !known:
			events = append(events, OrderEvent{Order: o})
		case prev != o.Status:
			events = append(events, OrderEvent{Order: o, Previous: prev})
		}
	}
	if !w.primed {
		utils.InfoLogger.WithFields(logrus.Fields{"orders": len(list)}).Info("Order watcher primed")
	}
	w.primed = true
	return events
}
