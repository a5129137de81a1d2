package orders

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/SamuelOla04/wig-ecom-store/internal/models"
)

// deliveryDays is the fixed shipping window promised at checkout,
// regardless of destination country.
const deliveryDays = 7

// Notifier delivers transactional email for an order. Failures are logged
// here and never retried; order processing must not depend on email.
type Notifier interface {
	SendConfirmation(order *models.Order) error
	SendCountdown(order *models.Order, daysLeft int) error
}

// Tracker advances confirmed orders through their delivery countdown.
// Confirm and Tick share a mutex so a webhook delivery and a scheduler tick
// never interleave on the same records.
type Tracker struct {
	repo     Repository
	notifier Notifier

	mu  sync.Mutex
	now func() time.Time
}

func NewTracker(repo Repository, notifier Notifier) *Tracker {
	return &Tracker{repo: repo, notifier: notifier, now: time.Now}
}

// Confirm records a paid order and sends the confirmation email. Re-delivery
// of the same payment event is a no-op: orders are keyed by the
// provider-assigned id. Returns true when a new order was recorded.
func (t *Tracker) Confirm(order models.Order) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if existing, err := t.repo.Get(order.ID); err == nil && existing != nil {
		slog.Info("Order already tracked, ignoring duplicate event", "order_id", order.ID)
		return false
	}

	now := t.now()
	order.OrderDate = now
	order.DeliveryDate = now.AddDate(0, 0, deliveryDays)
	order.EmailsSent = 0

	if err := t.repo.Put(&order); err != nil {
		slog.Error("Failed to store order", "order_id", order.ID, "error", err)
		return false
	}

	slog.Info("Order confirmed",
		"order_id", order.ID,
		"customer", order.CustomerEmail,
		"total", order.TotalAmount,
		"delivery_date", order.DeliveryDate.Format("2006-01-02"),
	)

	if err := t.notifier.SendConfirmation(&order); err != nil {
		// Payment already committed; email trouble must not surface upstream.
		slog.Warn("Confirmation email not sent", "order_id", order.ID, "error", err)
	}
	return true
}

// Tick runs one countdown pass. It is invoked once per day by the scheduler,
// but accepts any clock value so gaps between ticks are tolerated: a missed
// day triggers only the single pending email, never a backlog.
func (t *Tracker) Tick(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := midnight(now)

	var snapshot []*models.Order
	t.repo.ForEach(func(order *models.Order) error {
		snapshot = append(snapshot, order)
		return nil
	})

	for _, order := range snapshot {
		daysLeft := int(math.Ceil(midnight(order.DeliveryDate).Sub(today).Hours() / 24))

		if daysLeft < -deliveryDays {
			if err := t.repo.Delete(order.ID); err != nil {
				slog.Error("Failed to purge order", "order_id", order.ID, "error", err)
				continue
			}
			slog.Info("Purged old order", "order_id", order.ID)
			continue
		}

		if daysLeft >= 0 && daysLeft <= 6 && order.EmailsSent < deliveryDays-daysLeft {
			if err := t.notifier.SendCountdown(order, daysLeft); err != nil {
				slog.Warn("Countdown email not sent", "order_id", order.ID, "days_left", daysLeft, "error", err)
			}
			// One email per calendar day at most; skipped days are not
			// retroactively notified.
			order.EmailsSent = deliveryDays - daysLeft
			if err := t.repo.Put(order); err != nil {
				slog.Error("Failed to update order", "order_id", order.ID, "error", err)
			}
		}
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
