package orders

import (
	"errors"
	"sync"

	"github.com/SamuelOla04/wig-ecom-store/internal/models"
)

var ErrNotFound = errors.New("order not found")

// Repository is the order persistence capability. The tracker is written
// against this interface so the in-memory default can be swapped for a
// durable store without touching the countdown logic.
type Repository interface {
	Get(id string) (*models.Order, error)
	Put(order *models.Order) error
	Delete(id string) error
	// ForEach visits every tracked order. Visit order is unspecified and
	// must not affect the outcome of callers.
	ForEach(fn func(order *models.Order) error) error
}

// MemoryRepository keeps orders in a process-wide map. A restart loses all
// orders; that is an accepted limitation of this deployment.
type MemoryRepository struct {
	mu     sync.RWMutex
	orders map[string]models.Order
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{orders: make(map[string]models.Order)}
}

func (r *MemoryRepository) Get(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &order, nil
}

func (r *MemoryRepository) Put(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = *order
	return nil
}

func (r *MemoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, id)
	return nil
}

func (r *MemoryRepository) ForEach(fn func(order *models.Order) error) error {
	r.mu.RLock()
	snapshot := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		snapshot = append(snapshot, order)
	}
	r.mu.RUnlock()

	for i := range snapshot {
		if err := fn(&snapshot[i]); err != nil {
			return err
		}
	}
	return nil
}
