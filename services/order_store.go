package services

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"matsal-partner-api/datasource"
	"matsal-partner-api/entity"
)

// FilterAll disables the status filter.
const FilterAll = "all"

// OrderStore owns the order collection and its lifecycle. Orders enter
// only through Load; they are mutated only through the transition
// methods and never deleted.
type OrderStore struct {
	source datasource.OrderSource
	log    *zap.Logger
	now    func() time.Time

	mu           sync.RWMutex
	orders       []entity.Order
	selectedID   string
	statusFilter string
	searchQuery  string
	loading      bool
}

func NewOrderStore(source datasource.OrderSource, log *zap.Logger) *OrderStore {
	return &OrderStore{
		source:       source,
		log:          log,
		now:          time.Now,
		statusFilter: FilterAll,
	}
}

// Load replaces the whole collection from the source. A populated store
// skips the round-trip unless force is set.
func (s *OrderStore) Load(ctx context.Context, force bool) error {
	s.mu.RLock()
	populated := len(s.orders) > 0
	s.mu.RUnlock()
	if populated && !force {
		return nil
	}

	s.setLoading(true)
	defer s.setLoading(false)

	orders, err := s.source.LoadOrders(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()

	s.log.Info("orders loaded", zap.Int("count", len(orders)), zap.Bool("forced", force))
	return nil
}

func (s *OrderStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *OrderStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Orders returns a copy of the full collection.
func (s *OrderStore) Orders() []entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *OrderStore) Get(id string) (entity.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return entity.Order{}, false
}

func (s *OrderStore) Select(id string) {
	s.mu.Lock()
	s.selectedID = id
	s.mu.Unlock()
}

func (s *OrderStore) Selected() (entity.Order, bool) {
	s.mu.RLock()
	id := s.selectedID
	s.mu.RUnlock()
	if id == "" {
		return entity.Order{}, false
	}
	return s.Get(id)
}

func (s *OrderStore) SetStatusFilter(filter string) {
	s.mu.Lock()
	s.statusFilter = filter
	s.mu.Unlock()
}

func (s *OrderStore) SetSearchQuery(q string) {
	s.mu.Lock()
	s.searchQuery = q
	s.mu.Unlock()
}

// ByStatus returns the partition for one status.
func (s *OrderStore) ByStatus(status entity.OrderStatus) []entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entity.Order
	for _, o := range s.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// IncomingCount drives the new-orders badge.
func (s *OrderStore) IncomingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, o := range s.orders {
		if o.Status == entity.OrderIncoming {
			n++
		}
	}
	return n
}

// StatusCounts returns the size of every partition.
func (s *OrderStore) StatusCounts() map[entity.OrderStatus]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[entity.OrderStatus]int, len(entity.OrderStatuses))
	for _, st := range entity.OrderStatuses {
		counts[st] = 0
	}
	for _, o := range s.orders {
		counts[o.Status]++
	}
	return counts
}

// FilteredOrders applies the stored status filter and search query.
func (s *OrderStore) FilteredOrders() []entity.Order {
	s.mu.RLock()
	filter, query := s.statusFilter, s.searchQuery
	s.mu.RUnlock()
	return s.Filtered(filter, query)
}

// Filtered narrows by status (unless "all"), then by case-insensitive
// substring match on the order number or customer name, newest first.
func (s *OrderStore) Filtered(statusFilter, query string) []entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]entity.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if statusFilter != "" && statusFilter != FilterAll && string(o.Status) != statusFilter {
			continue
		}
		if q != "" &&
			!strings.Contains(strconv.Itoa(o.OrderNumber), q) &&
			!strings.Contains(strings.ToLower(o.Customer.Name), q) {
			continue
		}
		out = append(out, o)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// TodayRevenue sums completed orders whose completion fell on the
// current local calendar day.
func (s *OrderStore) TodayRevenue() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	today := s.now()
	var sum int64
	for _, o := range s.orders {
		if o.Status == entity.OrderCompleted && o.CompletedAt != nil && sameDay(*o.CompletedAt, today) {
			sum += o.TotalPrice
		}
	}
	return sum
}

// TodayOrdersCount counts orders created today regardless of status.
func (s *OrderStore) TodayOrdersCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	today := s.now()
	n := 0
	for _, o := range s.orders {
		if sameDay(o.CreatedAt, today) {
			n++
		}
	}
	return n
}

// transition advances one order if it currently sits in from. The
// returned bool reports whether anything changed; an unknown id or a
// wrong current status mutates nothing.
func (s *OrderStore) transition(id string, from, to entity.OrderStatus, stamp func(*entity.Order, time.Time)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		o := &s.orders[i]
		if o.ID != id {
			continue
		}
		if o.Status != from {
			return false
		}
		o.Status = to
		stamp(o, s.now())
		s.log.Info("order transition",
			zap.String("id", id),
			zap.String("from", string(from)),
			zap.String("to", string(to)))
		return true
	}
	return false
}

// Accept moves an incoming order into preparation.
func (s *OrderStore) Accept(id string) bool {
	return s.transition(id, entity.OrderIncoming, entity.OrderPreparing, func(o *entity.Order, t time.Time) {
		o.AcceptedAt = &t
	})
}

// Reject terminally declines an incoming order.
func (s *OrderStore) Reject(id, reason string) bool {
	return s.transition(id, entity.OrderIncoming, entity.OrderRejected, func(o *entity.Order, t time.Time) {
		o.RejectedAt = &t
		o.RejectReason = reason
	})
}

// MarkReady signals the kitchen has finished a preparing order.
func (s *OrderStore) MarkReady(id string) bool {
	return s.transition(id, entity.OrderPreparing, entity.OrderReady, func(o *entity.Order, t time.Time) {
		o.ReadyAt = &t
	})
}

// MarkPickedUp completes a ready order once handed over.
func (s *OrderStore) MarkPickedUp(id string) bool {
	return s.transition(id, entity.OrderReady, entity.OrderCompleted, func(o *entity.Order, t time.Time) {
		o.CompletedAt = &t
	})
}
