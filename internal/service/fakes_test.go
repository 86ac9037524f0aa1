package service_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/SergeyBogomolovv/ticket-order-service/internal/entities"
	"github.com/SergeyBogomolovv/ticket-order-service/pkg/trm"
)

// memStore - хранилище в памяти с семантикой транзакций: изменения видны
// только после коммита, GetOrderForUpdate держит блокировку заказа до конца транзакции.
type memStore struct {
	mu     sync.Mutex
	orders map[string]entities.Order
	keys   map[string]bool
	locks  map[string]*sync.Mutex

	failUpdate error
	saves      int
}

type memTx struct {
	locked []*sync.Mutex
	orders map[string]entities.Order
	keys   []string
}

type memTxKey struct{}

func newMemStore() *memStore {
	return &memStore{
		orders: make(map[string]entities.Order),
		keys:   make(map[string]bool),
		locks:  make(map[string]*sync.Mutex),
	}
}

func (s *memStore) BeginTx(ctx context.Context) (context.Context, trm.Transaction, error) {
	return nil, nil, errors.New("not supported")
}

func (s *memStore) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(memTxKey{}).(*memTx); ok {
		return fn(ctx)
	}

	tx := &memTx{orders: make(map[string]entities.Order)}
	defer func() {
		for _, l := range tx.locked {
			l.Unlock()
		}
	}()

	if err := fn(context.WithValue(ctx, memTxKey{}, tx)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, o := range tx.orders {
		s.orders[id] = o
	}
	for _, k := range tx.keys {
		s.keys[k] = true
	}
	return nil
}

func txFrom(ctx context.Context) *memTx {
	tx, _ := ctx.Value(memTxKey{}).(*memTx)
	return tx
}

func (s *memStore) lockFor(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

func (s *memStore) committed(id string) (entities.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	return o.Clone(), ok
}

func (s *memStore) SaveOrder(ctx context.Context, o entities.Order) error {
	s.mu.Lock()
	s.saves++
	_, exists := s.orders[o.ID]
	s.mu.Unlock()
	if exists {
		return entities.ErrOrderIDConflict
	}

	if tx := txFrom(ctx); tx != nil {
		tx.orders[o.ID] = o.Clone()
		return nil
	}
	s.mu.Lock()
	s.orders[o.ID] = o.Clone()
	s.mu.Unlock()
	return nil
}

func (s *memStore) GetOrderByID(_ context.Context, id string) (entities.Order, error) {
	o, ok := s.committed(id)
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return o, nil
}

func (s *memStore) GetOrderForUpdate(ctx context.Context, id string) (entities.Order, error) {
	tx := txFrom(ctx)
	if tx == nil {
		return entities.Order{}, errors.New("order lock requires a transaction")
	}

	l := s.lockFor(id)
	l.Lock()
	tx.locked = append(tx.locked, l)

	if o, ok := tx.orders[id]; ok {
		return o.Clone(), nil
	}
	o, ok := s.committed(id)
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return o, nil
}

func (s *memStore) OrdersByOwner(_ context.Context, ownerID string) ([]entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []entities.Order{}
	for _, o := range s.orders {
		if o.OwnerID == ownerID {
			result = append(result, o.Clone())
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].PurchasedAt.After(result[j].PurchasedAt)
	})
	return result, nil
}

func (s *memStore) UpdateClaims(ctx context.Context, o entities.Order) error {
	if s.failUpdate != nil {
		return s.failUpdate
	}
	txFrom(ctx).orders[o.ID] = o.Clone()
	return nil
}

func (s *memStore) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) error {
	tx := txFrom(ctx)
	o, ok := tx.orders[id]
	if !ok {
		if o, ok = s.committed(id); !ok {
			return entities.ErrOrderNotFound
		}
	}
	o.Status = status
	tx.orders[id] = o
	return nil
}

func (s *memStore) ClaimKeyExists(ctx context.Context, orderID, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keys[orderID+"/"+key], nil
}

func (s *memStore) SaveClaimKey(ctx context.Context, orderID, key string) error {
	tx := txFrom(ctx)
	tx.keys = append(tx.keys, orderID+"/"+key)
	return nil
}

type fakeCatalog struct {
	mu         sync.Mutex
	events     map[int64]entities.EventSnapshot
	variations map[int64]entities.VariationSnapshot
	calls      int
	down       bool
}

func (c *fakeCatalog) GetEvent(_ context.Context, id int64) (entities.EventSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if c.down {
		return entities.EventSnapshot{}, entities.ErrDependencyUnavailable
	}
	e, ok := c.events[id]
	if !ok {
		return entities.EventSnapshot{}, entities.ErrEventNotFound
	}
	return e, nil
}

func (c *fakeCatalog) GetVariation(_ context.Context, id int64) (entities.VariationSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if c.down {
		return entities.VariationSnapshot{}, entities.ErrDependencyUnavailable
	}
	v, ok := c.variations[id]
	if !ok {
		return entities.VariationSnapshot{}, entities.ErrVariationNotFound
	}
	return v, nil
}

func (c *fakeCatalog) setPrice(id int64, price string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := c.variations[id]
	v.Price = mustDecimal(price)
	c.variations[id] = v
}

func (c *fakeCatalog) setDown(down bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.down = down
}

func (c *fakeCatalog) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

type fakePublisher struct {
	mu     sync.Mutex
	events []entities.OrderEvent
}

func (p *fakePublisher) PublishOrderEvent(_ context.Context, e entities.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *fakePublisher) types() []entities.OrderEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	result := make([]entities.OrderEventType, 0, len(p.events))
	for _, e := range p.events {
		result = append(result, e.Type)
	}
	return result
}
