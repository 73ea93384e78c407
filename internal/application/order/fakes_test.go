package order_test

import (
	"context"
	"errors"

	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/entity"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/repository"
)

// memStore guarda o estado compartilhado entre os repositórios em memória.
type memStore struct {
	meals  map[string]*entity.Meal
	stock  map[string]*entity.StockEntry // chave: mealID|posID
	users  map[string]*entity.User
	pos    map[string]*entity.PointOfSale
	orders map[string]*entity.Order
}

func newMemStore() *memStore {
	return &memStore{
		meals:  map[string]*entity.Meal{},
		stock:  map[string]*entity.StockEntry{},
		users:  map[string]*entity.User{},
		pos:    map[string]*entity.PointOfSale{},
		orders: map[string]*entity.Order{},
	}
}

func stockKey(mealID, posID string) string { return mealID + "|" + posID }

type memMealRepo struct{ s *memStore }

func (r *memMealRepo) Create(m *entity.Meal) error { r.s.meals[m.ID] = m; return nil }
func (r *memMealRepo) GetByID(id string) (*entity.Meal, error) {
	return r.s.meals[id], nil
}
func (r *memMealRepo) List(limit, offset int) ([]*entity.Meal, error) {
	out := make([]*entity.Meal, 0, len(r.s.meals))
	for _, m := range r.s.meals {
		out = append(out, m)
	}
	return out, nil
}
func (r *memMealRepo) Update(m *entity.Meal) error { r.s.meals[m.ID] = m; return nil }
func (r *memMealRepo) SyncAvailability(id string) error {
	m, ok := r.s.meals[id]
	if !ok {
		return nil
	}
	total := 0
	for _, e := range r.s.stock {
		if e.MealID == id {
			total += e.AvailableQty
		}
	}
	m.AvailableQty = total
	m.Available = total > 0
	return nil
}
func (r *memMealRepo) Delete(id string) error { delete(r.s.meals, id); return nil }

type memStockRepo struct{ s *memStore }

func (r *memStockRepo) Get(mealID, posID string) (*entity.StockEntry, error) {
	return r.s.stock[stockKey(mealID, posID)], nil
}
func (r *memStockRepo) ListByPointOfSale(posID string) ([]*entity.StockEntry, error) {
	var out []*entity.StockEntry
	for _, e := range r.s.stock {
		if e.PointOfSaleID == posID {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *memStockRepo) Upsert(e *entity.StockEntry) error {
	e.Available = e.AvailableQty > 0
	r.s.stock[stockKey(e.MealID, e.PointOfSaleID)] = e
	return nil
}

// DecrementIfAvailable imita a semântica do UPDATE condicional: zero linhas
// afetadas quando não há estoque suficiente, e available recalculado junto.
func (r *memStockRepo) DecrementIfAvailable(mealID, posID string, qty int) (int, bool, error) {
	e, ok := r.s.stock[stockKey(mealID, posID)]
	if !ok || e.AvailableQty < qty {
		return 0, false, nil
	}
	e.AvailableQty -= qty
	e.Available = e.AvailableQty > 0
	return e.AvailableQty, true, nil
}
func (r *memStockRepo) Delete(mealID, posID string) error {
	delete(r.s.stock, stockKey(mealID, posID))
	return nil
}

type memOrderRepo struct {
	s *memStore
	// failCreate força erro na inserção para exercitar o rollback.
	failCreate error
	// raceTo simula um escritor concorrente trocando o status antes da guarda.
	raceTo string
}

func (r *memOrderRepo) Create(o *entity.Order) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	cp := *o
	r.s.orders[o.ID] = &cp
	return nil
}
func (r *memOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}
func (r *memOrderRepo) List(f repository.OrderFilter, limit, offset int) ([]*entity.OrderSummary, error) {
	var out []*entity.OrderSummary
	for _, o := range r.s.orders {
		if f.CustomerID != "" && o.CustomerID != f.CustomerID {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		out = append(out, &entity.OrderSummary{Order: *o})
	}
	return out, nil
}
func (r *memOrderRepo) UpdateStatus(id, from, to string) (bool, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return false, nil
	}
	if r.raceTo != "" {
		o.Status = r.raceTo
	}
	if o.Status != from {
		return false, nil
	}
	o.Status = to
	return true, nil
}

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(u *entity.User) error { r.s.users[u.ID] = u; return nil }
func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	return r.s.users[id], nil
}
func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) List(limit, offset int) ([]*entity.User, error) { return nil, nil }
func (r *memUserRepo) Update(u *entity.User) error                    { r.s.users[u.ID] = u; return nil }
func (r *memUserRepo) Delete(id string) error                         { delete(r.s.users, id); return nil }
func (r *memUserRepo) AddCredits(id string, credits int) error {
	u, ok := r.s.users[id]
	if !ok {
		return errors.New("usuário não encontrado")
	}
	u.CreditBalance += credits
	return nil
}

type memPOSRepo struct{ s *memStore }

func (r *memPOSRepo) Create(p *entity.PointOfSale) error { r.s.pos[p.ID] = p; return nil }
func (r *memPOSRepo) GetByID(id string) (*entity.PointOfSale, error) {
	return r.s.pos[id], nil
}
func (r *memPOSRepo) List(limit, offset int) ([]*entity.PointOfSale, error) { return nil, nil }
func (r *memPOSRepo) Update(p *entity.PointOfSale) error                    { r.s.pos[p.ID] = p; return nil }
func (r *memPOSRepo) Delete(id string) error                                { delete(r.s.pos, id); return nil }

// memTxRunner tira um snapshot do estado mutável e restaura em caso de erro,
// reproduzindo o rollback da transação real.
type memTxRunner struct {
	s      *memStore
	orders *memOrderRepo
}

func (t *memTxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	stockRepo repository.StockRepository,
	mealRepo repository.MealRepository,
) error) error {
	snapStock := map[string]entity.StockEntry{}
	for k, e := range t.s.stock {
		snapStock[k] = *e
	}
	snapMeals := map[string]entity.Meal{}
	for k, m := range t.s.meals {
		snapMeals[k] = *m
	}
	snapOrders := map[string]entity.Order{}
	for k, o := range t.s.orders {
		snapOrders[k] = *o
	}

	err := fn(t.orders, &memStockRepo{s: t.s}, &memMealRepo{s: t.s})
	if err != nil {
		t.s.stock = map[string]*entity.StockEntry{}
		for k, e := range snapStock {
			cp := e
			t.s.stock[k] = &cp
		}
		t.s.meals = map[string]*entity.Meal{}
		for k, m := range snapMeals {
			cp := m
			t.s.meals[k] = &cp
		}
		t.s.orders = map[string]*entity.Order{}
		for k, o := range snapOrders {
			cp := o
			t.s.orders[k] = &cp
		}
	}
	return err
}
