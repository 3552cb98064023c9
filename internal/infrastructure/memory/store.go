// Package memory implementa os repositórios em memória, usados nos testes das
// camadas de aplicação. O comportamento observável é o mesmo dos adaptadores
// postgres, incluindo o mapeamento de erros.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/caixaflow/pdv-api/internal/application/caixa"
	"github.com/caixaflow/pdv-api/internal/domain"
	"github.com/caixaflow/pdv-api/internal/domain/entity"
	"github.com/caixaflow/pdv-api/internal/domain/repository"
)

// Store guarda todo o estado em memória, protegido por um único mutex.
type Store struct {
	mu     sync.RWMutex
	shifts map[string]*entity.Shift
	ops    map[string][]*entity.CashOperation // por shiftID, ordem de criação
	sales  map[string][]*entity.Sale          // por shiftID, ordem de criação
	users  map[string]*entity.User
}

// NewStore cria o armazenamento vazio.
func NewStore() *Store {
	return &Store{
		shifts: make(map[string]*entity.Shift),
		ops:    make(map[string][]*entity.CashOperation),
		sales:  make(map[string][]*entity.Sale),
		users:  make(map[string]*entity.User),
	}
}

// Shifts devolve o repositório de turnos atado ao store.
func (s *Store) Shifts() repository.ShiftRepository { return &shiftRepo{s} }

// CashOperations devolve o repositório de sangrias/reforços atado ao store.
func (s *Store) CashOperations() repository.CashOperationRepository { return &opRepo{s} }

// Sales devolve o repositório de vendas atado ao store.
func (s *Store) Sales() repository.SaleRepository { return &saleRepo{s} }

// Users devolve o repositório de operadores atado ao store.
func (s *Store) Users() repository.UserRepository { return &userRepo{s} }

// TxRunner devolve um caixa.TxRunner sobre o store. Não há transação de
// verdade: o mutex serializa, e o callback roda por inteiro sob o lock
// lógico de quem chama — suficiente para o modelo de um processo.
func (s *Store) TxRunner() caixa.TxRunner { return &txRunner{s} }

type txRunner struct{ s *Store }

func (r *txRunner) Run(_ context.Context, fn func(
	repository.ShiftRepository,
	repository.CashOperationRepository,
	repository.SaleRepository,
) error) error {
	return fn(r.s.Shifts(), r.s.CashOperations(), r.s.Sales())
}

// ── ShiftRepository ───────────────────────────────────────────────────────────

type shiftRepo struct{ s *Store }

func (r *shiftRepo) Create(shift *entity.Shift) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.shifts {
		if existing.Status == entity.ShiftStatusOpen {
			return domain.ErrShiftAlreadyOpen
		}
	}
	cp := copyShift(shift)
	r.s.shifts[shift.ID] = cp
	return nil
}

func (r *shiftRepo) GetOpen() (*entity.Shift, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, s := range r.s.shifts {
		if s.Status == entity.ShiftStatusOpen {
			return copyShift(s), nil
		}
	}
	return nil, nil
}

func (r *shiftRepo) GetByID(id string) (*entity.Shift, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	s, ok := r.s.shifts[id]
	if !ok {
		return nil, nil
	}
	return copyShift(s), nil
}

func (r *shiftRepo) Close(shift *entity.Shift) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.shifts[shift.ID]
	if !ok || stored.Status != entity.ShiftStatusOpen {
		return domain.ErrNoActiveShift
	}
	cp := copyShift(shift)
	cp.Status = entity.ShiftStatusClosed
	r.s.shifts[shift.ID] = cp
	return nil
}

func (r *shiftRepo) List(limit, offset int) ([]*entity.Shift, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := make([]*entity.Shift, 0, len(r.s.shifts))
	for _, s := range r.s.shifts {
		all = append(all, copyShift(s))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].StartTime.After(all[j].StartTime) })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

// ── CashOperationRepository ──────────────────────────────────────────────────

type opRepo struct{ s *Store }

func (r *opRepo) Create(op *entity.CashOperation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *op
	r.s.ops[op.ShiftID] = append(r.s.ops[op.ShiftID], &cp)
	return nil
}

func (r *opRepo) ListByShift(shiftID string) ([]*entity.CashOperation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ops := r.s.ops[shiftID]
	out := make([]*entity.CashOperation, 0, len(ops))
	for _, op := range ops {
		cp := *op
		out = append(out, &cp)
	}
	return out, nil
}

// ── SaleRepository ───────────────────────────────────────────────────────────

type saleRepo struct{ s *Store }

func (r *saleRepo) Create(sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *sale
	r.s.sales[sale.ShiftID] = append(r.s.sales[sale.ShiftID], &cp)
	return nil
}

func (r *saleRepo) ListByShift(shiftID string) ([]*entity.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sales := r.s.sales[shiftID]
	out := make([]*entity.Sale, 0, len(sales))
	for _, sale := range sales {
		cp := *sale
		out = append(out, &cp)
	}
	return out, nil
}

func (r *saleRepo) TotalsByMethod(shiftID string) (map[entity.PaymentMethod]decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	totals := make(map[entity.PaymentMethod]decimal.Decimal)
	for _, sale := range r.s.sales[shiftID] {
		totals[sale.PaymentMethod] = totals[sale.PaymentMethod].Add(sale.Total)
	}
	return totals, nil
}

// ── UserRepository ───────────────────────────────────────────────────────────

type userRepo struct{ s *Store }

func (r *userRepo) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *userRepo) GetByID(id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *userRepo) GetByEmail(email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *userRepo) Update(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *userRepo) List(limit, offset int) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		cp := *u
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

// copyShift clona o turno sem as listas de operações (elas vivem no opRepo).
func copyShift(s *entity.Shift) *entity.Shift {
	cp := *s
	cp.Withdrawals = nil
	cp.Additions = nil
	if s.EndTime != nil {
		t := *s.EndTime
		cp.EndTime = &t
	}
	if s.FinalCashAmount != nil {
		v := *s.FinalCashAmount
		cp.FinalCashAmount = &v
	}
	return &cp
}
