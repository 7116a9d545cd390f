// Package operation tracks the routines running on a robot and makes sure only one
// of them drives the base at a time.
package operation

import (
	"context"
	"sync"
	"time"

	"github.com/edaniels/golog"
	"github.com/google/uuid"
	"go.uber.org/atomic"
)

type opidKeyType string

const opidKey = opidKeyType("opid")

// Operation is a routine run happening on the robot.
type Operation struct {
	ID        uuid.UUID
	Routine   string
	Arguments interface{}
	Started   time.Time

	myManager *Manager
	cancel    context.CancelFunc
	step      *atomic.Int64
	stepName  *atomic.String
}

// Cancel cancels the context associated with an operation.
func (o *Operation) Cancel() {
	o.cancel()
}

// SetStep records which step of the routine is executing.
func (o *Operation) SetStep(index int, name string) {
	o.stepName.Store(name)
	o.step.Store(int64(index))
}

// Step returns the index and name of the executing step. The index is -1 before the
// first step starts.
func (o *Operation) Step() (int, string) {
	return int(o.step.Load()), o.stepName.Load()
}

func (o *Operation) cleanup() {
	o.myManager.remove(o.ID)
}

// Manager holds the currently running operations.
type Manager struct {
	ops    map[string]*Operation
	lock   sync.Mutex
	logger golog.Logger
}

// NewManager creates a new manager for holding Operations.
func NewManager(logger golog.Logger) *Manager {
	return &Manager{ops: map[string]*Operation{}, logger: logger}
}

func (m *Manager) remove(id uuid.UUID) {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.ops, id.String())
}

func (m *Manager) add(op *Operation) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.ops[op.ID.String()] = op
}

// All returns all of the currently running operations.
func (m *Manager) All() []*Operation {
	m.lock.Lock()
	defer m.lock.Unlock()
	a := make([]*Operation, 0, len(m.ops))
	for _, o := range m.ops {
		a = append(a, o)
	}
	return a
}

// Find finds an op by id, could return nil.
func (m *Manager) Find(id uuid.UUID) *Operation {
	return m.FindString(id.String())
}

// FindString finds an op by id, could return nil.
func (m *Manager) FindString(id string) *Operation {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.ops[id]
}

// Create puts an operation on this context.
func (m *Manager) Create(ctx context.Context, routine string, args interface{}) (context.Context, func()) {
	if ctx.Value(opidKey) != nil {
		panic("operations cannot be nested")
	}

	op := &Operation{
		ID:        uuid.New(),
		Routine:   routine,
		Arguments: args,
		Started:   time.Now(),
		myManager: m,
		step:      atomic.NewInt64(-1),
		stepName:  atomic.NewString(""),
	}
	ctx = context.WithValue(ctx, opidKey, op)
	ctx, op.cancel = context.WithCancel(ctx)

	m.add(op)
	m.logger.Debugw("operation started", "id", op.ID, "routine", routine)

	return ctx, func() {
		op.cancel()
		op.cleanup()
	}
}

// Get returns the current Operation. This can be nil.
func Get(ctx context.Context) *Operation {
	o := ctx.Value(opidKey)
	if o == nil {
		return nil
	}
	return o.(*Operation)
}
