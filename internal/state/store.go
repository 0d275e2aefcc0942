package state

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/five82/genreseek/internal/metrics"
)

const mailboxSize = 16

// ErrAlreadyRunning is returned when Run is called more than once.
var ErrAlreadyRunning = errors.New("store delivery loop already running")

// Reducer mutates state for one action and describes any follow-up work.
type Reducer[S any, A Action] func(state *S, action A) Effect[A]

// Option customizes a Store.
type Option[S any, A Action] func(*Store[S, A])

// WithClone sets the function used to copy state before it leaves the store.
// Without it snapshots are shallow copies.
func WithClone[S any, A Action](clone func(S) S) Option[S, A] {
	return func(s *Store[S, A]) {
		if clone != nil {
			s.clone = clone
		}
	}
}

// WithLogger traces dispatches and effects at debug level.
func WithLogger[S any, A Action](logger *zap.Logger) Option[S, A] {
	return func(s *Store[S, A]) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics records dispatch and effect activity.
func WithMetrics[S any, A Action](m *metrics.Store) Option[S, A] {
	return func(s *Store[S, A]) {
		s.metrics = m
	}
}

// Store owns a single state value and funnels every mutation through the
// reducer. Reducer calls never overlap; follow-up actions produced by
// effects are dispatched by the delivery loop started with Run.
type Store[S any, A Action] struct {
	reduce  Reducer[S, A]
	clone   func(S) S
	logger  *zap.Logger
	metrics *metrics.Store

	mu      sync.Mutex
	state   S
	subs    map[int]chan S
	nextSub int
	closed  bool

	mailbox       chan A
	effectCtx     context.Context
	cancelEffects context.CancelFunc
	effects       sync.WaitGroup
	running       atomic.Bool
}

// NewStore creates a store holding initial.
func NewStore[S any, A Action](initial S, reduce Reducer[S, A], opts ...Option[S, A]) *Store[S, A] {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Store[S, A]{
		reduce:        reduce,
		clone:         func(v S) S { return v },
		logger:        zap.NewNop(),
		state:         initial,
		subs:          make(map[int]chan S),
		mailbox:       make(chan A, mailboxSize),
		effectCtx:     ctx,
		cancelEffects: cancel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send applies action to the state, publishes the result to subscribers and
// starts the returned effect. The state change is visible when Send returns.
func (s *Store[S, A]) Send(action A) {
	s.mu.Lock()
	effect := s.reduce(&s.state, action)
	s.publishLocked()
	start := !effect.IsNone() && !s.closed
	if start {
		s.effects.Add(1)
	}
	s.mu.Unlock()

	s.metrics.ActionDispatched(action.ActionName())
	s.logger.Debug("dispatch",
		zap.String("action", action.ActionName()),
		zap.String("effect", effect.Name()))

	if start {
		go s.runEffect(effect)
	}
}

// State returns a copy of the current state.
func (s *Store[S, A]) State() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clone(s.state)
}

// Subscribe returns a channel carrying the latest state. The current state is
// available immediately; a value the reader has not taken yet is replaced by
// newer ones. The returned func unsubscribes and closes the channel. All
// channels are closed when the store shuts down.
func (s *Store[S, A]) Subscribe() (<-chan S, func()) {
	ch := make(chan S, 1)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		close(ch)
		return ch, func() {}
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	ch <- s.clone(s.state)

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
}

// Run dispatches follow-up actions until ctx is cancelled. On return the
// context of every in-flight effect has been cancelled and all effects have
// finished. Run may be called once.
func (s *Store[S, A]) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer s.shutdown()

	for {
		select {
		case <-ctx.Done():
			return nil
		case next := <-s.mailbox:
			s.Send(next)
		}
	}
}

func (s *Store[S, A]) shutdown() {
	s.mu.Lock()
	s.closed = true
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
	s.mu.Unlock()

	s.cancelEffects()
	s.effects.Wait()
}

func (s *Store[S, A]) runEffect(effect Effect[A]) {
	defer s.effects.Done()

	s.metrics.EffectStarted()
	started := time.Now()
	next, ok := effect.Run(s.effectCtx)
	took := time.Since(started)
	s.metrics.EffectFinished(effect.Name(), took)

	s.logger.Debug("effect finished",
		zap.String("effect", effect.Name()),
		zap.Duration("duration", took),
		zap.Bool("emitted", ok))
	if !ok {
		return
	}

	select {
	case s.mailbox <- next:
	case <-s.effectCtx.Done():
		s.logger.Debug("follow-up dropped after shutdown",
			zap.String("effect", effect.Name()),
			zap.String("action", next.ActionName()))
	}
}

// publishLocked hands every subscriber the current state, replacing any
// value still waiting in its buffer. Callers hold s.mu.
func (s *Store[S, A]) publishLocked() {
	for _, ch := range s.subs {
		snap := s.clone(s.state)
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
}
