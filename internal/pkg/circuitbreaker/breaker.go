package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/piresc/campusride/internal/pkg/logger"
)

// State represents the circuit breaker state
type State int

const (
	// StateClosed lets calls through
	StateClosed State = iota
	// StateOpen fails calls immediately
	StateOpen
	// StateHalfOpen lets a limited number of probe calls through
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

var (
	ErrOpen            = errors.New("circuit breaker is open")
	ErrTooManyRequests = errors.New("too many requests in half-open state")
)

// Config holds circuit breaker configuration
type Config struct {
	Name             string
	MaxRequests      uint32        // probes allowed while half-open
	Interval         time.Duration // counters reset period while closed
	Timeout          time.Duration // time spent open before probing
	FailureThreshold uint32        // consecutive failures that open the breaker
	IsFailure        func(err error) bool
	Now              func() time.Time
}

// DefaultConfig counts every error as a failure
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		MaxRequests:      1,
		Interval:         30 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
		IsFailure:        func(err error) bool { return err != nil },
		Now:              time.Now,
	}
}

// CircuitBreaker stops calling a dependency that keeps failing
type CircuitBreaker struct {
	cfg Config

	mu                  sync.Mutex
	state               State
	requests            uint32
	consecutiveFailures uint32
	expiry              time.Time
}

func New(cfg Config) *CircuitBreaker {
	def := DefaultConfig(cfg.Name)
	if cfg.MaxRequests == 0 {
		cfg.MaxRequests = def.MaxRequests
	}
	if cfg.Interval == 0 {
		cfg.Interval = def.Interval
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = def.FailureThreshold
	}
	if cfg.IsFailure == nil {
		cfg.IsFailure = def.IsFailure
	}
	if cfg.Now == nil {
		cfg.Now = def.Now
	}
	return &CircuitBreaker{
		cfg:    cfg,
		state:  StateClosed,
		expiry: cfg.Now().Add(cfg.Interval),
	}
}

// Execute runs fn unless the breaker is open. Errors rejected by IsFailure
// do not count against the dependency.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := cb.before(); err != nil {
		return err
	}
	err := fn(ctx)
	cb.after(err)
	return err
}

func (cb *CircuitBreaker) before() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	now := cb.cfg.Now()
	switch cb.state {
	case StateClosed:
		if cb.expiry.Before(now) {
			cb.requests, cb.consecutiveFailures = 0, 0
			cb.expiry = now.Add(cb.cfg.Interval)
		}
	case StateOpen:
		if !cb.expiry.Before(now) {
			return ErrOpen
		}
		cb.setState(StateHalfOpen)
		cb.requests, cb.consecutiveFailures = 0, 0
	case StateHalfOpen:
		if cb.requests >= cb.cfg.MaxRequests {
			return ErrTooManyRequests
		}
	}
	cb.requests++
	return nil
}

func (cb *CircuitBreaker) after(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if !cb.cfg.IsFailure(err) {
		cb.consecutiveFailures = 0
		if cb.state == StateHalfOpen {
			cb.setState(StateClosed)
			cb.requests = 0
			cb.expiry = cb.cfg.Now().Add(cb.cfg.Interval)
		}
		return
	}

	cb.consecutiveFailures++
	if cb.state == StateHalfOpen || cb.consecutiveFailures >= cb.cfg.FailureThreshold {
		cb.setState(StateOpen)
		cb.expiry = cb.cfg.Now().Add(cb.cfg.Timeout)
	}
}

func (cb *CircuitBreaker) setState(state State) {
	if cb.state == state {
		return
	}
	prev := cb.state
	cb.state = state
	logger.Warn("Circuit breaker state changed",
		logger.String("name", cb.cfg.Name),
		logger.String("from", prev.String()),
		logger.String("to", state.String()),
		logger.Int("consecutive_failures", int(cb.consecutiveFailures)))
}

// State returns the current state
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}
