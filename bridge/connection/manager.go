package connection

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-logr/logr"
	"github.com/tradingdata/trading-bridge/bridge/metrics"
	mcpclient "github.com/viant/mcp/client"
	"golang.org/x/sync/singleflight"
)

// State describes the connection lifecycle.
type State int32

const (
	Disconnected State = iota
	Connecting
	Connected
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	default:
		return "disconnected"
	}
}

const connectKey = "connect"

// Manager hands out the shared tool server connection. Concurrent first
// callers converge on a single establishment attempt and all observe its
// outcome; a failed attempt leaves the manager Disconnected.
type Manager struct {
	dial    Dialer
	log     logr.Logger
	metrics *metrics.Metrics

	group singleflight.Group

	mu     sync.RWMutex
	state  State
	client mcpclient.Interface
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the manager logger.
func WithLogger(log logr.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// WithMetrics sets the collectors used to record attempts.
func WithMetrics(m *metrics.Metrics) Option {
	return func(mgr *Manager) {
		mgr.metrics = m
	}
}

// NewManager creates a Disconnected manager using dial to connect.
func NewManager(dial Dialer, opts ...Option) *Manager {
	m := &Manager{dial: dial, log: logr.Discard()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Acquire returns the live connection, establishing it when needed. A
// failed establishment is reported as *ConnectionError.
func (m *Manager) Acquire(ctx context.Context) (mcpclient.Interface, error) {
	if cli := m.current(); cli != nil {
		return cli, nil
	}
	v, err, shared := m.group.Do(connectKey, func() (interface{}, error) {
		return m.connect(ctx)
	})
	if err != nil {
		if shared {
			m.log.V(1).Info("joined failed connection attempt", "error", err.Error())
		}
		return nil, err
	}
	return v.(mcpclient.Interface), nil
}

// Close forgets the current connection; the next Acquire reconnects.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.client = nil
	m.state = Disconnected
}

func (m *Manager) current() mcpclient.Interface {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.client
}

func (m *Manager) connect(ctx context.Context) (mcpclient.Interface, error) {
	m.mu.Lock()
	if m.client != nil {
		cli := m.client
		m.mu.Unlock()
		return cli, nil
	}
	m.state = Connecting
	m.mu.Unlock()

	m.log.Info("connecting to tool server")
	cli, err := m.dial(ctx)
	if err == nil && cli == nil {
		err = fmt.Errorf("dialer returned no client")
	}
	m.metrics.RecordConnect(err)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.client = nil
		m.state = Disconnected
		m.log.Error(err, "failed to connect to tool server")
		return nil, &ConnectionError{Err: err}
	}
	m.client = cli
	m.state = Connected
	m.log.Info("connected to tool server")
	return cli, nil
}
