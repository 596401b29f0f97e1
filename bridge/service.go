package bridge

import (
	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tradingdata/trading-bridge/bridge/config"
	"github.com/tradingdata/trading-bridge/bridge/connection"
	"github.com/tradingdata/trading-bridge/bridge/matcher"
	"github.com/tradingdata/trading-bridge/bridge/metrics"
	"github.com/tradingdata/trading-bridge/bridge/tool"
)

// Service bundles configuration, the upstream connection manager, the tool
// name resolver and the fallback rules. It is safe for concurrent use.
type Service struct {
	config     *config.Config
	log        logr.Logger
	registerer prometheus.Registerer
	metrics    *metrics.Metrics
	dialer     connection.Dialer
	rules      []matcher.Rule

	resolver *tool.Resolver
	conn     *connection.Manager
}

// Option modifies a service instance before it is initialised.
type Option func(*Service)

// WithConfig sets the configuration; defaults are used when omitted.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithLogger sets the structured logger.
func WithLogger(log logr.Logger) Option {
	return func(s *Service) {
		s.log = log
	}
}

// WithRegisterer registers bridge metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(s *Service) {
		s.registerer = reg
	}
}

// WithDialer overrides how the upstream tool server is reached. The
// default launches the configured subprocess over stdio.
func WithDialer(dialer connection.Dialer) Option {
	return func(s *Service) {
		s.dialer = dialer
	}
}

// WithRules replaces the fallback rules.
func WithRules(rules ...matcher.Rule) Option {
	return func(s *Service) {
		s.rules = rules
	}
}

// New constructs a service. No connection is made until the first call
// that needs one.
func New(opts ...Option) (*Service, error) {
	s := &Service{log: logr.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) init() error {
	if s.config == nil {
		s.config = config.Default()
	}
	s.config.Init()
	if err := s.config.Validate(); err != nil {
		return err
	}
	if s.rules == nil {
		s.rules = DefaultRules()
	}
	s.metrics = metrics.New(s.registerer)
	s.resolver = tool.NewResolver(s.config.Aliases)
	if s.dialer == nil {
		s.dialer = connection.NewStdioDialer(s.config, s.log.WithName("upstream"))
	}
	s.conn = connection.NewManager(s.dialer,
		connection.WithLogger(s.log.WithName("connection")),
		connection.WithMetrics(s.metrics))
	return nil
}

// Config returns the effective configuration. Callers must treat it as
// read-only.
func (s *Service) Config() *config.Config { return s.config }

// Resolver returns the tool name resolver.
func (s *Service) Resolver() *tool.Resolver { return s.resolver }

// ConnectionState reports the upstream connection state.
func (s *Service) ConnectionState() connection.State { return s.conn.State() }

// Close drops the upstream connection; a later call reconnects.
func (s *Service) Close() {
	s.conn.Close()
}
