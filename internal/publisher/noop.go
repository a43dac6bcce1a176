package publisher

import "ProfitPulse/internal/model"

// NoopPublisher is used when a sink is disabled in the configuration.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (n *NoopPublisher) Name() string { return "noop" }

func (n *NoopPublisher) Publish(_ *model.DerivedReport) error { return nil }

func (n *NoopPublisher) Close() error { return nil }
