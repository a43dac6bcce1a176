package publisher

import "ProfitPulse/internal/model"

// Publisher consumes a DerivedReport and produces an external side effect
// (social post, persisted row). Publish errors are reported to the caller
// but must never terminate the poll loop.
type Publisher interface {
	Name() string
	Publish(rep *model.DerivedReport) error
	Close() error
}
