package publisher

import (
	"fmt"

	"github.com/dghubble/go-twitter/twitter"
	"github.com/dghubble/oauth1"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ProfitPulse/internal/model"
)

// TwitterPublisher posts the composed report text as a single status update.
type TwitterPublisher struct {
	api    *twitter.Client
	logger zerolog.Logger
}

// NewTwitterPublisher creates a publisher authenticated with the given
// OAuth1 credentials.
func NewTwitterPublisher(apiKey, apiSecret, accessToken, accessSecret string) *TwitterPublisher {
	config := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, accessSecret)
	return &TwitterPublisher{
		api:    twitter.NewClient(config.Client(oauth1.NoContext, token)),
		logger: log.With().Str("module", "twitter").Logger(),
	}
}

func (t *TwitterPublisher) Name() string { return "twitter" }

// Publish posts the report. Authentication, rate limit, and network errors
// all come back through the returned error.
func (t *TwitterPublisher) Publish(rep *model.DerivedReport) error {
	tweet, _, err := t.api.Statuses.Update(rep.Text, nil)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	t.logger.Info().Int64("id", tweet.ID).Msg("status posted")
	return nil
}

func (t *TwitterPublisher) Close() error { return nil }
