package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/gridbill/internal/config"
	"github.com/GlebRadaev/gridbill/internal/events"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWait_CleanShutdown() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) TestBuildPublisher() {
	tests := []struct {
		name     string
		cfg      *config.Config
		expected int
	}{
		{
			name:     "log only",
			cfg:      &config.Config{},
			expected: 1,
		},
		{
			name:     "with webhook",
			cfg:      &config.Config{EventsWebhookURL: "http://localhost:9999/events"},
			expected: 2,
		},
		{
			name:     "unreachable broker is skipped",
			cfg:      &config.Config{AMQPURL: "not-a-broker-url", AMQPExchange: "gridbill.events"},
			expected: 1,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			publisher := buildPublisher(tt.cfg)

			s.Len(publisher, tt.expected)
			s.IsType(events.LogPublisher{}, publisher[0])
			s.NoError(publisher.Close())
		})
	}
}
