package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gridbill/pkg/clients"
)

func TestNew(t *testing.T) {
	e := New(BillRunCompleted, map[string]int{"generated": 7})
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, BillRunCompleted, e.Type)
	assert.False(t, e.OccurredAt.IsZero())
	assert.NotEqual(t, e.ID, New(BillRunCompleted, nil).ID)
}

func TestAMQPPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	ch := NewMockChannel(ctrl)

	ch.EXPECT().ExchangeDeclare("gridbill.events", "topic", true, false, false, false, gomock.Nil()).Return(nil)
	p, err := NewAMQPPublisher(ch, "gridbill.events")
	require.NoError(t, err)

	e := New(CredentialIssued, map[string]string{"applicationNumber": "APP-2024-000001"})
	ch.EXPECT().PublishWithContext(gomock.Any(), "gridbill.events", CredentialIssued, false, false, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, _, _ bool, msg amqp.Publishing) error {
			assert.Equal(t, "application/json", msg.ContentType)
			assert.Equal(t, e.ID, msg.MessageId)
			assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
			var decoded Event
			require.NoError(t, json.Unmarshal(msg.Body, &decoded))
			assert.Equal(t, e.Type, decoded.Type)
			return nil
		})
	assert.NoError(t, p.Publish(context.Background(), e))

	ch.EXPECT().PublishWithContext(gomock.Any(), gomock.Any(), gomock.Any(), false, false, gomock.Any()).
		Return(amqp.ErrClosed)
	assert.ErrorIs(t, p.Publish(context.Background(), e), amqp.ErrClosed)

	ch.EXPECT().Close().Return(nil)
	assert.NoError(t, p.Close())
}

func TestAMQPPublisher_DeclareFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	ch := NewMockChannel(ctrl)

	ch.EXPECT().ExchangeDeclare(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("access refused"))
	ch.EXPECT().Close().Return(nil)

	_, err := NewAMQPPublisher(ch, "gridbill.events")
	assert.ErrorContains(t, err, "access refused")
}

func TestWebhookPublisher(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(client *clients.MockHTTPClientI)
		expectErr   bool
	}{
		{
			name: "Delivered",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(gomock.Any(), "http://hooks.local/events", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, headers http.Header, body []byte) (int, []byte, error) {
						assert.Equal(t, "application/json", headers.Get("Content-Type"))
						assert.Equal(t, ResetApproved, headers.Get("X-Event-Type"))
						assert.Contains(t, string(body), "PWRST-2024-000001")
						return http.StatusNoContent, nil, nil
					})
			},
		},
		{
			name: "Receiver rejects",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusInternalServerError, nil, nil)
			},
			expectErr: true,
		},
		{
			name: "Transport failure",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(0, nil, errors.New("connection refused"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := clients.NewMockHTTPClientI(ctrl)
			tt.prepareMock(client)

			p := NewWebhookPublisher("http://hooks.local/events", client)
			err := p.Publish(context.Background(), New(ResetApproved, map[string]string{"requestNumber": "PWRST-2024-000001"}))
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFanout(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := NewMockPublisher(ctrl)
	second := NewMockPublisher(ctrl)
	e := New(BillRunCompleted, nil)

	first.EXPECT().Publish(gomock.Any(), e).Return(errors.New("broker down"))
	second.EXPECT().Publish(gomock.Any(), e).Return(nil)

	err := Fanout{first, second, LogPublisher{}}.Publish(context.Background(), e)
	assert.ErrorContains(t, err, "broker down")
}
