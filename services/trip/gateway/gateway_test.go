package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"firebase.google.com/go/v4/messaging"
	"github.com/nats-io/nats.go"
	"github.com/piresc/campusride/internal/pkg/constants"
	"github.com/piresc/campusride/internal/pkg/models"
	natspkg "github.com/piresc/campusride/internal/pkg/nats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	natsserver "github.com/nats-io/nats-server/v2/test"
)

const testNatsPort = 8371

func TestMain(m *testing.M) {
	opts := natsserver.DefaultTestOptions
	opts.Port = testNatsPort
	srv := natsserver.RunServer(&opts)
	code := m.Run()
	srv.Shutdown()
	os.Exit(code)
}

func newClient(t *testing.T) *natspkg.Client {
	client, err := natspkg.NewClient("nats://127.0.0.1:8371", "trip-gateway-test")
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client
}

func receive(t *testing.T, client *natspkg.Client, subject string) <-chan *nats.Msg {
	ch := make(chan *nats.Msg, 1)
	sub, err := client.Subscribe(subject, func(msg *nats.Msg) { ch <- msg })
	require.NoError(t, err)
	t.Cleanup(func() { _ = sub.Unsubscribe() })
	require.NoError(t, client.GetConn().Flush())
	return ch
}

func TestTripGW_PublishTripJoined(t *testing.T) {
	client := newClient(t)
	msgs := receive(t, client, constants.SubjectTripJoined)
	gw := NewTripGW(client, nil)

	err := gw.PublishTripJoined(context.Background(), &models.TripJoinedEvent{
		TripID: "trip-1", DriverID: "driver-1", StudentID: "student-1", Occupants: 3,
	})
	require.NoError(t, err)

	select {
	case msg := <-msgs:
		var event models.TripJoinedEvent
		require.NoError(t, json.Unmarshal(msg.Data, &event))
		assert.Equal(t, "trip-1", event.TripID)
		assert.Equal(t, 3, event.Occupants)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for trip.joined")
	}
}

func TestTripGW_PublishTripCreated(t *testing.T) {
	client := newClient(t)
	msgs := receive(t, client, constants.SubjectTripCreated)
	gw := NewTripGW(client, nil)

	require.NoError(t, gw.PublishTripCreated(context.Background(), &models.TripCreatedEvent{TripID: "trip-2", BusID: "bus-1"}))

	select {
	case msg := <-msgs:
		assert.Contains(t, string(msg.Data), `"trip_id":"trip-2"`)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for trip.created")
	}
}

type fakeMessenger struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeMessenger) Send(_ context.Context, m *messaging.Message) (string, error) {
	f.sent = append(f.sent, m)
	return "msg-id", f.err
}

func TestTripGW_Notify(t *testing.T) {
	fm := &fakeMessenger{}
	gw := NewTripGW(nil, fm)

	require.NoError(t, gw.Notify(context.Background(), &models.Notification{
		Token: "fcm-1", Title: "New passenger", Body: "Ada joined", Data: map[string]string{"tripId": "trip-1"},
	}))
	require.Len(t, fm.sent, 1)
	assert.Equal(t, "fcm-1", fm.sent[0].Token)
	assert.Equal(t, "New passenger", fm.sent[0].Notification.Title)
	assert.Equal(t, "trip-1", fm.sent[0].Data["tripId"])

	// no device token registered
	require.NoError(t, gw.Notify(context.Background(), &models.Notification{Title: "x"}))
	assert.Len(t, fm.sent, 1)

	fm.err = errors.New("unregistered")
	assert.Error(t, gw.Notify(context.Background(), &models.Notification{Token: "fcm-1"}))
}

func TestTripGW_Notify_Disabled(t *testing.T) {
	gw := NewTripGW(nil, nil)
	assert.NoError(t, gw.Notify(context.Background(), &models.Notification{Token: "fcm-1"}))
}
