package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Xushengqwer/go-common/models/enums"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/wiki_service/config"
	"github.com/Xushengqwer/wiki_service/mq/events"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

var testTopics = config.Topics{ListingSubmitted: "listing.submitted", ListingModerated: "listing.moderated"}

func TestSendListingSubmittedEvent(t *testing.T) {
	w := &fakeWriter{}
	p := newKafkaProducer(w, testTopics, zap.NewNop())

	err := p.SendListingSubmittedEvent(context.Background(), events.ListingData{ID: 7, Name: "Copilot", AuthorID: 2})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "listing.submitted", w.msgs[0].Topic)
	assert.Equal(t, "listing-7", string(w.msgs[0].Key))

	var got events.ListingSubmittedEvent
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.NotEmpty(t, got.EventID)
	assert.Equal(t, "Copilot", got.Listing.Name)
}

func TestSendListingModeratedEvent(t *testing.T) {
	w := &fakeWriter{}
	p := newKafkaProducer(w, testTopics, zap.NewNop())

	err := p.SendListingModeratedEvent(context.Background(), events.ModerationData{
		ListingID: 3, AuthorID: 1, Status: enums.Rejected, ModeratorID: 9, Reason: "spam",
	})
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.Equal(t, "listing.moderated", w.msgs[0].Topic)
	assert.EqualValues(t, 3, got["listing_id"])
	assert.Equal(t, "spam", got["reason"])
}

func TestSendEventPropagatesWriterError(t *testing.T) {
	p := newKafkaProducer(&fakeWriter{err: errors.New("broker down")}, testTopics, zap.NewNop())
	assert.Error(t, p.SendListingSubmittedEvent(context.Background(), events.ListingData{ID: 1}))
}

func TestNewKafkaProducerWithoutBrokers(t *testing.T) {
	assert.Nil(t, NewKafkaProducer(config.KafkaConfig{}, zap.NewNop()))
}
