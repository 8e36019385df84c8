package consumer

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/models/enums"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/wiki_service/config"
	"github.com/Xushengqwer/wiki_service/models/dto"
	"github.com/Xushengqwer/wiki_service/models/vo"
	"github.com/Xushengqwer/wiki_service/myErrors"
)

type fakeModerator struct {
	decisions []dto.ModerationDecision
	err       error
}

func (m *fakeModerator) Moderate(_ context.Context, d dto.ModerationDecision) (*vo.ModerationResultVO, error) {
	m.decisions = append(m.decisions, d)
	if m.err != nil {
		return nil, m.err
	}
	status := enums.Rejected
	if d.Approved {
		status = enums.Approved
	}
	return &vo.ModerationResultVO{ListingID: d.ListingID, Status: status}, nil
}

func TestModerationDecisionHandler(t *testing.T) {
	m := &fakeModerator{}
	h := NewModerationDecisionHandler(m, zap.NewNop())
	ctx := context.Background()

	payload := `{"event_id":"e1","listing_id":4,"moderator_id":1,"approved":false,"reason":"spam"}`
	require.NoError(t, h.Handle(ctx, kafka.Message{Value: []byte(payload)}))
	require.Len(t, m.decisions, 1)
	assert.Equal(t, dto.ModerationDecision{ListingID: 4, ModeratorID: 1, Approved: false, Reason: "spam"}, m.decisions[0])

	// 无法解析和缺少 ID 的消息直接丢弃
	assert.NoError(t, h.Handle(ctx, kafka.Message{Value: []byte("{not json")}))
	assert.NoError(t, h.Handle(ctx, kafka.Message{Value: []byte(`{"event_id":"e2"}`)}))
	assert.Len(t, m.decisions, 1)
}

func TestModerationDecisionHandlerErrors(t *testing.T) {
	payload := []byte(`{"event_id":"e1","listing_id":4,"approved":true}`)

	for _, err := range []error{commonerrors.ErrRepoNotFound, myErrors.ErrAlreadyModerated, myErrors.ErrReasonRequired} {
		h := NewModerationDecisionHandler(&fakeModerator{err: err}, zap.NewNop())
		assert.NoError(t, h.Handle(context.Background(), kafka.Message{Value: payload}), err.Error())
	}

	boom := errors.New("db down")
	h := NewModerationDecisionHandler(&fakeModerator{err: boom}, zap.NewNop())
	assert.ErrorIs(t, h.Handle(context.Background(), kafka.Message{Value: payload}), boom)
}

type fakeReader struct {
	msgs   []kafka.Message
	closed bool
}

func (r *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.msgs) == 0 {
		return kafka.Message{}, io.EOF
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *fakeReader) Close() error {
	r.closed = true
	return nil
}

type countingHandler struct{ n int }

func (h *countingHandler) Handle(context.Context, kafka.Message) error {
	h.n++
	return errors.New("ignored")
}

func TestConsumerStartStopsOnEOF(t *testing.T) {
	reader := &fakeReader{msgs: []kafka.Message{{Value: []byte("a")}, {Value: []byte("b")}}}
	handler := &countingHandler{}
	c := newConsumer(reader, "listing.moderation.decisions", handler, zap.NewNop())

	done := make(chan struct{})
	go func() {
		c.Start(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop")
	}
	assert.Equal(t, 2, handler.n)
	require.NoError(t, c.Close())
	assert.True(t, reader.closed)
}

func TestNewConsumerValidatesConfig(t *testing.T) {
	_, err := NewConsumer(config.KafkaConfig{Brokers: []string{"localhost:9092"}}, "", &countingHandler{}, zap.NewNop())
	assert.Error(t, err)
	_, err = NewConsumer(config.KafkaConfig{}, "topic", &countingHandler{}, zap.NewNop())
	assert.Error(t, err)
}
