package notify

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/Xushengqwer/wiki_service/config"
)

type captureSender struct {
	sent chan *gomail.Message
	err  error
}

func (s *captureSender) DialAndSend(m ...*gomail.Message) error {
	for _, msg := range m {
		s.sent <- msg
	}
	return s.err
}

func receive(t *testing.T, ch chan *gomail.Message) *gomail.Message {
	t.Helper()
	select {
	case m := <-ch:
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("邮件未在超时前发送")
		return nil
	}
}

func TestNotifyModeration_Rejected(t *testing.T) {
	sender := &captureSender{sent: make(chan *gomail.Message, 1)}
	n := NewMailNotifierWithSender(sender, "no-reply@wiki-ia.local", zap.NewNop())

	n.NotifyModeration(ModerationNotice{
		ListingID: 3, ListingName: "ChatHelper", AuthorEmail: "ana@example.com",
		AuthorName: "ana", Approved: false, Reason: "enlace roto",
	})

	msg := receive(t, sender.sent)
	assert.Equal(t, []string{"ana@example.com"}, msg.GetHeader("To"))
	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "enlace roto")
}

func TestNotifyModeration_ApprovedSendErrorIsSwallowed(t *testing.T) {
	sender := &captureSender{sent: make(chan *gomail.Message, 1), err: errors.New("smtp down")}
	n := NewMailNotifierWithSender(sender, "no-reply@wiki-ia.local", zap.NewNop())

	n.NotifyModeration(ModerationNotice{ListingID: 1, ListingName: "X", AuthorEmail: "a@example.com", Approved: true, Points: 50})
	msg := receive(t, sender.sent)
	assert.Contains(t, msg.GetHeader("Subject")[0], "aprobada")
}

func TestNotifyModeration_SkipsWithoutEmail(t *testing.T) {
	sender := &captureSender{sent: make(chan *gomail.Message, 1)}
	n := NewMailNotifierWithSender(sender, "x@example.com", zap.NewNop())
	n.NotifyModeration(ModerationNotice{ListingID: 1})

	select {
	case <-sender.sent:
		t.Fatal("没有收件人时不应发送")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNewMailNotifierDisabledWithoutHost(t *testing.T) {
	assert.Nil(t, NewMailNotifier(config.SMTPConfig{}, zap.NewNop()))
}
