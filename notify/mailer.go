package notify

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/Xushengqwer/wiki_service/config"
)

// ModerationNotice 审核结果通知的内容
type ModerationNotice struct {
	ListingID   uint64
	ListingName string
	AuthorEmail string
	AuthorName  string
	Approved    bool
	Reason      string
	Points      int64
}

// Sender 发送邮件，*gomail.Dialer 满足该接口
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// MailNotifier 通过 SMTP 异步通知工具作者审核结果
type MailNotifier struct {
	sender Sender
	from   string
	logger *zap.Logger
}

// NewMailNotifier Host 为空时返回 nil，调用方按未启用处理
func NewMailNotifier(cfg config.SMTPConfig, logger *zap.Logger) *MailNotifier {
	if cfg.Host == "" {
		logger.Warn("未配置 SMTP，审核结果邮件通知已禁用")
		return nil
	}
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return NewMailNotifierWithSender(dialer, cfg.From, logger)
}

func NewMailNotifierWithSender(sender Sender, from string, logger *zap.Logger) *MailNotifier {
	return &MailNotifier{sender: sender, from: from, logger: logger}
}

// NotifyModeration 在后台 goroutine 中发送，失败只记录日志
func (n *MailNotifier) NotifyModeration(notice ModerationNotice) {
	if notice.AuthorEmail == "" {
		return
	}
	msg := n.buildMessage(notice)
	go func() {
		if err := n.sender.DialAndSend(msg); err != nil {
			n.logger.Error("发送审核结果邮件失败",
				zap.Uint64("listingID", notice.ListingID),
				zap.String("to", notice.AuthorEmail),
				zap.Error(err),
			)
			return
		}
		n.logger.Info("审核结果邮件已发送", zap.Uint64("listingID", notice.ListingID), zap.Bool("approved", notice.Approved))
	}()
}

func (n *MailNotifier) buildMessage(notice ModerationNotice) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", notice.AuthorEmail)

	if notice.Approved {
		m.SetHeader("Subject", fmt.Sprintf("Tu herramienta \"%s\" fue aprobada", notice.ListingName))
		m.SetBody("text/plain", fmt.Sprintf(
			"Hola %s,\n\nTu herramienta \"%s\" ya está publicada en Wiki IA. Ganaste %d puntos.\n",
			notice.AuthorName, notice.ListingName, notice.Points))
	} else {
		m.SetHeader("Subject", fmt.Sprintf("Tu herramienta \"%s\" fue rechazada", notice.ListingName))
		m.SetBody("text/plain", fmt.Sprintf(
			"Hola %s,\n\nTu herramienta \"%s\" no fue aprobada.\nMotivo: %s\n",
			notice.AuthorName, notice.ListingName, notice.Reason))
	}
	return m
}
