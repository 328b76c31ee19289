package notify

import (
	"context"
	"log/slog"
	"strings"

	"github.com/CcubeNetvix/medTracker/internal/domain"
	"github.com/CcubeNetvix/medTracker/internal/infrastructure/smtp"
	"github.com/CcubeNetvix/medTracker/internal/infrastructure/sns"
)

// Senders wraps the raw SMS and email transports and normalizes every
// outcome into a domain.DeliveryResult. A nil transport means the channel
// is not configured; that is reported as a failed result with a distinct
// message, never attempted and never raised.
type Senders struct {
	sms    sns.SMSSender
	mailer smtp.Mailer
}

func NewSenders(sms sns.SMSSender, mailer smtp.Mailer) *Senders {
	return &Senders{sms: sms, mailer: mailer}
}

// SendSMS delivers body to phone. The number is normalized to E.164-style
// by prepending "+" when absent.
func (s *Senders) SendSMS(ctx context.Context, phone, body string) domain.DeliveryResult {
	if s.sms == nil {
		return domain.DeliveryResult{Channel: domain.ChannelSMS, Success: false, Message: "SMS transport not configured"}
	}
	to := phone
	if !strings.HasPrefix(to, "+") {
		to = "+" + to
	}
	if err := s.sms.SendSMS(ctx, to, body); err != nil {
		slog.Warn("sms delivery failed", "to", to, "err", err)
		return domain.DeliveryResult{Channel: domain.ChannelSMS, Success: false, Message: err.Error()}
	}
	slog.Info("sms delivered", "to", to)
	return domain.DeliveryResult{Channel: domain.ChannelSMS, Success: true, Message: "SMS sent successfully"}
}

func (s *Senders) SendEmail(ctx context.Context, to, subject, htmlBody string) domain.DeliveryResult {
	if s.mailer == nil {
		return domain.DeliveryResult{Channel: domain.ChannelEmail, Success: false, Message: "email transport not configured"}
	}
	if err := s.mailer.SendEmail(to, subject, htmlBody); err != nil {
		slog.Warn("email delivery failed", "to", to, "err", err)
		return domain.DeliveryResult{Channel: domain.ChannelEmail, Success: false, Message: err.Error()}
	}
	slog.Info("email delivered", "to", to)
	return domain.DeliveryResult{Channel: domain.ChannelEmail, Success: true, Message: "Email sent successfully"}
}
