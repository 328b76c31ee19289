package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/CcubeNetvix/medTracker/internal/domain"
)

// timeLayout is how reminder timestamps are shown to the recipient.
const timeLayout = "Jan 2, 2006 3:04 PM"

// ChannelSender is the per-channel delivery surface the dispatcher needs.
type ChannelSender interface {
	SendSMS(ctx context.Context, phone, body string) domain.DeliveryResult
	SendEmail(ctx context.Context, to, subject, htmlBody string) domain.DeliveryResult
}

// Service renders a notification for each requested channel and routes it
// through the matching sender. Delivery failures are returned as results;
// Dispatch only errors for malformed input.
type Service interface {
	Dispatch(ctx context.Context, rcpt domain.Recipient, req domain.NotificationRequest) ([]domain.DeliveryResult, error)
}

type service struct {
	senders ChannelSender
}

func NewService(senders ChannelSender) Service {
	return &service{senders: senders}
}

func (s *service) Dispatch(ctx context.Context, rcpt domain.Recipient, req domain.NotificationRequest) ([]domain.DeliveryResult, error) {
	data, err := buildTemplateData(rcpt, req)
	if err != nil {
		return nil, err
	}
	msg, err := render(req.Type, data)
	if err != nil {
		return nil, err
	}

	channel := req.Channel
	if channel == "" {
		channel = domain.ChannelBoth
	}

	switch channel {
	case domain.ChannelSMS:
		return []domain.DeliveryResult{s.senders.SendSMS(ctx, rcpt.Phone, msg.SMS)}, nil
	case domain.ChannelEmail:
		return []domain.DeliveryResult{s.senders.SendEmail(ctx, rcpt.Email, msg.Subject, msg.HTML)}, nil
	case domain.ChannelBoth:
		// Both channels are independent delivery paths; neither outcome
		// suppresses the other. Result order stays [sms, email] no matter
		// which send finishes first.
		results := make([]domain.DeliveryResult, 2)
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			results[0] = s.senders.SendSMS(ctx, rcpt.Phone, msg.SMS)
		}()
		go func() {
			defer wg.Done()
			results[1] = s.senders.SendEmail(ctx, rcpt.Email, msg.Subject, msg.HTML)
		}()
		wg.Wait()
		return results, nil
	default:
		return nil, fmt.Errorf("invalid channel %q: %w", req.Channel, domain.ErrValidation)
	}
}

// buildTemplateData checks the payload fields required by the requested kind
// and assembles the render input. Rejections happen here, before any channel
// is attempted.
func buildTemplateData(rcpt domain.Recipient, req domain.NotificationRequest) (templateData, error) {
	data := templateData{
		Name:        rcpt.Name,
		Medicine:    req.Medicine,
		Dosage:      req.Dosage,
		Appointment: req.Appointment,
	}

	switch req.Type {
	case domain.TypeMedicineReminder, domain.TypeCriticalMedicineReminder, domain.TypeMissedMedicineAlert:
		if req.Medicine == "" || req.ReminderTime == "" {
			return templateData{}, fmt.Errorf("missing medicine or reminderTime: %w", domain.ErrValidation)
		}
		t, err := time.Parse(time.RFC3339, req.ReminderTime)
		if err != nil {
			return templateData{}, fmt.Errorf("reminderTime must be an RFC 3339 timestamp: %w", domain.ErrValidation)
		}
		data.Time = t.Format(timeLayout)
	case domain.TypeAppointmentReminder:
		if req.Appointment == "" {
			return templateData{}, fmt.Errorf("missing appointment details: %w", domain.ErrValidation)
		}
	case domain.TypeRefillReminder:
		if req.Medicine == "" || req.DaysLeft == nil {
			return templateData{}, fmt.Errorf("missing medicine or daysLeft: %w", domain.ErrValidation)
		}
		data.DaysLeft = *req.DaysLeft
	case domain.TypeStockLowAlert:
		if req.Medicine == "" || req.Stock == nil || req.Threshold == nil {
			return templateData{}, fmt.Errorf("missing medicine, stock or threshold: %w", domain.ErrValidation)
		}
		data.Stock = *req.Stock
		data.Threshold = *req.Threshold
	default:
		return templateData{}, fmt.Errorf("invalid notification type %q: %w", req.Type, domain.ErrValidation)
	}
	return data, nil
}
