package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/CcubeNetvix/medTracker/internal/domain"
)

// smsChannel is the only delivery surface the OTP flow needs.
type smsChannel interface {
	SendSMS(ctx context.Context, phone, body string) domain.DeliveryResult
}

// Service generates one-time verification codes and routes them over SMS.
// Codes are not persisted, rate-limited or bound to a session here; the 10
// minute validity in the message text is enforced by a collaborator, not by
// this service.
type Service interface {
	Generate() (string, error)
	Dispatch(ctx context.Context, phone, code string) domain.DeliveryResult
}

type service struct {
	sms smsChannel
}

func NewService(sms smsChannel) Service {
	return &service{sms: sms}
}

// Generate draws a code uniformly from [100000, 999999].
func (s *service) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func (s *service) Dispatch(ctx context.Context, phone, code string) domain.DeliveryResult {
	body := fmt.Sprintf("Your MedTracker verification code is: %s. This code will expire in 10 minutes. Do not share this code with anyone.", code)
	return s.sms.SendSMS(ctx, phone, body)
}
