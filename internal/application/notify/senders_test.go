package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/CcubeNetvix/medTracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- mocks ---

type mockSMSTransport struct{ mock.Mock }

func (m *mockSMSTransport) SendSMS(ctx context.Context, to, message string) error {
	return m.Called(ctx, to, message).Error(0)
}

type mockMailTransport struct{ mock.Mock }

func (m *mockMailTransport) SendEmail(to, subject, htmlBody string) error {
	return m.Called(to, subject, htmlBody).Error(0)
}

// --- SendSMS ---

func TestSendSMS_NotConfigured(t *testing.T) {
	s := NewSenders(nil, nil)

	res := s.SendSMS(context.Background(), "15551234567", "hello")

	assert.Equal(t, domain.ChannelSMS, res.Channel)
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "not configured")
}

func TestSendSMS_NormalizesPhoneNumber(t *testing.T) {
	sms := &mockSMSTransport{}
	sms.On("SendSMS", mock.Anything, "+15551234567", "hello").Return(nil)

	s := NewSenders(sms, nil)
	res := s.SendSMS(context.Background(), "15551234567", "hello")

	assert.True(t, res.Success)
	sms.AssertExpectations(t)
}

func TestSendSMS_KeepsExistingPlus(t *testing.T) {
	sms := &mockSMSTransport{}
	sms.On("SendSMS", mock.Anything, "+15551234567", "hello").Return(nil)

	s := NewSenders(sms, nil)
	res := s.SendSMS(context.Background(), "+15551234567", "hello")

	assert.True(t, res.Success)
	sms.AssertExpectations(t)
}

func TestSendSMS_TransportFailure(t *testing.T) {
	sms := &mockSMSTransport{}
	sms.On("SendSMS", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("throttled"))

	s := NewSenders(sms, nil)
	res := s.SendSMS(context.Background(), "+15551234567", "hello")

	assert.Equal(t, domain.ChannelSMS, res.Channel)
	assert.False(t, res.Success)
	assert.Equal(t, "throttled", res.Message)
}

// --- SendEmail ---

func TestSendEmail_NotConfigured(t *testing.T) {
	s := NewSenders(nil, nil)

	res := s.SendEmail(context.Background(), "a@b.com", "subject", "<p>hi</p>")

	assert.Equal(t, domain.ChannelEmail, res.Channel)
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "not configured")
}

func TestSendEmail_HappyPath(t *testing.T) {
	ml := &mockMailTransport{}
	ml.On("SendEmail", "a@b.com", "subject", "<p>hi</p>").Return(nil)

	s := NewSenders(nil, ml)
	res := s.SendEmail(context.Background(), "a@b.com", "subject", "<p>hi</p>")

	assert.True(t, res.Success)
	ml.AssertExpectations(t)
}

func TestSendEmail_TransportFailure(t *testing.T) {
	ml := &mockMailTransport{}
	ml.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	s := NewSenders(nil, ml)
	res := s.SendEmail(context.Background(), "a@b.com", "subject", "<p>hi</p>")

	assert.False(t, res.Success)
	assert.Equal(t, "connection refused", res.Message)
}
