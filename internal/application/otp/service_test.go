package otp

import (
	"context"
	"strconv"
	"testing"

	"github.com/CcubeNetvix/medTracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSMS struct {
	phone  string
	body   string
	result domain.DeliveryResult
}

func (c *captureSMS) SendSMS(_ context.Context, phone, body string) domain.DeliveryResult {
	c.phone = phone
	c.body = body
	return c.result
}

func TestGenerate_AlwaysSixDigitsInRange(t *testing.T) {
	svc := NewService(nil)
	for i := 0; i < 10000; i++ {
		code, err := svc.Generate()
		require.NoError(t, err)
		require.Len(t, code, 6)
		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 100000)
		require.LessOrEqual(t, n, 999999)
	}
}

func TestGenerate_CoversRange(t *testing.T) {
	svc := NewService(nil)
	var low, high bool
	for i := 0; i < 10000 && !(low && high); i++ {
		code, err := svc.Generate()
		require.NoError(t, err)
		n, _ := strconv.Atoi(code)
		if n < 550000 {
			low = true
		} else {
			high = true
		}
	}
	// 10k uniform draws are overwhelmingly likely to hit both halves.
	assert.True(t, low)
	assert.True(t, high)
}

func TestDispatch_SendsCodeWithValidityNotice(t *testing.T) {
	sms := &captureSMS{result: domain.DeliveryResult{Channel: domain.ChannelSMS, Success: true, Message: "SMS sent successfully"}}
	svc := NewService(sms)

	res := svc.Dispatch(context.Background(), "+15551234567", "123456")

	assert.True(t, res.Success)
	assert.Equal(t, "+15551234567", sms.phone)
	assert.Contains(t, sms.body, "123456")
	assert.Contains(t, sms.body, "10 minutes")
}

func TestDispatch_UnconfiguredTransportIsAValue(t *testing.T) {
	sms := &captureSMS{result: domain.DeliveryResult{Channel: domain.ChannelSMS, Success: false, Message: "SMS transport not configured"}}
	svc := NewService(sms)

	res := svc.Dispatch(context.Background(), "+15551234567", "123456")

	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "not configured")
}
