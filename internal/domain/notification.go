package domain

// Channel is one delivery medium.
type Channel string

const (
	ChannelSMS   Channel = "sms"
	ChannelEmail Channel = "email"
	// ChannelBoth selects SMS and email; both are always attempted,
	// SMS first, regardless of the SMS outcome.
	ChannelBoth Channel = "both"
)

// NotificationType selects the message templates used for a dispatch.
type NotificationType string

const (
	TypeMedicineReminder         NotificationType = "medicine_reminder"
	TypeCriticalMedicineReminder NotificationType = "critical_medicine_reminder"
	TypeMissedMedicineAlert      NotificationType = "missed_medicine_alert"
	TypeAppointmentReminder      NotificationType = "appointment_reminder"
	TypeRefillReminder           NotificationType = "refill_reminder"
	TypeStockLowAlert            NotificationType = "stock_low_alert"
)

// Recipient identifies who a notification is delivered to.
// Taken from the verified identity claims, never from the request body.
type Recipient struct {
	Name  string
	Email string
	Phone string
}

// NotificationRequest is the transient dispatch input. Required payload
// fields depend on Type; the dispatcher rejects requests that are missing
// them before attempting any channel.
type NotificationRequest struct {
	Type    NotificationType `json:"type" validate:"required"`
	Channel Channel          `json:"channel"`

	Medicine     string `json:"medicine,omitempty"`
	Dosage       string `json:"dosage,omitempty"`
	ReminderTime string `json:"reminderTime,omitempty"`
	Appointment  string `json:"appointment,omitempty"`
	DaysLeft     *int   `json:"daysLeft,omitempty"`
	Stock        *int   `json:"stock,omitempty"`
	Threshold    *int   `json:"threshold,omitempty"`
}

// DeliveryResult is the outcome of one channel attempt. Delivery failures
// are reported here as values, never raised; partial success across
// channels is a valid terminal outcome.
type DeliveryResult struct {
	Channel Channel `json:"channel"`
	Success bool    `json:"success"`
	Message string  `json:"message"`
}
