package notify

import (
	"bytes"
	"embed"
	"fmt"
	htmpl "html/template"
	texttpl "text/template"

	"github.com/CcubeNetvix/medTracker/internal/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// templateData is the parameter set shared by all message templates.
// Time is already formatted for humans; rendering never does I/O.
type templateData struct {
	Name        string
	Medicine    string
	Dosage      string
	Time        string
	Appointment string
	DaysLeft    int
	Stock       int
	Threshold   int
}

var emailSubjects = map[domain.NotificationType]string{
	domain.TypeMedicineReminder:         "MedTracker Medicine Reminder",
	domain.TypeCriticalMedicineReminder: "MedTracker URGENT Medicine Reminder",
	domain.TypeMissedMedicineAlert:      "MedTracker Missed Medicine Alert",
	domain.TypeAppointmentReminder:      "MedTracker Appointment Reminder",
	domain.TypeRefillReminder:           "MedTracker Refill Reminder",
	domain.TypeStockLowAlert:            "MedTracker Stock Alert",
}

var (
	smsTemplates  = texttpl.Must(texttpl.ParseFS(templateFS, "templates/*.sms.tmpl"))
	htmlTemplates = htmpl.Must(htmpl.ParseFS(templateFS, "templates/*.html.tmpl"))
)

// message is one fully rendered notification, ready for any channel.
type message struct {
	SMS     string
	Subject string
	HTML    string
}

// render produces the SMS body, email subject and email HTML body for the
// given kind. Pure and deterministic for a given data value.
func render(kind domain.NotificationType, data templateData) (message, error) {
	subject, ok := emailSubjects[kind]
	if !ok {
		return message{}, fmt.Errorf("unknown notification type %q: %w", kind, domain.ErrValidation)
	}

	var sms bytes.Buffer
	if err := smsTemplates.ExecuteTemplate(&sms, string(kind)+".sms.tmpl", data); err != nil {
		return message{}, fmt.Errorf("render sms template: %w", err)
	}
	var html bytes.Buffer
	if err := htmlTemplates.ExecuteTemplate(&html, string(kind)+".html.tmpl", data); err != nil {
		return message{}, fmt.Errorf("render email template: %w", err)
	}
	return message{SMS: sms.String(), Subject: subject, HTML: html.String()}, nil
}
