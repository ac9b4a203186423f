// Package email provides outbound email dispatch with template rendering.
// Delivery is best-effort: callers log failures and carry on, so a broken
// mail path never blocks a booking.
package email

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// ---------------------------------------------------------------------------
// Sender
// ---------------------------------------------------------------------------

// Sender is the interface for delivering a single email message.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogSender writes outbound mail to the structured log instead of delivering
// it. Used when EMAIL_ENABLED is false and in local development.
type LogSender struct {
	logger zerolog.Logger
}

// NewLogSender creates a LogSender.
func NewLogSender(logger zerolog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send logs the message and reports success.
func (s *LogSender) Send(_ context.Context, to, subject, body string) error {
	s.logger.Info().
		Str("to", to).
		Str("subject", subject).
		Int("body_bytes", len(body)).
		Msg("email dispatched (log only)")
	return nil
}

// ---------------------------------------------------------------------------
// Template Engine
// ---------------------------------------------------------------------------

// Built-in template IDs.
const (
	TemplateDoctorBookingAlert  = "doctor-booking-alert"
	TemplatePatientConfirmation = "patient-confirmation"
	TemplateCancellationNotice  = "cancellation-notice"
)

// Template defines a reusable email template.
type Template struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// TemplateEngine manages email templates and renders them with data.
type TemplateEngine struct {
	mu        sync.RWMutex
	templates map[string]*Template
}

// NewTemplateEngine creates a TemplateEngine with the built-in templates pre-registered.
func NewTemplateEngine() *TemplateEngine {
	e := &TemplateEngine{
		templates: make(map[string]*Template),
	}
	e.registerBuiltIn()
	return e
}

func (e *TemplateEngine) registerBuiltIn() {
	builtIn := []Template{
		{
			ID:      TemplateDoctorBookingAlert,
			Name:    "Doctor Booking Alert",
			Subject: "New Appointment Request: {{patient_name}} on {{date}} at {{time}}",
			Body: "Dear Dr. {{doctor_name}},\n\n" +
				"You have a new appointment request with the following details:\n\n" +
				"Patient: {{patient_name}}\n" +
				"Patient Email: {{patient_email}}\n" +
				"Patient Phone: {{patient_phone}}\n" +
				"Date: {{date}}\n" +
				"Time: {{time}}\n" +
				"Notes: {{notes}}\n\n" +
				"Please log in to the AyurCare app to confirm or reschedule this appointment.\n\n" +
				"Thank you,\nAyurCare Wellness Team",
		},
		{
			ID:      TemplatePatientConfirmation,
			Name:    "Patient Confirmation",
			Subject: "Appointment Confirmation with Dr. {{doctor_name}}",
			Body: "Dear {{patient_name}},\n\n" +
				"Your appointment has been scheduled with the following details:\n\n" +
				"Doctor: Dr. {{doctor_name}}\n" +
				"Date: {{date}}\n" +
				"Time: {{time}}\n\n" +
				"If you need to reschedule or cancel, please do so at least 24 hours in advance through the app.\n\n" +
				"Thank you for choosing AyurCare Wellness!",
		},
		{
			ID:      TemplateCancellationNotice,
			Name:    "Cancellation Notice",
			Subject: "Appointment Cancelled: {{date}} at {{time}}",
			Body: "Dear {{recipient_name}},\n\n" +
				"The appointment on {{date}} at {{time}} has been cancelled.\n\n" +
				"You can book a new appointment at any time through the AyurCare app.\n\n" +
				"Thank you,\nAyurCare Wellness Team",
		},
	}
	for i := range builtIn {
		t := builtIn[i]
		e.templates[t.ID] = &t
	}
}

// RegisterTemplate adds or replaces a template in the engine.
func (e *TemplateEngine) RegisterTemplate(t Template) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.templates[t.ID] = &t
}

// Render looks up a template by ID and performs {{key}} replacement using the
// supplied data map. Keys present in the template but absent from data are left
// as-is.
func (e *TemplateEngine) Render(templateID string, data map[string]string) (subject, body string, err error) {
	e.mu.RLock()
	t, ok := e.templates[templateID]
	e.mu.RUnlock()
	if !ok {
		return "", "", fmt.Errorf("template %q not found", templateID)
	}

	subject = t.Subject
	body = t.Body
	for k, v := range data {
		placeholder := "{{" + k + "}}"
		subject = strings.ReplaceAll(subject, placeholder, v)
		body = strings.ReplaceAll(body, placeholder, v)
	}
	return subject, body, nil
}

// ---------------------------------------------------------------------------
// Mailer
// ---------------------------------------------------------------------------

// Mailer renders templates and dispatches them through a Sender.
type Mailer struct {
	sender    Sender
	templates *TemplateEngine
	from      string
}

// NewMailer constructs a Mailer.
func NewMailer(sender Sender, templates *TemplateEngine, from string) *Mailer {
	return &Mailer{sender: sender, templates: templates, from: from}
}

// From returns the configured sender address.
func (m *Mailer) From() string { return m.from }

// SendFromTemplate renders a template and sends the result to recipient.
func (m *Mailer) SendFromTemplate(ctx context.Context, templateID string, data map[string]string, recipient string) error {
	subject, body, err := m.templates.Render(templateID, data)
	if err != nil {
		return fmt.Errorf("render template: %w", err)
	}
	if err := m.sender.Send(ctx, recipient, subject, body); err != nil {
		return fmt.Errorf("send %s to %s: %w", templateID, recipient, err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mock Sender (test double)
// ---------------------------------------------------------------------------

// Call records a single call to Send.
type Call struct {
	To      string
	Subject string
	Body    string
}

// MockSender is a test double for Sender.
type MockSender struct {
	mu         sync.Mutex
	calls      []Call
	ShouldFail bool
	FailError  string
}

// Send records the call and optionally returns an error.
func (m *MockSender) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{To: to, Subject: subject, Body: body})
	if m.ShouldFail {
		return errors.New(m.FailError)
	}
	return nil
}

// Calls returns a copy of recorded calls.
func (m *MockSender) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}
