package notifications

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"

	"aventura_tours/internal/domain/entities"
	"aventura_tours/internal/usecase/interfaces"

	"github.com/jordan-wright/email"
	"github.com/shopspring/decimal"
)

// EmailNotifier delivers due-date reminders over SMTP. When mock mode is
// enabled (or no SMTP host is set) it logs the reminder instead of sending,
// which keeps local runs and tests free of a mail server.
type EmailNotifier struct {
	smtpHost     string
	smtpPort     string
	smtpUsername string
	smtpPassword string
	senderEmail  string
	billingEmail string
	mockMode     bool
}

var _ interfaces.IReminderNotifier = (*EmailNotifier)(nil)

func NewEmailNotifierFromEnv() *EmailNotifier {
	n := &EmailNotifier{
		smtpHost:     os.Getenv("SMTP_HOST"),
		smtpPort:     getenvDefault("SMTP_PORT", "587"),
		smtpUsername: os.Getenv("SMTP_USERNAME"),
		smtpPassword: os.Getenv("SMTP_PASSWORD"),
		senderEmail:  getenvDefault("REMINDER_SENDER_EMAIL", "billing@aventuratours.example"),
		billingEmail: getenvDefault("REMINDER_BILLING_EMAIL", "backoffice@aventuratours.example"),
	}
	if isNotifierMockEnabled() || n.smtpHost == "" {
		log.Printf("[reminder][notifier] mock mode enabled")
		n.mockMode = true
	}
	return n
}

func (n *EmailNotifier) SendDueReminder(_ context.Context, inst entities.PaymentInstallment, totalDue decimal.Decimal) error {
	dueDate := ""
	if inst.DueDate != nil {
		dueDate = inst.DueDate.Format("2006-01-02")
	}

	if n.mockMode {
		log.Printf("[reminder][notifier] mock reminder installment_id=%s reservation_id=%s due_date=%s total_due=%s",
			inst.ID, inst.ReservationID, dueDate, totalDue.StringFixed(2))
		return nil
	}

	e := email.NewEmail()
	e.From = n.senderEmail
	e.To = []string{n.billingEmail}
	e.Subject = fmt.Sprintf("Upcoming installment payment for reservation %s", inst.ReservationID)

	body := fmt.Sprintf(
		"Installment %s for reservation %s is due on %s.\n"+
			"Amount due: %s\n\n"+
			"Please make sure the payment is collected before the due date.\n",
		inst.ID, inst.ReservationID, dueDate, totalDue.StringFixed(2),
	)
	body += "\nAventura Tours Billing"
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", n.smtpHost, n.smtpPort)
	auth := smtp.PlainAuth("", n.smtpUsername, n.smtpPassword, n.smtpHost)
	if err := e.Send(addr, auth); err != nil {
		log.Printf("[reminder][notifier] send failed installment_id=%s err=%v", inst.ID, err)
		return fmt.Errorf("failed to send reminder email: %w", err)
	}

	log.Printf("[reminder][notifier] reminder sent installment_id=%s due_date=%s", inst.ID, dueDate)
	return nil
}

func isNotifierMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("REMINDER_NOTIFIER_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
