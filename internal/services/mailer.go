package services

import (
	"log"
	"os"

	"github.com/wellspring-labs/wellspring/internal/models"
	gomail "gopkg.in/gomail.v2"
)

// Attachment is an optional binary artifact shipped with a delivery.
type Attachment struct {
	Path     string
	Filename string
}

// Deliverer sends one HTML email and reports acceptance as a boolean.
// Implementations never raise: failures are logged and reported as false.
type Deliverer interface {
	Deliver(to string, subject string, htmlBody string, attachment *Attachment) bool
}

// Mailer delivers email through an authenticated SMTP session using the
// credentials held in the settings store.
type Mailer struct {
	settings *SettingsService
	host     string
	port     int
	send     func(credentials models.EmailSettings, message *gomail.Message) error
}

func NewMailer(settings *SettingsService, host string, port int) *Mailer {
	mailer := &Mailer{settings: settings, host: host, port: port}
	mailer.send = mailer.dialAndSend
	return mailer
}

// Deliver opens a session, sends, and closes. Returns false on missing
// credentials or any transport failure; retry is the caller's concern.
func (mailer *Mailer) Deliver(to string, subject string, htmlBody string, attachment *Attachment) bool {
	credentials := mailer.settings.EmailSettings()
	if !credentials.Complete() {
		log.Printf("mail: credentials missing, delivery to %s skipped", to)
		return false
	}

	message := gomail.NewMessage()
	message.SetHeader("From", credentials.User)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", htmlBody)

	if attachment != nil && attachment.Path != "" {
		if _, err := os.Stat(attachment.Path); err != nil {
			log.Printf("mail: attachment %s unavailable, sending without it: %v", attachment.Path, err)
		} else if attachment.Filename != "" {
			message.Attach(attachment.Path, gomail.Rename(attachment.Filename))
		} else {
			message.Attach(attachment.Path)
		}
	}

	if err := mailer.send(credentials, message); err != nil {
		log.Printf("mail: delivery to %s failed: %v", to, err)
		return false
	}
	return true
}

func (mailer *Mailer) dialAndSend(credentials models.EmailSettings, message *gomail.Message) error {
	dialer := gomail.NewDialer(mailer.host, mailer.port, credentials.User, credentials.Password)
	return dialer.DialAndSend(message)
}
