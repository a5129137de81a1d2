package mailer

import (
	"errors"
	"net"
	"net/smtp"

	"github.com/SamuelOla04/wig-ecom-store/internal/models"
	"github.com/jordan-wright/email"
)

// ErrNotConfigured means the SMTP transport is absent. The rest of the
// system proceeds: payment confirmation never fails because email is down.
var ErrNotConfigured = errors.New("email transport not configured")

// DeliveryError wraps a transport failure. This component logs and moves on;
// retry policy, if any, belongs to a higher-level job runner.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return "email delivery failed: " + e.Err.Error()
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Sender renders and delivers transactional email over SMTP.
type Sender struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func NewSender(host, port, username, password, from string) *Sender {
	return &Sender{Host: host, Port: port, Username: username, Password: password, From: from}
}

// Configured reports whether the transport has credentials to deliver with.
func (s *Sender) Configured() bool {
	return s.Host != "" && s.Username != "" && s.Password != ""
}

func (s *Sender) deliver(to string, msg Message) error {
	if !s.Configured() {
		return ErrNotConfigured
	}

	e := email.NewEmail()
	e.From = s.From
	e.To = []string{to}
	e.Subject = msg.Subject
	e.HTML = []byte(msg.HTML)
	e.Text = []byte(msg.Text)

	addr := net.JoinHostPort(s.Host, s.Port)
	if err := e.Send(addr, smtp.PlainAuth("", s.Username, s.Password, s.Host)); err != nil {
		return &DeliveryError{Err: err}
	}
	return nil
}

func (s *Sender) SendConfirmation(order *models.Order) error {
	return s.deliver(order.CustomerEmail, ConfirmationMessage(order))
}

func (s *Sender) SendCountdown(order *models.Order, daysLeft int) error {
	msg, err := CountdownMessage(order, daysLeft)
	if err != nil {
		return err
	}
	return s.deliver(order.CustomerEmail, msg)
}
