package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	log "github.com/sirupsen/logrus"

	"hotel-booking/models"
)

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	FromName string `yaml:"from_name"`
}

func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.Port != "" && c.Username != "" && c.Password != ""
}

// BookingMailer sends booking notifications. Without SMTP settings it only logs (mock send).
type BookingMailer struct {
	cfg  SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewBookingMailer(cfg SMTPConfig) *BookingMailer {
	return &BookingMailer{cfg: cfg, send: smtp.SendMail}
}

func (m *BookingMailer) BookingCreated(b models.Booking) error {
	subject := fmt.Sprintf("Booking received - %s", b.ReferenceCode)
	intro := "Thank you for booking with us! Your reservation is pending confirmation. Please complete payment."
	return m.sendBookingMail(b, subject, intro)
}

func (m *BookingMailer) BookingStatusChanged(b models.Booking) error {
	subject := fmt.Sprintf("Booking %s - %s", b.Status, b.ReferenceCode)
	intro := fmt.Sprintf("The status of your booking is now: %s.", b.Status)
	return m.sendBookingMail(b, subject, intro)
}

func (m *BookingMailer) sendBookingMail(b models.Booking, subject, intro string) error {
	if b.User == nil || strings.TrimSpace(b.User.Email) == "" {
		return fmt.Errorf("booking %d has no recipient", b.ID)
	}
	recipient := b.User.Email

	if !m.cfg.Configured() {
		log.WithFields(log.Fields{
			"to":        recipient,
			"booking":   b.ReferenceCode,
			"status":    b.Status,
			"subject":   subject,
			"mock_send": true,
		}).Info("booking email")
		return nil
	}

	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}

	guestName := safe(strings.TrimSpace(b.User.FirstName + " " + b.User.LastName))
	if guestName == "" {
		guestName = safe(b.User.Username)
	}
	hotelName, roomText := "N/A", "N/A"
	if b.Room != nil {
		roomText = safe(b.Room.RoomNumber)
		if b.Room.RoomType != "" {
			roomText = fmt.Sprintf("%s (%s)", roomText, safe(b.Room.RoomType))
		}
		if b.Room.Hotel != nil {
			hotelName = safe(b.Room.Hotel.Name)
		}
	}

	plainBody := fmt.Sprintf(
		"Dear %s,\n\n"+
			"%s\n\n"+
			"Booking Reference: %s\n"+
			"Hotel: %s\n"+
			"Room: %s\n"+
			"Check-In: %s\n"+
			"Check-Out: %s\n"+
			"Nights: %d\n"+
			"Total: %.2f\n\n"+
			"Best regards,\n%s",
		guestName, intro, b.ReferenceCode, hotelName, roomText,
		FormatDate(b.CheckInDate), FormatDate(b.CheckOutDate), b.Nights, b.TotalAmount,
		m.cfg.FromName,
	)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<body style="font-family:Arial, Helvetica, sans-serif; color:#222;">
<h2>%s</h2>
<p>Dear %s,</p>
<p>%s</p>
<p><b>Booking Reference:</b> %s<br>
<b>Hotel:</b> %s<br>
<b>Room:</b> %s<br>
<b>Check-In:</b> %s<br>
<b>Check-Out:</b> %s<br>
<b>Nights:</b> %d<br>
<b>Total:</b> %.2f</p>
<p>Best regards,<br>%s</p>
</body>
</html>`,
		htmlEscape(subject), htmlEscape(guestName), htmlEscape(intro), htmlEscape(b.ReferenceCode),
		htmlEscape(hotelName), htmlEscape(roomText),
		FormatDate(b.CheckInDate), FormatDate(b.CheckOutDate), b.Nights, b.TotalAmount,
		htmlEscape(m.cfg.FromName),
	)

	boundary := "----=_BOOKING_EMAIL_BOUNDARY"
	from := fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.Username)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipient))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", safe(subject)))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))
	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")
	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")
	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port)
	if err := m.send(addr, auth, m.cfg.Username, []string{recipient}, []byte(sb.String())); err != nil {
		log.WithError(err).WithField("to", recipient).Error("failed to send booking email")
		return err
	}

	log.WithFields(log.Fields{"to": recipient, "booking": b.ReferenceCode}).Info("booking email sent")
	return nil
}

// minimal html escaper for the small strings we use
func htmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	return replacer.Replace(s)
}
