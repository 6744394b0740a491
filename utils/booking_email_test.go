package utils

import (
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"hotel-booking/models"
)

func sampleBooking() models.Booking {
	return models.Booking{
		ID:            1,
		ReferenceCode: "BK-TEST",
		CheckInDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate:  time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		Nights:        3,
		TotalAmount:   45000,
		Status:        models.StatusPending,
		User:          &models.User{Username: "asha", Email: "asha@example.com", FirstName: "Asha"},
		Room: &models.Room{
			RoomNumber: "GR0101",
			RoomType:   "Deluxe Room",
			Hotel:      &models.Hotel{Name: "Grand Palace <Hotel>"},
		},
	}
}

func TestBookingMailerSends(t *testing.T) {
	m := NewBookingMailer(SMTPConfig{Host: "smtp.example.com", Port: "587", Username: "noreply@example.com", Password: "pw", FromName: "Hotel Booking"})

	var gotAddr string
	var gotTo []string
	var gotMsg string
	m.send = func(addr string, _ smtp.Auth, _ string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, string(msg)
		return nil
	}

	if err := m.BookingCreated(sampleBooking()); err != nil {
		t.Fatal(err)
	}
	if gotAddr != "smtp.example.com:587" || len(gotTo) != 1 || gotTo[0] != "asha@example.com" {
		t.Errorf("sent to %s %v", gotAddr, gotTo)
	}
	for _, want := range []string{"Subject: Booking received - BK-TEST", "Check-In: 2024-06-01", "Grand Palace &lt;Hotel&gt;", "Dear Asha,"} {
		if !strings.Contains(gotMsg, want) {
			t.Errorf("message missing %q", want)
		}
	}

	boom := errors.New("relay refused")
	m.send = func(string, smtp.Auth, string, []string, []byte) error { return boom }
	if err := m.BookingStatusChanged(sampleBooking()); !errors.Is(err, boom) {
		t.Errorf("expected send error, got %v", err)
	}
}

func TestBookingMailerMockMode(t *testing.T) {
	m := NewBookingMailer(SMTPConfig{})
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("unconfigured mailer must not send")
		return nil
	}
	if err := m.BookingCreated(sampleBooking()); err != nil {
		t.Fatal(err)
	}

	b := sampleBooking()
	b.User = nil
	if err := m.BookingCreated(b); err == nil {
		t.Error("expected error for booking without recipient")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"2024-06-01", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), false},
		{" 2024-06-01 ", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), false},
		{"2024-06-01T23:30:00Z", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), false},
		{"", time.Time{}, true},
		{"01/06/2024", time.Time{}, true},
		{"2024-02-30", time.Time{}, true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) err = %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if FormatDate(time.Time{}) != "N/A" {
		t.Error("zero date should format as N/A")
	}
}

func TestNewBookingReference(t *testing.T) {
	a, b := NewBookingReference(), NewBookingReference()
	if a == b || !strings.HasPrefix(a, "BK-") {
		t.Errorf("references %q %q", a, b)
	}
}
