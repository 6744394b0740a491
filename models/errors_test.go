package models

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("create: %w", ErrRoomUnavailable), "room_unavailable"},
		{fmt.Errorf("a: %w", fmt.Errorf("b: %w", ErrForbidden)), "forbidden"},
		{NewStorageError("insert", errors.New("disk full")), "storage_failure"},
		{errors.New("boom"), "unknown"},
	}
	for _, tt := range tests {
		if got := Kind(tt.err); got != tt.want {
			t.Errorf("Kind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestStorageError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStorageError("get booking", cause)
	if !errors.Is(err, ErrStorageFailure) {
		t.Error("storage error should match ErrStorageFailure")
	}
	if !errors.Is(err, cause) {
		t.Error("storage error should unwrap to its cause")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("storage error must not match other kinds")
	}
	if NewStorageError("noop", nil) != nil {
		t.Error("nil cause should give nil error")
	}
}

func TestHotelFilterNormalize(t *testing.T) {
	blank, city := "   ", " Mumbai "
	f := HotelFilter{City: &city, Query: &blank, Page: 0, PerPage: 1000}
	if err := f.Normalize(); err != nil {
		t.Fatal(err)
	}
	if f.City == nil || *f.City != "Mumbai" {
		t.Errorf("city = %v", f.City)
	}
	if f.Query != nil {
		t.Error("blank query should be dropped")
	}
	if f.Page != 1 || f.PerPage != MaxPerPage {
		t.Errorf("paging = %d/%d", f.Page, f.PerPage)
	}

	f = HotelFilter{Page: 3}
	_ = f.Normalize()
	if f.PerPage != DefaultPerPage || f.Offset() != 2*DefaultPerPage {
		t.Errorf("per_page %d offset %d", f.PerPage, f.Offset())
	}

	stars := 6
	f = HotelFilter{StarRating: &stars}
	if err := f.Normalize(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestBookingFilterValidate(t *testing.T) {
	bad := BookingStatus("lost")
	zero := uint(0)
	for name, f := range map[string]BookingFilter{
		"status":  {Status: &bad},
		"room_id": {RoomID: &zero},
		"user_id": {UserID: &zero},
		"limit":   {Limit: -1},
	} {
		if err := f.Validate(); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
	ok := StatusPending
	if err := (BookingFilter{Status: &ok, Limit: 10}).Validate(); err != nil {
		t.Errorf("valid filter rejected: %v", err)
	}
}
