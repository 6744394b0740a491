package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking/models"
	"hotel-booking/testutil"
)

var fixedNow = time.Date(2024, time.May, 1, 15, 4, 5, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type fakeOverlaps struct {
	found []models.Booking
	err   error
	calls int
}

func (f *fakeOverlaps) FindOverlapping(ctx context.Context, roomID uint, in, out time.Time) ([]models.Booking, error) {
	f.calls++
	return f.found, f.err
}

func TestQuote(t *testing.T) {
	engine := NewPricingEngine(fixedClock)
	room := models.Room{RoomNumber: "DE0101", PricePerNight: 15000, MaxOccupancy: 2, IsAvailable: true}

	q, err := engine.Quote(room, testutil.Date(2024, 6, 1), testutil.Date(2024, 6, 4), 2)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if q.Nights != 3 {
		t.Errorf("nights = %d, want 3", q.Nights)
	}
	if q.TotalAmount != 45000 {
		t.Errorf("total = %v, want 45000", q.TotalAmount)
	}
	if q.PricePerNight != 15000 || q.NumGuests != 2 {
		t.Errorf("unexpected quote %+v", q)
	}
}

func TestQuoteLongStay(t *testing.T) {
	engine := NewPricingEngine(fixedClock)
	room := models.Room{RoomNumber: "DE0101", PricePerNight: 100, MaxOccupancy: 2, IsAvailable: true}

	q, err := engine.Quote(room, testutil.Date(2027, 1, 1), testutil.Date(2500, 1, 1), 1)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if q.Nights != 172760 {
		t.Errorf("nights = %d, want 172760", q.Nights)
	}
	if q.TotalAmount != 17276000 {
		t.Errorf("total = %v, want 17276000", q.TotalAmount)
	}
}

func TestQuoteNormalizesTimeOfDay(t *testing.T) {
	engine := NewPricingEngine(fixedClock)
	room := models.Room{PricePerNight: 100, MaxOccupancy: 1}

	q, err := engine.Quote(room, time.Date(2024, 6, 1, 22, 0, 0, 0, time.UTC), time.Date(2024, 6, 2, 6, 0, 0, 0, time.UTC), 1)
	if err != nil {
		t.Fatal(err)
	}
	if q.Nights != 1 || !q.CheckIn.Equal(testutil.Date(2024, 6, 1)) {
		t.Errorf("got %+v", q)
	}
}

func TestQuoteRejectsInvalidRanges(t *testing.T) {
	engine := NewPricingEngine(fixedClock)
	room := models.Room{PricePerNight: 15000, MaxOccupancy: 2}

	tests := []struct {
		name    string
		in, out time.Time
	}{
		{"equal dates", testutil.Date(2024, 6, 1), testutil.Date(2024, 6, 1)},
		{"reversed dates", testutil.Date(2024, 6, 4), testutil.Date(2024, 6, 1)},
		{"check-in in the past", testutil.Date(2024, 4, 30), testutil.Date(2024, 5, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Quote(room, tt.in, tt.out, 1)
			if !errors.Is(err, models.ErrInvalidDateRange) {
				t.Fatalf("expected ErrInvalidDateRange, got %v", err)
			}
		})
	}
}

func TestQuoteAllowsCheckInToday(t *testing.T) {
	engine := NewPricingEngine(fixedClock)
	room := models.Room{PricePerNight: 10, MaxOccupancy: 1}
	if _, err := engine.Quote(room, testutil.Date(2024, 5, 1), testutil.Date(2024, 5, 2), 1); err != nil {
		t.Fatalf("check-in today should be accepted: %v", err)
	}
}

func TestQuoteOccupancy(t *testing.T) {
	engine := NewPricingEngine(fixedClock)
	room := models.Room{PricePerNight: 15000, MaxOccupancy: 2}
	in, out := testutil.Date(2024, 6, 1), testutil.Date(2024, 6, 4)

	for _, guests := range []int{3, 0, -1} {
		if _, err := engine.Quote(room, in, out, guests); !errors.Is(err, models.ErrOccupancyExceeded) {
			t.Errorf("%d guests: expected ErrOccupancyExceeded, got %v", guests, err)
		}
	}
	if _, err := engine.Quote(room, in, out, 2); err != nil {
		t.Errorf("2 guests should fit: %v", err)
	}
}

func TestCheckAvailability(t *testing.T) {
	engine := NewPricingEngine(fixedClock)
	in, out := testutil.Date(2024, 6, 1), testutil.Date(2024, 6, 4)
	ctx := context.Background()

	t.Run("closed room is unavailable without querying", func(t *testing.T) {
		f := &fakeOverlaps{}
		err := engine.CheckAvailability(ctx, f, models.Room{IsAvailable: false}, in, out)
		if !errors.Is(err, models.ErrRoomUnavailable) {
			t.Fatalf("expected ErrRoomUnavailable, got %v", err)
		}
		if f.calls != 0 {
			t.Errorf("store queried %d times", f.calls)
		}
	})

	t.Run("overlap makes it unavailable", func(t *testing.T) {
		f := &fakeOverlaps{found: []models.Booking{{CheckInDate: in, CheckOutDate: out}}}
		err := engine.CheckAvailability(ctx, f, models.Room{IsAvailable: true}, in, out)
		if !errors.Is(err, models.ErrRoomUnavailable) {
			t.Fatalf("expected ErrRoomUnavailable, got %v", err)
		}
	})

	t.Run("store failure is passed through", func(t *testing.T) {
		f := &fakeOverlaps{err: models.NewStorageError("find", errors.New("down"))}
		err := engine.CheckAvailability(ctx, f, models.Room{IsAvailable: true}, in, out)
		if !errors.Is(err, models.ErrStorageFailure) {
			t.Fatalf("expected storage failure, got %v", err)
		}
	})

	t.Run("free room", func(t *testing.T) {
		if err := engine.CheckAvailability(ctx, &fakeOverlaps{}, models.Room{IsAvailable: true}, in, out); err != nil {
			t.Fatal(err)
		}
	})
}
