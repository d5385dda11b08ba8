package services

import (
	"errors"
	"testing"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

func newTestBooking(t *testing.T) (*BookingService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	seedCafes(t, db)
	tables := []entity.CafeTable{
		{CafeID: "ttmm", Number: "T1", Seats: 2, Position: "Window"},
		{CafeID: "ttmm", Number: "T2", Seats: 4, Position: "Center"},
		{CafeID: "hangout-cafe", Number: "T1", Seats: 2, Position: "Corner"},
	}
	if err := db.Create(&tables).Error; err != nil {
		t.Fatalf("seed tables: %v", err)
	}
	svc := NewBookingService(repository.NewBookingRepository(db), repository.NewRestaurantRepository(db))
	return svc, db
}

func bookIn(tableID uint, partySize int) *BookTableIn {
	return &BookTableIn{
		CafeID: "ttmm", TableID: tableID,
		Date: "2025-06-01", Time: "10:00 AM",
		PartySize: partySize, Name: "Alice", Contact: "12345",
	}
}

func tableByNumber(t *testing.T, db *gorm.DB, cafeID, number string) entity.CafeTable {
	t.Helper()
	var table entity.CafeTable
	if err := db.Where("cafe_id = ? AND number = ?", cafeID, number).First(&table).Error; err != nil {
		t.Fatalf("find table %s/%s: %v", cafeID, number, err)
	}
	return table
}

func TestSlotsForKnownCafe(t *testing.T) {
	svc, _ := newTestBooking(t)

	slots, err := svc.Slots("ttmm", "2025-06-01")
	if err != nil {
		t.Fatalf("slots: %v", err)
	}
	if len(slots) != 7 || slots[0] != "09:00 AM" || slots[6] != "03:00 PM" {
		t.Errorf("unexpected slot grid: %v", slots)
	}
}

func TestSlotsForUnknownCafe(t *testing.T) {
	svc, _ := newTestBooking(t)

	if _, err := svc.Slots("nope", "2025-06-01"); !errors.Is(err, ErrRestaurantNotFound) {
		t.Errorf("got %v, want ErrRestaurantNotFound", err)
	}
}

func TestBookTable(t *testing.T) {
	svc, db := newTestBooking(t)
	table := tableByNumber(t, db, "ttmm", "T2")

	b, err := svc.Book("u1", bookIn(table.ID, 3))
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if b.Reference == "" {
		t.Error("booking has no reference")
	}
	if b.UserKey != "u1" || b.TableID != table.ID {
		t.Errorf("unexpected booking: %+v", b)
	}
}

func TestBookConflictingSlot(t *testing.T) {
	svc, db := newTestBooking(t)
	table := tableByNumber(t, db, "ttmm", "T2")

	if _, err := svc.Book("u1", bookIn(table.ID, 2)); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if _, err := svc.Book("u2", bookIn(table.ID, 2)); !errors.Is(err, ErrSlotTaken) {
		t.Errorf("got %v, want ErrSlotTaken", err)
	}
}

func TestBookSameTableDifferentSlot(t *testing.T) {
	svc, db := newTestBooking(t)
	table := tableByNumber(t, db, "ttmm", "T2")

	if _, err := svc.Book("u1", bookIn(table.ID, 2)); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	in := bookIn(table.ID, 2)
	in.Time = "11:00 AM"
	if _, err := svc.Book("u2", in); err != nil {
		t.Errorf("different slot must be bookable: %v", err)
	}
}

func TestBookPartyTooLarge(t *testing.T) {
	svc, db := newTestBooking(t)
	table := tableByNumber(t, db, "ttmm", "T1") // seats 2

	if _, err := svc.Book("u1", bookIn(table.ID, 5)); !errors.Is(err, ErrTableTooSmall) {
		t.Errorf("got %v, want ErrTableTooSmall", err)
	}
}

func TestBookUnknownSlot(t *testing.T) {
	svc, db := newTestBooking(t)
	table := tableByNumber(t, db, "ttmm", "T1")

	in := bookIn(table.ID, 2)
	in.Time = "08:00 PM"
	if _, err := svc.Book("u1", in); !errors.Is(err, ErrUnknownSlot) {
		t.Errorf("got %v, want ErrUnknownSlot", err)
	}
}

func TestBookUnknownTable(t *testing.T) {
	svc, _ := newTestBooking(t)

	if _, err := svc.Book("u1", bookIn(9999, 2)); !errors.Is(err, ErrTableNotFound) {
		t.Errorf("got %v, want ErrTableNotFound", err)
	}
}

func TestTablesFlagBookedSlots(t *testing.T) {
	svc, db := newTestBooking(t)
	table := tableByNumber(t, db, "ttmm", "T2")

	if _, err := svc.Book("u1", bookIn(table.ID, 2)); err != nil {
		t.Fatalf("book: %v", err)
	}

	views, err := svc.Tables("ttmm", "2025-06-01", "10:00 AM")
	if err != nil {
		t.Fatalf("tables: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 ttmm tables, got %d", len(views))
	}
	for _, v := range views {
		want := "available"
		if v.ID == table.ID {
			want = "booked"
		}
		if v.Status != want {
			t.Errorf("table %s status = %q, want %q", v.Number, v.Status, want)
		}
	}
}

func TestListBookingsForUser(t *testing.T) {
	svc, db := newTestBooking(t)
	t1 := tableByNumber(t, db, "ttmm", "T1")
	t2 := tableByNumber(t, db, "ttmm", "T2")

	svc.Book("u1", bookIn(t1.ID, 2))
	svc.Book("u2", bookIn(t2.ID, 2))

	mine, err := svc.ListForUser("u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 1 || mine[0].TableID != t1.ID {
		t.Errorf("unexpected bookings: %+v", mine)
	}
}
