package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTableNotFound  = errors.New("table not found")
	ErrSlotTaken      = errors.New("table already booked for this slot")
	ErrTableTooSmall  = errors.New("table does not seat that many")
	ErrUnknownSlot    = errors.New("unknown time slot")
	ErrMissingBooking = errors.New("date and time are required")
)

// slotTimes is the fixed daily grid every cafe offers.
var slotTimes = []string{
	"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"01:00 PM", "02:00 PM", "03:00 PM",
}

type BookingService struct {
	Repo     *repository.BookingRepository
	RestRepo *repository.RestaurantRepository
}

func NewBookingService(repo *repository.BookingRepository, restRepo *repository.RestaurantRepository) *BookingService {
	return &BookingService{Repo: repo, RestRepo: restRepo}
}

// Slots returns the bookable slot labels for a date. The grid is static; per
// table availability comes from Tables.
func (s *BookingService) Slots(cafeID, date string) ([]string, error) {
	if ok, err := s.RestRepo.Exists(cafeID); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrRestaurantNotFound
	}
	return slotTimes, nil
}

// TableView is a table plus its availability for one date/slot.
type TableView struct {
	entity.CafeTable
	Status string `json:"status"` // available | booked
}

// Tables lists a cafe's floor plan. When date and slot are given, tables with
// an existing booking are flagged.
func (s *BookingService) Tables(cafeID, date, slot string) ([]TableView, error) {
	tables, err := s.Repo.TablesForCafe(cafeID)
	if err != nil {
		return nil, err
	}

	booked := make(map[uint]bool)
	if date != "" && slot != "" {
		ids, err := s.Repo.BookedTableIDs(cafeID, date, slot)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			booked[id] = true
		}
	}

	views := make([]TableView, 0, len(tables))
	for _, t := range tables {
		v := TableView{CafeTable: t, Status: "available"}
		if booked[t.ID] {
			v.Status = "booked"
		}
		views = append(views, v)
	}
	return views, nil
}

type BookTableIn struct {
	CafeID    string `json:"cafeId" binding:"required"`
	TableID   uint   `json:"tableId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	PartySize int    `json:"partySize" binding:"min=1"`
	Name      string `json:"name"`
	Contact   string `json:"contact"`
}

// Book reserves a table for one slot. Double bookings of the same
// table/date/slot are rejected.
func (s *BookingService) Book(userKey string, in *BookTableIn) (*entity.Booking, error) {
	if in.Date == "" || in.Time == "" {
		return nil, ErrMissingBooking
	}
	if !validSlot(in.Time) {
		return nil, ErrUnknownSlot
	}

	table, err := s.Repo.FindTable(in.CafeID, in.TableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	if in.PartySize > table.Seats {
		return nil, ErrTableTooSmall
	}

	conflicts, err := s.Repo.CountConflicts(in.TableID, in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	if conflicts > 0 {
		return nil, ErrSlotTaken
	}

	booking := &entity.Booking{
		Reference: uuid.NewString(),
		CafeID:    in.CafeID,
		TableID:   in.TableID,
		Date:      in.Date,
		Time:      in.Time,
		PartySize: in.PartySize,
		Name:      in.Name,
		Contact:   in.Contact,
		UserKey:   userKey,
	}
	if err := s.Repo.Create(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) ListForUser(userKey string) ([]entity.Booking, error) {
	return s.Repo.ListForUser(userKey)
}

func validSlot(t string) bool {
	for _, s := range slotTimes {
		if s == t {
			return true
		}
	}
	return false
}
