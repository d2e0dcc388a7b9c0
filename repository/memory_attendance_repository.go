package repository

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-attendance/models"
	"employee-attendance/pkg/attendance"
	util "employee-attendance/pkg/utils"
)

// MemoryAttendanceRepository keeps records in process. It enforces the same
// open-session rule as the Mongo adapter and is used by tests and local runs.
type MemoryAttendanceRepository struct {
	mu      sync.Mutex
	clock   util.Clock
	records []models.AttendanceRecord

	// FailWith, when set, is returned wrapped as a StoreError by every call.
	FailWith error
}

func NewMemoryAttendanceRepository(clock util.Clock) *MemoryAttendanceRepository {
	return &MemoryAttendanceRepository{clock: clock}
}

// SetClock swaps the clock, letting tests move time between calls.
func (r *MemoryAttendanceRepository) SetClock(clock util.Clock) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clock = clock
}

// Insert stores rec as is. Tests use it to seed history.
func (r *MemoryAttendanceRepository) Insert(rec models.AttendanceRecord) models.AttendanceRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	r.records = append(r.records, rec)
	return rec
}

func (r *MemoryAttendanceRepository) FindOpenOrLatestToday(ctx context.Context, userID string) (*models.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return nil, models.NewStoreError("find today's attendance", r.FailWith)
	}

	today := util.TodayDateKey(r.clock)
	var latest *models.AttendanceRecord
	for i := range r.records {
		rec := &r.records[i]
		if rec.UserID != userID || rec.Date != today {
			continue
		}
		if latest == nil || rec.CheckIn.After(latest.CheckIn) {
			latest = rec
		}
	}
	if latest == nil {
		return nil, nil
	}
	out := *latest
	return &out, nil
}

func (r *MemoryAttendanceRepository) OpenSession(ctx context.Context, userID, employeeID, name string) (*models.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return nil, models.NewStoreError("create attendance", r.FailWith)
	}

	now := r.clock.Now()
	today := util.DateKey(now, r.clock.Loc())
	key := models.OpenSessionKey(userID, today)
	for i := range r.records {
		if r.records[i].OpenKey == key {
			return nil, models.ErrSessionAlreadyOpen
		}
	}

	rec := models.AttendanceRecord{
		ID:         primitive.NewObjectID(),
		UserID:     userID,
		EmployeeID: employeeID,
		Name:       name,
		Date:       today,
		CheckIn:    now,
		OpenKey:    key,
		CreatedAt:  now,
	}
	r.records = append(r.records, rec)
	return &rec, nil
}

func (r *MemoryAttendanceRepository) CloseSession(ctx context.Context, userID string) (*models.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return nil, models.NewStoreError("close attendance", r.FailWith)
	}

	today := util.TodayDateKey(r.clock)
	var target *models.AttendanceRecord
	for i := range r.records {
		rec := &r.records[i]
		if rec.UserID != userID || rec.Date != today || !rec.IsOpen() {
			continue
		}
		if target == nil || rec.CheckIn.After(target.CheckIn) {
			target = rec
		}
	}
	if target == nil {
		return nil, models.ErrNoOpenSession
	}

	attendance.Close(target, r.clock.Now())
	out := *target
	return &out, nil
}

func (r *MemoryAttendanceRepository) ListRecent(ctx context.Context, userID string, limit int) ([]models.AttendanceRecord, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	out, err := r.filter("list recent attendance", func(rec *models.AttendanceRecord) bool {
		return rec.UserID == userID
	})
	if err != nil {
		return nil, err
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryAttendanceRepository) FindByDate(ctx context.Context, date string) ([]models.AttendanceRecord, error) {
	return r.filter("find attendance by date", func(rec *models.AttendanceRecord) bool {
		return rec.Date == date
	})
}

func (r *MemoryAttendanceRepository) FindByUserInRange(ctx context.Context, userID, from, to string) ([]models.AttendanceRecord, error) {
	return r.filter("find attendance in range", func(rec *models.AttendanceRecord) bool {
		return rec.UserID == userID && inRange(rec.Date, from, to)
	})
}

func (r *MemoryAttendanceRepository) FindAll(ctx context.Context, from, to string) ([]models.AttendanceRecord, error) {
	return r.filter("find all attendance", func(rec *models.AttendanceRecord) bool {
		return inRange(rec.Date, from, to)
	})
}

// filter returns copies of matching records sorted newest first.
func (r *MemoryAttendanceRepository) filter(op string, keep func(*models.AttendanceRecord) bool) ([]models.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return nil, models.NewStoreError(op, r.FailWith)
	}

	out := []models.AttendanceRecord{}
	for i := range r.records {
		if keep(&r.records[i]) {
			out = append(out, r.records[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CheckIn.After(out[j].CheckIn)
	})
	return out, nil
}

func inRange(date, from, to string) bool {
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}
	return true
}
