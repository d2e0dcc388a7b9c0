package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"employee-attendance/config"
	"employee-attendance/models"
	"employee-attendance/pkg/attendance"
	util "employee-attendance/pkg/utils"
)

const DefaultRecentLimit = 30

// AttendanceRepository is the store adapter for attendance records.
// Every I/O failure comes back as a *models.StoreError.
type AttendanceRepository interface {
	// FindOpenOrLatestToday returns the user's most recent record dated
	// today, or nil when there is none.
	FindOpenOrLatestToday(ctx context.Context, userID string) (*models.AttendanceRecord, error)
	// OpenSession starts a new session. It fails with models.ErrSessionAlreadyOpen
	// when the user already has an open session today.
	OpenSession(ctx context.Context, userID, employeeID, name string) (*models.AttendanceRecord, error)
	// CloseSession closes the user's most recent open session dated today, or
	// fails with models.ErrNoOpenSession without touching anything.
	CloseSession(ctx context.Context, userID string) (*models.AttendanceRecord, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]models.AttendanceRecord, error)

	FindByDate(ctx context.Context, date string) ([]models.AttendanceRecord, error)
	FindByUserInRange(ctx context.Context, userID, from, to string) ([]models.AttendanceRecord, error)
	// FindAll returns records between from and to inclusive, either bound
	// may be empty. Sorted by date then check-in, newest first.
	FindAll(ctx context.Context, from, to string) ([]models.AttendanceRecord, error)
}

var newestFirst = bson.D{{Key: "date", Value: -1}, {Key: "check_in", Value: -1}}

type attendanceRepository struct {
	collection *mongo.Collection
	clock      util.Clock
}

func NewAttendanceRepository(db *mongo.Database, clock util.Clock) AttendanceRepository {
	return &attendanceRepository{
		collection: db.Collection(config.AttendanceCollection),
		clock:      clock,
	}
}

func (r *attendanceRepository) FindOpenOrLatestToday(ctx context.Context, userID string) (*models.AttendanceRecord, error) {
	filter := bson.M{"user_id": userID, "date": util.TodayDateKey(r.clock)}
	opts := options.FindOne().SetSort(bson.D{{Key: "check_in", Value: -1}})

	var rec models.AttendanceRecord
	err := r.collection.FindOne(ctx, filter, opts).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, models.NewStoreError("find today's attendance", err)
	}
	return &rec, nil
}

func (r *attendanceRepository) OpenSession(ctx context.Context, userID, employeeID, name string) (*models.AttendanceRecord, error) {
	now := r.clock.Now()
	today := util.DateKey(now, r.clock.Loc())

	rec := &models.AttendanceRecord{
		ID:         primitive.NewObjectID(),
		UserID:     userID,
		EmployeeID: employeeID,
		Name:       name,
		Date:       today,
		CheckIn:    now,
		OpenKey:    models.OpenSessionKey(userID, today),
		CreatedAt:  now,
	}

	// The unique index on open_key rejects a second open session.
	if _, err := r.collection.InsertOne(ctx, rec); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, models.ErrSessionAlreadyOpen
		}
		return nil, models.NewStoreError("create attendance", err)
	}
	return rec, nil
}

func (r *attendanceRepository) CloseSession(ctx context.Context, userID string) (*models.AttendanceRecord, error) {
	filter := bson.M{
		"user_id":   userID,
		"date":      util.TodayDateKey(r.clock),
		"check_out": nil,
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "check_in", Value: -1}})

	var rec models.AttendanceRecord
	if err := r.collection.FindOne(ctx, filter, opts).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNoOpenSession
		}
		return nil, models.NewStoreError("find open attendance", err)
	}

	attendance.Close(&rec, r.clock.Now())

	update := bson.M{
		"$set": bson.M{
			"check_out":     rec.CheckOut,
			"working_hours": rec.WorkingHours,
			"status":        rec.Status,
		},
		"$unset": bson.M{"open_key": ""},
	}

	// Matching on check_out makes the close a compare-and-set.
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": rec.ID, "check_out": nil}, update)
	if err != nil {
		return nil, models.NewStoreError("close attendance", err)
	}
	if res.MatchedCount == 0 {
		return nil, models.ErrNoOpenSession
	}
	return &rec, nil
}

func (r *attendanceRepository) ListRecent(ctx context.Context, userID string, limit int) ([]models.AttendanceRecord, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	opts := options.Find().SetSort(newestFirst).SetLimit(int64(limit))
	return r.find(ctx, "list recent attendance", bson.M{"user_id": userID}, opts)
}

func (r *attendanceRepository) FindByDate(ctx context.Context, date string) ([]models.AttendanceRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "check_in", Value: -1}})
	return r.find(ctx, "find attendance by date", bson.M{"date": date}, opts)
}

func (r *attendanceRepository) FindByUserInRange(ctx context.Context, userID, from, to string) ([]models.AttendanceRecord, error) {
	filter := bson.M{"user_id": userID}
	if rng := dateRange(from, to); rng != nil {
		filter["date"] = rng
	}
	return r.find(ctx, "find attendance in range", filter, options.Find().SetSort(newestFirst))
}

func (r *attendanceRepository) FindAll(ctx context.Context, from, to string) ([]models.AttendanceRecord, error) {
	filter := bson.M{}
	if rng := dateRange(from, to); rng != nil {
		filter["date"] = rng
	}
	return r.find(ctx, "find all attendance", filter, options.Find().SetSort(newestFirst))
}

func (r *attendanceRepository) find(ctx context.Context, op string, filter bson.M, opts *options.FindOptions) ([]models.AttendanceRecord, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, models.NewStoreError(op, err)
	}
	defer cursor.Close(ctx)

	results := []models.AttendanceRecord{}
	if err = cursor.All(ctx, &results); err != nil {
		return nil, models.NewStoreError(op, fmt.Errorf("decode: %w", err))
	}
	return results, nil
}

func dateRange(from, to string) bson.M {
	rng := bson.M{}
	if from != "" {
		rng["$gte"] = from
	}
	if to != "" {
		rng["$lte"] = to
	}
	if len(rng) == 0 {
		return nil
	}
	return rng
}
