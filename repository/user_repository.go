package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"employee-attendance/config"
	"employee-attendance/models"
)

// UserRepository stores employee profiles keyed by account uid. Employee
// codes are unique, CreateUser fails with models.ErrEmployeeIDInUse otherwise.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByID(ctx context.Context, uid string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	CountUsers(ctx context.Context) (int, error)
}

type userRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection(config.UserCollection),
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrEmployeeIDInUse
		}
		return models.NewStoreError("create user profile", err)
	}
	return nil
}

func (r *userRepository) FindUserByID(ctx context.Context, uid string) (*models.User, error) {
	return r.findOne(ctx, "find user by id", bson.M{"_id": uid})
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, "find user by email", bson.M{"email": email})
}

func (r *userRepository) findOne(ctx context.Context, op string, filter bson.M) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, models.NewStoreError(op, err)
	}
	return &user, nil
}

func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "employee_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, models.NewStoreError("list users", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err = cursor.All(ctx, &users); err != nil {
		return nil, models.NewStoreError("decode users", err)
	}
	return users, nil
}

// CountUsers counts every provisioned profile, admins included.
func (r *userRepository) CountUsers(ctx context.Context) (int, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, models.NewStoreError("count users", err)
	}
	return int(total), nil
}
