package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	UserCollection       = "users"
	AttendanceCollection = "attendance"
	CredentialCollection = "credentials"
)

func MongoConnect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Println("Connected to MongoDB!")
	return client, nil
}

// InitDatabase creates the indexes the repositories rely on. The sparse
// unique index on open_key is what keeps a user to one open session a day.
func InitDatabase(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	attendanceIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "open_key", Value: 1}},
			Options: options.Index().SetName("uniq_open_session").SetUnique(true).SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}, {Key: "check_in", Value: -1}},
			Options: options.Index().SetName("user_date_checkin"),
		},
		{
			Keys:    bson.D{{Key: "date", Value: -1}, {Key: "check_in", Value: -1}},
			Options: options.Index().SetName("date_checkin"),
		},
	}
	if _, err := db.Collection(AttendanceCollection).Indexes().CreateMany(ctx, attendanceIndexes); err != nil {
		return fmt.Errorf("create attendance indexes: %w", err)
	}

	credentialIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("uniq_email").SetUnique(true),
	}
	if _, err := db.Collection(CredentialCollection).Indexes().CreateOne(ctx, credentialIndex); err != nil {
		return fmt.Errorf("create credential index: %w", err)
	}

	userIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "employee_id", Value: 1}},
		Options: options.Index().SetName("uniq_employee_id").SetUnique(true),
	}
	if _, err := db.Collection(UserCollection).Indexes().CreateOne(ctx, userIndex); err != nil {
		return fmt.Errorf("create user index: %w", err)
	}

	log.Println("Database indexes ready")
	return nil
}

func DisconnectDB(client *mongo.Client) {
	if client == nil {
		return
	}
	if err := client.Disconnect(context.Background()); err != nil {
		log.Printf("Error disconnecting from MongoDB: %v", err)
		return
	}
	log.Println("Disconnected from MongoDB")
}
