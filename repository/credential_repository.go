package repository

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"employee-attendance/config"
	"employee-attendance/models"
)

// CredentialRepository stores login credentials. Emails are unique and kept
// lower-case.
type CredentialRepository interface {
	CreateCredential(ctx context.Context, cred *models.Credential) error
	FindCredentialByEmail(ctx context.Context, email string) (*models.Credential, error)
	DeleteCredential(ctx context.Context, uid string) error
}

type credentialRepository struct {
	collection *mongo.Collection
}

func NewCredentialRepository(db *mongo.Database) CredentialRepository {
	return &credentialRepository{
		collection: db.Collection(config.CredentialCollection),
	}
}

func (r *credentialRepository) CreateCredential(ctx context.Context, cred *models.Credential) error {
	cred.Email = NormalizeEmail(cred.Email)
	if _, err := r.collection.InsertOne(ctx, cred); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrEmailInUse
		}
		return models.NewStoreError("create credential", err)
	}
	return nil
}

func (r *credentialRepository) FindCredentialByEmail(ctx context.Context, email string) (*models.Credential, error) {
	var cred models.Credential
	err := r.collection.FindOne(ctx, bson.M{"email": NormalizeEmail(email)}).Decode(&cred)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, models.NewStoreError("find credential", err)
	}
	return &cred, nil
}

func (r *credentialRepository) DeleteCredential(ctx context.Context, uid string) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": uid}); err != nil {
		return models.NewStoreError("delete credential", err)
	}
	return nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
