package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/garage_invoice_app/internal/apperrors"
	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/garage_invoice_app/internal/core/ports/repositories"
	"github.com/SscSPs/garage_invoice_app/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoUserRepository struct {
	BaseRepository
}

func newMongoUserRepository(db *mongo.Database, timeout time.Duration) *MongoUserRepository {
	return &MongoUserRepository{BaseRepository: newBaseRepository(db, usersCollection, timeout)}
}

// Ensure MongoUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*MongoUserRepository)(nil)

func toModelUser(d domain.User) (models.User, error) {
	id, err := parseOptionalID(d.ID)
	if err != nil {
		return models.User{}, err
	}
	m := models.User{
		ID:          id,
		Username:    d.Username,
		Email:       d.Email,
		Password:    d.PasswordHash,
		IsAdmin:     d.IsAdmin,
		AuditFields: auditFields(d.CreatedAt, d.UpdatedAt),
	}
	if d.RefreshToken != "" {
		token := d.RefreshToken
		m.RefreshToken = &token
	}
	return m, nil
}

func toDomainUser(m models.User) *domain.User {
	u := &domain.User{
		ID:           m.ID.Hex(),
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.Password,
		IsAdmin:      m.IsAdmin,
		Timestamps:   domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
	if m.RefreshToken != nil {
		u.RefreshToken = *m.RefreshToken
	}
	return u
}

func (r *MongoUserRepository) findUser(ctx context.Context, filter bson.M) (*domain.User, error) {
	var m models.User
	if err := r.findOne(ctx, filter, &m); err != nil {
		return nil, err
	}
	return toDomainUser(m), nil
}

func (r *MongoUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	id, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	return r.findUser(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findUser(ctx, bson.M{"username": username})
}

func (r *MongoUserRepository) FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	return r.findUser(ctx, bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}})
}

func (r *MongoUserRepository) FindUserByRefreshToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, apperrors.ErrNotFound
	}
	return r.findUser(ctx, bson.M{"refreshToken": token})
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	m, err := toModelUser(*user)
	if err != nil {
		return err
	}
	id, err := r.insert(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = id.Hex()
	return nil
}

func (r *MongoUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	id, err := parseID(user.ID)
	if err != nil {
		return err
	}
	err = r.set(ctx, id, bson.M{
		"username":  user.Username,
		"email":     user.Email,
		"password":  user.PasswordHash,
		"isAdmin":   user.IsAdmin,
		"updatedAt": user.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to save user %s: %w", user.ID, err)
	}
	return nil
}

func (r *MongoUserRepository) UpdateRefreshToken(ctx context.Context, userID string, token string) error {
	id, err := parseID(userID)
	if err != nil {
		return err
	}
	if err := r.set(ctx, id, bson.M{"refreshToken": token}); err != nil {
		return fmt.Errorf("failed to store refresh token for user %s: %w", userID, err)
	}
	return nil
}

func (r *MongoUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	id, err := parseID(userID)
	if err != nil {
		return err
	}
	if err := r.set(ctx, id, bson.M{"refreshToken": nil}); err != nil {
		return fmt.Errorf("failed to clear refresh token for user %s: %w", userID, err)
	}
	return nil
}
