package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/companyapi/app/models"
	"github.com/shashiranjanraj/companyapi/pkg/orm"
)

// UserRepository handles database operations for User.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) q(ctx context.Context) *orm.Query {
	return orm.New(r.db).WithContext(ctx)
}

// All returns every user ordered by id.
func (r *UserRepository) All(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.q(ctx).Order("id").Get(&users)
	return users, classify("users.all", err)
}

// FindByID looks up a user by primary key.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (models.User, error) {
	var user models.User
	err := r.q(ctx).Where("id = ?", id).First(&user)
	return user, classify("users.find", err)
}

// WithEmail returns the users holding email.
func (r *UserRepository) WithEmail(ctx context.Context, email string) ([]models.User, error) {
	var users []models.User
	err := r.q(ctx).Where("email = ?", email).Get(&users)
	return users, classify("users.with_email", err)
}

// Create persists a new user and fills in its id.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return classify("users.create", r.q(ctx).Create(user))
}

// Update overwrites every column of an existing user.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	return classify("users.update", r.q(ctx).Save(user))
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return classify("users.delete", r.q(ctx).Delete(&models.User{}, id))
}
