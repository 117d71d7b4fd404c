package services

import (
	"context"

	"github.com/shashiranjanraj/companyapi/app/apperrors"
	"github.com/shashiranjanraj/companyapi/app/models"
	"github.com/shashiranjanraj/companyapi/app/query"
)

const userEntity = "user"

type UserStore interface {
	All(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id int64) (models.User, error)
	WithEmail(ctx context.Context, email string) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}

// UserFilter holds the optional list filters; nil matches anything.
type UserFilter struct {
	Name, Title, Roles, Email, Password *string
}

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func userEmail(u models.User) string { return u.Email }

func (s *UserService) List(ctx context.Context, f UserFilter) (out []models.User, err error) {
	defer func() { track(userEntity, "list", err) }()

	all, err := s.users.All(ctx)
	if err != nil {
		return nil, fault(ctx, userEntity, "list", err)
	}

	filter := query.New().
		Eq("name", f.Name).
		Eq("title", f.Title).
		Using("roles", f.Roles, query.RolesMatch).
		Eq("email", f.Email).
		Eq("password", f.Password)
	return query.Apply(filter, all), nil
}

func (s *UserService) Get(ctx context.Context, id int64) (user models.User, err error) {
	defer func() { track(userEntity, "get", err) }()

	user, err = s.users.FindByID(ctx, id)
	if err != nil {
		return models.User{}, lookup(ctx, userEntity, "get", id, err)
	}
	return user, nil
}

// Create stores a new user with normalized roles. The email must be unused.
func (s *UserService) Create(ctx context.Context, user models.User) (_ models.User, err error) {
	defer func() { track(userEntity, "create", err) }()

	user.ID = 0
	holders, err := s.users.WithEmail(ctx, user.Email)
	if err != nil {
		return models.User{}, fault(ctx, userEntity, "create", err)
	}
	if query.IsTaken(holders, user, userEmail) {
		return models.User{}, apperrors.Conflict("email %q is already taken", user.Email)
	}

	user.Roles = models.NormalizeRoles(user.Roles)
	if err := s.users.Create(ctx, &user); err != nil {
		return models.User{}, fault(ctx, userEntity, "create", err)
	}
	return user, nil
}

// Update overwrites user id. The uniqueness check only runs when the email
// changes.
func (s *UserService) Update(ctx context.Context, id int64, user models.User) (_ models.User, err error) {
	defer func() { track(userEntity, "update", err) }()

	if user.ID != id {
		return models.User{}, apperrors.BadRequest("path id %d does not match body id %d", id, user.ID)
	}

	stored, err := s.users.FindByID(ctx, id)
	if err != nil {
		return models.User{}, lookup(ctx, userEntity, "update", id, err)
	}

	if user.Email != stored.Email {
		holders, err := s.users.WithEmail(ctx, user.Email)
		if err != nil {
			return models.User{}, fault(ctx, userEntity, "update", err)
		}
		if query.IsTaken(holders, user, userEmail) {
			return models.User{}, apperrors.Conflict("email %q is already taken", user.Email)
		}
	}

	user.Roles = models.NormalizeRoles(user.Roles)
	if err := s.users.Update(ctx, &user); err != nil {
		return models.User{}, fault(ctx, userEntity, "update", err)
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) (err error) {
	defer func() { track(userEntity, "delete", err) }()

	if _, err := s.users.FindByID(ctx, id); err != nil {
		return lookup(ctx, userEntity, "delete", id, err)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return fault(ctx, userEntity, "delete", err)
	}
	return nil
}
