package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/courtbook/internal/common"
	"github.com/dmitrijs2005/courtbook/internal/logging"
	"github.com/dmitrijs2005/courtbook/internal/validation"
	"github.com/google/uuid"
)

// PasswordHasher hashes passwords for storage and verifies login attempts.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) bool
}

// Service implements user registration, profile lookup and update, and
// credential checks on top of a Repository.
type Service struct {
	repo      Repository
	hasher    PasswordHasher
	logger    logging.Logger
	dummyHash string
}

func NewService(repo Repository, hasher PasswordHasher, logger logging.Logger) *Service {
	// A hash of a random value, compared against when the email is unknown.
	dummy, _ := hasher.Hash(uuid.NewString())
	return &Service{
		repo:      repo,
		hasher:    hasher,
		logger:    logger.With("module", "users"),
		dummyHash: dummy,
	}
}

// CreateUser validates and normalizes in, hashes the password and stores a
// new user with no reviews, no history and a zero rating.
func (s *Service) CreateUser(ctx context.Context, in RegisterInput) (*User, error) {
	if in.Password == "" {
		return nil, validation.Errorf("All inputs must be provided")
	}
	u, err := in.ProfileInput.normalize()
	if err != nil {
		return nil, err
	}
	if in.Role == "" {
		in.Role = RoleUser
	}
	if u.Role, err = ParseRole(string(in.Role)); err != nil {
		return nil, err
	}
	if _, err := validation.CheckPassword(in.Password); err != nil {
		return nil, err
	}

	if err := s.checkUnique(ctx, u, ""); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}
	u.PasswordHash = hash

	created, err := s.repo.Create(ctx, u)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user registered", "user_id", created.ID, "username", created.Username, "role", created.Role)
	return created, nil
}

// GetUserByID returns the user with the given id.
func (s *Service) GetUserByID(ctx context.Context, id string) (*User, error) {
	id, err := validation.ValidID(id, "userId")
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// GetUserHistory returns the past bookings of user id, oldest first.
func (s *Service) GetUserHistory(ctx context.Context, id string) ([]Booking, error) {
	u, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.History, nil
}

// GetUserByName returns every user whose first and last names start with the
// given values, ignoring case.
func (s *Service) GetUserByName(ctx context.Context, firstName, lastName string) ([]User, error) {
	firstName, err := validation.ValidStr(firstName, "First name")
	if err != nil {
		return nil, err
	}
	lastName, err = validation.ValidStr(lastName, "Last name")
	if err != nil {
		return nil, err
	}

	found, err := s.repo.FindByName(ctx, firstName, lastName)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: no user with that name", common.ErrNotFound)
	}
	return found, nil
}

// GetUserByUsername returns the first user whose username starts with
// username, ignoring case.
func (s *Service) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	username, err := validation.ValidStr(username, "Username")
	if err != nil {
		return nil, err
	}
	u, err := s.repo.FindByUsernamePrefix(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("%w: no user with that username", common.ErrNotFound)
		}
		return nil, err
	}
	return u, nil
}

// GetAllUsers returns every user.
func (s *Service) GetAllUsers(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// UpdateUser replaces the profile fields of user id. The password and the
// role are never changed here. Username and email uniqueness is checked before the write.
func (s *Service) UpdateUser(ctx context.Context, id string, in ProfileInput) (*User, error) {
	u, err := in.normalize()
	if err != nil {
		return nil, err
	}
	id, err = validation.ValidID(id, "userId")
	if err != nil {
		return nil, err
	}

	if err := s.checkUnique(ctx, u, id); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, u)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user updated", "user_id", updated.ID)
	return updated, nil
}

// CheckUser authenticates email and password. An unknown email and a wrong
// password fail with the same common.ErrInvalidCredentials.
func (s *Service) CheckUser(ctx context.Context, email, password string) (*Profile, error) {
	email, err := validation.ValidLoginEmail(email)
	if err != nil {
		return nil, err
	}
	if _, err := validation.CheckPassword(password); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// keep the response time of an unknown email close to a wrong password
			s.hasher.Compare(s.dummyHash, password)
			s.logger.Warn(ctx, "login failed")
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Compare(u.PasswordHash, password) {
		s.logger.Warn(ctx, "login failed", "user_id", u.ID)
		return nil, common.ErrInvalidCredentials
	}

	s.logger.Info(ctx, "user logged in", "user_id", u.ID)
	return u.Profile(), nil
}

func (s *Service) checkUnique(ctx context.Context, u *User, exceptID string) error {
	taken, err := s.repo.ExistsUsername(ctx, strings.ToLower(u.Username), exceptID)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: another user has this username", common.ErrAlreadyExists)
	}

	taken, err = s.repo.ExistsEmail(ctx, strings.ToLower(u.Email), exceptID)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: this email is already associated with an account", common.ErrAlreadyExists)
	}
	return nil
}
