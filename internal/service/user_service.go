package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/carson-networks/cashbook-server/internal/storage"
	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

// User is the public profile of an account holder. The password hash never
// leaves the service.
type User struct {
	ID          uuid.UUID
	Email       string
	FirstName   string
	LastName    string
	Phone       string
	CompanyName string
	Country     string
	CreatedAt   time.Time
}

type RegisterInput struct {
	Email       string `validate:"required,email,max=254"`
	Password    string `validate:"required,min=6,maxbytes=72"`
	FirstName   string `validate:"required,max=100"`
	LastName    string `validate:"max=100"`
	Phone       string `validate:"omitempty,max=32"`
	CompanyName string `validate:"omitempty,max=200"`
	Country     string `validate:"omitempty,max=100"`
}

// ProfileUpdate carries the editable profile fields. Nil fields are left alone.
type ProfileUpdate struct {
	FirstName *string `validate:"omitnil,min=1,max=100"`
	LastName  *string `validate:"omitnil,max=100"`
}

// UserService owns registration and credential checks.
type UserService struct {
	storage    *storage.Storage
	validate   *validator.Validate
	bcryptCost int
	dummyHash  []byte
}

func NewUserService(store *storage.Storage, bcryptCost int) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	// Compared against when the email is unknown so both failure paths cost a hash.
	dummyHash, _ := bcrypt.GenerateFromPassword([]byte("cashbook-unknown-user"), bcryptCost)
	validate := validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("maxbytes", maxBytes)
	return &UserService{
		storage:    store,
		validate:   validate,
		bcryptCost: bcryptCost,
		dummyHash:  dummyHash,
	}
}

// Register creates a user. A taken email yields ErrConflict and invalid input
// a validator.ValidationErrors.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*User, error) {
	if err := s.validate.StructCtx(ctx, input); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("bcrypt.GenerateFromPassword: %w", err)
	}

	row, err := s.storage.Users.Insert(ctx, &sqlconfig.UserCreate{
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		CompanyName:  input.CompanyName,
		Country:      input.Country,
	})
	if errors.Is(err, sqlconfig.ErrDuplicate) {
		return nil, fmt.Errorf("email already registered: %w", ErrConflict)
	}
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	result := userFromStorage(row)
	return &result, nil
}

// Login checks the credentials. Unknown email and wrong password both
// return ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*User, error) {
	row, err := s.storage.Users.FindByEmail(ctx, email)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	result := userFromStorage(row)
	return &result, nil
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	row, err := s.storage.Users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user: %w", err)
	}
	result := userFromStorage(row)
	return &result, nil
}

// UpdateProfile changes the caller's first and last name.
func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, input ProfileUpdate) (*User, error) {
	if err := s.validate.StructCtx(ctx, input); err != nil {
		return nil, err
	}

	update := &sqlconfig.UserUpdate{}
	if input.FirstName != nil {
		update.FirstName = omit.From(*input.FirstName)
	}
	if input.LastName != nil {
		update.LastName = omit.From(*input.LastName)
	}
	row, err := s.storage.Users.Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	result := userFromStorage(row)
	return &result, nil
}

// maxBytes bounds the encoded length of a string. bcrypt rejects passwords
// over 72 bytes, which a 72 character multibyte password can exceed.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

func userFromStorage(row *sqlconfig.User) User {
	return User{
		ID:          row.ID,
		Email:       row.Email,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		Phone:       row.Phone,
		CompanyName: row.CompanyName,
		Country:     row.Country,
		CreatedAt:   row.CreatedAt,
	}
}
