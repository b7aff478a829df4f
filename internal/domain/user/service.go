// internal/domain/user/service.go
package user

import (
	"fmt"
	"strings"

	"github.com/your-org/store-admin/internal/config"
	"github.com/your-org/store-admin/internal/pkg/auth"
	"gorm.io/gorm"
)

// Service handles user business logic
type Service struct {
	db       *gorm.DB
	config   *config.Config
	password *auth.PasswordManager
}

// NewService creates a new user service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:       db,
		config:   cfg,
		password: auth.NewPasswordManager(cfg),
	}
}

// RegisterRequest represents user registration data
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserUpdateRequest represents user update data
type UserUpdateRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UserListRequest represents user list query parameters
type UserListRequest struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=20"`
	Search string `form:"search"`
}

// UserListResponse represents user list with pagination
type UserListResponse struct {
	Users      []User `json:"users"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"total_pages"`
}

// Register creates a new user with a hashed password
func (s *Service) Register(req *RegisterRequest) (*User, error) {
	email := strings.ToLower(req.Email)

	var existing User
	if result := s.db.Where("email = ?", email).First(&existing); result.Error == nil {
		return nil, fmt.Errorf("user with email %s already exists", email)
	}

	hashed, err := s.password.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := User{
		Name:     req.Name,
		Email:    email,
		Password: hashed,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// Authenticate checks email/password credentials and returns the user
func (s *Service) Authenticate(email, password string) (*User, error) {
	var user User
	result := s.db.Where("email = ?", strings.ToLower(email)).First(&user)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("invalid credentials")
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", result.Error)
	}

	if err := s.password.VerifyPassword(password, user.Password); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	return &user, nil
}

// GetUsers retrieves users with filtering and pagination
func (s *Service) GetUsers(req *UserListRequest) (*UserListResponse, error) {
	var users []User
	var total int64

	query := s.db.Model(&User{})

	if req.Search != "" {
		search := "%" + strings.ToLower(req.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", search, search)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	offset := (req.Page - 1) * req.Limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(req.Limit).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))

	return &UserListResponse{
		Users:      users,
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: totalPages,
	}, nil
}

// GetUser retrieves a single user by ID
func (s *Service) GetUser(id uint) (*User, error) {
	var user User
	result := s.db.Where("id = ?", id).First(&user)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", result.Error)
	}

	return &user, nil
}

// UpdateUser updates an existing user
func (s *Service) UpdateUser(id uint, req *UserUpdateRequest) (*User, error) {
	var user User
	result := s.db.Where("id = ?", id).First(&user)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		email := strings.ToLower(*req.Email)
		var existing User
		if result := s.db.Where("email = ? AND id <> ?", email, id).First(&existing); result.Error == nil {
			return nil, fmt.Errorf("user with email %s already exists", email)
		}
		updates["email"] = email
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	return &user, nil
}

// DeleteUser deletes a user. Deletion is blocked while any order still
// references the user.
func (s *Service) DeleteUser(id uint) error {
	var orderCount int64
	s.db.Table("orders").Where("user_id = ?", id).Count(&orderCount)
	if orderCount > 0 {
		return fmt.Errorf("cannot delete user with existing orders")
	}

	result := s.db.Where("id = ?", id).Delete(&User{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}
