// internal/domain/query/user_service.go
package query

import (
	"fmt"
	"strings"

	"github.com/your-org/store-admin/internal/domain/user"
	"gorm.io/gorm"
)

// UserService answers user search queries
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a new user query service
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// UserRecord is the shaped user result row. The fields form a strict
// allowlist; credential columns are never selected and cannot appear
// in serialized output.
type UserRecord struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	RegisteredAt string `json:"registered_at"`
}

// Name returns the tool name
func (s *UserService) Name() string {
	return "query_users"
}

// Description returns the tool description
func (s *UserService) Description() string {
	return "Search users by name or email. Returns only safe fields: id, name, email, and registration date. Never exposes passwords or sensitive data."
}

// Schema returns the tool parameter schema
func (s *UserService) Schema() Schema {
	return Schema{
		"search":     {Type: "string", Description: "Search term to filter users by name or email"},
		"has_orders": {Type: "boolean", Description: "If true, only return users who have placed at least one order"},
	}
}

// Handle executes the user query. has_orders is an existence check,
// not a count.
func (s *UserService) Handle(params Params) (Result, error) {
	query := s.db.Model(&user.User{}).
		Select("id, name, email, created_at")

	if search, ok := params.String("search"); ok {
		term := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", term, term)
	}

	if params.Bool("has_orders") {
		query = query.Where("EXISTS (SELECT 1 FROM orders WHERE orders.user_id = users.id)")
	}

	var users []user.User
	if err := query.Order("name ASC").Limit(resultCap).Find(&users).Error; err != nil {
		return Result{}, fmt.Errorf("failed to query users: %w", err)
	}

	if len(users) == 0 {
		return NewMessage(MsgNoUsers), nil
	}

	records := make([]UserRecord, 0, len(users))
	for _, u := range users {
		records = append(records, UserRecord{
			ID:           u.ID,
			Name:         u.Name,
			Email:        u.Email,
			RegisteredAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return NewRecords(records), nil
}
