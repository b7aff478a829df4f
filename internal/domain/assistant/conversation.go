// internal/domain/assistant/conversation.go
package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/store-admin/internal/config"
	"github.com/your-org/store-admin/internal/infrastructure/database/redis"
)

// Role identifies the author of a conversation message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is one entry in a conversation transcript
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Conversation is a persisted transcript
type Conversation struct {
	ID        string    `json:"id"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ConversationStore persists conversations in redis with a TTL.
// History is capped; the oldest messages fall off first.
type ConversationStore struct {
	redis  *redis.Client
	config *config.Config
}

// NewConversationStore creates a new conversation store
func NewConversationStore(client *redis.Client, cfg *config.Config) *ConversationStore {
	return &ConversationStore{
		redis:  client,
		config: cfg,
	}
}

func (s *ConversationStore) key(id string) string {
	return fmt.Sprintf("assistant:conversation:%s", id)
}

// Create starts a new empty conversation
func (s *ConversationStore) Create(ctx context.Context) (*Conversation, error) {
	now := time.Now().UTC()
	conversation := &Conversation{
		ID:        uuid.NewString(),
		Messages:  []Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.save(ctx, conversation); err != nil {
		return nil, err
	}

	return conversation, nil
}

// Get retrieves a conversation by ID
func (s *ConversationStore) Get(ctx context.Context, id string) (*Conversation, error) {
	var conversation Conversation
	if err := s.redis.GetJSON(ctx, s.key(id), &conversation); err != nil {
		return nil, fmt.Errorf("conversation not found: %w", err)
	}
	return &conversation, nil
}

// Append adds messages to a conversation and refreshes its TTL
func (s *ConversationStore) Append(ctx context.Context, id string, messages ...Message) (*Conversation, error) {
	conversation, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	conversation.Messages = append(conversation.Messages, messages...)
	if max := s.config.Assistant.MaxHistory; max > 0 && len(conversation.Messages) > max {
		conversation.Messages = conversation.Messages[len(conversation.Messages)-max:]
	}
	conversation.UpdatedAt = time.Now().UTC()

	if err := s.save(ctx, conversation); err != nil {
		return nil, err
	}

	return conversation, nil
}

// Delete removes a conversation
func (s *ConversationStore) Delete(ctx context.Context, id string) error {
	return s.redis.Del(ctx, s.key(id))
}

func (s *ConversationStore) save(ctx context.Context, conversation *Conversation) error {
	if err := s.redis.SetJSON(ctx, s.key(conversation.ID), conversation, s.config.Assistant.ConversationTTL); err != nil {
		return fmt.Errorf("failed to store conversation: %w", err)
	}
	return nil
}
