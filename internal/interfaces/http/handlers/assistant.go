// internal/interfaces/http/handlers/assistant.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/your-org/store-admin/internal/config"
	"github.com/your-org/store-admin/internal/domain/assistant"
	"github.com/your-org/store-admin/internal/domain/query"
	"github.com/your-org/store-admin/internal/infrastructure/database/redis"
	"gorm.io/gorm"
)

// AssistantHandler exposes tool metadata, tool execution and
// conversation persistence to the external agent.
type AssistantHandler struct {
	registry      *assistant.Registry
	conversations *assistant.ConversationStore
	config        *config.Config
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *AssistantHandler {
	return &AssistantHandler{
		registry:      assistant.DefaultRegistry(db),
		conversations: assistant.NewConversationStore(redisClient, cfg),
		config:        cfg,
	}
}

// ToolCallRequest represents a tool execution request
type ToolCallRequest struct {
	Params query.Params `json:"params"`
}

// MessageRequest represents a message appended to a conversation
type MessageRequest struct {
	Role    assistant.Role `json:"role" binding:"required"`
	Content string         `json:"content" binding:"required"`
}

// ListTools handles GET /assistant/tools
func (h *AssistantHandler) ListTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": h.registry.Tools(),
	})
}

// ExecuteTool handles POST /assistant/tools/:name
func (h *AssistantHandler) ExecuteTool(c *gin.Context) {
	name := c.Param("name")

	var req ToolCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}
	if req.Params == nil {
		req.Params = query.Params{}
	}

	output, err := h.registry.Dispatch(name, req.Params)
	if err != nil {
		if _, ok := h.registry.Get(name); !ok {
			c.JSON(http.StatusNotFound, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"tool":   name,
			"output": output,
		},
	})
}

// CreateConversation handles POST /assistant/conversations
func (h *AssistantHandler) CreateConversation(c *gin.Context) {
	conversation, err := h.conversations.Create(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create conversation",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Conversation created successfully",
		"data":    conversation,
	})
}

// GetConversation handles GET /assistant/conversations/:id
func (h *AssistantHandler) GetConversation(c *gin.Context) {
	conversation, err := h.conversations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Conversation not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": conversation,
	})
}

// PostMessage handles POST /assistant/conversations/:id/messages
func (h *AssistantHandler) PostMessage(c *gin.Context) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	switch req.Role {
	case assistant.RoleUser, assistant.RoleAssistant, assistant.RoleTool:
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid message role",
		})
		return
	}

	conversation, err := h.conversations.Append(c.Request.Context(), c.Param("id"), assistant.Message{
		Role:      req.Role,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Conversation not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Message added successfully",
		"data":    conversation,
	})
}

// DeleteConversation handles DELETE /assistant/conversations/:id
func (h *AssistantHandler) DeleteConversation(c *gin.Context) {
	if err := h.conversations.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete conversation",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Conversation deleted successfully",
	})
}
