package entities

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one entry in a session's conversation history. The
// variant is carried by Role: user messages never have a table,
// assistant messages may attach the risk table computed that turn.
type ChatMessage struct {
	Role      Role        `json:"role"`
	Content   string      `json:"content"`
	Table     []RiskEntry `json:"table,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

func NewUserMessage(content string) ChatMessage {
	return ChatMessage{Role: RoleUser, Content: content, CreatedAt: time.Now()}
}

func NewAssistantMessage(content string, table []RiskEntry) ChatMessage {
	return ChatMessage{Role: RoleAssistant, Content: content, Table: table, CreatedAt: time.Now()}
}
