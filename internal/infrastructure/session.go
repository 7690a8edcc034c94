package infrastructure

import (
	"sync"

	"github.com/google/uuid"

	"project_sentinel/internal/entities"
)

// WelcomeMessage seeds every new conversation.
const WelcomeMessage = "Hi there! I'm Stuart, your AI analyst for this churn data. " +
	"Feel free to ask me anything - I'm here to help you understand what's driving " +
	"customer churn and what we can do about it. What would you like to explore?"

// ChatSession holds one conversation's append-only message history.
type ChatSession struct {
	ID string

	mu       sync.Mutex
	messages []entities.ChatMessage
}

func (s *ChatSession) Append(m entities.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, m)
}

// History returns a copy so callers can't mutate the session.
func (s *ChatSession) History() []entities.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// SessionManager manages chat sessions for the process lifetime.
// Sessions are never persisted; a restart starts everyone fresh.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*ChatSession
}

func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*ChatSession)}
}

// GetOrCreate returns the session for id, creating it (seeded with the
// assistant greeting) when unknown. An empty id gets a fresh UUID.
func (sm *SessionManager) GetOrCreate(id string) *ChatSession {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if id == "" {
		id = uuid.NewString()
	}
	session, exists := sm.sessions[id]
	if !exists {
		session = &ChatSession{
			ID:       id,
			messages: []entities.ChatMessage{entities.NewAssistantMessage(WelcomeMessage, nil)},
		}
		sm.sessions[id] = session
	}
	return session
}

// Get returns an existing session without creating one.
func (sm *SessionManager) Get(id string) (*ChatSession, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	session, ok := sm.sessions[id]
	return session, ok
}
