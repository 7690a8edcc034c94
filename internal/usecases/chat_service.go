package usecases

import (
	"context"
	"fmt"
	"strings"

	"project_sentinel/internal/config"
	"project_sentinel/internal/entities"
	"project_sentinel/internal/infrastructure"
	"project_sentinel/internal/interfaces"
	"project_sentinel/internal/repository"
)

// systemPrompt is the fixed instructional preamble sent on every turn.
const systemPrompt = `You are Stuart, a friendly and conversational Business Analyst AI assistant.
Your goal is to sound like a real, senior analyst, not a bot.

**Your Communication Style:**
* Talk naturally, like you're in a conversation (e.g., "Looking at the data...", "What stands out is...").
* Weave data points into flowing sentences, not just lists.
* Use phrases like "Interestingly...", "What's clear is...", "The data shows..." to sound more human.
* Avoid robotic formatting like excessive bullet points, UNLESS asked for recommendations.

**Your Response Rules:**
1.  **For simple greetings** (like 'Hello', 'Hi'): Respond with a simple, friendly greeting. Do not provide data.
2.  **For analysis questions** (like 'Why are we churning?', 'Compare contracts'): Answer using your conversational style, weaving in key data points from the context.
3.  **If the user asks for 'recommendations', 'actions', 'solutions', or 'next steps'**: Switch to a clear format. Provide a short introductory sentence, followed by a **bulleted list** of specific, actionable recommendations.
4.  **Data Source:** Always use the provided Data Summary as your single source of truth. Do not make up data.`

// riskKeywords flag queries that should carry the high-risk table.
var riskKeywords = []string{"risk", "high risk", "risky", "focus", "priority"}

// ChatService is the conversation orchestrator: it keeps per-session
// history, regenerates the data summary every turn and makes exactly
// one call to the text-generation service per user message. Prior
// turns are never resent; each call stands alone.
type ChatService struct {
	ai       interfaces.AIClient
	store    *repository.Store
	sessions *infrastructure.SessionManager
	topN     int
	weights  config.RiskWeights
	log      *infrastructure.Logger
}

func NewChatService(ai interfaces.AIClient, store *repository.Store, sessions *infrastructure.SessionManager, cfg *config.Config, log *infrastructure.Logger) *ChatService {
	return &ChatService{
		ai:       ai,
		store:    store,
		sessions: sessions,
		topN:     cfg.RiskTopN,
		weights:  cfg.Weights,
		log:      log.With("service", "ChatService"),
	}
}

// TurnResult is one completed dialogue turn. Err is set when the turn
// fell back to an error reply; Reply then carries the same text that
// was recorded as the assistant's message.
type TurnResult struct {
	SessionID string
	Reply     string
	Table     []entities.RiskEntry
	Err       string
}

// History returns the session's full message sequence, or false if the
// session doesn't exist.
func (s *ChatService) History(sessionID string) ([]entities.ChatMessage, bool) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, false
	}
	return session.History(), true
}

// HandleTurn runs one user query through the orchestrator. Failures
// never propagate as errors: per the error design, the turn records a
// visible error string as the assistant's reply and the conversation
// carries on.
func (s *ChatService) HandleTurn(ctx context.Context, sessionID, question string) TurnResult {
	session := s.sessions.GetOrCreate(sessionID)
	session.Append(entities.NewUserMessage(question))

	summary, table, err := s.buildContext(question)
	if err != nil {
		return s.failTurn(session, err)
	}

	user := fmt.Sprintf("Here is the data context:\n%s\n\nHere is my question: %s", summary, question)
	answer, err := s.ai.GenerateResponse(ctx, systemPrompt, user)
	if err != nil {
		return s.failTurn(session, err)
	}

	session.Append(entities.NewAssistantMessage(answer, table))
	s.log.Debug("turn completed", "session_id", session.ID, "with_table", table != nil)
	return TurnResult{SessionID: session.ID, Reply: answer, Table: table}
}

// buildContext regenerates the data summary for this turn, appending
// the risk table when the query asked for it. The augmented summary is
// never persisted; only the table travels with the assistant message.
func (s *ChatService) buildContext(question string) (string, []entities.RiskEntry, error) {
	ds, err := s.store.Load()
	if err != nil {
		return "", nil, err
	}
	metrics, err := ComputeMetrics(ds.Records, ds.Caps)
	if err != nil {
		return "", nil, err
	}

	summary := FormatSummary(metrics)
	var table []entities.RiskEntry
	if wantsRiskTable(question) {
		table = ScoreRisk(ds.Records, ds.Caps, s.topN, s.weights)
		summary += fmt.Sprintf("\n\nTop %d High-Risk Customers:\n%s", s.topN, FormatRiskTable(table))
	}
	return summary, table, nil
}

func (s *ChatService) failTurn(session *infrastructure.ChatSession, err error) TurnResult {
	msg := "Error: " + err.Error()
	session.Append(entities.NewAssistantMessage(msg, nil))
	s.log.Warn("turn failed", "session_id", session.ID, "error", err.Error())
	return TurnResult{SessionID: session.ID, Reply: msg, Err: msg}
}

func wantsRiskTable(question string) bool {
	q := strings.ToLower(question)
	for _, kw := range riskKeywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}
