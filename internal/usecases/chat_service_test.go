package usecases

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"project_sentinel/internal/config"
	"project_sentinel/internal/entities"
	"project_sentinel/internal/infrastructure"
	"project_sentinel/internal/repository"
)

type stubAI struct {
	reply    string
	err      error
	lastUser string
	calls    int
}

func (s *stubAI) GenerateResponse(ctx context.Context, system, user string) (string, error) {
	s.calls++
	s.lastUser = user
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

const testCSV = `customer_id,churned,monthly_revenue,contract_type,onboarding_completed,engagement_score
C1,Yes,1000,Monthly,No,20
C2,No,2000,Monthly,No,50
C3,No,3000,Annual,Yes,90
`

func newTestChatService(t *testing.T, ai *stubAI) *ChatService {
	t.Helper()
	path := filepath.Join(t.TempDir(), "customers.csv")
	if err := os.WriteFile(path, []byte(testCSV), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	cfg := &config.Config{
		RiskTopN: 10,
		Weights:  stockWeights,
	}
	return NewChatService(ai, repository.NewStore(path), infrastructure.NewSessionManager(), cfg, infrastructure.NewNopLogger())
}

func TestHandleTurnPlainQuestion(t *testing.T) {
	ai := &stubAI{reply: "Looking at the data, churn sits at 33.3%."}
	svc := newTestChatService(t, ai)

	res := svc.HandleTurn(context.Background(), "", "hello")
	if res.Err != "" {
		t.Fatalf("unexpected error: %q", res.Err)
	}
	if res.SessionID == "" {
		t.Fatal("expected generated session id")
	}
	if res.Reply != ai.reply {
		t.Errorf("Reply = %q", res.Reply)
	}
	if res.Table != nil {
		t.Errorf("plain question should not carry a table, got %d rows", len(res.Table))
	}
	if ai.calls != 1 {
		t.Errorf("LLM called %d times, want exactly 1", ai.calls)
	}
	if !strings.Contains(ai.lastUser, "Dataset Overview:") {
		t.Errorf("data summary missing from prompt:\n%s", ai.lastUser)
	}
	if strings.Contains(ai.lastUser, "High-Risk Customers") {
		t.Errorf("risk table leaked into plain question prompt:\n%s", ai.lastUser)
	}
	if !strings.Contains(ai.lastUser, "Here is my question: hello") {
		t.Errorf("question missing from prompt:\n%s", ai.lastUser)
	}
}

func TestHandleTurnRiskKeyword(t *testing.T) {
	ai := &stubAI{reply: "Focus on these accounts."}
	svc := newTestChatService(t, ai)

	res := svc.HandleTurn(context.Background(), "", "Which customers should be our PRIORITY?")
	if res.Err != "" {
		t.Fatalf("unexpected error: %q", res.Err)
	}
	if len(res.Table) != 2 {
		t.Fatalf("got %d table rows, want 2 active customers", len(res.Table))
	}
	if res.Table[0].CustomerID != "C2" {
		t.Errorf("top risk = %q, want C2", res.Table[0].CustomerID)
	}
	if !strings.Contains(ai.lastUser, "Top 10 High-Risk Customers:") {
		t.Errorf("risk table missing from prompt:\n%s", ai.lastUser)
	}
}

func TestHandleTurnNoTableForGreeting(t *testing.T) {
	ai := &stubAI{reply: "Hi!"}
	svc := newTestChatService(t, ai)
	res := svc.HandleTurn(context.Background(), "", "hello there")
	if res.Table != nil {
		t.Errorf("greeting got a table: %v", res.Table)
	}
}

func TestHandleTurnGeneratorFailure(t *testing.T) {
	ai := &stubAI{err: errors.New("upstream unavailable")}
	svc := newTestChatService(t, ai)

	res := svc.HandleTurn(context.Background(), "sess-1", "why churn?")
	if res.Err == "" {
		t.Fatal("expected error result")
	}
	if !strings.HasPrefix(res.Reply, "Error: ") {
		t.Errorf("Reply = %q, want Error: prefix", res.Reply)
	}

	// The failed turn stays in history as an assistant message, so the
	// next turn is unaffected.
	history, ok := svc.History("sess-1")
	if !ok {
		t.Fatal("session missing")
	}
	last := history[len(history)-1]
	if last.Role != entities.RoleAssistant {
		t.Errorf("last role = %q, want assistant", last.Role)
	}
	if !strings.Contains(last.Content, "upstream unavailable") {
		t.Errorf("last content = %q", last.Content)
	}

	ai.err = nil
	ai.reply = "recovered"
	res = svc.HandleTurn(context.Background(), "sess-1", "try again")
	if res.Err != "" || res.Reply != "recovered" {
		t.Errorf("follow-up turn failed: %+v", res)
	}
}

func TestHandleTurnSessionContinuity(t *testing.T) {
	ai := &stubAI{reply: "ok"}
	svc := newTestChatService(t, ai)

	first := svc.HandleTurn(context.Background(), "", "hello")
	second := svc.HandleTurn(context.Background(), first.SessionID, "and again")
	if second.SessionID != first.SessionID {
		t.Errorf("session id changed: %q vs %q", first.SessionID, second.SessionID)
	}

	history, ok := svc.History(first.SessionID)
	if !ok {
		t.Fatal("session missing")
	}
	// Greeting + 2 user turns + 2 assistant replies.
	if len(history) != 5 {
		t.Fatalf("history length = %d, want 5", len(history))
	}
	if history[0].Role != entities.RoleAssistant || !strings.Contains(history[0].Content, "Stuart") {
		t.Errorf("history[0] should be the greeting, got %+v", history[0])
	}
}

func TestWantsRiskTable(t *testing.T) {
	cases := map[string]bool{
		"show me the HIGH RISK customers": true,
		"what should we focus on":         true,
		"top priority accounts":           true,
		"which customers are risky":       true,
		"hello":                           false,
		"why are we churning?":            false,
	}
	for q, want := range cases {
		if got := wantsRiskTable(q); got != want {
			t.Errorf("wantsRiskTable(%q) = %v, want %v", q, got, want)
		}
	}
}
