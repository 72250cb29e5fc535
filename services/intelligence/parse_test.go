package ai

import (
	"context"
	"strings"
	"testing"

	"caresync/models"
)

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name  string
		reply string
		want  string
	}{
		{"bare object", `{"a": 1}`, `{"a": 1}`},
		{"fenced", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"fenced no lang", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"leading prose", `Sure! Here you go: {"a": 1}`, `{"a": 1}`},
		{"nested braces", `{"a": {"b": 2}}`, `{"a": {"b": 2}}`},
		{"brace in string", `{"a": "closing } inside"}`, `{"a": "closing } inside"}`},
		{"no object", "I can't help with that.", ""},
		{"unterminated", `{"a": 1`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractJSON(tc.reply); got != tc.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tc.reply, got, tc.want)
			}
		})
	}
}

type fakeGenerator struct {
	reply string
	err   error
	last  string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.last = prompt
	return f.reply, f.err
}

type memoryContextStore struct {
	contexts map[string]*models.ChatContext
}

func newMemoryContextStore() *memoryContextStore {
	return &memoryContextStore{contexts: map[string]*models.ChatContext{}}
}

func (m *memoryContextStore) Get(ctx context.Context, userID string) (*models.ChatContext, error) {
	if c, ok := m.contexts[userID]; ok {
		return c, nil
	}
	return &models.ChatContext{}, nil
}

func (m *memoryContextStore) Set(ctx context.Context, userID string, chatCtx *models.ChatContext) error {
	m.contexts[userID] = chatCtx
	return nil
}

func (m *memoryContextStore) Clear(ctx context.Context, userID string) error {
	delete(m.contexts, userID)
	return nil
}

func TestAnalyzeSymptoms_StructuredReply(t *testing.T) {
	gen := &fakeGenerator{reply: `{"possibleCauses": ["tension headache"], "urgency": "routine", "advice": "Rest and hydrate."}`}
	svc := NewAIServiceWith(gen, newMemoryContextStore())

	analysis, err := svc.AnalyzeSymptoms(context.Background(), models.SymptomRequest{
		Symptoms: []string{"headache"},
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if analysis.Urgency != "routine" {
		t.Errorf("expected urgency routine, got %q", analysis.Urgency)
	}
	if len(analysis.PossibleCauses) != 1 {
		t.Errorf("expected one cause, got %v", analysis.PossibleCauses)
	}
	if analysis.Disclaimer == "" {
		t.Error("disclaimer must always be set")
	}
}

func TestAnalyzeSymptoms_UnstructuredReplyDegrades(t *testing.T) {
	gen := &fakeGenerator{reply: "You may just need some rest."}
	svc := NewAIServiceWith(gen, newMemoryContextStore())

	analysis, err := svc.AnalyzeSymptoms(context.Background(), models.SymptomRequest{
		Symptoms: []string{"fatigue"},
	})
	if err != nil {
		t.Fatalf("unstructured reply must not error, got %v", err)
	}
	if analysis.Advice != "You may just need some rest." {
		t.Errorf("raw text should land in advice, got %q", analysis.Advice)
	}
}

func TestCheckInteractions_RequiresTwoMedications(t *testing.T) {
	svc := NewAIServiceWith(&fakeGenerator{}, newMemoryContextStore())

	if _, err := svc.CheckInteractions(context.Background(), []string{"ibuprofen"}); err == nil {
		t.Fatal("expected error for a single medication")
	}
}

func TestCheckInteractions_EmptyWarnings(t *testing.T) {
	gen := &fakeGenerator{reply: `{"warnings": [], "advice": "No known interactions."}`}
	svc := NewAIServiceWith(gen, newMemoryContextStore())

	report, err := svc.CheckInteractions(context.Background(), []string{"ibuprofen", "cetirizine"})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if report.Warnings == nil || len(report.Warnings) != 0 {
		t.Errorf("expected empty warnings slice, got %v", report.Warnings)
	}
}

func TestChat_CarriesContext(t *testing.T) {
	gen := &fakeGenerator{reply: "Drinking water helps."}
	store := newMemoryContextStore()
	svc := NewAIServiceWith(gen, store)

	if _, err := svc.Chat(context.Background(), "pat-1", models.ChatRequest{Text: "How much water per day?"}); err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	saved := store.contexts["pat-1"]
	if saved == nil || len(saved.Turns) != 2 {
		t.Fatalf("expected two saved turns, got %+v", saved)
	}

	// The second turn's prompt must include the first exchange.
	if _, err := svc.Chat(context.Background(), "pat-1", models.ChatRequest{Text: "And coffee?"}); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if !strings.Contains(gen.last, "How much water per day?") {
		t.Error("prompt should carry earlier turns")
	}
}
