package ai

import (
	"context"
	"fmt"

	"caresync/models"
	"caresync/utils"

	"go.uber.org/zap"
)

// DefaultAIService implements AIService over a hosted generative model.
type DefaultAIService struct {
	generator ContentGenerator
	ctxStore  ContextStore
}

// NewDefaultAIService wires the Gemini client and context store.
func NewDefaultAIService(apiKey string, ctxStore ContextStore) *DefaultAIService {
	return &DefaultAIService{
		generator: NewGeminiClient(apiKey),
		ctxStore:  ctxStore,
	}
}

// NewAIServiceWith allows injecting a generator, used by tests.
func NewAIServiceWith(generator ContentGenerator, ctxStore ContextStore) *DefaultAIService {
	return &DefaultAIService{generator: generator, ctxStore: ctxStore}
}

// AnalyzeSymptoms asks the model for possible causes and urgency.
func (s *DefaultAIService) AnalyzeSymptoms(ctx context.Context, req models.SymptomRequest) (*models.SymptomAnalysis, error) {
	reply, err := s.generator.GenerateContent(ctx, symptomPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("symptom analysis failed: %w", err)
	}

	analysis := &models.SymptomAnalysis{}
	if !decodeReply(reply, analysis) {
		// Model broke the JSON contract; surface its text as advice.
		utils.GetLogger().Warn("symptom analysis reply was unstructured")
		analysis.Advice = reply
		analysis.Urgency = "routine"
	}
	analysis.Disclaimer = disclaimer
	return analysis, nil
}

// SummarizeLabResult asks the model for a plain-language lab summary.
func (s *DefaultAIService) SummarizeLabResult(ctx context.Context, result *models.LabResult) (*models.LabInsight, error) {
	reply, err := s.generator.GenerateContent(ctx, labPrompt(result))
	if err != nil {
		return nil, fmt.Errorf("lab summarization failed: %w", err)
	}

	insight := &models.LabInsight{}
	if !decodeReply(reply, insight) {
		utils.GetLogger().Warn("lab insight reply was unstructured")
		insight.Summary = reply
	}
	insight.Disclaimer = disclaimer
	return insight, nil
}

// CheckInteractions asks the model for pairwise medication interactions.
func (s *DefaultAIService) CheckInteractions(ctx context.Context, medications []string) (*models.InteractionReport, error) {
	if len(medications) < 2 {
		return nil, fmt.Errorf("at least two medications are required")
	}

	reply, err := s.generator.GenerateContent(ctx, interactionPrompt(medications))
	if err != nil {
		return nil, fmt.Errorf("interaction check failed: %w", err)
	}

	report := &models.InteractionReport{}
	if !decodeReply(reply, report) {
		utils.GetLogger().Warn("interaction reply was unstructured")
		report.Advice = reply
	}
	if report.Warnings == nil {
		report.Warnings = []models.InteractionWarning{}
	}
	report.Disclaimer = disclaimer
	return report, nil
}

// Chat runs one turn of the assistant conversation, carrying the rolling
// context in Redis.
func (s *DefaultAIService) Chat(ctx context.Context, userID string, req models.ChatRequest) (*models.ChatResponse, error) {
	chatCtx, err := s.ctxStore.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load chat context: %w", err)
	}

	reply, err := s.generator.GenerateContent(ctx, chatPrompt(chatCtx, req.Text))
	if err != nil {
		return nil, fmt.Errorf("chat failed: %w", err)
	}

	chatCtx.Turns = append(chatCtx.Turns,
		models.ChatTurn{Role: "user", Text: req.Text},
		models.ChatTurn{Role: "assistant", Text: reply},
	)
	if err := s.ctxStore.Set(ctx, userID, chatCtx); err != nil {
		// A dropped context only shortens the assistant's memory.
		utils.GetLogger().Warn("failed to save chat context", zap.Error(err))
	}

	return &models.ChatResponse{Reply: reply, Disclaimer: disclaimer}, nil
}
