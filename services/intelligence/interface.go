package ai

import (
	"context"

	"caresync/models"
)

// AIService is the health-guidance assistant surface.
type AIService interface {
	AnalyzeSymptoms(ctx context.Context, req models.SymptomRequest) (*models.SymptomAnalysis, error)
	SummarizeLabResult(ctx context.Context, result *models.LabResult) (*models.LabInsight, error)
	CheckInteractions(ctx context.Context, medications []string) (*models.InteractionReport, error)
	Chat(ctx context.Context, userID string, req models.ChatRequest) (*models.ChatResponse, error)
}
