package models

// SymptomRequest is the payload for AI symptom analysis.
type SymptomRequest struct {
	Symptoms []string `json:"symptoms" binding:"required,min=1"`
	Duration string   `json:"duration"`
	Age      int      `json:"age"`
	Notes    string   `json:"notes"`
}

// SymptomAnalysis is the structured result of a symptom analysis.
type SymptomAnalysis struct {
	PossibleCauses []string `json:"possibleCauses"`
	Urgency        string   `json:"urgency"` // "routine", "soon", "urgent"
	Advice         string   `json:"advice"`
	Disclaimer     string   `json:"disclaimer"`
}

// LabInsightRequest asks the assistant to summarize a stored lab result.
type LabInsightRequest struct {
	LabResultID string `json:"labResultId" binding:"required"`
}

// LabInsight is a plain-language summary of a lab report.
type LabInsight struct {
	Summary    string   `json:"summary"`
	Flagged    []string `json:"flagged"` // analytes outside reference range
	Advice     string   `json:"advice"`
	Disclaimer string   `json:"disclaimer"`
}

// InteractionRequest asks for a medication interaction check.
type InteractionRequest struct {
	Medications []string `json:"medications" binding:"required,min=2"`
}

// InteractionWarning is one flagged medication pair.
type InteractionWarning struct {
	Pair     [2]string `json:"pair"`
	Severity string    `json:"severity"` // "minor", "moderate", "severe"
	Note     string    `json:"note"`
}

// InteractionReport is the result of an interaction check.
type InteractionReport struct {
	Warnings   []InteractionWarning `json:"warnings"`
	Advice     string               `json:"advice"`
	Disclaimer string               `json:"disclaimer"`
}

// ChatRequest is a single turn sent to the health chat assistant.
type ChatRequest struct {
	Text string `json:"text" binding:"required"`
}

// ChatResponse is the assistant's reply.
type ChatResponse struct {
	Reply      string `json:"reply"`
	Disclaimer string `json:"disclaimer,omitempty"`
}

// ChatContext is the rolling conversation state kept in Redis per user.
type ChatContext struct {
	Turns []ChatTurn `json:"turns"`
}

// ChatTurn is one exchange in a conversation.
type ChatTurn struct {
	Role string `json:"role"` // "user" or "assistant"
	Text string `json:"text"`
}
