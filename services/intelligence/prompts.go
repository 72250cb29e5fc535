package ai

import (
	"fmt"
	"strings"

	"caresync/models"
)

const disclaimer = "This is general health information, not a medical diagnosis. Consult a doctor for medical advice."

const symptomPromptTemplate = `You are a cautious health information assistant.
A patient reports the following symptoms: %s.
Duration: %s. Age: %s. Additional notes: %s.

Respond with ONLY a JSON object, no markdown, with this exact shape:
{"possibleCauses": ["..."], "urgency": "routine|soon|urgent", "advice": "..."}`

const labPromptTemplate = `You are a cautious health information assistant.
Explain this lab report in plain language for a patient.
Test: %s
Values:
%s
Notes: %s

Respond with ONLY a JSON object, no markdown, with this exact shape:
{"summary": "...", "flagged": ["analyte names outside reference range"], "advice": "..."}`

const interactionPromptTemplate = `You are a cautious medication safety assistant.
Check the following medications for known pairwise interactions: %s.

Respond with ONLY a JSON object, no markdown, with this exact shape:
{"warnings": [{"pair": ["drug A", "drug B"], "severity": "minor|moderate|severe", "note": "..."}], "advice": "..."}
Use an empty warnings array when no interaction is known.`

const chatSystemPreamble = `You are a friendly health assistant for a patient portal.
Answer general health questions plainly and briefly. Never diagnose; recommend
seeing a doctor for anything serious. Conversation so far:`

func symptomPrompt(req models.SymptomRequest) string {
	age := "unspecified"
	if req.Age > 0 {
		age = fmt.Sprintf("%d", req.Age)
	}
	duration := req.Duration
	if duration == "" {
		duration = "unspecified"
	}
	notes := req.Notes
	if notes == "" {
		notes = "none"
	}
	return fmt.Sprintf(symptomPromptTemplate, strings.Join(req.Symptoms, ", "), duration, age, notes)
}

func labPrompt(result *models.LabResult) string {
	var lines []string
	for _, v := range result.Values {
		line := fmt.Sprintf("- %s: %g %s", v.Name, v.Value, v.Unit)
		if v.ReferenceRange != "" {
			line += " (reference " + v.ReferenceRange + ")"
		}
		if v.Flag != "" {
			line += " [" + v.Flag + "]"
		}
		lines = append(lines, line)
	}
	notes := result.Notes
	if notes == "" {
		notes = "none"
	}
	return fmt.Sprintf(labPromptTemplate, result.TestName, strings.Join(lines, "\n"), notes)
}

func interactionPrompt(medications []string) string {
	return fmt.Sprintf(interactionPromptTemplate, strings.Join(medications, ", "))
}

func chatPrompt(chatCtx *models.ChatContext, text string) string {
	var sb strings.Builder
	sb.WriteString(chatSystemPreamble)
	sb.WriteString("\n")
	for _, turn := range chatCtx.Turns {
		sb.WriteString(turn.Role)
		sb.WriteString(": ")
		sb.WriteString(turn.Text)
		sb.WriteString("\n")
	}
	sb.WriteString("user: ")
	sb.WriteString(text)
	sb.WriteString("\nassistant:")
	return sb.String()
}
