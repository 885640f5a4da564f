package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/teamsync/errors"
	"github.com/johnquangdev/teamsync/internal/domain/entities"
	"github.com/johnquangdev/teamsync/pkg/config"
)

// Generator is the AI collaborator: one prompt in, raw model text out.
// Satisfied by the Gemini client.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service normalizes a transcript into extraction candidates
type Service struct {
	generator  Generator
	logger     *zap.Logger
	maxRetries uint64
	now        func() time.Time
}

// NewService constructs the extraction adapter
func NewService(generator Generator, cfg *config.Config, logger *zap.Logger) *Service {
	maxRetries := uint64(3)
	if cfg != nil && cfg.Gemini.MaxRetries > 0 {
		maxRetries = uint64(cfg.Gemini.MaxRetries)
	}
	return &Service{
		generator:  generator,
		logger:     logger,
		maxRetries: maxRetries,
		now:        time.Now,
	}
}

// rawExtractedAction is the wire shape the model is prompted to return
type rawExtractedAction struct {
	Description string  `json:"description"`
	Assignee    string  `json:"assignee"`
	DueDate     *string `json:"due_date"`
	Priority    string  `json:"priority"`
}

// Extract calls the AI collaborator and returns normalized candidates.
// An empty slice is a valid outcome; malformed model output is an error the
// caller decides how to handle.
func (s *Service) Extract(ctx context.Context, transcript string) ([]entities.ExtractedAction, error) {
	today := entities.DateOnly(s.now())
	prompt := buildPrompt(transcript, today)

	var responseText string
	operation := func() error {
		text, err := s.generator.Generate(ctx, prompt)
		if err != nil {
			return err
		}
		responseText = text
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), s.maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, apperrors.ErrExtractionFailed(err)
	}

	raw, err := parseResponse(responseText)
	if err != nil {
		return nil, apperrors.ErrExtractionBadResponse(err)
	}

	actions := make([]entities.ExtractedAction, 0, len(raw))
	for _, r := range raw {
		action := entities.ExtractedAction{
			Description: r.Description,
			Assignee:    r.Assignee,
			Priority:    entities.ActionItemPriority(r.Priority),
		}
		if !entities.ValidActionItemPriority(r.Priority) {
			action.Priority = entities.ActionItemPriorityMedium
		}
		if r.DueDate != nil {
			action.DueDate = normalizeDueDate(*r.DueDate, today)
		}
		actions = append(actions, action)
	}

	s.logger.Info("extraction completed",
		zap.Int("actions_count", len(actions)),
		zap.Int("transcript_length", len(transcript)),
	)

	return actions, nil
}

// parseResponse strips markdown code fences and unmarshals the JSON array
func parseResponse(text string) ([]rawExtractedAction, error) {
	text = extractJSON(text)

	if !strings.HasPrefix(text, "[") {
		return nil, fmt.Errorf("response is not a JSON array")
	}

	var raw []rawExtractedAction
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	return raw, nil
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}

func buildPrompt(transcript string, today time.Time) string {
	todayStr := today.Format("2006-01-02")
	tomorrowStr := today.AddDate(0, 0, 1).Format("2006-01-02")

	return fmt.Sprintf(`You are analyzing a meeting transcript to extract actionable tasks.

Extract ALL action items from this meeting. For each action item, identify:
1. description: A clear, specific task (e.g., "Send Q4 budget to finance team")
2. assignee: Person responsible (extract from phrases like "John will...", "Sarah to...", or "Unassigned" if unclear)
3. due_date: Deadline in YYYY-MM-DD format, or null if not mentioned
4. priority: Classify as "high" (urgent/critical), "medium" (important), or "low" (nice-to-have)

IMPORTANT: For due dates, convert relative dates to YYYY-MM-DD format based on today's date (%s):
- "today" means %s
- "tomorrow" means %s
- "Friday" means the next upcoming Friday from %s
- "next week" means %s plus 7 days
- If no due date mentioned, use null

Meeting Transcript:
%s

Return ONLY a JSON array with this exact structure:
[
  {
    "description": "string",
    "assignee": "string",
    "due_date": "YYYY-MM-DD" or null,
    "priority": "low" | "medium" | "high"
  }
]

No markdown, no explanations, just the JSON array.`,
		todayStr, todayStr, tomorrowStr, todayStr, todayStr, transcript)
}
