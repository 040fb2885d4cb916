package plan

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// coach turns a workout summary into a short natural-language note. The
// OpenAI client is optional: without an API key, or when the API call fails,
// the coach falls back to a template so the summary never loses its note.
type coach struct {
	client  openai.Client
	enabled bool
	logger  *slog.Logger
}

func newCoach(apiKey string, logger *slog.Logger) *coach {
	c := &coach{logger: logger}
	if apiKey != "" {
		c.client = openai.NewClient(option.WithAPIKey(apiKey))
		c.enabled = true
	}
	return c
}

const coachSystemPrompt = "You are a concise strength coach. Given workout summary data, " +
	"write a 2-3 sentence note: acknowledge the work done, call out one highlight, " +
	"and give one concrete pointer for the next session. No greetings, no emoji."

// Note produces the coach note for a summary.
func (c *coach) Note(ctx context.Context, summary WorkoutSummaryData) string {
	if !c.enabled {
		return templateNote(summary)
	}

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4o,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(coachSystemPrompt),
			openai.UserMessage(summaryPrompt(summary)),
		},
	})
	if err != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "coach note generation failed, using template",
			slog.Any("error", err))
		return templateNote(summary)
	}
	if len(completion.Choices) == 0 || strings.TrimSpace(completion.Choices[0].Message.Content) == "" {
		return templateNote(summary)
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content)
}

func summaryPrompt(summary WorkoutSummaryData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Workout type: %s\n", summary.WorkoutType)
	fmt.Fprintf(&b, "Duration: %.0f minutes\n", summary.Duration.Minutes())
	fmt.Fprintf(&b, "Sets: %d done of %d planned\n", summary.ActualSets, summary.PlannedSets)
	fmt.Fprintf(&b, "Total volume: %.0f lbs\n", summary.TotalVolume)
	for _, pr := range summary.WeightPRs {
		fmt.Fprintf(&b, "Weight PR: %s at %.1f lbs\n", pr.ExerciseName, pr.Weight)
	}
	for _, pr := range summary.VolumePRs {
		fmt.Fprintf(&b, "Volume PR: %s\n", pr.MuscleGroup)
	}
	return b.String()
}

// templateNote is the deterministic fallback note.
func templateNote(summary WorkoutSummaryData) string {
	note := fmt.Sprintf("Solid %s session: %d sets for %.0f lbs of total volume.",
		summary.WorkoutType, summary.ActualSets, summary.TotalVolume)
	if len(summary.WeightPRs) > 0 {
		note += fmt.Sprintf(" New best on %s.", summary.WeightPRs[0].ExerciseName)
	}
	if summary.ActualSets < summary.PlannedSets {
		note += " Pick up the missed sets later in the week."
	}
	return note
}
