package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/blaisecz/study-tracker/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a study coach for a self-directed learner preparing for the UPSC exam with a mathematics optional, while also studying AI/ML and data structures & algorithms.

You receive a deterministic weekly report computed from the learner's daily logs: completion and energy trends, topic coverage, AI and DSA depth profiles, verdicts and an optional recovery recommendation, plus the current logging streak.

Rules:
- Base every statement only on the provided report. Never invent numbers.
- Do not contradict the verdicts; explain them and turn them into actions.
- If the recovery recommendation is present, lead with it.
- If data is limited (few days analyzed), say so explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences describing the week.",
  "guidance": [
    "3-5 concrete actions for next week, each tied to a verdict, risk or warning in the report."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this learner's week.

- "report.trend" holds average completion, energy and clarity with burnout and consistency labels (null when nothing was logged).
- "report.balance" counts days touching GS, MATHS and AI.
- "report.ai_depth" and "report.dsa_depth" tally activity per proficiency level (0 = lowest).
- "report.verdict" holds the prioritized verdicts and optional recovery advice.
- "streak" is the current logging streak.

JSON:

%s

Based on this data, respond in the required JSON format.`

// CoachLLM turns a deterministic weekly report into a short coaching note.
type CoachLLM interface {
	Coach(ctx context.Context, coachingCtx *domain.CoachingContext) (*domain.CoachingOutput, error)
}

// OpenAIClient implements CoachLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for coaching notes.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// Coach calls OpenAI to produce a coaching note.
func (c *OpenAIClient) Coach(ctx context.Context, coachingCtx *domain.CoachingContext) (*domain.CoachingOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(coachingCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(fmt.Sprintf(userPromptTemplate, string(contextJSON))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	return parseCoaching(resp.Choices[0].Message.Content)
}

// parseCoaching decodes the model's JSON reply, tolerating a surrounding code fence.
func parseCoaching(content string) (*domain.CoachingOutput, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}

	var output domain.CoachingOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	if output.Summary == "" {
		return nil, fmt.Errorf("%w: empty summary", ErrOpenAIResponse)
	}
	return &output, nil
}
