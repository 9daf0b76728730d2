package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/VoloBuilds/super-coach-pro/internal/coach"
	"github.com/VoloBuilds/super-coach-pro/internal/domain"
	openai "github.com/sashabaranov/go-openai"
)

var (
	ErrCoachNotConfigured = errors.New("coach API key not configured")
	ErrEmptyChatMessage   = errors.New("chat message is required")
)

// ChatMessage is one turn of a coach conversation, in the wire shape the
// client sends back as history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatResult is the coach's reply. Data carries a workout or meal plan
// suggestion when the model produced one; the client saves it explicitly
// through the normal CRUD endpoints.
type ChatResult struct {
	Message string        `json:"message"`
	Data    any           `json:"data,omitempty"`
	History []ChatMessage `json:"history"`
}

// chatCompleter is the slice of the OpenAI client the service uses.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// CoachService runs one coach conversation turn per call: prompt assembly,
// a single completion request, then interpretation of the reply.
type CoachService interface {
	Chat(ctx context.Context, message string, history []ChatMessage) (*ChatResult, error)
}

type coachService struct {
	client      chatCompleter
	configured  bool
	model       string
	temperature float32
	maxTokens   int
}

// NewCoachService creates a coach service over the OpenAI API. An empty API
// key leaves the service unconfigured; calls then fail with
// ErrCoachNotConfigured instead of reaching the network.
func NewCoachService(apiKey, model string, temperature float32, maxTokens int) CoachService {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &coachService{
		client:      openai.NewClient(apiKey),
		configured:  apiKey != "",
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// Chat sends one completion request and interprets the answer. The returned
// history includes the assistant's raw completion so the client can feed the
// whole conversation back on the next turn.
func (s *coachService) Chat(ctx context.Context, message string, history []ChatMessage) (*ChatResult, error) {
	if message == "" {
		return nil, ErrEmptyChatMessage
	}
	if !s.configured {
		return nil, ErrCoachNotConfigured
	}

	messages := make([]ChatMessage, 0, len(history)+2)
	messages = append(messages, ChatMessage{Role: openai.ChatMessageRoleSystem, Content: coach.SystemPrompt})
	messages = append(messages, history...)
	messages = append(messages, ChatMessage{Role: openai.ChatMessageRoleUser, Content: message})

	req := openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("completion returned no choices")
	}
	content := resp.Choices[0].Message.Content

	reply := coach.Interpret(content)
	result := &ChatResult{
		Message: reply.Message,
		History: append(messages, ChatMessage{Role: openai.ChatMessageRoleAssistant, Content: content}),
	}
	result.Data = decodePayload(reply.Data)
	return result, nil
}

// decodePayload turns a structured suggestion into its domain shape. Meal
// plan payloads are folded into the full six-slot keyed view the plan
// builder consumes, absent slots marked with explicit nulls. A payload that
// does not decode as the shape its discriminator promised is dropped, same
// as one with no discriminator at all.
func decodePayload(data json.RawMessage) any {
	switch coach.Classify(data) {
	case coach.PayloadWorkout:
		var workout domain.Workout
		if err := json.Unmarshal(data, &workout); err != nil {
			return nil
		}
		return workout
	case coach.PayloadMealPlan:
		var plan domain.MealPlan
		if err := json.Unmarshal(data, &plan); err != nil {
			return nil
		}
		keyed, err := plan.Meals.Keyed()
		if err != nil {
			return nil
		}
		full := make(map[domain.MealType]*domain.Meal, len(domain.MealTypes))
		for _, t := range domain.MealTypes {
			full[t] = keyed[t]
		}
		plan.Meals = domain.KeyedMeals(full)
		return plan
	}
	return nil
}
