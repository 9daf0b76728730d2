package service

import (
	"context"
	"errors"
	"testing"

	"github.com/VoloBuilds/super-coach-pro/internal/domain"
	openai "github.com/sashabaranov/go-openai"
)

// fakeCompleter returns a canned completion and records the request.
type fakeCompleter struct {
	content string
	err     error
	lastReq openai.ChatCompletionRequest
}

func (f *fakeCompleter) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: f.content}},
		},
	}, nil
}

func newTestCoach(content string) (*coachService, *fakeCompleter) {
	fake := &fakeCompleter{content: content}
	return &coachService{client: fake, configured: true, model: "test-model"}, fake
}

func TestCoachChat_PlainTextReply(t *testing.T) {
	svc, fake := newTestCoach("Try squats today")

	result, err := svc.Chat(context.Background(), "what should I train?", nil)
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if result.Message != "Try squats today" {
		t.Errorf("Message = %q", result.Message)
	}
	if result.Data != nil {
		t.Errorf("Data = %+v, want nil", result.Data)
	}
	// system prompt + user message went out; system + user + assistant came back.
	if len(fake.lastReq.Messages) != 2 {
		t.Errorf("sent %d messages, want 2", len(fake.lastReq.Messages))
	}
	if len(result.History) != 3 {
		t.Errorf("history has %d turns, want 3", len(result.History))
	}
}

func TestCoachChat_WorkoutPayload(t *testing.T) {
	svc, _ := newTestCoach(`{"message":"Push day for you","data":{"name":"Push Day","description":"","estimatedDuration":45,"exercises":[{"name":"Bench Press","sets":[],"notes":"","restBetweenSets":90}]}}`)

	result, err := svc.Chat(context.Background(), "suggest a workout", nil)
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	workout, ok := result.Data.(domain.Workout)
	if !ok {
		t.Fatalf("Data is %T, want domain.Workout", result.Data)
	}
	if workout.Name != "Push Day" || workout.EstimatedDuration != 45 {
		t.Errorf("workout = %+v", workout)
	}
}

func TestCoachChat_MealPlanPayloadFoldsToKeyedView(t *testing.T) {
	svc, _ := newTestCoach(`{"message":"Eat well","data":{"name":"Cut week","meals":[{"type":"lunch","name":"Bowl","time":"12:00","foods":[]}],"totalNutrition":{"calories":500,"protein":40,"carbs":50,"fat":10}}}`)

	result, err := svc.Chat(context.Background(), "suggest a meal plan", nil)
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	plan, ok := result.Data.(domain.MealPlan)
	if !ok {
		t.Fatalf("Data is %T, want domain.MealPlan", result.Data)
	}
	if !plan.Meals.IsKeyed() {
		t.Fatal("meals not folded to keyed view")
	}
	keyed, err := plan.Meals.Keyed()
	if err != nil {
		t.Fatalf("Keyed: %v", err)
	}
	if len(keyed) != len(domain.MealTypes) {
		t.Errorf("keyed view has %d slots, want all %d", len(keyed), len(domain.MealTypes))
	}
	if keyed[domain.MealLunch] == nil || keyed[domain.MealLunch].Name != "Bowl" {
		t.Errorf("lunch slot = %+v", keyed[domain.MealLunch])
	}
	if keyed[domain.MealBreakfast] != nil {
		t.Errorf("breakfast slot = %+v, want explicit nil", keyed[domain.MealBreakfast])
	}
}

func TestCoachChat_PayloadWithoutDiscriminatorDropped(t *testing.T) {
	svc, _ := newTestCoach(`{"message":"hm","data":{"name":"mystery"}}`)

	result, err := svc.Chat(context.Background(), "hi", nil)
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if result.Data != nil {
		t.Errorf("Data = %+v, want nil for an unclassifiable payload", result.Data)
	}
}

func TestCoachChat_HistoryPassedThrough(t *testing.T) {
	svc, fake := newTestCoach("ok")
	history := []ChatMessage{
		{Role: "user", Content: "earlier question"},
		{Role: "assistant", Content: "earlier answer"},
	}

	if _, err := svc.Chat(context.Background(), "follow-up", history); err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if len(fake.lastReq.Messages) != 4 {
		t.Fatalf("sent %d messages, want system + 2 history + user", len(fake.lastReq.Messages))
	}
	if fake.lastReq.Messages[1].Content != "earlier question" {
		t.Errorf("history not preserved in order: %+v", fake.lastReq.Messages)
	}
}

func TestCoachChat_Unconfigured(t *testing.T) {
	svc := NewCoachService("", "", 0, 0)
	if _, err := svc.Chat(context.Background(), "hello", nil); !errors.Is(err, ErrCoachNotConfigured) {
		t.Errorf("err = %v, want ErrCoachNotConfigured", err)
	}
}

func TestCoachChat_EmptyMessage(t *testing.T) {
	svc, _ := newTestCoach("ok")
	if _, err := svc.Chat(context.Background(), "", nil); !errors.Is(err, ErrEmptyChatMessage) {
		t.Errorf("err = %v, want ErrEmptyChatMessage", err)
	}
}

func TestCoachChat_UpstreamErrorPropagates(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("rate limited")}
	svc := &coachService{client: fake, configured: true, model: "test-model"}
	if _, err := svc.Chat(context.Background(), "hello", nil); err == nil || err.Error() != "rate limited" {
		t.Errorf("err = %v, want the upstream error verbatim", err)
	}
}
