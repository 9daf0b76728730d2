package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/VoloBuilds/super-coach-pro/internal/auth"
	"github.com/VoloBuilds/super-coach-pro/internal/domain"
	"github.com/VoloBuilds/super-coach-pro/internal/service"
	"github.com/gin-gonic/gin"
)

// staticVerifier accepts exactly one token.
type staticVerifier struct {
	token    string
	identity auth.Identity
}

func (v *staticVerifier) Verify(_ context.Context, token string) (*auth.Identity, error) {
	if token == v.token {
		id := v.identity
		return &id, nil
	}
	return nil, nil
}

// fakeWorkoutService records the arguments of the last call.
type fakeWorkoutService struct {
	lastUserID string
	lastID     string
	workouts   []domain.Workout
}

func (f *fakeWorkoutService) List(_ context.Context, userID string) ([]domain.Workout, error) {
	f.lastUserID = userID
	return f.workouts, nil
}

func (f *fakeWorkoutService) Create(_ context.Context, userID string, w domain.Workout) (domain.Workout, error) {
	f.lastUserID = userID
	w.ID = "generated"
	return w, nil
}

func (f *fakeWorkoutService) Update(_ context.Context, userID, id string, w domain.Workout) (domain.Workout, error) {
	f.lastUserID, f.lastID = userID, id
	w.ID = id
	return w, nil
}

func (f *fakeWorkoutService) Delete(_ context.Context, userID, id string) error {
	f.lastUserID, f.lastID = userID, id
	return nil
}

type fakeMealPlanService struct{}

func (fakeMealPlanService) List(context.Context, string) ([]domain.MealPlan, error) {
	return nil, nil
}
func (fakeMealPlanService) Create(_ context.Context, _ string, p domain.MealPlan) (domain.MealPlan, error) {
	p.ID = "generated"
	return p, nil
}
func (fakeMealPlanService) Update(_ context.Context, _ string, id string, p domain.MealPlan) (domain.MealPlan, error) {
	p.ID = id
	return p, nil
}
func (fakeMealPlanService) Delete(context.Context, string, string) error { return nil }

type fakeScheduleService struct{}

func (fakeScheduleService) List(context.Context, string) ([]domain.WorkoutSchedule, error) {
	return nil, nil
}
func (fakeScheduleService) Create(_ context.Context, _ string, s domain.WorkoutSchedule) (domain.WorkoutSchedule, error) {
	s.ID = "generated"
	return s, nil
}
func (fakeScheduleService) Delete(context.Context, string, string) error { return nil }

type fakeCoachService struct{}

func (fakeCoachService) Chat(_ context.Context, message string, history []service.ChatMessage) (*service.ChatResult, error) {
	return &service.ChatResult{Message: "echo: " + message, History: history}, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *fakeWorkoutService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	workouts := &fakeWorkoutService{}
	verifier := &staticVerifier{token: "valid-token", identity: auth.Identity{ID: "u1", Email: "u1@example.com"}}
	SetupRoutes(router, verifier, workouts, fakeMealPlanService{}, fakeScheduleService{}, fakeCoachService{}, nil)
	return router, workouts
}

func doRequest(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestExercisesCatalog_NoAuthNeeded(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doRequest(router, http.MethodGet, "/api/exercises", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var exercises []domain.CatalogExercise
	if err := json.Unmarshal(w.Body.Bytes(), &exercises); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(exercises) == 0 {
		t.Error("catalog is empty")
	}
}

func TestProtectedRoute_MissingTokenIs401(t *testing.T) {
	router, _ := newTestRouter(t)
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/workouts"},
		{http.MethodGet, "/api/meal-plans"},
		{http.MethodGet, "/api/workout-schedules"},
		{http.MethodPost, "/api/chat"},
	} {
		w := doRequest(router, tc.method, tc.path, "", map[string]string{"message": "hi"})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401", tc.method, tc.path, w.Code)
		}
		var envelope struct {
			Error errorBody `json:"error"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
			t.Errorf("%s %s: bad envelope: %v", tc.method, tc.path, err)
			continue
		}
		if envelope.Error.Message != "Authentication required" {
			t.Errorf("%s %s: message = %q", tc.method, tc.path, envelope.Error.Message)
		}
	}
}

func TestProtectedRoute_InvalidTokenIs401(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doRequest(router, http.MethodGet, "/api/workouts", "forged-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestUpdateWorkout_PathParamReachesService(t *testing.T) {
	router, workouts := newTestRouter(t)
	body := domain.Workout{Name: "Leg Day", EstimatedDuration: 60}
	w := doRequest(router, http.MethodPut, "/api/workouts/abc", "valid-token", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if workouts.lastID != "abc" {
		t.Errorf("service received id %q, want abc", workouts.lastID)
	}
	if workouts.lastUserID != "u1" {
		t.Errorf("service received user %q, want u1", workouts.lastUserID)
	}
}

func TestUpdateWorkout_NoIDIs400(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doRequest(router, http.MethodPut, "/api/workouts", "valid-token", domain.Workout{Name: "x"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 when the path carries no id", w.Code)
	}
}

func TestDeleteWorkout_IDTravelsInBody(t *testing.T) {
	router, workouts := newTestRouter(t)
	w := doRequest(router, http.MethodDelete, "/api/workouts", "valid-token", map[string]string{"id": "w1"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if workouts.lastID != "w1" {
		t.Errorf("service received id %q, want w1", workouts.lastID)
	}
}

func TestDeleteWorkout_MissingBodyIDIs400(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doRequest(router, http.MethodDelete, "/api/workouts", "valid-token", map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doRequest(router, http.MethodGet, "/api/unknown", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestUnsupportedVerbIs405(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doRequest(router, http.MethodPatch, "/api/workouts", "valid-token", nil)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", w.Code)
	}
}

func TestChat_EchoesThroughService(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doRequest(router, http.MethodPost, "/api/chat", "valid-token", map[string]string{"message": "hello"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var result service.ChatResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Message != "echo: hello" {
		t.Errorf("message = %q", result.Message)
	}
}

func TestNutritionTotals_PublicCompute(t *testing.T) {
	router, _ := newTestRouter(t)
	body := map[string]any{
		"meals": []map[string]any{
			{
				"items": []map[string]any{
					{
						"food": map[string]any{
							"servingSize":      100,
							"nutritionPer100g": map[string]any{"calories": 165, "protein": 31, "carbs": 0, "fat": 3.6},
						},
						"quantity": 2,
					},
				},
			},
		},
	}
	w := doRequest(router, http.MethodPost, "/api/nutrition/totals", "", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var total domain.Nutrition
	if err := json.Unmarshal(w.Body.Bytes(), &total); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if total.Calories != 330 || total.Protein != 62 {
		t.Errorf("total = %+v, want 330 kcal / 62 protein", total)
	}
}

func TestCreateMealPlan_AcceptsKeyedForm(t *testing.T) {
	router, _ := newTestRouter(t)
	body := map[string]any{
		"name": "Leg Day",
		"meals": map[string]any{
			"breakfast": nil,
			"lunch":     map[string]any{"name": "Bowl", "time": "12:00", "foods": []any{}},
			"dinner":    nil,
		},
		"totalNutrition": map[string]any{"calories": 500, "protein": 40, "carbs": 50, "fat": 10},
	}
	w := doRequest(router, http.MethodPost, "/api/meal-plans", "valid-token", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}
