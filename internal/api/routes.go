package api

import (
	"net/http"

	"github.com/VoloBuilds/super-coach-pro/internal/auth"
	"github.com/VoloBuilds/super-coach-pro/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the API surface onto the gin engine. authService may be
// nil when the deployment validates tokens against a remote identity service
// only; the register/login endpoints are then not mounted.
func SetupRoutes(
	router *gin.Engine,
	verifier auth.TokenVerifier,
	workoutService service.WorkoutService,
	mealPlanService service.MealPlanService,
	scheduleService service.ScheduleService,
	coachService service.CoachService,
	authService service.AuthService,
) {
	workoutHandler := NewWorkoutHandler(workoutService)
	mealPlanHandler := NewMealPlanHandler(mealPlanService)
	scheduleHandler := NewScheduleHandler(scheduleService)
	chatHandler := NewChatHandler(coachService)
	catalogHandler := NewCatalogHandler()

	// CORS is open to any origin; the token is the only gate.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.Use(ResolveIdentity(verifier))

	// Unmatched paths and unsupported verbs get the same envelope as every
	// other failure.
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		abortWithError(c, http.StatusNotFound, "Not Found")
	})
	router.NoMethod(func(c *gin.Context) {
		abortWithError(c, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/exercises", catalogHandler.Exercises)
		apiGroup.GET("/foods", catalogHandler.Foods)
		apiGroup.POST("/nutrition/totals", catalogHandler.Totals)

		if authService != nil {
			authGroup := apiGroup.Group("/auth")
			authHandler := NewAuthHandler(authService)
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// The original route table points the collection path and the id
		// path at the same handler set, so both are mounted for every verb;
		// handlers that need an id reject its absence themselves.
		workouts := apiGroup.Group("/workouts")
		{
			workouts.GET("", workoutHandler.List)
			workouts.POST("", workoutHandler.Create)
			workouts.PUT("", workoutHandler.Update)
			workouts.DELETE("", workoutHandler.Delete)
			workouts.GET("/:id", workoutHandler.List)
			workouts.POST("/:id", workoutHandler.Create)
			workouts.PUT("/:id", workoutHandler.Update)
			workouts.DELETE("/:id", workoutHandler.Delete)
		}

		mealPlans := apiGroup.Group("/meal-plans")
		{
			mealPlans.GET("", mealPlanHandler.List)
			mealPlans.POST("", mealPlanHandler.Create)
			mealPlans.PUT("", mealPlanHandler.Update)
			mealPlans.DELETE("", mealPlanHandler.Delete)
			mealPlans.GET("/:id", mealPlanHandler.List)
			mealPlans.POST("/:id", mealPlanHandler.Create)
			mealPlans.PUT("/:id", mealPlanHandler.Update)
			mealPlans.DELETE("/:id", mealPlanHandler.Delete)
		}

		schedules := apiGroup.Group("/workout-schedules")
		{
			schedules.GET("", scheduleHandler.List)
			schedules.POST("", scheduleHandler.Create)
			schedules.DELETE("", scheduleHandler.Delete)
			schedules.GET("/:id", scheduleHandler.List)
			schedules.DELETE("/:id", scheduleHandler.Delete)
		}

		apiGroup.POST("/chat", chatHandler.Chat)
	}
}
