package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"

	"noah/internal/auth"
	"noah/internal/checkin"
	"noah/internal/community"
	"noah/internal/config"
	"noah/internal/crisis"
	"noah/internal/goal"
	"noah/internal/http/handler"
	mw "noah/internal/http/middleware"
	"noah/internal/jobs"
	"noah/internal/journal"
	"noah/internal/logger"
	"noah/internal/meditation"
	"noah/internal/mood"
	"noah/internal/therapy"
)

func NewRouter(cfg config.Config, db *gorm.DB, jwtSvc *auth.JWT, log *logger.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ah := &handler.AuthHandler{DB: db, JWT: jwtSvc}
	r.Post("/auth/register", ah.Register)
	r.Post("/auth/login", ah.Login)

	me := &handler.MeHandler{DB: db}
	r.With(auth.RequireAuth(jwtSvc)).Get("/me", me.Me)

	jobsRepo := &jobs.Repo{DB: db}

	checkInSvc := checkin.NewService(&checkin.GormStore{DB: db}, jobsRepo, log)
	checkInH := &handler.CheckInHandler{Svc: checkInSvc}
	r.Route("/checkins", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))
		r.Post("/", checkInH.Submit)
		r.Get("/", checkInH.List)
		r.Get("/questions", checkInH.Questions)
	})

	moodH := &handler.MoodHandler{Svc: mood.NewService(db)}
	r.Route("/moods", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))
		r.Post("/", moodH.Create)
		r.Get("/", moodH.List)
		r.Get("/analytics", moodH.Analytics)
	})

	journalH := &handler.JournalHandler{Svc: journal.NewService(db)}
	r.Route("/journal", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))
		r.Post("/", journalH.Create)
		r.Get("/", journalH.List)
		r.Get("/analytics", journalH.Analytics)
		r.Get("/prompts", journalH.Prompts)
	})

	crisisH := &handler.CrisisHandler{Svc: crisis.NewService(db)}
	r.Route("/crisis", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))
		r.Get("/safety-plan", crisisH.GetSafetyPlan)
		r.Put("/safety-plan", crisisH.SaveSafetyPlan)
		r.Post("/contacts", crisisH.AddContact)
		r.Get("/contacts", crisisH.ListContacts)
		r.Delete("/contacts/{id}", crisisH.DeleteContact)
		r.Get("/resources", crisisH.ListResources)
		r.Get("/helplines", crisisH.ListHelplines)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAdmin())
			r.Post("/resources", crisisH.CreateResource)
			r.Post("/resources/{id}/verify", crisisH.VerifyResource)
		})
	})

	communityH := &handler.CommunityHandler{Svc: community.NewService(db)}
	r.Route("/community", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))
		r.Get("/groups", communityH.ListGroups)
		r.Post("/groups", communityH.CreateGroup)
		r.Get("/groups/{id}/posts", communityH.ListPosts)
		r.Post("/groups/{id}/posts", communityH.CreatePost)
		r.Get("/posts/{id}/comments", communityH.ListComments)
		r.Post("/posts/{id}/comments", communityH.CreateComment)
		r.Post("/posts/{id}/like", communityH.LikePost)
		r.Post("/reports", communityH.Report)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAdmin())
			r.Get("/reports", communityH.OpenReports)
			r.Patch("/reports/{id}", communityH.ResolveReport)
		})
	})

	therapyH := &handler.TherapyHandler{Svc: therapy.NewService(db)}
	r.Route("/therapy", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))
		r.Get("/exercises", therapyH.ListExercises)
		r.Post("/exercises/{id}/complete", therapyH.CompleteExercise)
		r.Post("/thought-records", therapyH.CreateThoughtRecord)
		r.Get("/thought-records", therapyH.ListThoughtRecords)
	})

	goalH := &handler.GoalHandler{Svc: goal.NewService(db)}
	r.Route("/goals", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))
		r.Post("/", goalH.Create)
		r.Get("/", goalH.List)
		r.Post("/{id}/progress", goalH.Progress)
	})

	meditationH := &handler.MeditationHandler{Svc: meditation.NewService(db)}
	r.Route("/meditations", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))
		r.Get("/", meditationH.List)
		r.Post("/{id}/complete", meditationH.Complete)
		r.Get("/stats", meditationH.Stats)
	})

	return r
}
