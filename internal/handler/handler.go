package handler

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/russelescultura/sk-barangay-sub001/internal/config"
	"github.com/russelescultura/sk-barangay-sub001/internal/domain"
	"github.com/russelescultura/sk-barangay-sub001/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client
	location    *time.Location

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client, loc *time.Location) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,
		location:    loc,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.requestID)
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// Everything below requires a valid session.
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
			r.Route("/update-email", func(r chi.Router) {
				r.Post("/require", h.RequireUpdateEmail)
				r.Post("/confirm", h.ConfirmUpdateEmail)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateUser)
			r.Get("/", h.GetAllUserInfo)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteUser)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/password", h.UpdateUserPassword)
			})
		})

		r.Route("/programs", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleOfficial})).Post("/", h.CreateProgram)
			r.Get("/", h.GetAllPrograms)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.program)
				r.Get("/", h.GetProgram)
				r.Get("/occurrences", h.GetProgramOccurrences)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleOfficial})).Patch("/", h.UpdateProgram)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteProgram)
			})
		})

		r.Route("/events", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleOfficial})).Post("/", h.CreateEvent)
			r.Get("/", h.GetAllEvents)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.event)
				r.Get("/", h.GetEvent)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleOfficial})).Patch("/", h.UpdateEvent)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteEvent)
			})
		})

		r.Route("/forms", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleOfficial})).Post("/", h.CreateForm)
			r.Get("/", h.GetAllForms)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.form)
				r.Get("/", h.GetForm)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleOfficial})).Patch("/", h.UpdateForm)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteForm)
			})
		})

		r.Route("/calendar", func(r chi.Router) {
			r.Get("/", h.GetCalendar)
			r.Get("/export.ics", h.ExportCalendarICS)
		})

		r.Get("/notifications", h.GetNotifications)
	})
}
