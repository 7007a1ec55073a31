package api

import (
	"github.com/terraincognita07/nutritrack/internal/db"
	"github.com/terraincognita07/nutritrack/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.ensureDependencies()
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}
	repos := handler.repositories

	if handler.authService == nil {
		handler.authService = services.NewAuthService(repos.Patients, repos.Sessions)
	}
	if handler.scoreService == nil {
		handler.scoreService = services.NewScoreService(repos.Patients)
	}
	if handler.questionnaireSvc == nil {
		handler.questionnaireSvc = services.NewQuestionnaireService(repos.FoodIntakes)
	}
	if handler.tipService == nil {
		handler.tipService = services.NewTipService(repos.Tips, services.TipServiceOptions{
			Patients:  repos.Patients,
			Intakes:   repos.FoodIntakes,
			Generator: handler.upstreams.Generator,
			Notifier:  handler.upstreams.Notifier,
			Clock:     services.SystemClock{Location: handler.location},
			Logger:    handler.logger,
		})
	}
	if handler.clinicianService == nil {
		handler.clinicianService = services.NewClinicianService(repos.Patients, handler.upstreams.Generator, handler.adminSecret)
	}
	if handler.coachService == nil {
		handler.coachService = services.NewCoachService(handler.upstreams.Fruits, handler.upstreams.Images)
	}
}
