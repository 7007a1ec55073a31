package api

import (
	"errors"
	"time"

	"github.com/terraincognita07/nutritrack/internal/db"
	"github.com/terraincognita07/nutritrack/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	adminSecret  []byte
	location     *time.Location
	cookieSecure bool
	logger       *zap.Logger
	cookieCodec  *sessionCookieCodec
	loginLimiter *attemptLimiter
	adminLimiter *attemptLimiter
	upstreams    Upstreams

	repositories     *db.Repositories
	authService      *services.AuthService
	scoreService     *services.ScoreService
	questionnaireSvc *services.QuestionnaireService
	tipService       *services.TipService
	clinicianService *services.ClinicianService
	coachService     *services.CoachService
}

// Upstreams are the outbound clients. Nil clients disable the routes that need them.
type Upstreams struct {
	Generator services.TextGenerator
	Fruits    services.FruitLookup
	Images    services.ImageSource
	Notifier  services.Notifier
}

type HandlerOptions struct {
	SecretKey    string
	AdminSecret  []byte
	Location     *time.Location
	CookieSecure bool
	Logger       *zap.Logger
	Upstreams    Upstreams
}

func NewHandler(database *gorm.DB, options HandlerOptions) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if options.SecretKey == "" {
		return nil, errors.New("secret key is required")
	}
	location := options.Location
	if location == nil {
		location = time.Local
	}
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	codec, err := newSessionCookieCodec([]byte(options.SecretKey))
	if err != nil {
		return nil, err
	}

	handler := &Handler{
		db:           database,
		adminSecret:  options.AdminSecret,
		location:     location,
		cookieSecure: options.CookieSecure,
		logger:       logger.Named("api"),
		cookieCodec:  codec,
		loginLimiter: newAttemptLimiter(loginAttemptPolicy),
		adminLimiter: newAttemptLimiter(clinicianUnlockAttemptPolicy),
		upstreams:    options.Upstreams,
	}
	return handler.withDependencies(database), nil
}
