package bootstrap

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"

	"manualbot-be/internal/config"
	"manualbot-be/internal/controller"
	"manualbot-be/internal/pkg/logger"
	"manualbot-be/internal/pkg/mailer"
	"manualbot-be/internal/repository/contract"
	"manualbot-be/internal/repository/implementation"
	"manualbot-be/internal/repository/memory"
	redisrepo "manualbot-be/internal/repository/redis"
	"manualbot-be/internal/service"
	"manualbot-be/pkg/dialogue"
	"manualbot-be/pkg/events"
	pktNats "manualbot-be/pkg/nats"
	"manualbot-be/pkg/search"
)

type Container struct {
	Logger logger.ILogger

	// Controllers
	WebhookController controller.IWebhookController

	// Background services (exposed for main.go to run)
	NotificationService *service.NotificationService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	log := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Repositories
	userRepo := implementation.NewUserRepository(db)
	manualRepo := implementation.NewManualRepository(db)
	inquiryRepo := implementation.NewInquiryRepository(db)
	sessionRepo := newSessionRepository(cfg, log)

	// Event bus. The gochannel bus feeds in-process consumers; the NATS
	// relay mirrors events out for multi-instance deployments when reachable.
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))

	var relay events.Relay
	if cfg.App.NatsURL != "" {
		natsPublisher, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Warn("Bootstrap", "NATS relay unavailable, continuing without it", map[string]interface{}{
				"url":   cfg.App.NatsURL,
				"error": err.Error(),
			})
		} else {
			relay = natsPublisher
		}
	}
	publisher := events.NewBusPublisher(pubSub, relay, log)

	// Core
	engine := search.NewEngine(manualRepo, log)
	dialogues := dialogue.NewController(sessionRepo, userRepo, inquiryRepo, publisher, dialogue.Config{
		RegistrationTTL: cfg.Session.RegistrationTTL,
		InquiryTTL:      cfg.Session.InquiryTTL,
	}, log)
	botService := service.NewBotService(userRepo, inquiryRepo, engine, dialogues, log)

	mail := mailer.NewEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Email, cfg.SMTP.Password, cfg.SMTP.Email)
	notificationService := service.NewNotificationService(pubSub, mail, cfg.App.AdminRecipients, log)

	return &Container{
		Logger:              log,
		WebhookController:   controller.NewWebhookController(botService, cfg.Line.ChannelSecret, log),
		NotificationService: notificationService,
	}
}

// newSessionRepository picks the configured session backend. A broken redis
// configuration degrades to the in-memory store rather than blocking boot.
func newSessionRepository(cfg *config.Config, log logger.ILogger) contract.SessionRepository {
	if cfg.Session.Backend == "redis" {
		repo, err := redisrepo.NewSessionRepository(cfg.Session.RedisURL, log)
		if err == nil {
			return repo
		}
		log.Warn("Bootstrap", "Redis session store unavailable, falling back to memory", map[string]interface{}{
			"url":   cfg.Session.RedisURL,
			"error": err.Error(),
		})
	}
	return memory.NewSessionRepository()
}
