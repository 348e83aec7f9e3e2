package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/nolanpeet/stakehouse/internal/common/clock"
	"github.com/nolanpeet/stakehouse/internal/common/uuid"
	"github.com/nolanpeet/stakehouse/internal/dice"
	"github.com/nolanpeet/stakehouse/internal/handlers/discord"
	"github.com/nolanpeet/stakehouse/internal/handlers/httpapi"
	"github.com/nolanpeet/stakehouse/internal/models"
	balanceRepo "github.com/nolanpeet/stakehouse/internal/repositories/balance"
	escrowRepo "github.com/nolanpeet/stakehouse/internal/repositories/escrow"
	recordRepo "github.com/nolanpeet/stakehouse/internal/repositories/record"
	sessionRepo "github.com/nolanpeet/stakehouse/internal/repositories/session"
	"github.com/nolanpeet/stakehouse/internal/rules"
	"github.com/nolanpeet/stakehouse/internal/rules/betting"
	"github.com/nolanpeet/stakehouse/internal/rules/boardrace"
	"github.com/nolanpeet/stakehouse/internal/rules/roleeconomy"
	"github.com/nolanpeet/stakehouse/internal/rules/scorearcade"
	anticheatService "github.com/nolanpeet/stakehouse/internal/services/anticheat"
	escrowService "github.com/nolanpeet/stakehouse/internal/services/escrow"
	"github.com/nolanpeet/stakehouse/internal/services/manager"
	matchService "github.com/nolanpeet/stakehouse/internal/services/match"
	"github.com/nolanpeet/stakehouse/internal/services/messaging"
	settlementService "github.com/nolanpeet/stakehouse/internal/services/settlement"
)

// appConfig is populated from the environment; a .env file is honored when
// present
type appConfig struct {
	ListenAddr        string        `env:"LISTEN_ADDR" envDefault:":8080"`
	RedisAddr         string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword     string        `env:"REDIS_PASSWORD"`
	ServerSecret      string        `env:"SERVER_SECRET,required"`
	MaxScorePerSecond float64       `env:"MAX_SCORE_PER_SECOND" envDefault:"25"`
	SweepInterval     time.Duration `env:"SWEEP_INTERVAL" envDefault:"30s"`
	CORSOrigins       []string      `env:"CORS_ORIGINS" envSeparator:","`

	// Discord announcements are enabled only when both are set
	DiscordToken     string `env:"DISCORD_TOKEN"`
	DiscordChannelID string `env:"DISCORD_CHANNEL_ID"`
}

func main() {
	// A missing .env is fine; the environment may be the only source
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env file: %v", err)
	}

	var cfg appConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Failed to parse configuration: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	balances, err := balanceRepo.NewRedis(&balanceRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create balance repository: %v", err)
	}

	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	tickets, err := escrowRepo.NewRedis(&escrowRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create escrow repository: %v", err)
	}

	records, err := recordRepo.NewRedis(&recordRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create record repository: %v", err)
	}

	systemClock := &clock.DefaultClock{}
	uuidGenerator := uuid.New()
	diceRoller := dice.New(&dice.Config{})

	// Initialize services
	escrowSvc, err := escrowService.New(&escrowService.Config{
		BalanceRepo:   balances,
		EscrowRepo:    tickets,
		RecordRepo:    records,
		Clock:         systemClock,
		UUIDGenerator: uuidGenerator,
	})
	if err != nil {
		log.Fatalf("Failed to create escrow service: %v", err)
	}

	settlementSvc, err := settlementService.New(&settlementService.Config{
		EscrowService: escrowSvc,
		RecordRepo:    records,
		Clock:         systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create settlement service: %v", err)
	}

	anticheatSvc, err := anticheatService.New(&anticheatService.Config{
		Clock:             systemClock,
		ServerSecret:      []byte(cfg.ServerSecret),
		MaxScorePerSecond: cfg.MaxScorePerSecond,
	})
	if err != nil {
		log.Fatalf("Failed to create anti-cheat service: %v", err)
	}

	// Initialize rule modules
	bettingModule, err := betting.New(&betting.Config{Roller: diceRoller})
	if err != nil {
		log.Fatalf("Failed to create betting module: %v", err)
	}

	raceModule, err := boardrace.New(&boardrace.Config{Roller: diceRoller})
	if err != nil {
		log.Fatalf("Failed to create board race module: %v", err)
	}

	roleModule, err := roleeconomy.New(&roleeconomy.Config{Roller: diceRoller})
	if err != nil {
		log.Fatalf("Failed to create role economy module: %v", err)
	}

	matchSvc, err := matchService.New(&matchService.Config{
		SessionRepo:       sessions,
		EscrowService:     escrowSvc,
		SettlementService: settlementSvc,
		AntiCheatService:  anticheatSvc,
		Modules: map[models.SessionKind]rules.Module{
			models.KindBettingRound: bettingModule,
			models.KindBoardRace:    raceModule,
			models.KindRoleEconomy:  roleModule,
			models.KindScoreArcade:  scorearcade.New(),
		},
		Clock:         systemClock,
		UUIDGenerator: uuidGenerator,
	})
	if err != nil {
		log.Fatalf("Failed to create match service: %v", err)
	}

	// Optional Discord announcer
	var announcer manager.Announcer
	var discordAnnouncer *discord.Announcer
	if cfg.DiscordToken != "" && cfg.DiscordChannelID != "" {
		messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
		if err != nil {
			log.Fatalf("Failed to create messaging service: %v", err)
		}

		discordAnnouncer, err = discord.New(&discord.Config{
			Token:            cfg.DiscordToken,
			ChannelID:        cfg.DiscordChannelID,
			MessagingService: messagingSvc,
		})
		if err != nil {
			log.Fatalf("Failed to create Discord announcer: %v", err)
		}

		if err := discordAnnouncer.Start(); err != nil {
			log.Fatalf("Failed to start Discord announcer: %v", err)
		}
		announcer = discordAnnouncer
	}

	managerSvc, err := manager.New(&manager.Config{
		MatchService:  matchSvc,
		SessionRepo:   sessions,
		Clock:         systemClock,
		Announcer:     announcer,
		SweepInterval: cfg.SweepInterval,
	})
	if err != nil {
		log.Fatalf("Failed to create session manager: %v", err)
	}

	if err := managerSvc.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start session manager: %v", err)
	}

	// Initialize HTTP surface
	handler, err := httpapi.New(&httpapi.Config{Manager: managerSvc})
	if err != nil {
		log.Fatalf("Failed to create HTTP handler: %v", err)
	}

	corsOptions := cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", "X-User-ID"},
	}
	if len(cfg.CORSOrigins) > 0 {
		corsOptions.AllowedOrigins = cfg.CORSOrigins
	}

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: cors.New(corsOptions).Handler(handler.Router()),
	}

	go func() {
		log.Printf("Listening on %s", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down HTTP server: %v", err)
	}

	managerSvc.Stop()

	if discordAnnouncer != nil {
		if err := discordAnnouncer.Stop(); err != nil {
			log.Printf("Error stopping Discord announcer: %v", err)
		}
	}

	log.Println("Server has been shut down")
}
