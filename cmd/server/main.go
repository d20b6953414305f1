package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/crewshift/crewshift/internal/adapters/repository/postgres"
	"github.com/crewshift/crewshift/internal/core/company"
	"github.com/crewshift/crewshift/internal/core/employee"
	"github.com/crewshift/crewshift/internal/core/invite"
	"github.com/crewshift/crewshift/internal/core/rating"
	"github.com/crewshift/crewshift/internal/core/shift"
	"github.com/crewshift/crewshift/internal/core/violation"
	"github.com/crewshift/crewshift/internal/platform/config"
	pg "github.com/crewshift/crewshift/internal/platform/db/postgres"
	"github.com/crewshift/crewshift/internal/platform/notify"
	"github.com/crewshift/crewshift/internal/platform/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	dbPool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to initialize database pool: %v", err)
	}
	defer dbPool.Close()

	txManager := pg.NewTransactionManager(dbPool)

	invalidatorOpts := []notify.Option{notify.WithLogger(logger)}
	if cfg.Cache.QueueSize > 0 {
		invalidatorOpts = append(invalidatorOpts, notify.WithQueueSize(cfg.Cache.QueueSize))
	}
	invalidator := notify.New(func(ctx context.Context, companyID string) error {
		logger.DebugContext(ctx, "company stats cache invalidated", slog.String("company_id", companyID))
		return nil
	}, invalidatorOpts...)
	defer invalidator.Close()

	companyRepo := postgres.NewCompanyRepository(dbPool)
	employeeRepo := postgres.NewEmployeeRepository(dbPool)
	shiftRepo := postgres.NewShiftRepository(dbPool)
	intervalRepo := postgres.NewIntervalRepository(dbPool)
	violationRepo := postgres.NewViolationRepository(dbPool)
	ratingRepo := postgres.NewRatingRepository(dbPool)
	inviteRepo := postgres.NewInviteRepository(dbPool)

	companySvc := company.NewService(companyRepo, nil, txManager)
	employeeSvc := employee.NewService(employeeRepo, nil, txManager)
	shiftSvc := shift.NewService(shiftRepo, shift.NewTracker(intervalRepo), nil, txManager, invalidator)
	ratingSvc := rating.NewService(ratingRepo, ratingRepo, nil, txManager)
	violationSvc := violation.NewService(violationRepo, violationRepo, ratingSvc, nil, txManager, invalidator, logger)
	inviteSvc := invite.NewService(inviteRepo, nil, txManager, nil, cfg.Invites.Retention)

	grpcServer := server.New(cfg.Server.ListenAddr, server.Services{
		Company:   companySvc,
		Employee:  employeeSvc,
		Shift:     shiftSvc,
		Violation: violationSvc,
		Rating:    ratingSvc,
		Invite:    inviteSvc,
	})

	log.Printf("gRPC server listening on %s", cfg.Server.ListenAddr)

	if err := grpcServer.Run(ctx); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
}
