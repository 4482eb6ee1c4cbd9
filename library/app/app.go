package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/grouplib/library-app/library/config"
	"github.com/grouplib/library-app/library/internal/handler"
	"github.com/grouplib/library-app/library/internal/repository"
	"github.com/grouplib/library-app/library/internal/server"
	"github.com/grouplib/library-app/library/internal/service"
	"github.com/grouplib/library-app/library/migrations"
	"github.com/grouplib/library-app/pkg/kafka"
	"github.com/grouplib/library-app/pkg/logger"
	"github.com/grouplib/library-app/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "library")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}
	svc := service.NewService(repo, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	gg, ctx := errgroup.WithContext(ctx)

	var eventLog handler.EventLog = handler.NopEventLog{}
	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Warn("kafka.NewProducer, loan events disabled", zap.Error(err))
	} else {
		eventLog = handler.NewEventLog(producer, kafka.LoanTopic)
		consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.LoanConsumerGroup)
		if err != nil {
			log.Fatal("kafka.NewConsumer", zap.Error(err))
		}
		gg.Go(func() error {
			kafka.Consume(ctx, consumer, handler.NewConsumer(svc.RecordLoanEvent, log), log, kafka.LoanTopic)
			return consumer.Close()
		})
	}

	h := handler.New(svc, eventLog, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	gg.Go(func() error {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
		return nil
	})

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	cancel()
	if err := gg.Wait(); err != nil {
		log.Error("gg.Wait", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
