package service

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/soulgarden/futures-bot/dictionary"
	"github.com/tevino/abool"
)

type Manager struct {
	logger      *zerolog.Logger
	interrupted *abool.AtomicBool
	timeout     time.Duration
	exit        func(code int)
}

func NewManager(logger *zerolog.Logger) *Manager {
	return &Manager{
		logger:      logger,
		interrupted: abool.New(),
		timeout:     dictionary.ShutDownDuration,
		exit:        os.Exit,
	}
}

// ListenSignal cancels the returned context on SIGINT or SIGTERM. If the process is still
// alive after the shutdown timeout it exits with code 0, an interrupt counts as a cancel.
func (s *Manager) ListenSignal() (context.Context, chan<- os.Signal) {
	interrupt := make(chan os.Signal, dictionary.SignalChLen)

	signal.Notify(interrupt, os.Interrupt)
	signal.Notify(interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		<-interrupt

		s.interrupted.Set()

		s.logger.Warn().Msg("interrupt signal received")

		cancel()

		<-time.After(s.timeout)

		s.logger.Warn().Msg("killed by shutdown timeout")

		s.exit(0)
	}()

	return ctx, interrupt
}

// Interrupted reports whether a signal arrived, so callers can tell a user cancel from a failure.
func (s *Manager) Interrupted() bool {
	return s.interrupted.IsSet()
}
