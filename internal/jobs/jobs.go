package jobs

import (
	"context"
	"time"

	"eventagency/internal/config"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

type BookingCompleter interface {
	CompletePastBookings(ctx context.Context, now time.Time) (int, error)
}

// Runner owns the background cron schedule.
type Runner struct {
	cron     *cron.Cron
	bookings BookingCompleter
	log      zerolog.Logger
}

func NewRunner(cfg config.JobsConfig, bookings BookingCompleter, log zerolog.Logger) (*Runner, error) {
	r := &Runner{
		cron:     cron.New(),
		bookings: bookings,
		log:      log.With().Str("component", "jobs").Logger(),
	}

	if cfg.AutoCompleteSchedule != "" {
		if _, err := r.cron.AddFunc(cfg.AutoCompleteSchedule, r.autoComplete); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Runner) Start() {
	r.cron.Start()
}

// Stop waits for any running job to finish.
func (r *Runner) Stop() {
	<-r.cron.Stop().Done()
}

func (r *Runner) autoComplete() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := r.bookings.CompletePastBookings(ctx, time.Now())
	if err != nil {
		r.log.Error().Err(err).Msg("auto-complete run failed")
		return
	}
	if n > 0 {
		r.log.Info().Int("completed", n).Msg("bookings auto-completed")
	}
}
