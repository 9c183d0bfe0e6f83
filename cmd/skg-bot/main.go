// Command skg-bot posts the next F1 race countdown to a Discord channel.
//
// Usage:
//
//	skg-bot run
//	skg-bot next --date 2024-03-17
//	skg-bot announce --dry-run
//	skg-bot serve

// @title SKG Bot status API
// @version 1.0.0
// @description Read-only view of the next F1 race, the announcement countdown and the rendered Discord message.
// @host localhost:8000
// @BasePath /
// @schemes http
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/01speed1/skg-bot/internal/api"
	"github.com/01speed1/skg-bot/internal/api/handler"
	"github.com/01speed1/skg-bot/internal/cache"
	"github.com/01speed1/skg-bot/internal/config"
	"github.com/01speed1/skg-bot/internal/discord"
	"github.com/01speed1/skg-bot/internal/notifications"
	"github.com/01speed1/skg-bot/internal/provider/ergast"
	"github.com/01speed1/skg-bot/internal/race"
	"github.com/01speed1/skg-bot/internal/scheduler"

	_ "github.com/01speed1/skg-bot/docs" // swagger docs
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:          "skg-bot",
		Short:        "Discord notifier for the next F1 race",
		SilenceUsage: true,
	}

	root.AddCommand(runCmd())
	root.AddCommand(nextCmd())
	root.AddCommand(announceCmd())
	root.AddCommand(serveCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// run command
// --------------------------------------------------------------------------

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Connect to Discord and announce on countdown days",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				if err := config.ValidateForBot(a.cfg); err != nil {
					return err
				}

				// Chat commands only read; the scheduled pipeline owns the sender.
				readOnly := notifications.NewPipeline(a.feed, nil, a.builder, a.logger)
				commands := discord.NewCommands(readOnly, a.cfg.Location, a.logger)

				bot, err := discord.NewBot(a.cfg.DiscordToken, commands, a.logger)
				if err != nil {
					return err
				}
				if err := bot.Open(); err != nil {
					return err
				}
				defer bot.Close()

				pipeline := notifications.NewPipeline(a.feed, bot.Sender(a.cfg.ChannelID), a.builder, a.logger)
				sched, err := a.scheduler(pipeline)
				if err != nil {
					return err
				}

				if a.cfg.StatusAPIEnabled {
					stop := a.startStatusAPI(ctx, readOnly, sched)
					defer stop()
				}

				a.logger.Info("SKG bot running",
					"channel", a.cfg.ChannelID,
					"role", a.cfg.RoleID,
					"schedule", a.cfg.CronSpec(),
					"timezone", a.cfg.Timezone,
					"environment", a.cfg.Environment)

				sched.Run(ctx)
				a.logger.Info("Shutting down...")
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// next command
// --------------------------------------------------------------------------

func nextCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Print the next race, its countdown and whether today is an announcement day",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				today, err := a.today(date)
				if err != nil {
					return err
				}

				pipeline := notifications.NewPipeline(a.feed, nil, a.builder, a.logger)
				out, err := pipeline.Evaluate(ctx, today)
				if err != nil {
					return err
				}

				sched, err := a.scheduler(pipeline)
				if err != nil {
					return err
				}
				printOutcome(cmd.OutOrStdout(), out, sched.NextWakeAt(time.Now()))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Evaluate as if today were this date (YYYY-MM-DD)")
	return cmd
}

func printOutcome(w io.Writer, out notifications.Outcome, nextCheck time.Time) {
	fmt.Fprintf(w, "Today:       %s\n", out.Today)
	if !out.Found() {
		fmt.Fprintln(w, "Next race:   none scheduled")
		return
	}
	fmt.Fprintf(w, "Next race:   %s (round %s, %s)\n", out.Race.Name, out.Race.Round, out.Race.Season)
	fmt.Fprintf(w, "Circuit:     %s, %s\n", out.Race.Circuit.Name, out.Race.Circuit.Location.Country)
	fmt.Fprintf(w, "Date:        %s\n", out.RaceDate)
	fmt.Fprintf(w, "Countdown:   %s\n", notifications.DaysPhrase(out.DaysRemaining))
	fmt.Fprintf(w, "Announce:    %t\n", out.Notify)
	fmt.Fprintf(w, "Next check:  %s\n", nextCheck.Format(time.RFC3339))
	if out.Skipped > 0 {
		fmt.Fprintf(w, "Skipped:     %d race(s) with invalid dates\n", out.Skipped)
	}
}

// --------------------------------------------------------------------------
// announce command
// --------------------------------------------------------------------------

func announceCmd() *cobra.Command {
	var (
		date   string
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "announce",
		Short: "Send the next-race announcement now, ignoring the countdown thresholds",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				today, err := a.today(date)
				if err != nil {
					return err
				}

				var sender notifications.Sender
				if dryRun {
					sender = notifications.NewLogSender(a.logger)
				} else {
					if err := config.ValidateForBot(a.cfg); err != nil {
						return err
					}
					// REST only; no gateway connection is needed to post.
					bot, err := discord.NewBot(a.cfg.DiscordToken, nil, a.logger)
					if err != nil {
						return err
					}
					sender = bot.Sender(a.cfg.ChannelID)
				}

				pipeline := notifications.NewPipeline(a.feed, sender, a.builder, a.logger)
				out, err := pipeline.Announce(ctx, today)
				if err != nil {
					return err
				}
				a.logger.Info("Manual announcement complete",
					"race", out.Race.Name, "days", out.DaysRemaining, "dry_run", dryRun)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Announce as if today were this date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log the announcement instead of posting it")
	return cmd
}

// --------------------------------------------------------------------------
// serve command
// --------------------------------------------------------------------------

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run only the status API, without Discord",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				readOnly := notifications.NewPipeline(a.feed, nil, a.builder, a.logger)
				sched, err := a.scheduler(readOnly)
				if err != nil {
					return err
				}

				stop := a.startStatusAPI(ctx, readOnly, sched)
				defer stop()

				<-ctx.Done()
				a.logger.Info("Shutting down...")
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	feed    *ergast.Client
	builder *notifications.Builder
}

func withApp(fn func(ctx context.Context, a *app) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	feed := ergast.NewClient(cfg.RacesAPIURL, ergast.Options{
		RequestsPerMinute: cfg.FeedRequestsPerMinute,
		Timeout:           cfg.FeedTimeout,
	}, logger)

	a := &app{
		cfg:     cfg,
		logger:  logger,
		feed:    feed,
		builder: notifications.NewBuilder(cfg.RoleID),
	}
	if err := fn(ctx, a); err != nil {
		logger.Error("Command failed", "error", err)
		return err
	}
	return nil
}

func (a *app) today(override string) (race.Date, error) {
	if override != "" {
		return race.ParseDate(override)
	}
	return race.Today(time.Now(), a.cfg.Location), nil
}

func (a *app) scheduler(cycle scheduler.Cycle) (*scheduler.Scheduler, error) {
	return scheduler.New(cycle, scheduler.Options{
		Spec:     a.cfg.CronSpec(),
		Location: a.cfg.Location,
	}, a.logger)
}

// startStatusAPI serves the status API in the background and returns a
// function that shuts it down gracefully.
func (a *app) startStatusAPI(ctx context.Context, status handler.RaceStatus, wake handler.WakeSchedule) func() {
	appCache := cache.New(a.cfg.CacheEnabled)
	go appCache.Run(ctx)
	a.logger.Info("Cache initialized", "enabled", a.cfg.CacheEnabled)

	h := handler.New(status, wake, appCache, a.cfg.Location)
	srv := &http.Server{
		Addr:         a.cfg.APIAddr(),
		Handler:      api.NewRouter(h, a.cfg),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		a.logger.Info("Starting status API",
			"addr", srv.Addr,
			"docs", fmt.Sprintf("http://localhost:%d/docs/index.html", a.cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("Status API failed", "error", err)
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("Status API shutdown error", "error", err)
		}
		a.logger.Info("Status API stopped")
	}
}
