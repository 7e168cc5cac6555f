package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labi-le/clipsync/internal/bridge"
	"github.com/labi-le/clipsync/internal/lock"
	"github.com/labi-le/clipsync/internal/metadata"
	"github.com/labi-le/clipsync/internal/notification"
	"github.com/labi-le/clipsync/internal/service"
	"github.com/labi-le/clipsync/pkg/clipboard"
	"github.com/labi-le/clipsync/pkg/clipboard/wlclipboard"
	"github.com/labi-le/clipsync/pkg/clipboard/xclip"
	"github.com/labi-le/clipsync/pkg/wake"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"
)

const (
	wakeClipnotify = "clipnotify"
	wakeXFixes     = "xfixes"
)

type action struct {
	verbose        bool
	showVersion    bool
	showHelp       bool
	notify         bool
	installService bool

	wake string
}

func parseFlags() action {
	var act action

	flag.BoolVar(&act.verbose, "verbose", false, "Verbose logs")
	flag.BoolVar(&act.notify, "notify", false, "Show a desktop notification for every transfer")
	flag.BoolVarP(&act.showVersion, "version", "v", false, "Show version")
	flag.BoolVarP(&act.showHelp, "help", "h", false, "Show help")
	flag.BoolVar(&act.installService, "install-service", false, "Install systemd-unit and start the service")
	flag.StringVar(&act.wake, "wake", wakeClipnotify, "What wakes the sync up: clipnotify or xfixes")

	flag.Parse()

	if act.wake != wakeClipnotify && act.wake != wakeXFixes {
		_, _ = fmt.Fprintf(os.Stderr, "invalid wake source %q\n", act.wake)
		flag.Usage()
		os.Exit(1)
	}

	return act
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := parseFlags()

	if cfg.showHelp {
		flag.Usage()
		return
	}

	applyTagsOverrides(&cfg)
	logger := initLogger(cfg.verbose)

	logger.Info().
		Str("v", metadata.Version).
		Str("commit_hash", metadata.CommitHash).
		Str("build_time", metadata.BuildTime).
		Send()

	if cfg.showVersion {
		// ^
		return
	}

	if cfg.verbose {
		logger.Info().Msg("verbose mode enabled")
	}

	if cfg.installService {
		if err := service.InstallService(logger); err != nil {
			logger.Fatal().Err(err).Msg("failed install service")
		}
		return
	}

	notifier := notification.New(cfg.notify)

	if err := clipboard.RequireTools(requiredTools(cfg.wake)...); err != nil {
		notifier.Notify("cannot start: %v", err)
		logger.Fatal().Err(err).Msg("required tools missing")
	}

	unlock := lock.Must(logger)
	defer unlock()

	src, closeSrc := wakeSource(cfg.wake, logger)
	defer closeSrc()

	engine := bridge.New(
		wlclipboard.New(logger),
		xclip.New(logger),
		src,
		bridge.NewOptions(
			bridge.WithLogger(logger),
			bridge.WithNotifier(notifier),
		),
	)

	if err := engine.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("sync stopped")
	}
}

func requiredTools(wakeMode string) []string {
	tools := []string{wlclipboard.Copy, wlclipboard.Paste, xclip.Binary}
	if wakeMode == wakeClipnotify {
		tools = append(tools, wake.ClipnotifyBinary)
	}
	return tools
}

func wakeSource(mode string, logger zerolog.Logger) (wake.Source, func()) {
	if mode == wakeClipnotify {
		return wake.NewClipnotify(logger), func() {}
	}

	if _, ok := os.LookupEnv("DISPLAY"); !ok {
		logger.Fatal().Msg("x11 display not found")
	}

	src, err := wake.NewXFixes(logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to listen for selection changes")
	}

	return src, func() {
		if err := src.Close(); err != nil {
			logger.Warn().Err(err).Msg("close xfixes")
		}
	}
}

func initLogger(verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	if verbose {
		zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
			short := file
			for i := len(file) - 1; i > 0; i-- {
				if file[i] == '/' {
					short = file[i+1:]
					break
				}
			}
			file = short
			return fmt.Sprintf("%s:%d", file, line)
		}
		return zerolog.New(output).
			Level(zerolog.TraceLevel).
			With().
			Timestamp().
			Caller().
			Logger()
	}

	return zerolog.New(output).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()
}
