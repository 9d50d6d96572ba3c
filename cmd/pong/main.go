package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/l1jgo/pong/internal/config"
	"github.com/l1jgo/pong/internal/match"
	"github.com/l1jgo/pong/internal/render"
	"github.com/l1jgo/pong/internal/scripting"
	"github.com/l1jgo/pong/internal/system"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := "config/pong.toml"
	if p := os.Getenv("PONG_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg.Display.Title)
	printSection("Match")
	printStat("Court", fmt.Sprintf("%dx%d", cfg.Court.Width, cfg.Court.Height))
	printStat("Tick rate", fmt.Sprintf("%d/s", cfg.Match.TickRate))
	printStat("Respawn delay", cfg.Match.ResetTime.String())
	printStat("Speed ramp", fmt.Sprintf("%g/tick", cfg.Ball.SpeedIncrease))
	if cfg.Prediction.Enabled {
		printStat("Prediction", fmt.Sprintf("%d frames", cfg.PredictionFrames()))
	}
	fmt.Println()

	// 3. Build match state
	seed := cfg.Match.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	clk := clock.New()
	state := match.New(cfg.Rules(), clk.Now(), match.NewRand(seed))
	log.Debug("match created", zap.Uint64("seed", seed))

	// 4. Pick the input source for the front-end
	var source system.InputSource
	switch cfg.Display.Mode {
	case config.ModeWindow:
		source = render.Keyboard{}
	case config.ModeHeadless:
		if cfg.Display.Script != "" {
			ctrl, err := scripting.NewController(cfg.Display.Script, log)
			if err != nil {
				return fmt.Errorf("lua controller: %w", err)
			}
			defer ctrl.Close()
			source = ctrl
			printOK(fmt.Sprintf("Lua controller %s loaded", cfg.Display.Script))
		} else {
			state.PlayerAI = true
		}
	}

	predictFrames := 0
	if cfg.Prediction.Enabled {
		predictFrames = cfg.PredictionFrames()
	}
	pipeline := system.NewPipeline(state, system.Options{
		Source:         source,
		Clock:          clk,
		PredictFrames:  predictFrames,
		StatusInterval: cfg.Match.StatusInterval,
		Log:            log,
	})

	// 5. Run the chosen front-end
	printSection("Ready")
	if cfg.Display.Mode == config.ModeWindow {
		printReady("Window mode (arrows/W,S move · Q toggles AI · Esc quits)")
		fmt.Println()
		return render.Run(pipeline, render.Options{
			Title:    cfg.Display.Title,
			TickRate: cfg.Match.TickRate,
			Log:      log,
		})
	}
	printReady(fmt.Sprintf("Headless loop (tick: %s)", cfg.TickInterval()))
	fmt.Println()
	return runHeadless(pipeline, cfg, log)
}

// runHeadless paces the pipeline with a ticker until a signal arrives or the
// configured tick limit is reached.
func runHeadless(p *system.Pipeline, cfg *config.Config, log *zap.Logger) error {
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdownCh)

	interval := cfg.TickInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	limit := uint64(cfg.Display.MaxTicks)
	for {
		select {
		case <-ticker.C:
			p.Tick(interval)
			if limit > 0 && p.Runner.Ticks() >= limit {
				log.Info("tick limit reached", zap.Uint64("ticks", limit))
				finish(p, log)
				return nil
			}
		case sig := <-shutdownCh:
			log.Info("shutdown signal received", zap.String("signal", sig.String()))
			finish(p, log)
			return nil
		}
	}
}

func finish(p *system.Pipeline, log *zap.Logger) {
	p.Flush()
	log.Info("match stopped",
		zap.Uint64("ticks", p.State.Tick),
		zap.Int("player", p.State.PlayerScore),
		zap.Int("opponent", p.State.OpponentScore),
	)
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
