package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/luyipei/MStory/config"
	"github.com/luyipei/MStory/data"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := "config/game.toml"
	if p := os.Getenv("MSTORY_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	usingDefaults := false
	if errors.Is(err, os.ErrNotExist) {
		cfg = config.Default()
		usingDefaults = true
	} else if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	if usingDefaults {
		log.Info("no config file found, using built-in tuning", zap.String("path", cfgPath))
	}

	enemies, err := data.LoadEnemyTable("data/enemies.yaml")
	if err != nil {
		log.Warn("enemy table unavailable, using built-ins", zap.Error(err))
		enemies = data.DefaultTable()
	}
	log.Info("starting",
		zap.String("config", cfgPath),
		zap.Int("archetypes", enemies.Count()),
		zap.Int("tps", cfg.Sim.TicksPerSecond))

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Sim.TicksPerSecond)
	if err := ebiten.RunGame(NewGame(cfg, enemies, log)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
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
