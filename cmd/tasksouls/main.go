package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/tasksouls/internal/audio"
	"github.com/sandeepkv93/tasksouls/internal/config"
	"github.com/sandeepkv93/tasksouls/internal/logging"
	"github.com/sandeepkv93/tasksouls/internal/model"
	"github.com/sandeepkv93/tasksouls/internal/scheduler"
	"github.com/sandeepkv93/tasksouls/internal/update"
)

func main() {
	configPath := flag.String("config", os.Getenv("TASKSOULS_CONFIG"), "path to a TOML or YAML config file")
	gamified := flag.Bool("gamified", false, "start in gamified mode")
	flag.Parse()

	if err := run(*configPath, *gamified); err != nil {
		fmt.Fprintf(os.Stderr, "tasksouls failed: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, gamified bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if gamified {
		cfg.StartMode = model.ModeGamified
	}

	logger, closer, err := logging.New(logging.Options{Level: cfg.LogLevel, Path: cfg.LogFile})
	if err != nil {
		return err
	}
	defer closer.Close()

	engine := scheduler.NewEngine(cfg.TimerBuffer)
	engine.Start()
	defer engine.Stop()

	var notifier update.DesktopNotifier = update.NoopDesktopNotifier{}
	if cfg.DesktopNotifications {
		notifier = update.ExecDesktopNotifier{}
	}

	logger.Info("starting", "mode", cfg.StartMode, "sound", cfg.SoundEnabled, "timer_buffer", cfg.TimerBuffer)
	program := tea.NewProgram(update.NewModelWithOptions(update.Options{
		Config:    cfg,
		Scheduler: engine,
		Player:    audio.ExecPlayer{},
		Notifier:  notifier,
		Logger:    logger,
	}))
	final, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(update.Model); ok {
		logger.Info("exiting", "tasks", len(m.Store.Tasks), "souls", m.Store.Reward.Souls, "level", m.Store.Reward.Level, "dropped_timers", engine.Dropped())
	}
	return nil
}
