package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/log"

	"github.com/sandeepkv93/tasksouls/internal/audio"
	"github.com/sandeepkv93/tasksouls/internal/config"
	"github.com/sandeepkv93/tasksouls/internal/logging"
	"github.com/sandeepkv93/tasksouls/internal/scheduler"
	"github.com/sandeepkv93/tasksouls/internal/store"
)

type FocusArea string

const (
	FocusInput FocusArea = "input"
	FocusList  FocusArea = "list"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	ToggleMode string
	Help       string
	Palette    string
	Quit       string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	Store          store.State
	Focus          FocusArea
	Cursor         int
	Palette        CommandPaletteState
	HelpVisible    bool
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error
	Scheduler      *scheduler.Engine
	DesktopEnabled bool
	SoundEnabled   bool
	Notifications  []Notification

	env      store.Env
	notifier DesktopNotifier
	player   audio.Player
	logger   *log.Logger

	taskInput    textinput.Model
	commandInput textinput.Model
	progressBar  progress.Model
	flame        spinner.Model
	helpModel    help.Model
}

type Options struct {
	Config    config.RuntimeConfig
	Env       *store.Env
	Scheduler *scheduler.Engine
	Player    audio.Player
	Notifier  DesktopNotifier
	Logger    *log.Logger
}

func NewModel() Model {
	return NewModelWithOptions(Options{Config: config.Default()})
}

func NewModelWithOptions(opts Options) Model {
	cfg := opts.Config
	env := envFromConfig(cfg)
	if opts.Env != nil {
		env = *opts.Env
	}

	m := Model{
		Store:          store.New(cfg.StartMode),
		Focus:          FocusInput,
		Scheduler:      opts.Scheduler,
		DesktopEnabled: cfg.DesktopNotifications,
		SoundEnabled:   cfg.SoundEnabled,
		Keys: GlobalKeyMap{
			ToggleMode: "ctrl+t",
			Help:       "?",
			Palette:    "/",
			Quit:       "q",
		},
		env:      env,
		notifier: NoopDesktopNotifier{},
		player:   audio.NoopPlayer{},
		logger:   logging.Discard(),
	}
	if opts.Notifier != nil {
		m.notifier = opts.Notifier
	}
	if opts.Player != nil {
		m.player = opts.Player
	}
	if opts.Logger != nil {
		m.logger = opts.Logger
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func envFromConfig(cfg config.RuntimeConfig) store.Env {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	env := store.DefaultEnv(seed)
	if ttl := cfg.NotificationTTL(); ttl > 0 {
		env.NotificationTTL = ttl
	}
	if pulse := cfg.BonfirePulse(); pulse > 0 {
		env.BonfirePulse = pulse
	}
	if cfg.SoundPath != "" {
		env.Sound = store.Sound{Resource: cfg.SoundPath, Volume: cfg.SoundVolume}
	}
	return env
}

func (m *Model) initBubbleComponents() {
	m.taskInput = textinput.New()
	m.taskInput.CharLimit = 256
	m.taskInput.Width = 48
	m.taskInput.Focus()

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.progressBar = progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))

	m.flame = spinner.New()
	m.flame.Spinner = spinner.Pulse

	m.helpModel = help.New()
}

func (m *Model) syncBubbleData() {
	if m.Store.Gamified() {
		m.taskInput.Prompt = "⚔️ > "
		m.taskInput.Placeholder = "Enter your quest..."
	} else {
		m.taskInput.Prompt = "+ "
		m.taskInput.Placeholder = "Add a task..."
	}
	if m.taskInput.Value() != m.Store.Input {
		m.taskInput.SetValue(m.Store.Input)
	}
	if m.Focus == FocusInput && !m.Palette.Active {
		m.taskInput.Focus()
	} else {
		m.taskInput.Blur()
	}
	m.commandInput.SetValue(m.Palette.Input)
	if m.Palette.Active {
		m.commandInput.Focus()
	} else {
		m.commandInput.Blur()
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.Store.Tasks)
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m Model) selectedTaskID() (string, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Store.Tasks) {
		return "", false
	}
	return m.Store.Tasks[m.Cursor].ID, true
}

// taskAt resolves a 1-based list position.
func (m Model) taskAt(position int) (string, bool) {
	idx := position - 1
	if idx < 0 || idx >= len(m.Store.Tasks) {
		return "", false
	}
	return m.Store.Tasks[idx].ID, true
}
