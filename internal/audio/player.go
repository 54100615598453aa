// Package audio plays short sound cues. Playback is best effort: callers log
// errors and never let them affect application state.
package audio

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
)

var ErrUnsupportedPlatform = errors.New("audio: no player for platform")

type Player interface {
	Play(ctx context.Context, resource string, volume float64) error
}

type NoopPlayer struct{}

func (NoopPlayer) Play(context.Context, string, float64) error { return nil }

// ExecPlayer shells out to the platform audio tool.
type ExecPlayer struct {
	GOOS string
	// Run executes the prepared command; tests replace it.
	Run func(*exec.Cmd) error
}

func (p ExecPlayer) Play(ctx context.Context, resource string, volume float64) error {
	resource = strings.TrimSpace(resource)
	if resource == "" {
		return errors.New("audio: empty resource")
	}
	name, args, err := playerCommand(p.goos(), resource, clampVolume(volume))
	if err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, name, args...)
	run := p.Run
	if run == nil {
		run = (*exec.Cmd).Run
	}
	if err := run(cmd); err != nil {
		return fmt.Errorf("audio: play %s: %w", resource, err)
	}
	return nil
}

func (p ExecPlayer) goos() string {
	if p.GOOS != "" {
		return p.GOOS
	}
	return runtime.GOOS
}

func playerCommand(goos, resource string, volume float64) (string, []string, error) {
	switch goos {
	case "darwin":
		return "afplay", []string{"-v", strconv.FormatFloat(volume, 'f', 2, 64), resource}, nil
	case "linux":
		pct := strconv.Itoa(int(volume * 100))
		return "ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "quiet", "-volume", pct, resource}, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SafePlay calls p.Play and converts a panic into an error.
func SafePlay(ctx context.Context, p Player, resource string, volume float64) (err error) {
	if p == nil {
		return nil
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("audio: player panicked: %v", rec)
		}
	}()
	return p.Play(ctx, resource, volume)
}
