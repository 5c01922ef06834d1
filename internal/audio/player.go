package audio

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Player plays audio files with whatever command line player the
// platform offers
type Player struct {
	goos     string
	lookPath func(string) (string, error)
}

// NewPlayer creates a player for the current platform
func NewPlayer() *Player {
	return &Player{goos: runtime.GOOS, lookPath: exec.LookPath}
}

// Available reports whether a usable player was found
func (p *Player) Available() error {
	_, _, err := p.command("probe.mp3")
	return err
}

// Play plays file and blocks until playback ends or ctx is cancelled
func (p *Player) Play(ctx context.Context, file string) error {
	name, args, err := p.command(file)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%s failed: %w\nOutput: %s", name, err, string(output))
	}
	return nil
}

// command picks the player binary and its arguments
func (p *Player) command(file string) (string, []string, error) {
	switch p.goos {
	case "darwin":
		return "afplay", []string{file}, nil
	case "linux", "freebsd", "openbsd":
		// mpg123 first since it handles MP3 files best
		candidates := []struct {
			name    string
			args    []string
			mp3Only bool
		}{
			{"mpg123", []string{"-q", file}, true},
			{"ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "quiet", file}, false},
			{"play", []string{"-q", file}, false},
			{"paplay", []string{file}, false},
			{"aplay", []string{"-q", file}, false},
		}
		wav := strings.EqualFold(filepath.Ext(file), ".wav")
		for _, c := range candidates {
			if c.mp3Only && wav {
				continue
			}
			if _, err := p.lookPath(c.name); err == nil {
				return c.name, c.args, nil
			}
		}
		return "", nil, fmt.Errorf("no audio player found. Install mpg123, ffplay, sox, paplay, or aplay")
	case "windows":
		return "powershell", []string{"-NoProfile", "-Command",
			fmt.Sprintf("(New-Object Media.SoundPlayer '%s').PlaySync()", file)}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", p.goos)
	}
}
