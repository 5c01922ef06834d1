package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"codeberg.org/snonux/spellbee/internal/audio"
	"codeberg.org/snonux/spellbee/internal/cli"
	"codeberg.org/snonux/spellbee/internal/console"
	"codeberg.org/snonux/spellbee/internal/gui"
	"codeberg.org/snonux/spellbee/internal/session"
	"codeberg.org/snonux/spellbee/internal/vocabulary"
	"codeberg.org/snonux/spellbee/internal/voices"
)

func main() {
	flags := cli.NewFlags()
	rootCmd := cli.CreateRootCommand(flags)

	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd.Context(), flags)
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, flags *cli.Flags) error {
	config, err := cli.LoadConfig()
	if err != nil {
		return err
	}
	cli.SetupLogger(config.Log.Level, os.Stderr)

	if flags.ListVoices {
		return voices.NewLister(config.Audio.OpenAIKey, "", os.Stdout).List(ctx)
	}

	speaker, err := audio.NewSpeaker(config.SpeakerConfig())
	if err != nil {
		slog.Warn("speech output disabled", "error", err)
		speaker = audio.NewSilent()
	}

	sess := session.New(speaker, session.Options{
		Subset: config.InitialSubset(),
		Seed:   config.Practice.Seed,
	})
	src := vocabulary.NewFileSource(config.Vocabulary.File)

	if config.Practice.Text {
		return runConsole(ctx, sess, src)
	}
	return runGUI(ctx, sess, src, config.Log.Level)
}

func runConsole(ctx context.Context, sess *session.Session, src vocabulary.Source) error {
	c := console.New(os.Stdin, os.Stdout)
	if err := sess.Initialize(ctx, src, c); err != nil {
		return err
	}
	defer func() {
		if err := sess.Teardown(); err != nil {
			slog.Error("teardown failed", "error", err)
		}
	}()

	controller, err := sess.Controller()
	if err != nil {
		return err
	}
	c.Attach(controller, sess.Classifier())
	return c.Run(ctx)
}

func runGUI(ctx context.Context, sess *session.Session, src vocabulary.Source, logLevel string) error {
	application := gui.New(app.NewWithID(gui.AppID))

	// Mirror log output into the activity panel
	cli.SetupLogger(logLevel, io.MultiWriter(os.Stderr, application.LogWriter()))

	if err := application.Attach(ctx, sess, src); err != nil {
		return fmt.Errorf("cannot start practice: %w", err)
	}
	application.Run()
	return nil
}
