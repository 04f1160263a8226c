package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/isseis/go-pathtoken/internal/cmdcommon"
	"github.com/isseis/go-pathtoken/internal/mru"
	"github.com/isseis/go-pathtoken/internal/terminal"
)

var errNoUsableDirectories = errors.New("no usable directories")

// app holds the shared flags and the seams tests replace.
type app struct {
	opts     cmdcommon.Options
	getwd    func() (string, error)
	termSize func() int
}

func newApp() *app {
	return &app{
		getwd:    os.Getwd,
		termSize: func() int { return terminal.NewCapabilities(terminal.Options{}).Width() },
	}
}

// newRootCmd creates the root mru command with all subcommands registered.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "mru",
		Short:         "mru - keep a list of recently used directories",
		Args:          cobra.NoArgs,
		Version:       cmdcommon.BuildVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.ConfigFile, "config", "", "Configuration file (default: the per-user config.toml)")
	flags.BoolVar(&a.opts.NoConfig, "no-config", false, "Ignore the configuration file")
	flags.BoolVar(&a.opts.NoLogging, "no-logging", false, "Disable logging")
	flags.StringVar(&a.opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&a.opts.LogDir, "log-dir", "", "Directory for the JSON run log")

	root.AddCommand(newAddCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newRemoveCmd(a))
	root.AddCommand(newEncodedCmd(a))
	return root
}

// session is a bootstrapped environment with its loaded store.
type session struct {
	env   *cmdcommon.Environment
	store *mru.Store
}

func (s *session) Close() error {
	return s.env.Close()
}

// open bootstraps logging and configuration and loads the MRU file.
func (a *app) open(cmd *cobra.Command) (*session, error) {
	env, err := cmdcommon.Bootstrap(a.opts, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	store := mru.NewStore(env.MRUFile, env.Paths.HomeDir, env.Config.MaxItemsOrDefault(), env.Logger.Logger)
	if err := store.Load(); err != nil {
		_ = env.Close()
		return nil, err
	}
	return &session{env: env, store: store}, nil
}

// save writes the store if it changed.
func (s *session) save() error {
	wrote, err := s.store.SaveIfChanged()
	if err != nil {
		return fmt.Errorf("saving %s: %w", s.store.File(), err)
	}
	if wrote {
		s.env.Logger.Info("Saved MRU file", "file", s.store.File(), "entries", s.store.Len())
	}
	return nil
}
