package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/isseis/go-pathtoken/internal/display"
	"github.com/isseis/go-pathtoken/internal/workdirs"
)

// listIndexWidth is the room taken by "NN  " before each listed path.
const listIndexWidth = 4

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add [dir...]",
		Short: "Add directories to the front of the list (default: the current directory)",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			dirs, problems := workdirs.Verify(args, a.getwd)
			for _, p := range problems {
				s.env.Logger.Warn("Ignoring directory", "error", p)
			}
			if len(dirs) == 0 {
				return errNoUsableDirectories
			}

			// Add in reverse so the first argument ends up most recent.
			for i := len(dirs) - 1; i >= 0; i-- {
				s.store.Add(dirs[i])
			}
			if err := s.save(); err != nil {
				return err
			}
			for _, d := range dirs {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", display.Printable(d)); err != nil {
					return fmt.Errorf("writing output: %w", err)
				}
			}
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the directories, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.open(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			if width <= 0 {
				width = a.termSize()
			}
			pathWidth := max(width-listIndexWidth, 1)

			var b strings.Builder
			for i, p := range s.store.Paths() {
				fmt.Fprintf(&b, "%2d  %s\n", i, display.TruncateLeft(display.Printable(p), pathWidth))
			}
			if _, err := fmt.Fprint(cmd.OutOrStdout(), b.String()); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "Output width in columns (default: terminal width)")
	return cmd
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove path...",
		Short: "Remove directories from the list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			var missing []string
			for _, p := range args {
				if !s.store.Remove(p) {
					missing = append(missing, display.Printable(p))
				}
			}
			if err := s.save(); err != nil {
				return err
			}
			if len(missing) > 0 {
				return fmt.Errorf("not in list: %s", strings.Join(missing, ", "))
			}
			return nil
		},
	}
}

func newEncodedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encoded",
		Short: "Print the list as stored: one path token per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.open(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			for _, token := range s.store.Tokens() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), token); err != nil {
					return fmt.Errorf("writing output: %w", err)
				}
			}
			return nil
		},
	}
}
