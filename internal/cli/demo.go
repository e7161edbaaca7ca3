package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jfdoradotr/navstack/pkg/navpath"
)

// =============================================================================
// Demo Command
// =============================================================================

// demoCommand creates the tutorial demo command.
// Each subcommand is one self-contained screen demonstrating a single
// navigation pattern; they are meant to be read alongside the README.
func (c *CLI) demoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive navigation tutorial screens",
	}

	cmd.AddCommand(c.demoBasicCommand())
	cmd.AddCommand(c.demoDestinationsCommand())
	cmd.AddCommand(c.demoStackCommand())
	cmd.AddCommand(c.demoPersistentCommand())

	return cmd
}

// demoBasicCommand creates the "demo basic" subcommand.
func (c *CLI) demoBasicCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "basic",
		Short: "Basic push navigation between fixed screens",
		Long: `Basic push navigation: a fixed set of named screens. Selecting a screen
pushes its identifier onto the path; backspace pops back. The destination
view is built lazily when it is displayed, not when the link is created.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := []navpath.Entry{
				navpath.String("Profile"),
				navpath.String("Settings"),
				navpath.String("About"),
			}
			return runProgram(newListModel("Basic Navigation", items))
		},
	}
}

// demoDestinationsCommand creates the "demo destinations" subcommand.
func (c *CLI) demoDestinationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "destinations",
		Short: "Value-keyed destination routing",
		Long: `Value-keyed routing: the list holds plain integers and one destination
template renders a screen for whichever value is on top of the stack.
Pushing the same value twice stacks two copies of the same screen.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := make([]navpath.Entry, 10)
			for i := range items {
				items[i] = navpath.Int(int64(i))
			}
			return runProgram(newListModel("Destination Routing", items))
		},
	}
}

// demoStackCommand creates the "demo stack" subcommand.
func (c *CLI) demoStackCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stack",
		Short: "Programmatic path mutation via a plain array",
		Long: `Programmatic navigation: the path is mutated directly as an array.
Keys push random entries, pop the tail, or reset to root; the raw array is
shown so the state change is visible. State lives in memory only.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newStackModel("Programmatic Stack", "in-memory only, state is lost on quit", nil, time.Now().UnixNano())
			return runProgram(m)
		},
	}
}

// demoPersistentCommand creates the "demo persistent" subcommand.
func (c *CLI) demoPersistentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "persistent",
		Short: "Heterogeneous path persisted across launches",
		Long: `Persistent navigation: the same programmatic stack, but every mutation
is written to the configured backend and the path is restored on launch.
Quit mid-navigation, run the demo again, and you are back where you left off.
Mixed integer and string entries share one persisted sequence.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := c.newStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			footer := fmt.Sprintf("backend: %s, quit and relaunch to see restoration", cfg.Backend)
			m := newStackModel("Persistent Stack", footer, store, time.Now().UnixNano())
			if err := runProgram(m); err != nil {
				return err
			}

			printInfo("Saved trail: %s", store.Path())
			return nil
		},
	}
}

// runProgram runs a bubbletea model until it quits.
func runProgram(m tea.Model) error {
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run demo: %w", err)
	}
	return nil
}
