package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jfdoradotr/navstack/pkg/errors"
	"github.com/jfdoradotr/navstack/pkg/navpath"
)

// parseEntry converts a command-line argument into a path entry.
// Arguments that parse as a base-10 integer become integer entries unless
// forceText is set; everything else becomes a string entry.
func parseEntry(arg string, forceText bool) (navpath.Entry, error) {
	if arg == "" {
		return navpath.Entry{}, errors.New(errors.ErrCodeInvalidEntry, "empty entry argument")
	}
	if !forceText {
		if v, err := strconv.ParseInt(arg, 10, 64); err == nil {
			return navpath.Int(v), nil
		}
	}
	if err := errors.ValidateEntryText(arg); err != nil {
		return navpath.Entry{}, err
	}
	return navpath.String(arg), nil
}

// parseEntries converts all arguments, preserving order.
func parseEntries(args []string, forceText bool) (navpath.Path, error) {
	entries := make(navpath.Path, 0, len(args))
	for _, arg := range args {
		e, err := parseEntry(arg, forceText)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// =============================================================================
// Path Command
// =============================================================================

// pathCommand creates the path management command.
func (c *CLI) pathCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Inspect and mutate the persisted navigation path",
	}

	cmd.AddCommand(c.pathShowCommand())
	cmd.AddCommand(c.pathPushCommand())
	cmd.AddCommand(c.pathPopCommand())
	cmd.AddCommand(c.pathResetCommand())
	cmd.AddCommand(c.pathClearCommand())

	return cmd
}

// pathShowCommand creates the "path show" subcommand.
func (c *CLI) pathShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current navigation path",
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

			p := store.Path()
			printKeyValue("backend", cfg.Backend)
			printKeyValue("depth", strconv.Itoa(p.Len()))
			printKeyValue("trail", p.String())
			if p.IsEmpty() {
				printDetail("at root, nothing stacked")
				return nil
			}
			for i, e := range p {
				printDetail("%d. %s (%s)", i+1, e.Display(), e.Kind())
			}
			return nil
		},
	}
}

// pathPushCommand creates the "path push" subcommand.
func (c *CLI) pathPushCommand() *cobra.Command {
	var forceText bool

	cmd := &cobra.Command{
		Use:   "push ENTRY...",
		Short: "Push entries onto the navigation path",
		Long: `Push one or more entries onto the tail of the navigation path.

Arguments that look like integers are pushed as integer entries;
everything else is pushed as a string entry. Use --text to push
numeric-looking arguments as strings.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			entries, err := parseEntries(args, forceText)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := c.newStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			store.Push(ctx, entries...)
			printSuccess("Pushed %d entries", len(entries))
			printDetail("trail: %s", store.Path())
			return nil
		},
	}

	cmd.Flags().BoolVar(&forceText, "text", false, "push all arguments as string entries")
	return cmd
}

// pathPopCommand creates the "path pop" subcommand.
func (c *CLI) pathPopCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pop",
		Short: "Pop the tail entry off the navigation path",
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

			tail, ok := store.Path().Last()
			if !ok {
				printInfo("Already at root")
				return nil
			}

			store.Pop(ctx)
			printSuccess("Popped %s", tail.Display())
			printDetail("trail: %s", store.Path())
			return nil
		},
	}
}

// pathResetCommand creates the "path reset" subcommand.
func (c *CLI) pathResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the navigation path to the root screen",
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

			depth := store.Len()
			store.Reset(ctx)
			printSuccess("Reset to root (%d entries removed)", depth)
			return nil
		},
	}
}

// pathClearCommand creates the "path clear" subcommand.
func (c *CLI) pathClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the persisted navigation state",
		Long:  `Delete the persisted navigation state from the backend without touching any running store. The next launch starts at the root.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			storage, err := newStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer storage.Close()

			if err := storage.Clear(ctx); err != nil {
				return fmt.Errorf("clear persisted state: %w", err)
			}
			printSuccess("Cleared persisted navigation state")
			return nil
		},
	}
}
