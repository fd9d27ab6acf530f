package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/howells/stacksheet/internal/config"
	"github.com/howells/stacksheet/internal/logging"
	"github.com/howells/stacksheet/internal/tui"
)

// NewDemoCmd creates the interactive demo command.
func NewDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive sheet stack demo",
		Long:  `Render a sheet stack in the terminal. Keyboard drives the stack operations; mouse dragging drives the dismiss gesture. Config file edits apply live.`,
		RunE:  runDemo,
	}

	cmd.Flags().String("side", "", "Sheet side: top, bottom, left, or right")
	cmd.Flags().String("snap", "", "Comma-separated snap points (fractions, px, or CSS units, e.g. 0.25,0.5,1)")
	cmd.Flags().Bool("sequential", false, "Step through snap points one at a time")
	cmd.Flags().Int("max-depth", 0, "Maximum stack depth (0 = unlimited)")

	return cmd
}

func runDemo(cmd *cobra.Command, _ []string) error {
	logger := logging.NewFromEnv()

	manager, err := config.NewManager()
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	if err := manager.Load(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts := manager.Config().SheetOptions()
	applyDemoFlags(cmd, &opts)
	resolved := config.Resolve(opts)

	p := tea.NewProgram(
		tui.NewModel(resolved, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	// Config edits reach the running program as messages; flag overrides
	// are reapplied so a reload never clobbers them.
	manager.OnConfigChange(func(c *config.Config) {
		reloaded := c.SheetOptions()
		applyDemoFlags(cmd, &reloaded)
		p.Send(tui.ConfigReloadedMsg{Resolved: config.Resolve(reloaded)})
	})
	if err := manager.Watch(); err != nil {
		logger.Warn().Err(err).Msg("config watcher unavailable; live reload disabled")
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("demo exited with error: %w", err)
	}
	return nil
}

// applyDemoFlags layers explicit flags over the file configuration.
func applyDemoFlags(cmd *cobra.Command, opts *config.Options) {
	if side, _ := cmd.Flags().GetString("side"); side != "" {
		s := config.Side(side)
		if s.Valid() {
			opts.Side = &config.SideSpec{Value: s}
		}
	}
	if snap, _ := cmd.Flags().GetString("snap"); snap != "" {
		opts.SnapPoints = parseSnapFlag(snap)
	}
	if cmd.Flags().Changed("sequential") {
		sequential, _ := cmd.Flags().GetBool("sequential")
		opts.SnapToSequentialPoints = &sequential
	}
	if cmd.Flags().Changed("max-depth") {
		maxDepth, _ := cmd.Flags().GetInt("max-depth")
		opts.MaxDepth = &maxDepth
	}
}

// parseSnapFlag splits a comma list into snap specs: numbers become
// fractions or pixel values, anything else passes through as a unit string
// for the resolver to handle.
func parseSnapFlag(raw string) []any {
	parts := strings.Split(raw, ",")
	specs := make([]any, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if f, err := strconv.ParseFloat(part, 64); err == nil {
			specs = append(specs, f)
		} else {
			specs = append(specs, part)
		}
	}
	return specs
}
