package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cowpult/internal/world"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Validate and list the levels",
	Long: `Loads the level roster, checks every level and prints a summary.
Exits with an error if any level is malformed.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	loader := newLoader(cfg)
	roster, err := loader.Load()
	if err != nil {
		return err
	}
	if err := world.ValidateRoster(roster); err != nil {
		return err
	}

	source := loader.Root
	if source == "" {
		source = "built-in"
	}
	printLevels(cmd.OutOrStdout(), source, roster)
	return nil
}

func printLevels(w io.Writer, source string, roster []world.Level) {
	fmt.Fprintf(w, "Levels (%s):\n\n", source)

	maxNameLen := 4 // "Name" header
	for _, l := range roster {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	fmt.Fprintf(w, "  %-3s  %-*s  %-6s  %-5s  %-4s  %-7s  %s\n", "#", maxNameLen, "Name", "Player", "Boxes", "Logs", "Enemies", "Gravity")
	fmt.Fprintf(w, "  %-3s  %-*s  %-6s  %-5s  %-4s  %-7s  %s\n", "-", maxNameLen, "----", "------", "-----", "----", "-------", "-------")

	for i := range roster {
		l := &roster[i]
		counts := l.CountByKind()
		avatar := "-"
		if p := l.Player(); p != nil {
			avatar = p.Kind.Avatar.String()
		}
		fmt.Fprintf(w, "  %-3d  %-*s  %-6s  %-5d  %-4d  %-7d  (%g, %g)\n",
			l.Number, maxNameLen, l.Name, avatar,
			counts[world.KindBox], counts[world.KindLog], counts[world.KindEnemy],
			l.Physics.Gravity.X, l.Physics.Gravity.Y)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'cowpult play' to play.")
}
