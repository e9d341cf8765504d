// Package main provides the CLI entrypoint for gitglyph.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"gitglyph/internal/calendar"
	"gitglyph/internal/config"
	"gitglyph/internal/font"
	"gitglyph/internal/gitrepo"
	"gitglyph/internal/grid"
	"gitglyph/internal/model"
	"gitglyph/internal/preview"
	"gitglyph/internal/render"
	"gitglyph/internal/schedule"
)

const (
	defaultWord      = "SHOWKAT"
	defaultIntensity = 5
	defaultAnchor    = "left"
	defaultOffset    = 0
	defaultSpacing   = 1
	defaultRepo      = "."
	defaultArtifact  = "art.txt"
)

var (
	artIntensity int
	artAnchor    string
	artOffset    int
	artStartDate string
	artSpacing   int
	artRepo      string
	artArtifact  string
	artGlyphs    string

	previewInteractive bool

	planICS string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gitglyph [word]",
		Short:         "Paint a word onto the git contribution calendar",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runArtCmd,
	}
	addArtFlags(rootCmd)

	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newPlanCmd())
	rootCmd.AddCommand(newCharsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func addArtFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&artIntensity, "intensity", defaultIntensity, "commits per pixel")
	cmd.Flags().StringVar(&artAnchor, "anchor", defaultAnchor, "placement anchor: left, center, or right")
	cmd.Flags().IntVar(&artOffset, "offset", defaultOffset, "extra week columns to shift the word right")
	cmd.Flags().StringVar(&artStartDate, "start-date", "", "Sunday anchoring the first column (YYYY-MM-DD)")
	cmd.Flags().IntVar(&artSpacing, "spacing", defaultSpacing, "blank columns between letters")
	cmd.Flags().StringVar(&artRepo, "repo", defaultRepo, "canvas repository path")
	cmd.Flags().StringVar(&artArtifact, "artifact", defaultArtifact, "artifact file receiving one line per commit")
	cmd.Flags().StringVar(&artGlyphs, "glyphs", "", "YAML glyph pack overriding the builtin font")
}

// artSettings carries the resolved word and placement shared by the
// paint, preview, and plan commands.
type artSettings struct {
	word      string
	intensity int
	spacing   int
	anchor    grid.Anchor
	extra     int
	weekZero  time.Time
	rendering model.Rendering
	placement model.Placement
}

func resolveArtSettings(cmd *cobra.Command, args []string) (artSettings, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return artSettings{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "intensity", &artIntensity, fileCfg.Art.Intensity)
	applyStringConfig(cmd, "anchor", &artAnchor, fileCfg.Art.Anchor)
	applyIntConfig(cmd, "offset", &artOffset, fileCfg.Art.Offset)
	applyStringConfig(cmd, "start-date", &artStartDate, fileCfg.Art.StartDate)
	applyIntConfig(cmd, "spacing", &artSpacing, fileCfg.Art.Spacing)
	applyStringConfig(cmd, "repo", &artRepo, fileCfg.Art.Repo)
	applyStringConfig(cmd, "artifact", &artArtifact, fileCfg.Art.Artifact)
	applyStringConfig(cmd, "glyphs", &artGlyphs, fileCfg.Art.Glyphs)

	word := defaultWord
	if fileCfg.Art.Word != nil {
		word = *fileCfg.Art.Word
	}
	if len(args) == 1 {
		word = args[0]
	}
	word = strings.ToUpper(strings.TrimSpace(word))

	if err := validateArt(word); err != nil {
		return artSettings{}, err
	}
	anchor, err := grid.ParseAnchor(artAnchor)
	if err != nil {
		return artSettings{}, err
	}

	table, err := loadGlyphTable()
	if err != nil {
		return artSettings{}, err
	}
	rendering, err := render.Render(table, word, artSpacing)
	if err != nil {
		return artSettings{}, err
	}
	placement, err := grid.Place(rendering.Width, grid.Weeks, anchor, artOffset)
	if err != nil {
		return artSettings{}, err
	}

	weekZero := calendar.DefaultWeekZero(time.Now())
	if artStartDate != "" {
		weekZero, err = calendar.ParseWeekZero(artStartDate)
		if err != nil {
			return artSettings{}, err
		}
	}

	return artSettings{
		word:      word,
		intensity: artIntensity,
		spacing:   artSpacing,
		anchor:    anchor,
		extra:     artOffset,
		weekZero:  weekZero,
		rendering: rendering,
		placement: placement,
	}, nil
}

func validateArt(word string) error {
	if word == "" {
		return fmt.Errorf("word must not be empty")
	}
	if artIntensity < 1 {
		return fmt.Errorf("--intensity must be >= 1")
	}
	if artSpacing < 0 {
		return fmt.Errorf("--spacing must be >= 0")
	}
	return nil
}

func loadGlyphTable() (*font.Table, error) {
	table := font.Builtin()
	if artGlyphs == "" {
		return table, nil
	}
	overrides, err := font.LoadPack(artGlyphs)
	if err != nil {
		return nil, fmt.Errorf("failed to load glyph pack: %w", err)
	}
	return table.WithOverrides(overrides), nil
}

func printPlacement(cmd *cobra.Command, p model.Placement, anchor grid.Anchor) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Anchor: %s, base offset: %d, extra offset: %d, effective offset: %d.\n",
		anchor, p.Base, p.Extra, p.Effective)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runArtCmd(cmd *cobra.Command, args []string) error {
	set, err := resolveArtSettings(cmd, args)
	if err != nil {
		return err
	}

	// A .env next to the canvas repo can set the committer identity.
	if err := godotenv.Load(filepath.Join(artRepo, ".env")); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	repo := gitrepo.Open(artRepo, artArtifact)
	if err := repo.EnsureRepo(); err != nil {
		return err
	}
	if err := repo.EnsureInitialCommit(); err != nil {
		return err
	}
	if err := repo.EnsureArtifact(); err != nil {
		return err
	}

	if err := printPlacement(cmd, set.placement, set.anchor); err != nil {
		return err
	}
	events := schedule.Build(set.rendering.Pixels, set.weekZero, set.placement.Effective, set.intensity)
	made, err := schedule.Execute(events, set.intensity, repo)
	if err != nil {
		return fmt.Errorf("stopped after %d commits: %w", made, err)
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Done. Created %d commits for %q.\n", made, set.word); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [word]",
		Short: "Show the word on the contribution grid without committing",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPreviewCmd,
	}
	addArtFlags(cmd)
	cmd.Flags().BoolVar(&previewInteractive, "interactive", false, "adjust the placement in a TUI")
	return cmd
}

func runPreviewCmd(cmd *cobra.Command, args []string) error {
	set, err := resolveArtSettings(cmd, args)
	if err != nil {
		return err
	}

	if previewInteractive {
		anchor, extra, accepted, err := preview.Run(preview.Options{
			Word:      set.word,
			Rendering: set.rendering,
			WeekZero:  set.weekZero,
			GridWidth: grid.Weeks,
			Anchor:    set.anchor,
			Extra:     set.extra,
			Intensity: set.intensity,
		})
		if err != nil {
			return err
		}
		if !accepted {
			return nil
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Run: gitglyph %s --anchor %s --offset %d\n", set.word, anchor, extra); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	if err := printPlacement(cmd, set.placement, set.anchor); err != nil {
		return err
	}
	if err := preview.Render(cmd.OutOrStdout(), set.rendering, set.placement, set.weekZero, preview.AutoCellWidth(), false); err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}
	return nil
}

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [word]",
		Short: "Print the commit schedule without committing",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlanCmd,
	}
	addArtFlags(cmd)
	cmd.Flags().StringVar(&planICS, "ics", "", "write the schedule as iCalendar to this file")
	return cmd
}

func runPlanCmd(cmd *cobra.Command, args []string) error {
	set, err := resolveArtSettings(cmd, args)
	if err != nil {
		return err
	}

	events := schedule.Build(set.rendering.Pixels, set.weekZero, set.placement.Effective, set.intensity)
	if err := printPlacement(cmd, set.placement, set.anchor); err != nil {
		return err
	}
	if err := schedule.RenderPlan(cmd.OutOrStdout(), events, set.intensity); err != nil {
		return fmt.Errorf("failed to render plan: %w", err)
	}

	if planICS != "" {
		f, err := os.Create(planICS)
		if err != nil {
			return fmt.Errorf("failed to create ics file: %w", err)
		}
		if err := schedule.WriteICS(f, set.word, events, set.intensity); err != nil {
			_ = f.Close()
			return fmt.Errorf("failed to write ics: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close ics file: %w", err)
		}
		logErrf("Wrote %s\n", planICS)
	}
	return nil
}

func newCharsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chars",
		Short: "List characters the font can paint",
		Args:  cobra.NoArgs,
		RunE:  runCharsCmd,
	}
	cmd.Flags().StringVar(&artGlyphs, "glyphs", "", "YAML glyph pack overriding the builtin font")
	return cmd
}

func runCharsCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "glyphs", &artGlyphs, fileCfg.Art.Glyphs)

	table, err := loadGlyphTable()
	if err != nil {
		return err
	}
	for _, r := range table.Runes() {
		label := string(r)
		if r == ' ' {
			label = "<space>"
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), label); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# gitglyph configuration
# Uncomment a value to enable it. CLI flags override config values.

[art]
# word = %q       # Word to paint
# intensity = %d          # Commits per pixel
# anchor = %q        # Placement anchor: left, center, or right
# offset = %d             # Extra week columns to shift the word right
# start-date = ""       # Sunday anchoring the first column (YYYY-MM-DD)
# spacing = %d            # Blank columns between letters
# repo = %q              # Canvas repository path
# artifact = %q   # Artifact file receiving one line per commit
# glyphs = ""           # YAML glyph pack overriding the builtin font
`,
		defaultWord,
		defaultIntensity,
		defaultAnchor,
		defaultOffset,
		defaultSpacing,
		defaultRepo,
		defaultArtifact,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
