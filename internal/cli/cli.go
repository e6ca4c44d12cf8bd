package cli

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/screenfit/pkg/adapt"
	"github.com/matzehuels/screenfit/pkg/buildinfo"
	"github.com/matzehuels/screenfit/pkg/cache"
	"github.com/matzehuels/screenfit/pkg/errors"
	"github.com/matzehuels/screenfit/pkg/profile"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "screenfit"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Screenfit adapts fixed-size content to any screen",
		Long:         `Screenfit computes how content authored at a fixed design size is scaled, rotated, centred and anchored on an arbitrary viewport, and previews the result.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.fitCommand())
	root.AddCommand(c.simulateCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Profile Flags
// =============================================================================

// profileFlags are the flags shared by every command that plans passes.
// Flags override profile values only when set explicitly.
type profileFlags struct {
	path       string
	design     string
	scaleMode  string
	screenMode string
	alignH     bool
	alignV     bool
}

func (f *profileFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.path, "profile", "p", "", "adaptation profile (.toml, .yaml or .yml)")
	fs.StringVar(&f.design, "design", "", "design size WxH; either side may be \"auto\"")
	fs.StringVar(&f.scaleMode, "scale-mode", "", "show_all, exact_fit, no_border, fixed_width or fixed_height")
	fs.StringVar(&f.screenMode, "screen-mode", "", "portrait or landscape")
	fs.BoolVar(&f.alignH, "align-h", false, "centre the surface horizontally")
	fs.BoolVar(&f.alignV, "align-v", false, "centre the surface vertically")
}

// load returns the profile named by --profile (or the built-in default)
// with explicitly set flags applied.
func (f *profileFlags) load(cmd *cobra.Command) (*profile.Profile, error) {
	p := profile.Default()
	if f.path != "" {
		var err error
		if p, err = profile.Load(f.path); err != nil {
			return nil, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("design") {
		w, h, err := parseDesign(f.design)
		if err != nil {
			return nil, err
		}
		p.Design = profile.Design{Width: w, Height: h}
		p.World = profile.Bounds{}
	}
	if fs.Changed("scale-mode") {
		p.ScaleMode = f.scaleMode
	}
	if fs.Changed("screen-mode") {
		p.ScreenMode = f.screenMode
	}
	if fs.Changed("align-h") {
		p.Align.Horizontal = f.alignH
	}
	if fs.Changed("align-v") {
		p.Align.Vertical = f.alignV
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// =============================================================================
// Parsing Helpers
// =============================================================================

// parseSize parses "WxH" into positive extents.
func parseSize(s string) (w, h float64, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, errors.New(errors.ErrCodeInvalidArgument, "invalid size %q (want WxH)", s)
	}
	if w, err = strconv.ParseFloat(ws, 64); err == nil {
		h, err = strconv.ParseFloat(hs, 64)
	}
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidArgument, "invalid size %q (want WxH)", s)
	}
	if err := errors.ValidateDimension(errors.ErrCodeInvalidViewport, "width", w); err != nil {
		return 0, 0, err
	}
	if err := errors.ValidateDimension(errors.ErrCodeInvalidViewport, "height", h); err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

// parseDesign parses "WxH" where either side may be "auto".
func parseDesign(s string) (w, h adapt.Length, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, errors.New(errors.ErrCodeInvalidDesignSize, "invalid design %q (want WxH)", s)
	}
	if w, err = adapt.ParseLength(ws); err != nil {
		return 0, 0, err
	}
	if h, err = adapt.ParseLength(hs); err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

// =============================================================================
// Cache
// =============================================================================

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/screenfit/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
