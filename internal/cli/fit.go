package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/screenfit/pkg/cache"
	"github.com/matzehuels/screenfit/pkg/errors"
	"github.com/matzehuels/screenfit/pkg/preview"
)

// Output formats supported by the fit command.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatSVG   = "svg"
	formatPNG   = "png"
)

// fitOptions holds configuration for the fit command.
type fitOptions struct {
	profile   profileFlags
	viewports []string
	format    string
	output    string
	scale     float64
	noCache   bool
}

// fitCommand creates the fit command for evaluating a profile on viewports.
func (c *CLI) fitCommand() *cobra.Command {
	opts := fitOptions{format: formatTable, scale: 1}

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Compute the adaptation of a profile on one or more viewports",
		Long: `Compute how a profile's design is scaled, rotated and centred on each viewport.

Viewports come from --viewport (a profile viewport name or WxH) or, when none
are given, from the profile itself. The table format prints one row per
viewport; json, svg and png write one document per viewport.`,
		Example: `  # Table for the built-in profile
  screenfit fit

  # A portrait design on a landscape phone, as SVG
  screenfit fit --design 750x1334 --viewport 1334x750 --format svg -o fit.svg

  # Every viewport of a profile as PNG previews
  screenfit fit -p examples/profiles/phone.toml --format png -o previews/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFit(cmd, opts)
		},
	}

	opts.profile.bind(cmd)
	cmd.Flags().StringArrayVar(&opts.viewports, "viewport", nil, "viewport name or WxH (repeatable)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatTable, "output format: table, json, svg, png")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, or directory for several viewports")
	cmd.Flags().Float64Var(&opts.scale, "scale", 1, "png scale factor")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runFit(cmd *cobra.Command, opts fitOptions) error {
	prog := newProgress(c.Logger)

	p, err := opts.profile.load(cmd)
	if err != nil {
		return err
	}
	vps, err := viewportList(p, opts.viewports)
	if err != nil {
		return err
	}
	if len(vps) == 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "no viewports: pass --viewport or add [[viewports]] to the profile")
	}

	evals := make([]evaluation, 0, len(vps))
	for _, v := range vps {
		e, err := evaluate(c.Logger, p, v.Name, v.Width, v.Height)
		if err != nil {
			return err
		}
		evals = append(evals, e)
	}

	if opts.format == formatTable {
		return renderFitTable(cmd.OutOrStdout(), evals)
	}

	store, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	profileHash, err := cache.HashJSON(p)
	if err != nil {
		return err
	}

	for _, e := range evals {
		data, cached, err := renderPreview(cmd.Context(), store, profileHash, opts.format, opts.scale, e)
		if err != nil {
			return err
		}
		path, err := fitOutputPath(opts, e.Name, len(evals))
		if err != nil {
			return err
		}
		if path == "" {
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return err
			}
			continue
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		c.Logger.Debugf("Wrote %s (%d bytes, cached=%t)", path, len(data), cached)
		printFile(path)
	}

	prog.done(fmt.Sprintf("Evaluated %d viewports", len(evals)))
	return nil
}

// renderPreview renders one evaluation in format, going through the cache.
func renderPreview(ctx context.Context, store cache.Cache, profileHash, format string, scale float64, e evaluation) ([]byte, bool, error) {
	key := cache.PreviewKey(profileHash, cache.PreviewKeyOpts{
		Format: format,
		Width:  e.Snapshot.Screen.Width,
		Height: e.Snapshot.Screen.Height,
		Scale:  scale,
	})

	var render func() ([]byte, error)
	switch format {
	case formatJSON:
		render = func() ([]byte, error) { return preview.RenderJSON(e.Snapshot, e.Items...) }
	case formatSVG:
		render = func() ([]byte, error) {
			return preview.RenderSVG(e.Snapshot, preview.WithItems(e.Items...), preview.WithLabels(), preview.WithCaption()), nil
		}
	case formatPNG:
		render = func() ([]byte, error) {
			return preview.RenderPNG(e.Snapshot, preview.WithPNGItems(e.Items...), preview.WithPNGLabels(), preview.WithScale(scale))
		}
	default:
		return nil, false, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want table, json, svg or png)", format)
	}

	return cache.Fetch(ctx, store, key, format, 0, render)
}

// fitOutputPath picks where a rendering goes. An empty path means stdout.
func fitOutputPath(opts fitOptions, name string, n int) (string, error) {
	if n == 1 {
		if opts.output == "" && opts.format == formatPNG {
			return "", errors.New(errors.ErrCodeInvalidArgument, "png output needs --output")
		}
		return opts.output, nil
	}

	if opts.output == "" {
		return "", errors.New(errors.ErrCodeInvalidArgument, "%d viewports need --output to name a directory", n)
	}
	if err := os.MkdirAll(opts.output, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(opts.output, name+"."+opts.format), nil
}

// renderFitTable prints one row per evaluation.
func renderFitTable(w io.Writer, evals []evaluation) error {
	rows := make([][]string, 0, len(evals))
	for _, e := range evals {
		s := e.Snapshot
		rotate := ""
		if s.ForceRotate {
			rotate = "yes"
		}
		rows = append(rows, []string{
			e.Name,
			fmt.Sprintf("%gx%g", s.Screen.Width, s.Screen.Height),
			s.Orientation.String(),
			rotate,
			fmt.Sprintf("%sx%s", num(s.Ratio.X), num(s.Ratio.Y)),
			fmt.Sprintf("%gx%g", s.Canvas.ActualWidth, s.Canvas.ActualHeight),
			fmt.Sprintf("%gx%g", s.Canvas.StyleWidth, s.Canvas.StyleHeight),
			fmt.Sprintf("%g,%g", s.Align.Screen().X, s.Align.Screen().Y),
			fmt.Sprintf("%g/%g/%g/%g", s.Margins.Left, s.Margins.Right, s.Margins.Top, s.Margins.Bottom),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Viewport", "Screen", "Orientation", "Rotate", "Ratio", "Buffer", "Display", "Offset", "Margins L/R/T/B").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return lipgloss.NewStyle().Foreground(colorCyan)
			case col == 3:
				return lipgloss.NewStyle().Foreground(colorYellow)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

