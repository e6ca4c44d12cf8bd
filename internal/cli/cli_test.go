package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/screenfit/pkg/adapt"
	"github.com/matzehuels/screenfit/pkg/errors"
	"github.com/matzehuels/screenfit/pkg/profile"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in       string
		w, h     float64
		wantCode errors.Code
	}{
		{in: "1334x750", w: 1334, h: 750},
		{in: " 375X667 ", w: 375, h: 667},
		{in: "0x750", wantCode: errors.ErrCodeInvalidViewport},
		{in: "1334", wantCode: errors.ErrCodeInvalidArgument},
		{in: "ax750", wantCode: errors.ErrCodeInvalidArgument},
		{in: "-1x750", wantCode: errors.ErrCodeInvalidViewport},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := parseSize(tt.in)
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("parseSize(%q) error = %v, want %s", tt.in, err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSize(%q) error: %v", tt.in, err)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("parseSize(%q) = %vx%v, want %vx%v", tt.in, w, h, tt.w, tt.h)
			}
		})
	}
}

func TestParseDesign(t *testing.T) {
	tests := []struct {
		in      string
		w, h    adapt.Length
		wantErr bool
	}{
		{in: "750x1334", w: 750, h: 1334},
		{in: "750xauto", w: 750, h: adapt.Auto},
		{in: "autoxauto", w: adapt.Auto, h: adapt.Auto},
		{in: "750", wantErr: true},
		{in: "0x1334", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := parseDesign(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDesign(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && (w != tt.w || h != tt.h) {
				t.Errorf("parseDesign(%q) = %v x %v, want %v x %v", tt.in, w, h, tt.w, tt.h)
			}
		})
	}
}

func TestProfileFlagsOverride(t *testing.T) {
	var flags profileFlags
	var got *profile.Profile
	cmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			got, err = flags.load(cmd)
			return err
		},
	}
	flags.bind(cmd)
	cmd.SetArgs([]string{"--design", "1334xauto", "--screen-mode", "landscape", "--align-v=false"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if got.Design.Width != 1334 || !got.Design.Height.IsAuto() {
		t.Errorf("design = %v x %v, want 1334 x auto", got.Design.Width, got.Design.Height)
	}
	if got.ScreenMode != "landscape" {
		t.Errorf("screen mode = %q, want landscape", got.ScreenMode)
	}
	if !got.Align.Horizontal || got.Align.Vertical {
		t.Errorf("align = %+v, want horizontal only", got.Align)
	}
	if got.ScaleMode != profile.Default().ScaleMode {
		t.Errorf("scale mode = %q, want the default", got.ScaleMode)
	}
}

func TestProfileFlagsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.toml")
	data := "name = \"file\"\nscale_mode = \"no_border\"\n\n[design]\nwidth = 640\nheight = 960\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	var flags profileFlags
	var got *profile.Profile
	cmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			got, err = flags.load(cmd)
			return err
		},
	}
	flags.bind(cmd)
	cmd.SetArgs([]string{"-p", path, "--scale-mode", "exact_fit"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if got.Name != "file" || got.Design.Width != 640 {
		t.Errorf("profile = %+v, want the file's", got)
	}
	if got.ScaleMode != "exact_fit" {
		t.Errorf("scale mode = %q, want exact_fit", got.ScaleMode)
	}
}

func TestViewportList(t *testing.T) {
	p := profile.Default()

	vps, err := viewportList(p, nil)
	if err != nil || len(vps) != len(p.Viewports) {
		t.Fatalf("viewportList(nil) = %d, %v; want the profile's %d", len(vps), err, len(p.Viewports))
	}

	vps, err = viewportList(p, []string{"ipad", "1334x750"})
	if err != nil {
		t.Fatalf("viewportList() error: %v", err)
	}
	if vps[0].Name != "ipad" || vps[0].Width != 768 {
		t.Errorf("vps[0] = %+v, want ipad", vps[0])
	}
	if vps[1].Name != "1334x750" || vps[1].Height != 750 {
		t.Errorf("vps[1] = %+v, want 1334x750", vps[1])
	}

	if _, err := viewportList(p, []string{"nokia"}); err == nil {
		t.Error("viewportList() accepted an unknown name")
	}
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	for _, name := range []string{"fit", "simulate", "serve", "cache", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
