package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/screenfit/pkg/errors"
)

func TestFitTable(t *testing.T) {
	out, err := execute(t, "fit", "--viewport", "iphone-8-landscape", "--viewport", "375x667")
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	for _, want := range []string{"iphone-8-landscape", "375x667", "0.5000x0.5000", "yes", "landscape"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestFitJSONStdout(t *testing.T) {
	out, err := execute(t, "fit", "--viewport", "667x375", "--format", "json", "--no-cache")
	if err != nil {
		t.Fatalf("fit: %v", err)
	}

	var doc struct {
		Caption  string `json:"caption"`
		Snapshot struct {
			ForceRotate bool `json:"force_rotate"`
		} `json:"snapshot"`
		Frame struct {
			Items []json.RawMessage `json:"items"`
		} `json:"frame"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if !doc.Snapshot.ForceRotate {
		t.Error("portrait design on a landscape viewport should rotate")
	}
	if len(doc.Frame.Items) != 5 {
		t.Errorf("items = %d, want 5", len(doc.Frame.Items))
	}
	if doc.Caption == "" {
		t.Error("caption is empty")
	}
}

func TestFitPreviewFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	if _, err := execute(t, "fit", "--viewport", "ipad", "--viewport", "desktop", "--format", "svg", "-o", dir); err != nil {
		t.Fatalf("fit svg: %v", err)
	}
	for _, name := range []string{"ipad.svg", "desktop.svg"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if !strings.HasPrefix(string(data), "<svg") {
			t.Errorf("%s does not start with <svg", name)
		}
	}

	png := filepath.Join(t.TempDir(), "one.png")
	if _, err := execute(t, "fit", "--viewport", "iphone-8", "--format", "png", "-o", png, "--scale", "0.5"); err != nil {
		t.Fatalf("fit png: %v", err)
	}
	data, err := os.ReadFile(png)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "\x89PNG") {
		t.Error("output is not a PNG")
	}
}

func TestFitErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want errors.Code
	}{
		{"png to stdout", []string{"fit", "--viewport", "ipad", "--format", "png"}, errors.ErrCodeInvalidArgument},
		{"several without output", []string{"fit", "--format", "svg"}, errors.ErrCodeInvalidArgument},
		{"unknown format", []string{"fit", "--viewport", "ipad", "--format", "pdf"}, errors.ErrCodeInvalidFormat},
		{"bad viewport", []string{"fit", "--viewport", "huge"}, errors.ErrCodeInvalidArgument},
		{"bad scale mode", []string{"fit", "--scale-mode", "stretch"}, errors.ErrCodeInvalidScaleMode},
		{"bad design", []string{"fit", "--design", "0x100"}, errors.ErrCodeInvalidDesignSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %s", err, tt.want)
			}
		})
	}
}
