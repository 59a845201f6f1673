package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"mesh_viewer/model"
	vm "local/vector_math"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *cfg != Defaults() {
		t.Errorf("got %+v, want defaults %+v", *cfg, Defaults())
	}
	if cfg.MeshColor != model.Green {
		t.Errorf("meshes should be green by default, got %v", cfg.MeshColor)
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("MESHVIEW_WIDTH", "800")
	t.Setenv("MESHVIEW_MESH", "other.stl")
	t.Setenv("MESHVIEW_MESH_COLOR", "0 0 1")
	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Width != 800 {
		t.Errorf("width = %d, want 800", cfg.Width)
	}
	if cfg.MeshPath != "other.stl" {
		t.Errorf("mesh = %q", cfg.MeshPath)
	}
	if cfg.MeshColor != (vm.Vec3{Z: 1}) {
		t.Errorf("mesh color = %v", cfg.MeshColor)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meshview.yaml")
	content := "height: 600\nvalidation: true\nbackground: [0, 0, 0]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	v := viper.New()
	v.Set(KEY_CONFIG_FILE, path)
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Height != 600 || !cfg.Validation {
		t.Errorf("config file values not applied: %+v", cfg)
	}
	if cfg.Background != model.Black {
		t.Errorf("background = %v, want black", cfg.Background)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	v := viper.New()
	v.Set(KEY_CONFIG_FILE, filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(v); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"empty mesh path", func(c *Config) { c.MeshPath = "" }},
		{"empty shader dir", func(c *Config) { c.ShaderDir = "" }},
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"color above one", func(c *Config) { c.MeshColor = vm.Vec3{X: 2} }},
		{"negative background", func(c *Config) { c.Background = vm.Vec3{Y: -0.5} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Defaults()
			tt.modify(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalid) {
				t.Fatalf("err = %v, want ErrInvalid", err)
			}
		})
	}
	d := Defaults()
	if err := d.Validate(); err != nil {
		t.Errorf("defaults should be valid: %v", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		raw     interface{}
		want    vm.Vec3
		wantErr bool
	}{
		{raw: "0,1,0", want: model.Green},
		{raw: "0.5 0.25 1", want: vm.Vec3{X: 0.5, Y: 0.25, Z: 1}},
		{raw: []interface{}{1, 1, 1}, want: model.White},
		{raw: "1,1", wantErr: true},
		{raw: "a,b,c", wantErr: true},
		{raw: 3, wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.raw)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("ParseColor(%v): err = %v, want ErrInvalid", tt.raw, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColor(%v): %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%v) = %v, want %v", tt.raw, got, tt.want)
		}
	}
	if FormatColor(model.Green) != "0,1,0" {
		t.Errorf("FormatColor(green) = %q", FormatColor(model.Green))
	}
}
