// Package config collects the viewer settings from defaults, an optional config file, MESHVIEW_* environment
// variables and command line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"mesh_viewer/model"
	vm "local/vector_math"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const ENV_PREFIX = "MESHVIEW"

// Keys under which the settings are stored in viper
const (
	KEY_CONFIG_FILE = "config"
	KEY_MESH        = "mesh"
	KEY_SHADER_DIR  = "shader_dir"
	KEY_TITLE       = "title"
	KEY_WIDTH       = "width"
	KEY_HEIGHT      = "height"
	KEY_VALIDATION  = "validation"
	KEY_MESH_COLOR  = "mesh_color"
	KEY_BACKGROUND  = "background"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	MeshPath   string
	ShaderDir  string
	Title      string
	Width      int32
	Height     int32
	Validation bool
	MeshColor  vm.Vec3
	Background vm.Vec3
}

func Defaults() Config {
	return Config{
		MeshPath:   "models/bunny.obj",
		ShaderDir:  "shaders_spv",
		Title:      "mesh viewer",
		Width:      1280,
		Height:     720,
		Validation: false,
		MeshColor:  model.Green,
		Background: model.White,
	}
}

// SetDefaults registers the default of every key, so environment variables are picked up for all of them
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault(KEY_CONFIG_FILE, "")
	v.SetDefault(KEY_MESH, d.MeshPath)
	v.SetDefault(KEY_SHADER_DIR, d.ShaderDir)
	v.SetDefault(KEY_TITLE, d.Title)
	v.SetDefault(KEY_WIDTH, d.Width)
	v.SetDefault(KEY_HEIGHT, d.Height)
	v.SetDefault(KEY_VALIDATION, d.Validation)
	v.SetDefault(KEY_MESH_COLOR, FormatColor(d.MeshColor))
	v.SetDefault(KEY_BACKGROUND, FormatColor(d.Background))
}

// Load resolves the configuration from v. Flags have to be bound to v before.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file := v.GetString(KEY_CONFIG_FILE); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	meshColor, err := ParseColor(v.Get(KEY_MESH_COLOR))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KEY_MESH_COLOR, err)
	}
	background, err := ParseColor(v.Get(KEY_BACKGROUND))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KEY_BACKGROUND, err)
	}
	cfg := &Config{
		MeshPath:   v.GetString(KEY_MESH),
		ShaderDir:  v.GetString(KEY_SHADER_DIR),
		Title:      v.GetString(KEY_TITLE),
		Width:      v.GetInt32(KEY_WIDTH),
		Height:     v.GetInt32(KEY_HEIGHT),
		Validation: v.GetBool(KEY_VALIDATION),
		MeshColor:  meshColor,
		Background: background,
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var problems []string
	if c.MeshPath == "" {
		problems = append(problems, "mesh path is empty")
	}
	if c.ShaderDir == "" {
		problems = append(problems, "shader directory is empty")
	}
	if c.Width <= 0 || c.Height <= 0 {
		problems = append(problems, fmt.Sprintf("window size %dx%d is not positive", c.Width, c.Height))
	}
	if !inUnitRange(c.MeshColor) {
		problems = append(problems, fmt.Sprintf("mesh color %s is outside [0,1]", FormatColor(c.MeshColor)))
	}
	if !inUnitRange(c.Background) {
		problems = append(problems, fmt.Sprintf("background %s is outside [0,1]", FormatColor(c.Background)))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, ", "))
	}
	return nil
}

func inUnitRange(c vm.Vec3) bool {
	for _, x := range []float32{c.X, c.Y, c.Z} {
		if x < 0 || x > 1 {
			return false
		}
	}
	return true
}

// ParseColor accepts "r,g,b" or "r g b" strings as they come from flags and the environment, and lists of three
// numbers as they come from config files.
func ParseColor(raw interface{}) (vm.Vec3, error) {
	var parts []interface{}
	if s, ok := raw.(string); ok {
		for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
			parts = append(parts, f)
		}
	} else {
		var err error
		if parts, err = cast.ToSliceE(raw); err != nil {
			return vm.Vec3{}, fmt.Errorf("%w: color %v", ErrInvalid, raw)
		}
	}
	if len(parts) != 3 {
		return vm.Vec3{}, fmt.Errorf("%w: color %v needs 3 components, got %d", ErrInvalid, raw, len(parts))
	}
	var rgb [3]float32
	for i, p := range parts {
		f, err := cast.ToFloat32E(p)
		if err != nil {
			return vm.Vec3{}, fmt.Errorf("%w: color component %v", ErrInvalid, p)
		}
		rgb[i] = f
	}
	return vm.Vec3{X: rgb[0], Y: rgb[1], Z: rgb[2]}, nil
}

func FormatColor(c vm.Vec3) string {
	return fmt.Sprintf("%g,%g,%g", c.X, c.Y, c.Z)
}
