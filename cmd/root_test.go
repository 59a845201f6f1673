package cmd

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"mesh_viewer/config"
)

func TestMissingMeshFails(t *testing.T) {
	c := NewRootCommand()
	c.SetArgs([]string{filepath.Join(t.TempDir(), "missing.obj")})
	err := c.Execute()
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestInvalidFlagsFail(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero width", []string{"--width", "0"}},
		{"color out of range", []string{"--color", "0,2,0"}},
		{"short color", []string{"--background", "1,1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewRootCommand()
			c.SetArgs(tt.args)
			if err := c.Execute(); !errors.Is(err, config.ErrInvalid) {
				t.Fatalf("err = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestTooManyArguments(t *testing.T) {
	c := NewRootCommand()
	c.SetArgs([]string{"a.obj", "b.obj"})
	if err := c.Execute(); err == nil {
		t.Fatal("expected an error for two mesh arguments")
	}
}
