package common

import (
	"errors"
	"testing"

	vk "github.com/goki/vulkan"
)

func TestFindMemoryType(t *testing.T) {
	hostVis := vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit)
	local := vk.MemoryPropertyFlags(vk.MemoryPropertyDeviceLocalBit)

	var props vk.PhysicalDeviceMemoryProperties
	props.MemoryTypeCount = 3
	props.MemoryTypes[0].PropertyFlags = local
	props.MemoryTypes[1].PropertyFlags = hostVis
	props.MemoryTypes[2].PropertyFlags = hostVis | local

	tests := []struct {
		name   string
		filter uint32
		flags  vk.MemoryPropertyFlags
		want   uint32
	}{
		{"device local", 0b111, local, 0},
		{"host visible", 0b111, hostVis, 1},
		{"filter skips first match", 0b100, hostVis, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindMemoryType(props, tt.filter, tt.flags)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}

	if _, err := FindMemoryType(props, 0b001, hostVis); !errors.Is(err, errNoMemoryType) {
		t.Errorf("expected errNoMemoryType, got %v", err)
	}
}
