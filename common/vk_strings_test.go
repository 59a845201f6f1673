package common

import (
	"reflect"
	"testing"

	vk "github.com/goki/vulkan"
)

func TestAsVendorName(t *testing.T) {
	if got := asVendorName(0x10DE); got != "NVIDIA" {
		t.Errorf("got %s", got)
	}
	if got := asVendorName(0x8086); got != "INTEL" {
		t.Errorf("got %s", got)
	}
	if got := asVendorName(0xBEEF); got != "unknown" {
		t.Errorf("got %s", got)
	}
}

func TestNvidiaVer(t *testing.T) {
	raw := uint32(535<<22 | 104<<14 | 5<<6 | 1)
	if got := nvidiaVer(raw); got != "535.104.5.1" {
		t.Errorf("got %s", got)
	}
}

func TestToStringDeviceType(t *testing.T) {
	if got := toStringDeviceType(vk.PhysicalDeviceTypeDiscreteGpu); got != "discrete Gpu" {
		t.Errorf("got %s", got)
	}
	if got := toStringDeviceType(vk.PhysicalDeviceTypeIntegratedGpu); got != "integrated Gpu" {
		t.Errorf("got %s", got)
	}
}

func TestToStringQueueFlags(t *testing.T) {
	flags := vk.QueueFlags(vk.QueueGraphicsBit | vk.QueueTransferBit)
	want := []string{"VK_QUEUE_GRAPHICS_BIT", "VK_QUEUE_TRANSFER_BIT"}
	if got := toStringQueueFlags(flags); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
