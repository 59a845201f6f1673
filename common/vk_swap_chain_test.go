package common

import (
	"math"
	"testing"

	vk "github.com/goki/vulkan"
)

func TestSelectSwapSurfaceFormat(t *testing.T) {
	d := SwapChainDetails{formats: []vk.SurfaceFormat{
		{Format: vk.FormatR8g8b8a8Unorm, ColorSpace: vk.ColorSpaceSrgbNonlinear},
		{Format: vk.FormatB8g8r8a8Srgb, ColorSpace: vk.ColorSpaceSrgbNonlinear},
	}}
	if got := d.selectSwapSurfaceFormat(vk.FormatB8g8r8a8Srgb, vk.ColorSpaceSrgbNonlinear); got.Format != vk.FormatB8g8r8a8Srgb {
		t.Errorf("expected the desired format, got %v", got.Format)
	}
	if got := d.selectSwapSurfaceFormat(vk.FormatR16g16b16a16Sfloat, vk.ColorSpaceSrgbNonlinear); got.Format != vk.FormatR8g8b8a8Unorm {
		t.Errorf("expected the first format as fallback, got %v", got.Format)
	}
}

func TestSelectSwapPresentMode(t *testing.T) {
	d := SwapChainDetails{presentModes: []vk.PresentMode{vk.PresentModeFifo, vk.PresentModeMailbox}}
	if got := d.selectSwapPresentMode(vk.PresentModeMailbox); got != vk.PresentModeMailbox {
		t.Errorf("got %v", got)
	}
	d.presentModes = []vk.PresentMode{vk.PresentModeImmediate}
	if got := d.selectSwapPresentMode(vk.PresentModeMailbox); got != vk.PresentModeFifo {
		t.Errorf("expected FIFO fallback, got %v", got)
	}
}

func TestSelectSwapExtent(t *testing.T) {
	d := SwapChainDetails{}
	d.capabilities.CurrentExtent = vk.Extent2D{Width: 800, Height: 600}
	if got := d.selectSwapExtent(vk.Extent2D{Width: 1, Height: 1}); got.Width != 800 || got.Height != 600 {
		t.Errorf("expected current extent, got %v", got)
	}

	d.capabilities.CurrentExtent = vk.Extent2D{Width: math.MaxUint32, Height: math.MaxUint32}
	d.capabilities.MinImageExtent = vk.Extent2D{Width: 16, Height: 16}
	d.capabilities.MaxImageExtent = vk.Extent2D{Width: 1024, Height: 1024}
	got := d.selectSwapExtent(vk.Extent2D{Width: 4096, Height: 8})
	if got.Width != 1024 || got.Height != 16 {
		t.Errorf("expected clamped extent 1024x16, got %dx%d", got.Width, got.Height)
	}
}

func TestImageCount(t *testing.T) {
	d := SwapChainDetails{}
	d.capabilities.MinImageCount = 2
	if got := d.imageCount(); got != 3 {
		t.Errorf("unbounded: got %d", got)
	}
	d.capabilities.MaxImageCount = 2
	if got := d.imageCount(); got != 2 {
		t.Errorf("bounded: got %d", got)
	}
}
