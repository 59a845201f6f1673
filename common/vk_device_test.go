package common

import (
	"testing"

	vk "github.com/goki/vulkan"
)

func indicesOf(graphics uint32, present uint32) *QueueFamilyIndices {
	return &QueueFamilyIndices{GraphicsFamily: &graphics, PresentFamily: &present}
}

func TestDeviceScorePrefersDiscrete(t *testing.T) {
	features := vk.PhysicalDeviceFeatures{FillModeNonSolid: vk.True}
	discrete := deviceScore(vk.PhysicalDeviceTypeDiscreteGpu, features, indicesOf(0, 0))
	integrated := deviceScore(vk.PhysicalDeviceTypeIntegratedGpu, features, indicesOf(0, 0))
	if integrated <= 0 {
		t.Fatalf("integrated GPUs must be accepted, got score %d", integrated)
	}
	if discrete <= integrated {
		t.Errorf("discrete (%d) should outrank integrated (%d)", discrete, integrated)
	}
}

func TestDeviceScoreSharedQueueBonus(t *testing.T) {
	features := vk.PhysicalDeviceFeatures{FillModeNonSolid: vk.True}
	shared := deviceScore(vk.PhysicalDeviceTypeIntegratedGpu, features, indicesOf(0, 0))
	split := deviceScore(vk.PhysicalDeviceTypeIntegratedGpu, features, indicesOf(0, 1))
	if shared <= split {
		t.Errorf("shared queue family (%d) should outrank split (%d)", shared, split)
	}
}

func TestDeviceScoreRejectsMissingFeature(t *testing.T) {
	if s := deviceScore(vk.PhysicalDeviceTypeDiscreteGpu, vk.PhysicalDeviceFeatures{}, indicesOf(0, 0)); s != 0 {
		t.Errorf("device without fillModeNonSolid should be rejected, got %d", s)
	}
	features := vk.PhysicalDeviceFeatures{FillModeNonSolid: vk.True}
	if s := deviceScore(vk.PhysicalDeviceTypeDiscreteGpu, features, &QueueFamilyIndices{}); s != 0 {
		t.Errorf("device without queues should be rejected, got %d", s)
	}
}
