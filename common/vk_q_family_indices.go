package common

import (
	"errors"
	vk "github.com/goki/vulkan"
)

var (
	errNoGraphicsQueue = errors.New("unable to find graphics capable queue family")
	errNoPresentQueue  = errors.New("unable to find present capable queue family for given surface")
)

type QueueFamilyIndices struct {
	GraphicsFamily *uint32
	PresentFamily  *uint32
}

// findQueueFamilies picks the first graphics and the first present capable family. A family doing both is
// preferred so the swap chain images can stay in exclusive sharing mode.
func findQueueFamilies(pd vk.PhysicalDevice, surf vk.Surface) (*QueueFamilyIndices, error) {
	qFamilies := ReadQueueFamilies(pd)
	presentSupport := make([]bool, len(qFamilies))
	for i := range qFamilies {
		var supported vk.Bool32
		vk.GetPhysicalDeviceSurfaceSupport(pd, uint32(i), surf, &supported)
		presentSupport[i] = supported == vk.True
	}
	return selectQueueFamilies(qFamilies, presentSupport)
}

func selectQueueFamilies(qFamilies []vk.QueueFamilyProperties, presentSupport []bool) (*QueueFamilyIndices, error) {
	indices := &QueueFamilyIndices{}
	for i := range qFamilies {
		if isBitSet(qFamilies[i], vk.QueueGraphicsBit) && presentSupport[i] {
			idx := uint32(i)
			indices.GraphicsFamily = &idx
			indices.PresentFamily = &idx
			return indices, nil
		}
	}
	for i := range qFamilies {
		if indices.GraphicsFamily == nil && isBitSet(qFamilies[i], vk.QueueGraphicsBit) {
			idx := uint32(i)
			indices.GraphicsFamily = &idx
		}
		if indices.PresentFamily == nil && presentSupport[i] {
			idx := uint32(i)
			indices.PresentFamily = &idx
		}
	}
	if indices.GraphicsFamily == nil {
		return nil, errNoGraphicsQueue
	}
	if indices.PresentFamily == nil {
		return nil, errNoPresentQueue
	}
	return indices, nil
}

func isBitSet(qFamily vk.QueueFamilyProperties, bit vk.QueueFlagBits) bool {
	return vk.QueueFlagBits(qFamily.QueueFlags)&bit > 0
}

func (q *QueueFamilyIndices) isAllQueuesFound() bool {
	return q.GraphicsFamily != nil && q.PresentFamily != nil
}

// IsShared reports whether graphics and presentation run on the same queue family
func (q *QueueFamilyIndices) IsShared() bool {
	return q.isAllQueuesFound() && *q.GraphicsFamily == *q.PresentFamily
}

func (q *QueueFamilyIndices) uniqueIndices() []uint32 {
	var uniqIndices []uint32
	for _, idx := range []*uint32{q.GraphicsFamily, q.PresentFamily} {
		if idx != nil && !inList(*idx, uniqIndices) {
			uniqIndices = append(uniqIndices, *idx)
		}
	}
	return uniqIndices
}

func (q *QueueFamilyIndices) toQueueCreateInfos() ([]vk.DeviceQueueCreateInfo, error) {
	if q.GraphicsFamily == nil {
		return nil, errNoGraphicsQueue
	}
	if q.PresentFamily == nil {
		return nil, errNoPresentQueue
	}
	uniqIndices := q.uniqueIndices()
	infos := make([]vk.DeviceQueueCreateInfo, len(uniqIndices))
	for i := range uniqIndices {
		infos[i] = vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			PNext:            nil,
			Flags:            0,
			QueueFamilyIndex: uniqIndices[i],
			QueueCount:       1,
			PQueuePriorities: []float32{1.0},
		}
	}
	return infos, nil
}

func inList(e uint32, l []uint32) bool {
	for i := range l {
		if l[i] == e {
			return true
		}
	}
	return false
}
