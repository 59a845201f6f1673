package common

import (
	"fmt"
	vk "github.com/goki/vulkan"
	"log"
)

var DEVICE_EXTENSIONS = []string{
	"VK_KHR_swapchain",
}

// Device represents the interfacing objects between the SDL window, the Hardware running Vulkan
// and the rest of the rendering engine. Its main purpose is to encapsulate the corresponding objects
// to make the initialization and teardown of a given application neater.
type Device struct {
	PD            vk.PhysicalDevice
	PdProps       vk.PhysicalDeviceProperties
	PdMemoryProps vk.PhysicalDeviceMemoryProperties
	QFamilies     QueueFamilyIndices

	D         vk.Device
	GraphicsQ vk.Queue
	PresentQ  vk.Queue
}

func NewDevice(w *Window) (*Device, error) {
	dc := &Device{}
	if err := dc.selectPhysicalDevice(w.Inst, w.Surf); err != nil {
		return nil, err
	}
	if err := dc.createLogicalDevice(w.ValidationLayers); err != nil {
		return nil, err
	}
	return dc, nil
}

// Destroy all objects created by itself. It does not destroy the sdl.window object provided for instantiation.
func (dc *Device) Destroy() {
	if dc.D != nil {
		vk.DestroyDevice(dc.D, nil)
		dc.D = nil
	}
}

// WaitIdle blocks until all queues of the device have finished their work
func (dc *Device) WaitIdle() {
	vk.DeviceWaitIdle(dc.D)
}

// selectPhysicalDevice picks the best rated suitable device. Discrete GPUs win over integrated ones, but any device
// exposing the required queues, extensions and features is accepted.
func (dc *Device) selectPhysicalDevice(in *vk.Instance, su *vk.Surface) error {
	availableDevices, err := ReadPhysicalDevices(*in)
	if err != nil {
		return err
	}
	var pd vk.PhysicalDevice
	bestScore := 0
	for i := range availableDevices {
		score := rateDevice(availableDevices[i], *su)
		if score > bestScore {
			pd = availableDevices[i]
			bestScore = score
		}
	}
	if pd == nil {
		return fmt.Errorf("%w: no suitable physical device (GPU) found among %d", ErrUnsupported, len(availableDevices))
	}
	dc.PD = pd

	// Also set related member variables for dc.PD as they are needed later
	qf, err := findQueueFamilies(dc.PD, *su)
	if err != nil {
		return fmt.Errorf("read queue families from selected device: %w", err)
	}
	dc.QFamilies = *qf
	dc.PdProps = ReadPhysicalDeviceProperties(dc.PD)
	dc.PdMemoryProps = ReadDeviceMemoryProperties(dc.PD)
	log.Printf("Selected device \"%s\" (score %d)", vk.ToString(dc.PdProps.DeviceName[:]), bestScore)
	return nil
}

// rateDevice returns 0 for devices that can not run the viewer, a positive score otherwise
func rateDevice(pd vk.PhysicalDevice, su vk.Surface) int {
	pdProps := ReadPhysicalDeviceProperties(pd)
	pdFeatures := ReadPhysicalDeviceFeatures(pd)
	pdQueueFams := ReadQueueFamilies(pd)

	log.Printf("Physical device\n%s", ToStringPhysicalDeviceTable(pdProps, pdFeatures, pdQueueFams))

	indices, err := findQueueFamilies(pd, su)
	if err != nil {
		log.Printf("Failed to get required queue families: %s", err)
		return 0
	}
	if !checkDeviceExtensionSupport(pd, DEVICE_EXTENSIONS) || !checkSwapChainAdequacy(pd, su) {
		return 0
	}
	return deviceScore(pdProps.DeviceType, pdFeatures, indices)
}

func deviceScore(dt vk.PhysicalDeviceType, features vk.PhysicalDeviceFeatures, indices *QueueFamilyIndices) int {
	// Line polygon mode draws the wireframe overlay
	if features.FillModeNonSolid != vk.True || !indices.isAllQueuesFound() {
		return 0
	}
	score := 1
	switch dt {
	case vk.PhysicalDeviceTypeDiscreteGpu:
		score += 1000
	case vk.PhysicalDeviceTypeIntegratedGpu:
		score += 100
	case vk.PhysicalDeviceTypeVirtualGpu:
		score += 10
	}
	if indices.IsShared() {
		score += 5
	}
	return score
}

func (dc *Device) createLogicalDevice(validationLayers []string) error {
	queueInfos, err := dc.QFamilies.toQueueCreateInfos()
	if err != nil {
		return err
	}
	deviceFeatures := vk.PhysicalDeviceFeatures{
		FillModeNonSolid: vk.True,
	}
	deviceCreatInfo := &vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		PNext:                   nil,
		Flags:                   0,
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       queueInfos,
		EnabledLayerCount:       uint32(len(validationLayers)),
		PpEnabledLayerNames:     validationLayers,
		EnabledExtensionCount:   uint32(len(DEVICE_EXTENSIONS)),
		PpEnabledExtensionNames: TerminatedStrs(append([]string(nil), DEVICE_EXTENSIONS...)),
		PEnabledFeatures:        []vk.PhysicalDeviceFeatures{deviceFeatures},
	}

	dc.D, err = VkCreateDevice(dc.PD, deviceCreatInfo, nil)
	if err != nil {
		return fmt.Errorf("create logical device: %w", err)
	}
	dc.GraphicsQ, err = VkGetDeviceQueue(dc.D, dc.QFamilies.GraphicsFamily, 0)
	if err != nil {
		return fmt.Errorf("get 'graphics' device queue: %w", err)
	}
	dc.PresentQ, err = VkGetDeviceQueue(dc.D, dc.QFamilies.PresentFamily, 0)
	if err != nil {
		return fmt.Errorf("get 'present' device queue: %w", err)
	}
	log.Println("Successfully created logical device")
	return nil
}

func checkDeviceExtensionSupport(pd vk.PhysicalDevice, requiredDeviceExt []string) bool {
	supportedExtNames, err := ReadDeviceExtensionPropertyNames(pd)
	if err != nil {
		log.Printf("Failed to read device extensions: %v", err)
		return false
	}
	log.Printf("Required device extensions: %v", requiredDeviceExt)
	log.Printf("Available device extensions (%d) [...]\n", len(supportedExtNames))
	return IsSubset(requiredDeviceExt, supportedExtNames)
}
