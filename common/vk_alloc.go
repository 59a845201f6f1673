package common

import (
	"errors"
	"fmt"
	vk "github.com/goki/vulkan"
	"log"
	"unsafe"
)

// This Code section contains allocation helper functions. It aims to simplify the allocation of buffers and
// images on the selected device.

var errNoMemoryType = errors.New("no suitable memory type")

type Buffer struct {
	Handle    vk.Buffer
	DeviceMem vk.DeviceMemory
	Size      vk.DeviceSize
	Usage     vk.BufferUsageFlags
	props     vk.MemoryPropertyFlags

	// Mapped is set by Map and stays valid until the buffer is destroyed
	Mapped unsafe.Pointer
}

func CreateBuffer(dc *Device, size vk.DeviceSize, usage vk.BufferUsageFlags, props vk.MemoryPropertyFlags) (*Buffer, error) {
	// Buffer Handle of fitting Size
	bufferInfo := vk.BufferCreateInfo{
		SType:                 vk.StructureTypeBufferCreateInfo,
		PNext:                 nil,
		Flags:                 0,
		Size:                  size,
		Usage:                 usage,
		SharingMode:           vk.SharingModeExclusive,
		QueueFamilyIndexCount: 0,
		PQueueFamilyIndices:   nil,
	}
	buf, err := VkCreateBuffer(dc.D, &bufferInfo, nil)
	if err != nil {
		return nil, fmt.Errorf("create buffer of %d Byte: %w", size, err)
	}

	bufRequirements := ReadBufferMemoryRequirements(dc.D, buf)
	memType, err := FindMemoryType(dc.PdMemoryProps, bufRequirements.MemoryTypeBits, props)
	if err != nil {
		vk.DestroyBuffer(dc.D, buf, nil)
		return nil, err
	}

	// Allocate device memory
	allocInfo := vk.MemoryAllocateInfo{
		SType:           vk.StructureTypeMemoryAllocateInfo,
		PNext:           nil,
		AllocationSize:  bufRequirements.Size,
		MemoryTypeIndex: memType,
	}
	deviceMem, err := VkAllocateMemory(dc.D, &allocInfo, nil)
	if err != nil {
		vk.DestroyBuffer(dc.D, buf, nil)
		return nil, fmt.Errorf("allocate %d Byte buffer memory: %w", bufRequirements.Size, err)
	}

	// Associate allocated memory with buffer Handle
	if err = VkBindBufferMemory(dc.D, buf, deviceMem, 0); err != nil {
		vk.DestroyBuffer(dc.D, buf, nil)
		vk.FreeMemory(dc.D, deviceMem, nil)
		return nil, fmt.Errorf("bind device memory to buffer: %w", err)
	}

	return &Buffer{
		Handle:    buf,
		DeviceMem: deviceMem,
		Size:      size,
		Usage:     usage,
		props:     props,
	}, nil
}

func (b *Buffer) isHostVisible() bool {
	want := vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit)
	return b.props&want == want
}

// Map persistently maps the whole buffer into CPU memory. The buffer needs to be host visible and coherent.
func (b *Buffer) Map(dc *Device) (unsafe.Pointer, error) {
	if !b.isHostVisible() {
		return nil, errors.New("map buffer: memory is not host visible and coherent")
	}
	if b.Mapped != nil {
		return b.Mapped, nil
	}
	pData, err := VkMapMemory(dc.D, b.DeviceMem, 0, b.Size, 0)
	if err != nil {
		return nil, fmt.Errorf("map device memory: %w", err)
	}
	b.Mapped = pData
	return pData, nil
}

// CopyToDeviceBuffer is a convenience method to simplify the process of mapping device memory to CPU memory,
// copy bytes over to the GPU and unmapping the memory again. This requires the buffer to be
// vk.MemoryPropertyHostVisibleBit and vk.MemoryPropertyHostCoherentBit. Only a "full buffer" worth of payload
// starting at offset = 0 is accepted.
func CopyToDeviceBuffer(dc *Device, deviceBuf *Buffer, payload []byte) error {
	if !deviceBuf.isHostVisible() {
		return errors.New("copy to device buffer: buffer is not host visible and coherent")
	}
	if deviceBuf.Size != vk.DeviceSize(len(payload)) {
		return fmt.Errorf("copy to device buffer: buffer (%d Byte) and payload (%d Byte) not of equal size", deviceBuf.Size, len(payload))
	}
	// Map -> copy -> Unmap
	pData, err := VkMapMemory(dc.D, deviceBuf.DeviceMem, 0, deviceBuf.Size, 0)
	if err != nil {
		return fmt.Errorf("map device memory: %w", err)
	}
	bCopied := vk.Memcopy(pData, payload)
	log.Printf("copied %d bytes from cpu to device", bCopied)
	vk.UnmapMemory(dc.D, deviceBuf.DeviceMem)
	return nil
}

func DestroyBuffer(dc *Device, buffer *Buffer) {
	if buffer == nil {
		return
	}
	if buffer.Mapped != nil {
		vk.UnmapMemory(dc.D, buffer.DeviceMem)
		buffer.Mapped = nil
	}
	vk.DestroyBuffer(dc.D, buffer.Handle, nil)
	vk.FreeMemory(dc.D, buffer.DeviceMem, nil)
}

// Image bundles an image, its memory and a view over it
type Image struct {
	Handle    vk.Image
	DeviceMem vk.DeviceMemory
	View      vk.ImageView
	Format    vk.Format
}

func CreateImage(dc *Device, w uint32, h uint32, format vk.Format, tiling vk.ImageTiling, usage vk.ImageUsageFlags, props vk.MemoryPropertyFlags, aspect vk.ImageAspectFlags) (*Image, error) {
	imageInfo := &vk.ImageCreateInfo{
		SType:     vk.StructureTypeImageCreateInfo,
		PNext:     nil,
		Flags:     0,
		ImageType: vk.ImageType2d,
		Format:    format,
		Extent: vk.Extent3D{
			Width:  w,
			Height: h,
			Depth:  1,
		},
		MipLevels:             1,
		ArrayLayers:           1,
		Samples:               vk.SampleCount1Bit,
		Tiling:                tiling,
		Usage:                 usage,
		SharingMode:           vk.SharingModeExclusive,
		QueueFamilyIndexCount: 0,
		PQueueFamilyIndices:   nil,
		InitialLayout:         vk.ImageLayoutUndefined,
	}
	img, err := VkCreateImage(dc.D, imageInfo, nil)
	if err != nil {
		return nil, fmt.Errorf("create %dx%d image: %w", w, h, err)
	}
	res := &Image{Handle: img, Format: format}

	memRequirements := ReadImageMemoryRequirements(dc.D, img)
	memType, err := FindMemoryType(dc.PdMemoryProps, memRequirements.MemoryTypeBits, props)
	if err != nil {
		DestroyImage(dc, res)
		return nil, err
	}
	allocInfo := &vk.MemoryAllocateInfo{
		SType:           vk.StructureTypeMemoryAllocateInfo,
		PNext:           nil,
		AllocationSize:  memRequirements.Size,
		MemoryTypeIndex: memType,
	}
	res.DeviceMem, err = VkAllocateMemory(dc.D, allocInfo, nil)
	if err != nil {
		DestroyImage(dc, res)
		return nil, fmt.Errorf("allocate image device memory: %w", err)
	}
	if err = VkBindImageMemory(dc.D, img, res.DeviceMem, 0); err != nil {
		DestroyImage(dc, res)
		return nil, fmt.Errorf("bind image device memory: %w", err)
	}
	res.View, err = VKCreate2DFullSizeImageView(dc.D, img, format, aspect)
	if err != nil {
		DestroyImage(dc, res)
		return nil, fmt.Errorf("create image view: %w", err)
	}
	return res, nil
}

func DestroyImage(dc *Device, img *Image) {
	if img == nil {
		return
	}
	if img.View != nil {
		vk.DestroyImageView(dc.D, img.View, nil)
	}
	vk.DestroyImage(dc.D, img.Handle, nil)
	if img.DeviceMem != nil {
		vk.FreeMemory(dc.D, img.DeviceMem, nil)
	}
}

// FindMemoryType returns the index of the first memory type allowed by typeFilter that has all of propFlags
func FindMemoryType(memProps vk.PhysicalDeviceMemoryProperties, typeFilter uint32, propFlags vk.MemoryPropertyFlags) (uint32, error) {
	for i := uint32(0); i < memProps.MemoryTypeCount; i++ {
		ofType := (typeFilter & (1 << i)) > 0
		hasProperties := memProps.MemoryTypes[i].PropertyFlags&propFlags == propFlags
		if ofType && hasProperties {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w (filter %032b, flags %d)", errNoMemoryType, typeFilter, propFlags)
}
