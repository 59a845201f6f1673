package renderer

import (
	com "mesh_viewer/common"

	vk "github.com/goki/vulkan"
)

// These functions auxiliary functions that abstract from the raw Vulkan API by assuming some reasonable
// defaults where possible. These differ from the VKS function in vk_simplifications.go by being tied to a given
// Core Struct and are closer to helper function in the class than being a general abstraction of the API.

func (c *Core) beginSingleTimeCommands() (vk.CommandBuffer, error) {
	return com.VKBeginSingleTimeCommands(c.device.D, c.commandPool)
}

func (c *Core) endSingleTimeCommands(cmdBuf vk.CommandBuffer, queue vk.Queue) error {
	return com.VKEndSingleTimeCommands(c.device.D, c.commandPool, queue, cmdBuf)
}

// copyBuffer is a subroutine that prepares a command buffer that is then executed on the device.
// The command buffer is allocated, records the copy command and is submitted to the device. After idle
// the command buffer is freed.
func (c *Core) copyBuffer(src *com.Buffer, dst *com.Buffer, s vk.DeviceSize) error {
	cmdBuf, err := c.beginSingleTimeCommands()
	if err != nil {
		return err
	}
	copyRegions := []vk.BufferCopy{
		{
			SrcOffset: 0,
			DstOffset: 0,
			Size:      s,
		},
	}
	vk.CmdCopyBuffer(cmdBuf, src.Handle, dst.Handle, 1, copyRegions)
	return c.endSingleTimeCommands(cmdBuf, c.device.GraphicsQ)
}

// uploadToDevice moves payload into a new device local buffer of the given usage through a host visible staging
// buffer. The staging buffer is released before returning.
func (c *Core) uploadToDevice(payload []byte, usage vk.BufferUsageFlags) (*com.Buffer, error) {
	size := vk.DeviceSize(len(payload))
	staging, err := com.CreateBuffer(
		c.device,
		size,
		vk.BufferUsageFlags(vk.BufferUsageTransferSrcBit),
		vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit|vk.MemoryPropertyHostCoherentBit),
	)
	if err != nil {
		return nil, err
	}
	defer com.DestroyBuffer(c.device, staging)
	if err = com.CopyToDeviceBuffer(c.device, staging, payload); err != nil {
		return nil, err
	}

	dst, err := com.CreateBuffer(
		c.device,
		size,
		vk.BufferUsageFlags(vk.BufferUsageTransferDstBit)|usage,
		vk.MemoryPropertyFlags(vk.MemoryPropertyDeviceLocalBit),
	)
	if err != nil {
		return nil, err
	}
	if err = c.copyBuffer(staging, dst, size); err != nil {
		com.DestroyBuffer(c.device, dst)
		return nil, err
	}
	return dst, nil
}
