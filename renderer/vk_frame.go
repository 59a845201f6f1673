package renderer

import (
	"fmt"
	"log"
	"math"
	"unsafe"

	com "mesh_viewer/common"
	"mesh_viewer/model"

	vk "github.com/goki/vulkan"
)

// DEFAULT_LIGHT is a head light: it shines along the view direction from the camera into the scene
var DEFAULT_LIGHT = [4]float32{0, 0, 1, 1}

func (c *Core) recordDrawCommands(buffer vk.CommandBuffer, imageIdx uint32) error {
	// Begin recording
	beginInfo := vk.CommandBufferBeginInfo{
		SType:            vk.StructureTypeCommandBufferBeginInfo,
		PNext:            nil,
		Flags:            0,
		PInheritanceInfo: nil,
	}
	if err := vk.Error(vk.BeginCommandBuffer(buffer, &beginInfo)); err != nil {
		return fmt.Errorf("begin recording command buffer: %w", err)
	}

	// Start render pass
	renderArea := vk.Rect2D{
		Offset: vk.Offset2D{X: 0, Y: 0},
		Extent: c.swapChain.Extend,
	}
	clearValues := []vk.ClearValue{
		vk.NewClearValue([]float32{c.background.X, c.background.Y, c.background.Z, 1}), // color
		vk.NewClearDepthStencil(1, 0), // depthStencil
	}
	renderPassInfo := vk.RenderPassBeginInfo{
		SType:           vk.StructureTypeRenderPassBeginInfo,
		PNext:           nil,
		RenderPass:      c.renderPass,
		Framebuffer:     c.swapChain.FrameBuffers[imageIdx],
		RenderArea:      renderArea,
		ClearValueCount: uint32(len(clearValues)),
		PClearValues:    clearValues,
	}
	vk.CmdBeginRenderPass(buffer, &renderPassInfo, vk.SubpassContentsInline)

	viewport := []vk.Viewport{
		{
			X:        0,
			Y:        0,
			Width:    float32(c.swapChain.Extend.Width),
			Height:   float32(c.swapChain.Extend.Height),
			MinDepth: 0,
			MaxDepth: 1.0,
		},
	}
	vk.CmdSetViewport(buffer, 0, 1, viewport)

	scissor := []vk.Rect2D{
		{
			Offset: vk.Offset2D{X: 0, Y: 0},
			Extent: c.swapChain.Extend,
		},
	}
	vk.CmdSetScissor(buffer, 0, 1, scissor)

	sets := []vk.DescriptorSet{c.descriptors.descriptorSets[c.currentFrameIdx]}
	for _, gm := range c.models {
		if gm.indexCount == 0 {
			continue
		}
		vertBuffers := []vk.Buffer{gm.vertices.Handle}
		offsets := []vk.DeviceSize{0}
		if gm.Data.ShowFaces {
			c.recordModel(buffer, c.fillPipeline, sets, vertBuffers, offsets, gm, [4]float32{})
		}
		if gm.Data.ShowLines {
			c.recordModel(buffer, c.linePipeline, sets, vertBuffers, offsets, gm, model.NewTint(gm.Data.LineColor))
		}
	}

	vk.CmdEndRenderPass(buffer)
	if err := vk.Error(vk.EndCommandBuffer(buffer)); err != nil {
		return fmt.Errorf("record command buffer: %w", err)
	}
	return nil
}

func (c *Core) recordModel(buffer vk.CommandBuffer, pipeline vk.Pipeline, sets []vk.DescriptorSet, vertBuffers []vk.Buffer, offsets []vk.DeviceSize, gm *gpuModel, tint [4]float32) {
	vk.CmdBindPipeline(buffer, vk.PipelineBindPointGraphics, pipeline)
	vk.CmdBindDescriptorSets(buffer, vk.PipelineBindPointGraphics, c.pipelineLayout, 0, uint32(len(sets)), sets, 0, nil)
	vk.CmdBindVertexBuffers(buffer, 0, uint32(len(vertBuffers)), vertBuffers, offsets)
	vk.CmdBindIndexBuffer(buffer, gm.indices.Handle, 0, vk.IndexTypeUint32)
	pc := model.PushConstants{Model: gm.ModelMat, Tint: tint}
	pcBytes := pc.Bytes()
	vk.CmdPushConstants(buffer, c.pipelineLayout, vk.ShaderStageFlags(vk.ShaderStageVertexBit), 0, model.PushConstantsSize(), unsafe.Pointer(&pcBytes[0]))
	vk.CmdDrawIndexed(buffer, gm.indexCount, 1, 0, 0, 0)
}

func (c *Core) drawFrame() error {
	if err := c.syncDirty(); err != nil {
		return err
	}

	// Wait for frame to be ready - signalled by the inFlightFens
	vk.WaitForFences(c.device.D, 1, []vk.Fence{c.inFlightFens[c.currentFrameIdx]}, vk.True, math.MaxUint64)

	var imgIdx uint32
	result := vk.AcquireNextImage(c.device.D, c.swapChain.Handle, math.MaxUint64, c.imageAvailableSems[c.currentFrameIdx], nil, &imgIdx)
	// React on surface changes and other possible causes for failure (e.g.: Window resizing)
	if result == vk.ErrorOutOfDate {
		return c.recreateSwapChain()
	} else if result != vk.Success && result != vk.Suboptimal {
		return fmt.Errorf("acquire image: %w", vk.Error(result))
	}

	// Reset the fence only if we are actually going to execute work that will put the fence into the signalled state
	vk.ResetFences(c.device.D, 1, []vk.Fence{c.inFlightFens[c.currentFrameIdx]})

	vk.ResetCommandBuffer(c.commandBuffers[c.currentFrameIdx], 0)
	if err := c.recordDrawCommands(c.commandBuffers[c.currentFrameIdx], imgIdx); err != nil {
		return err
	}

	c.updateUniformBuffer(c.currentFrameIdx)

	submitInfo := vk.SubmitInfo{
		SType:              vk.StructureTypeSubmitInfo,
		PNext:              nil,
		WaitSemaphoreCount: 1,
		PWaitSemaphores:    []vk.Semaphore{c.imageAvailableSems[c.currentFrameIdx]},
		PWaitDstStageMask: []vk.PipelineStageFlags{
			vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit),
		},
		CommandBufferCount:   1,
		PCommandBuffers:      []vk.CommandBuffer{c.commandBuffers[c.currentFrameIdx]},
		SignalSemaphoreCount: 1,
		PSignalSemaphores:    []vk.Semaphore{c.renderFinishedSems[c.currentFrameIdx]},
	}
	if err := vk.Error(vk.QueueSubmit(c.device.GraphicsQ, 1, []vk.SubmitInfo{submitInfo}, c.inFlightFens[c.currentFrameIdx])); err != nil {
		return fmt.Errorf("submit command buffer: %w", err)
	}

	presentInfo := vk.PresentInfo{
		SType:              vk.StructureTypePresentInfo,
		PNext:              nil,
		WaitSemaphoreCount: 1,
		PWaitSemaphores:    []vk.Semaphore{c.renderFinishedSems[c.currentFrameIdx]},
		SwapchainCount:     1,
		PSwapchains:        []vk.Swapchain{c.swapChain.Handle},
		PImageIndices:      []uint32{imgIdx},
		PResults:           nil,
	}
	result = vk.QueuePresent(c.device.PresentQ, &presentInfo)
	c.currentFrameIdx = (c.currentFrameIdx + 1) % MAX_FRAMES_IN_FLIGHT

	// React on surface changes and other possible causes for failure (e.g.: Window resizing)
	if result == vk.ErrorOutOfDate || result == vk.Suboptimal || c.Win.Resized {
		c.Win.Resized = false
		return c.recreateSwapChain()
	} else if result != vk.Success {
		return fmt.Errorf("present image: %w", vk.Error(result))
	}
	return nil
}

// recreateSwapChain rebuilds the swap chain and everything sized after it. A window without drawable area is treated
// as minimized, the swap chain is recreated once the window is restored.
func (c *Core) recreateSwapChain() error {
	if ext := c.Win.Extent(); ext.Width == 0 || ext.Height == 0 {
		c.Win.Minimized = true
		c.Win.Resized = true
		return nil
	}
	vk.DeviceWaitIdle(c.device.D)
	c.destroySwapChainAndDerivatives()
	var err error
	c.swapChain, err = com.NewSwapChain(c.device, c.Win)
	if err != nil {
		return fmt.Errorf("recreate swap chain: %w", err)
	}
	if err = c.createDepthResources(); err != nil {
		return fmt.Errorf("recreate depth resources: %w", err)
	}
	if err = c.createFrameBuffers(); err != nil {
		return fmt.Errorf("recreate frame buffers: %w", err)
	}
	log.Printf("Recreated swap chain: %dx%d", c.swapChain.Extend.Width, c.swapChain.Extend.Height)
	return nil
}
