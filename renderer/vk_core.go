package renderer

import (
	"context"
	"fmt"
	"log"
	"time"

	com "mesh_viewer/common"
	"mesh_viewer/input"
	"mesh_viewer/model"
	vm "local/vector_math"

	vk "github.com/goki/vulkan"
	"github.com/veandco/go-sdl2/sdl"
)

const MAX_FRAMES_IN_FLIGHT = 3

// Settings configure the window and the location of the compiled shaders
type Settings struct {
	Title      string
	Width      int32
	Height     int32
	Validation bool
	ShaderDir  string
}

type Core struct {
	settings Settings

	// OS/Window level
	Win    *com.Window
	device *com.Device

	// Target level
	swapChain *com.SwapChain
	depth     *com.Image

	// Drawing infrastructure level
	renderPass     vk.RenderPass
	descriptors    *DescriptorProvisioner
	pipelineLayout vk.PipelineLayout
	fillPipeline   vk.Pipeline
	linePipeline   vk.Pipeline
	commandPool    vk.CommandPool

	// Frame level
	commandBuffers     []vk.CommandBuffer
	currentFrameIdx    int32
	imageAvailableSems []vk.Semaphore
	renderFinishedSems []vk.Semaphore
	inFlightFens       []vk.Fence

	// Data level
	uniformBuffers []*com.Buffer

	// 3D World
	Cam        *model.Camera
	background vm.Vec3
	models     []*gpuModel
}

// Externally facing functions

func NewCore(s Settings) *Core {
	return &Core{
		settings:   s,
		background: vm.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// Initialize opens the window and creates every Vulkan object needed to draw. On failure the objects created so far
// stay referenced by the Core and are released by Destroy.
func (c *Core) Initialize() error {
	var err error
	c.Win, err = com.NewWindow(c.settings.Title, c.settings.Width, c.settings.Height, c.settings.Validation)
	if err != nil {
		return err
	}
	c.device, err = com.NewDevice(c.Win)
	if err != nil {
		return err
	}
	c.swapChain, err = com.NewSwapChain(c.device, c.Win)
	if err != nil {
		return err
	}
	steps := []struct {
		name string
		fn   func() error
	}{
		{"render pass", c.createRenderPass},
		{"descriptor set layout", c.createDescriptorSetLayout},
		{"graphics pipelines", c.createGraphicsPipelines},
		{"command pool", c.createCommandPool},
		{"depth resources", c.createDepthResources},
		{"frame buffers", c.createFrameBuffers},
		{"uniform buffers", c.createUniformBuffers},
		{"descriptor sets", c.createDescriptorSets},
		{"command buffers", c.createCommandBuffers},
		{"sync objects", c.createSyncObjects},
	}
	for _, step := range steps {
		if err = step.fn(); err != nil {
			return fmt.Errorf("create %s: %w", step.name, err)
		}
	}
	if c.Cam == nil {
		c.DefaultCam()
	}
	log.Println("Render core initialized")
	return nil
}

// SetCamera replaces the camera used for the view and projection of every frame. The aspect ratio is kept in sync
// with the swap chain by the Core.
func (c *Core) SetCamera(cam *model.Camera) {
	c.Cam = cam
}

// SetBackground sets the clear color of the next frames
func (c *Core) SetBackground(color vm.Vec3) {
	c.background = color
}

// Loop this function represents the event-loop for user interaction and contains the primary draw call that renders
// each frame. The whole purpose of this function is to provide a neat interface for call backs and all basic
// functionality a well-behaved app should have. E.g.: Not rendering if minimized, close on Window 'close button',
// close on ESC key. The loop also ends when ctx is done.
func (c *Core) Loop(ctx context.Context, onEvent input.Handler, onDraw func(elapsed time.Duration)) error {
	t0 := time.Now()
	frames := 0
	c.Win.Close = false
	for !c.Win.Close {
		select {
		case <-ctx.Done():
			log.Printf("Closing window: %v", ctx.Err())
			c.Win.Close = true
			continue
		default:
		}
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			c.dispatch(event, onEvent)
		}
		if c.Win.Minimized {
			// Sleep until new events change c.Win.Minimized, waking up regularly to notice ctx
			if event := sdl.WaitEventTimeout(100); event != nil {
				c.dispatch(event, onEvent)
			}
			continue
		}
		if c.Win.Close {
			break
		}
		onDraw(time.Since(t0))
		if err := c.drawFrame(); err != nil {
			vk.DeviceWaitIdle(c.device.D)
			return err
		}
		frames++
	}
	vk.DeviceWaitIdle(c.device.D)
	dt := time.Since(t0)
	log.Printf("Elapsed: %v, rough avg fps: %v fps", dt, float64(frames)/dt.Seconds())
	return nil
}

// dispatch does the basic window handling for an event and forwards it to the handler
func (c *Core) dispatch(event sdl.Event, onEvent input.Handler) {
	switch ev := event.(type) {
	case *sdl.QuitEvent:
		c.Win.Close = true
	case *sdl.WindowEvent:
		switch ev.Event {
		case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
			c.Win.Resized = true
		case sdl.WINDOWEVENT_MINIMIZED:
			c.Win.Minimized = true
		case sdl.WINDOWEVENT_RESTORED:
			c.Win.Minimized = false
			c.Win.Resized = true
		}
	case *sdl.KeyboardEvent:
		if ev.Keysym.Sym == sdl.K_ESCAPE {
			c.Win.Close = true
		}
	}
	if ie, ok := translateEvent(event); ok && onEvent != nil {
		onEvent(ie)
	}
}

// Destroy releases everything Initialize and AddToScene created. It is safe to call after a failed Initialize.
func (c *Core) Destroy() {
	if c.device == nil {
		if c.Win != nil {
			c.Win.Destroy()
		}
		return
	}
	// We need to wait for the last asynchronous call to finish before tear down
	vk.DeviceWaitIdle(c.device.D)

	// If user has not cleaned up all models manually, remove them now
	if len(c.models) > 0 {
		log.Printf("Releasing %d models left in the scene", len(c.models))
		c.ClearScene()
	}
	c.destroySwapChainAndDerivatives()

	// Destroy all buffers (application data)
	for _, ub := range c.uniformBuffers {
		com.DestroyBuffer(c.device, ub)
	}
	c.uniformBuffers = nil
	if c.descriptors != nil {
		c.descriptors.Destroy()
	}

	// Destroy all infrastructure up to the sdl window
	for i := range c.inFlightFens {
		vk.DestroySemaphore(c.device.D, c.imageAvailableSems[i], nil)
		vk.DestroySemaphore(c.device.D, c.renderFinishedSems[i], nil)
		vk.DestroyFence(c.device.D, c.inFlightFens[i], nil)
	}
	if c.commandPool != nil {
		vk.DestroyCommandPool(c.device.D, c.commandPool, nil)
	}
	for _, p := range []vk.Pipeline{c.fillPipeline, c.linePipeline} {
		if p != nil {
			vk.DestroyPipeline(c.device.D, p, nil)
		}
	}
	if c.pipelineLayout != nil {
		vk.DestroyPipelineLayout(c.device.D, c.pipelineLayout, nil)
	}
	if c.renderPass != nil {
		vk.DestroyRenderPass(c.device.D, c.renderPass, nil)
	}

	c.device.Destroy()
	c.device = nil
	c.Win.Destroy()
	c.Win = nil
}

func (c *Core) destroySwapChainAndDerivatives() {
	com.DestroyImage(c.device, c.depth)
	c.depth = nil
	if c.swapChain != nil {
		c.swapChain.Destroy(c.device)
		c.swapChain = nil
	}
}

func (c *Core) createFrameBuffers() error {
	return c.swapChain.CreateFrameBuffers(c.device, c.renderPass, &c.depth.View)
}

func (c *Core) createCommandPool() error {
	commandPool, err := com.VKSCreateCommandPool(
		c.device.D,
		vk.CommandPoolCreateFlags(vk.CommandPoolCreateResetCommandBufferBit),
		*c.device.QFamilies.GraphicsFamily,
	)
	if err != nil {
		return err
	}
	log.Printf("Successfully created command pool")
	c.commandPool = commandPool
	return nil
}

func (c *Core) createCommandBuffers() error {
	buffers, err := com.VKAllocateCommandBuffersPrimary(c.device.D, c.commandPool, uint32(MAX_FRAMES_IN_FLIGHT))
	if err != nil {
		return err
	}
	log.Printf("Successfully allocated %d command buffers", len(buffers))
	c.commandBuffers = buffers
	return nil
}

func (c *Core) createSyncObjects() error {
	for i := 0; i < MAX_FRAMES_IN_FLIGHT; i++ {
		ias, err := com.VKSCreateSemaphore(c.device.D)
		if err != nil {
			return err
		}
		rfs, err := com.VKSCreateSemaphore(c.device.D)
		if err != nil {
			vk.DestroySemaphore(c.device.D, ias, nil)
			return err
		}
		iff, err := com.VKSCreateFence(c.device.D, true)
		if err != nil {
			vk.DestroySemaphore(c.device.D, ias, nil)
			vk.DestroySemaphore(c.device.D, rfs, nil)
			return err
		}
		c.imageAvailableSems = append(c.imageAvailableSems, ias)
		c.renderFinishedSems = append(c.renderFinishedSems, rfs)
		c.inFlightFens = append(c.inFlightFens, iff)
	}
	return nil
}

func (c *Core) createDepthResources() error {
	dFormat, err := c.findDepthFormat()
	if err != nil {
		return err
	}
	c.depth, err = com.CreateImage(
		c.device,
		c.swapChain.Extend.Width,
		c.swapChain.Extend.Height,
		dFormat,
		vk.ImageTilingOptimal,
		vk.ImageUsageFlags(vk.ImageUsageDepthStencilAttachmentBit),
		vk.MemoryPropertyFlags(vk.MemoryPropertyDeviceLocalBit),
		vk.ImageAspectFlags(vk.ImageAspectDepthBit),
	)
	return err
}

func (c *Core) findDepthFormat() (vk.Format, error) {
	return c.findSupportedFormat(
		[]vk.Format{vk.FormatD32Sfloat, vk.FormatD32SfloatS8Uint, vk.FormatD24UnormS8Uint},
		vk.ImageTilingOptimal,
		vk.FormatFeatureFlags(vk.FormatFeatureDepthStencilAttachmentBit),
	)
}

func (c *Core) findSupportedFormat(candidates []vk.Format, tiling vk.ImageTiling, features vk.FormatFeatureFlags) (vk.Format, error) {
	for _, format := range candidates {
		fProps := com.ReadFormatProperties(c.device.PD, format)
		if tiling == vk.ImageTilingLinear && (fProps.LinearTilingFeatures&features) == features {
			return format, nil
		} else if tiling == vk.ImageTilingOptimal && (fProps.OptimalTilingFeatures&features) == features {
			return format, nil
		}
	}
	return vk.FormatUndefined, fmt.Errorf("%w: none of the formats %v", com.ErrUnsupported, candidates)
}

func (c *Core) createUniformBuffers() error {
	uboBufSize := vk.DeviceSize(model.SizeOfUbo())
	log.Printf("UBO buffer size: %d Byte", uboBufSize)

	memProps := vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit)
	for i := 0; i < MAX_FRAMES_IN_FLIGHT; i++ {
		uboBuf, err := com.CreateBuffer(
			c.device,
			uboBufSize,
			vk.BufferUsageFlags(vk.BufferUsageUniformBufferBit),
			memProps,
		)
		if err != nil {
			return err
		}
		c.uniformBuffers = append(c.uniformBuffers, uboBuf)
		if _, err = uboBuf.Map(c.device); err != nil {
			return err
		}
	}
	return nil
}

func (c *Core) updateUniformBuffer(frameIdx int32) {
	c.Cam.Aspect = c.swapChain.Aspect
	ubo := model.UniformBufferObject{
		View:       c.Cam.GetView(),
		Projection: c.Cam.GetProjection(),
		Light:      DEFAULT_LIGHT,
	}
	vk.Memcopy(c.uniformBuffers[frameIdx].Mapped, ubo.Bytes())
}
