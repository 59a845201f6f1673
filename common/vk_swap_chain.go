package common

import (
	"fmt"
	vk "github.com/goki/vulkan"
	"log"
	"math"
)

type SwapChain struct {
	supDetails SwapChainDetails
	Handle     vk.Swapchain

	Format      vk.SurfaceFormat
	PresentMode vk.PresentMode
	Extend      vk.Extent2D

	Images   []vk.Image
	ImgViews []vk.ImageView
	Aspect   float32

	FrameBuffers []vk.Framebuffer
}

// NewSwapChain creates the swap chain and one image view per swap chain image. Frame buffers depend on the render
// pass and are created separately by CreateFrameBuffers.
func NewSwapChain(dc *Device, w *Window) (*SwapChain, error) {
	sc := &SwapChain{}
	sc.chooseConfiguration(dc, w)
	if sc.Extend.Width == 0 || sc.Extend.Height == 0 {
		return nil, fmt.Errorf("create swap chain: window has no drawable area (%dx%d)", sc.Extend.Width, sc.Extend.Height)
	}
	if err := sc.createSwapChainHandle(dc, w); err != nil {
		return nil, err
	}
	if err := sc.readImages(dc); err != nil {
		sc.Destroy(dc)
		return nil, err
	}
	if err := sc.createImageViews(dc); err != nil {
		sc.Destroy(dc)
		return nil, err
	}

	// Precalculate the images' aspect ratio for later
	sc.Aspect = float32(sc.Extend.Width) / float32(sc.Extend.Height)
	return sc, nil
}

func (sc *SwapChain) CreateFrameBuffers(dc *Device, renderPass vk.RenderPass, depthImageView *vk.ImageView) error {
	sc.FrameBuffers = make([]vk.Framebuffer, 0, len(sc.ImgViews))
	for i := range sc.ImgViews {
		attachments := []vk.ImageView{sc.ImgViews[i]}
		if depthImageView != nil {
			attachments = append(attachments, *depthImageView)
		}
		framebufferInfo := vk.FramebufferCreateInfo{
			SType:           vk.StructureTypeFramebufferCreateInfo,
			PNext:           nil,
			Flags:           0,
			RenderPass:      renderPass,
			AttachmentCount: uint32(len(attachments)),
			PAttachments:    attachments,
			Width:           sc.Extend.Width,
			Height:          sc.Extend.Height,
			Layers:          1,
		}
		fb, err := VkCreateFrameBuffer(dc.D, &framebufferInfo, nil)
		if err != nil {
			return fmt.Errorf("create frame buffer [%d]: %w", i, err)
		}
		sc.FrameBuffers = append(sc.FrameBuffers, fb)
	}
	log.Printf("Successfully created %d frame buffers", len(sc.FrameBuffers))
	return nil
}

func (sc *SwapChain) chooseConfiguration(dc *Device, w *Window) {
	sc.supDetails = ReadSwapChainSupportDetails(dc.PD, *w.Surf)
	sc.Format = sc.supDetails.selectSwapSurfaceFormat(vk.FormatB8g8r8a8Srgb, vk.ColorSpaceSrgbNonlinear)
	sc.PresentMode = sc.supDetails.selectSwapPresentMode(vk.PresentModeMailbox)
	sc.Extend = sc.supDetails.selectSwapExtent(w.Extent())
}

func (sc *SwapChain) createSwapChainHandle(dc *Device, w *Window) error {
	imgCount := sc.supDetails.imageCount()

	// Depending on whether our queue families are the same for graphics and presentation, we need to choose different
	// swap chain configurations: https://vulkan-tutorial.com/Drawing_a_triangle/Presentation/Swap_chain
	indices := dc.QFamilies
	sharingMode := vk.SharingModeExclusive
	var qFamIndices []uint32
	if !indices.IsShared() {
		sharingMode = vk.SharingModeConcurrent
		qFamIndices = []uint32{*indices.GraphicsFamily, *indices.PresentFamily}
	}

	// Reasonable default values for creating a swap chain
	createInfo := &vk.SwapchainCreateInfo{
		SType:                 vk.StructureTypeSwapchainCreateInfo,
		PNext:                 nil,
		Flags:                 0,
		Surface:               *w.Surf,
		MinImageCount:         imgCount,
		ImageFormat:           sc.Format.Format,
		ImageColorSpace:       sc.Format.ColorSpace,
		ImageExtent:           sc.Extend,
		ImageArrayLayers:      1,
		ImageUsage:            vk.ImageUsageFlags(vk.ImageUsageColorAttachmentBit),
		ImageSharingMode:      sharingMode,
		QueueFamilyIndexCount: uint32(len(qFamIndices)),
		PQueueFamilyIndices:   qFamIndices,
		PreTransform:          sc.supDetails.capabilities.CurrentTransform,
		CompositeAlpha:        vk.CompositeAlphaOpaqueBit,
		PresentMode:           sc.PresentMode,
		Clipped:               vk.True,
		OldSwapchain:          nil,
	}

	var err error
	sc.Handle, err = VkCreateSwapChain(dc.D, createInfo, nil)
	if err != nil {
		return fmt.Errorf("create swap chain: %w", err)
	}
	log.Printf("Successfully created swap chain (%dx%d, %d images)", sc.Extend.Width, sc.Extend.Height, imgCount)
	return nil
}

func (sc *SwapChain) readImages(dc *Device) error {
	var err error
	sc.Images, err = ReadSwapChainImages(dc.D, sc.Handle)
	return err
}

func (sc *SwapChain) createImageViews(dc *Device) error {
	sc.ImgViews = make([]vk.ImageView, 0, len(sc.Images))
	for i := range sc.Images {
		view, err := VKCreate2DFullSizeImageView(dc.D, sc.Images[i], sc.Format.Format, vk.ImageAspectFlags(vk.ImageAspectColorBit))
		if err != nil {
			return fmt.Errorf("create swap chain image view [%d]: %w", i, err)
		}
		sc.ImgViews = append(sc.ImgViews, view)
	}
	log.Printf("Successfully created %d image views", len(sc.ImgViews))
	return nil
}

func (sc *SwapChain) Destroy(dc *Device) {
	for i := range sc.FrameBuffers {
		vk.DestroyFramebuffer(dc.D, sc.FrameBuffers[i], nil)
	}
	sc.FrameBuffers = nil
	for i := range sc.ImgViews {
		vk.DestroyImageView(dc.D, sc.ImgViews[i], nil)
	}
	sc.ImgViews = nil
	if sc.Handle != nil {
		vk.DestroySwapchain(dc.D, sc.Handle, nil)
		sc.Handle = nil
	}
}

type SwapChainDetails struct {
	capabilities vk.SurfaceCapabilities
	formats      []vk.SurfaceFormat
	presentModes []vk.PresentMode
}

func (s *SwapChainDetails) selectSwapSurfaceFormat(desiredFormat vk.Format, desiredColorSpace vk.ColorSpace) vk.SurfaceFormat {
	for _, af := range s.formats {
		if af.Format == desiredFormat && af.ColorSpace == desiredColorSpace {
			return af
		}
	}
	fallbackFormat := s.formats[0]
	log.Printf("Did not find prefered SurfaceFormat, selecting first one available. (%v)", fallbackFormat)
	return fallbackFormat
}

func (s *SwapChainDetails) selectSwapPresentMode(desiredMode vk.PresentMode) vk.PresentMode {
	for _, pm := range s.presentModes {
		if pm == desiredMode {
			return pm
		}
	}
	fallbackMode := vk.PresentModeFifo
	log.Printf("Did not find prefered PresentMode, selecting FIFO. (%v)", fallbackMode)
	return fallbackMode
}

// selectSwapExtent uses the surface's current extent. Surfaces that let the application decide report a width of
// 0xFFFFFFFF, in which case the drawable size of the window is clamped into the supported range.
func (s *SwapChainDetails) selectSwapExtent(drawable vk.Extent2D) vk.Extent2D {
	if s.capabilities.CurrentExtent.Width != math.MaxUint32 {
		return s.capabilities.CurrentExtent
	}
	return vk.Extent2D{
		Width:  clampU32(drawable.Width, s.capabilities.MinImageExtent.Width, s.capabilities.MaxImageExtent.Width),
		Height: clampU32(drawable.Height, s.capabilities.MinImageExtent.Height, s.capabilities.MaxImageExtent.Height),
	}
}

// imageCount requests one image more than the minimum. A maximum of 0 means there is no limit.
func (s *SwapChainDetails) imageCount() uint32 {
	imgCount := s.capabilities.MinImageCount + 1
	if s.capabilities.MaxImageCount > 0 && imgCount > s.capabilities.MaxImageCount {
		imgCount = s.capabilities.MaxImageCount
	}
	return imgCount
}

func clampU32(v uint32, lo uint32, hi uint32) uint32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func checkSwapChainAdequacy(pd vk.PhysicalDevice, surface vk.Surface) bool {
	scDetails := ReadSwapChainSupportDetails(pd, surface)
	log.Printf("Read swap chain details: %d formats, %d present modes", len(scDetails.formats), len(scDetails.presentModes))
	return len(scDetails.formats) > 0 && len(scDetails.presentModes) > 0
}
