package renderer

import (
	"fmt"
	"log"

	com "mesh_viewer/common"
	"mesh_viewer/model"

	vk "github.com/goki/vulkan"
)

// These functions are part of the rendering core but are split into their own file for logical separation. Their
// focus is scene handling. Adding removing and adjusting things shown in the 3D world of the renderer.

// gpuModel pairs a model with the device buffers holding its current vertex and index data
type gpuModel struct {
	*model.Model
	vertices   *com.Buffer
	indices    *com.Buffer
	indexCount uint32
}

func (c *Core) DefaultCam() {
	cam := model.NewCamera(45, 0.1, 100)
	cam.ProjectionType = model.CAM_PERSPECTIVE_PROJECTION
	c.Cam = cam
}

func (c *Core) FindInScene(name string) (*model.Model, error) {
	for _, m := range c.models {
		if m.Name == name {
			return m.Model, nil
		}
	}
	return nil, fmt.Errorf("model '%s' not found", name)
}

// AddToScene uploads the model's current data to device local buffers. Later changes to the model's data are picked
// up before the next frame is drawn, as long as the data is marked dirty.
func (c *Core) AddToScene(m *model.Model) error {
	if _, err := c.FindInScene(m.Name); err == nil {
		return fmt.Errorf("add to scene: model '%s' already present", m.Name)
	}
	gm := &gpuModel{Model: m}
	if err := c.upload(gm); err != nil {
		return fmt.Errorf("add '%s' to scene: %w", m.Name, err)
	}
	c.models = append(c.models, gm)
	log.Printf("Added model '%s' to scene (%d indices)", m.Name, gm.indexCount)
	return nil
}

func (c *Core) ClearScene() {
	for len(c.models) > 0 {
		c.RemoveFromScene(c.models[0].Model)
	}
}

// RemoveFromScene drops the reference to a model found in the scene and releases its device buffers.
// Comparison is done naively by name until more sophisticated methods are required.
func (c *Core) RemoveFromScene(m *model.Model) {
	for i, v := range c.models {
		if v.Name == m.Name {
			vk.DeviceWaitIdle(c.device.D)
			c.destroyModelBuffers(v)
			c.models = append(c.models[:i], c.models[i+1:]...)
			return
		}
	}
}

// upload replaces the device buffers of gm with its model's current vertices and indices
func (c *Core) upload(gm *gpuModel) error {
	if gm.IndexCount() == 0 {
		// Vulkan does not allow empty buffers, a mesh without faces is kept in the scene but never drawn
		c.destroyModelBuffers(gm)
		gm.Data.Dirty = false
		return nil
	}
	vertices, err := c.uploadToDevice(gm.GetVBufferBytes(), vk.BufferUsageFlags(vk.BufferUsageVertexBufferBit))
	if err != nil {
		return fmt.Errorf("vertex buffer: %w", err)
	}
	indices, err := c.uploadToDevice(gm.GetIdxBufferBytes(), vk.BufferUsageFlags(vk.BufferUsageIndexBufferBit))
	if err != nil {
		com.DestroyBuffer(c.device, vertices)
		return fmt.Errorf("index buffer: %w", err)
	}
	c.destroyModelBuffers(gm)
	gm.vertices = vertices
	gm.indices = indices
	gm.indexCount = gm.IndexCount()
	gm.Data.Dirty = false
	return nil
}

// syncDirty re-uploads every model whose data changed since its last upload. The device has to be idle as the old
// buffers may still be in use by frames in flight.
func (c *Core) syncDirty() error {
	waited := false
	for _, gm := range c.models {
		if !gm.Data.Dirty {
			continue
		}
		if !waited {
			vk.DeviceWaitIdle(c.device.D)
			waited = true
		}
		if err := c.upload(gm); err != nil {
			return fmt.Errorf("update '%s': %w", gm.Name, err)
		}
	}
	return nil
}

func (c *Core) destroyModelBuffers(gm *gpuModel) {
	com.DestroyBuffer(c.device, gm.vertices)
	com.DestroyBuffer(c.device, gm.indices)
	gm.vertices = nil
	gm.indices = nil
	gm.indexCount = 0
}
