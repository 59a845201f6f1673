package renderer

import (
	"fmt"
	"log"

	com "mesh_viewer/common"
	"mesh_viewer/model"

	vk "github.com/goki/vulkan"
)

// DescriptorProvisioner owns the descriptor set layout, pool and the per-frame sets that bind the scene UBO
type DescriptorProvisioner struct {
	device vk.Device

	descriptorSetLayout vk.DescriptorSetLayout
	descriptorPool      vk.DescriptorPool
	descriptorSets      []vk.DescriptorSet
}

func NewDescriptorProvisioner(device vk.Device) *DescriptorProvisioner {
	return &DescriptorProvisioner{
		device: device,
	}
}

// Destroy frees the pool, which implicitly frees all sets allocated from it, and the layout
func (dp *DescriptorProvisioner) Destroy() {
	if dp.descriptorPool != nil {
		vk.DestroyDescriptorPool(dp.device, dp.descriptorPool, nil)
		dp.descriptorPool = nil
	}
	if dp.descriptorSetLayout != nil {
		vk.DestroyDescriptorSetLayout(dp.device, dp.descriptorSetLayout, nil)
		dp.descriptorSetLayout = nil
	}
	dp.descriptorSets = nil
}

func (dp *DescriptorProvisioner) createDescriptorSetLayout() error {
	uboLayoutBinding := vk.DescriptorSetLayoutBinding{
		Binding:            0,                              // <- binding index in both shaders
		DescriptorType:     vk.DescriptorTypeUniformBuffer, // <- type of binding in both shaders
		DescriptorCount:    1,
		StageFlags:         vk.ShaderStageFlags(vk.ShaderStageVertexBit | vk.ShaderStageFragmentBit),
		PImmutableSamplers: nil,
	}
	layoutInfo := vk.DescriptorSetLayoutCreateInfo{
		SType:        vk.StructureTypeDescriptorSetLayoutCreateInfo,
		PNext:        nil,
		Flags:        0,
		BindingCount: 1,
		PBindings:    []vk.DescriptorSetLayoutBinding{uboLayoutBinding},
	}
	dsl, err := com.VkCreateDescriptorSetLayout(dp.device, &layoutInfo, nil)
	if err != nil {
		return err
	}
	dp.descriptorSetLayout = dsl
	return nil
}

func (dp *DescriptorProvisioner) createDescriptorPool(count uint32) error {
	uboPoolSize := vk.DescriptorPoolSize{
		Type:            vk.DescriptorTypeUniformBuffer,
		DescriptorCount: count,
	}
	poolInfo := vk.DescriptorPoolCreateInfo{
		SType:         vk.StructureTypeDescriptorPoolCreateInfo,
		PNext:         nil,
		Flags:         0,
		MaxSets:       count,
		PoolSizeCount: 1,
		PPoolSizes:    []vk.DescriptorPoolSize{uboPoolSize},
	}
	pool, err := com.VkCreateDescriptorPool(dp.device, &poolInfo, nil)
	if err != nil {
		return err
	}
	dp.descriptorPool = pool
	return nil
}

// createDescriptorSets allocates one set per uniform buffer and points binding 0 of each set to its buffer
func (dp *DescriptorProvisioner) createDescriptorSets(ubos []*com.Buffer) error {
	if len(ubos) == 0 {
		return fmt.Errorf("create descriptor sets: no uniform buffers")
	}
	if err := dp.createDescriptorPool(uint32(len(ubos))); err != nil {
		return err
	}
	layouts := make([]vk.DescriptorSetLayout, len(ubos))
	for i := range layouts {
		layouts[i] = dp.descriptorSetLayout
	}
	allocInfo := vk.DescriptorSetAllocateInfo{
		SType:              vk.StructureTypeDescriptorSetAllocateInfo,
		PNext:              nil,
		DescriptorPool:     dp.descriptorPool,
		DescriptorSetCount: uint32(len(layouts)),
		PSetLayouts:        layouts,
	}
	sets, err := com.VkAllocateDescriptorSets(dp.device, &allocInfo)
	if err != nil {
		return err
	}
	dp.descriptorSets = sets

	for i, ubo := range ubos {
		bufferInfo := vk.DescriptorBufferInfo{
			Buffer: ubo.Handle,
			Offset: 0,
			Range:  vk.DeviceSize(model.SizeOfUbo()),
		}
		uboDescriptorWrite := vk.WriteDescriptorSet{
			SType:            vk.StructureTypeWriteDescriptorSet,
			PNext:            nil,
			DstSet:           dp.descriptorSets[i],
			DstBinding:       0,
			DstArrayElement:  0,
			DescriptorCount:  1,
			DescriptorType:   vk.DescriptorTypeUniformBuffer,
			PImageInfo:       nil,
			PBufferInfo:      []vk.DescriptorBufferInfo{bufferInfo},
			PTexelBufferView: nil,
		}
		writes := []vk.WriteDescriptorSet{uboDescriptorWrite}
		vk.UpdateDescriptorSets(dp.device, uint32(len(writes)), writes, 0, nil)
	}
	log.Printf("Allocated %d descriptor sets", len(sets))
	return nil
}

func (c *Core) createDescriptorSetLayout() error {
	c.descriptors = NewDescriptorProvisioner(c.device.D)
	return c.descriptors.createDescriptorSetLayout()
}

func (c *Core) createDescriptorSets() error {
	return c.descriptors.createDescriptorSets(c.uniformBuffers)
}
