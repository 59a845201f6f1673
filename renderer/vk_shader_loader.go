package renderer

import (
	"errors"
	"fmt"
	"log"
	"os"

	com "mesh_viewer/common"

	vk "github.com/goki/vulkan"
)

// LoadVert reads a '.spv' file with the expectation of it containing a vertex shader for later use in a
// render pipeline. For this, a shader module (containing the shader code) and its vk.PipelineShaderStageCreateInfo
// is returned. Which is required to bind the shader to the pipeline.
func LoadVert(d vk.Device, path string) (vk.ShaderModule, vk.PipelineShaderStageCreateInfo, error) {
	return loadStage(d, path, vk.ShaderStageVertexBit)
}

// LoadFrag is the fragment shader counterpart of LoadVert
func LoadFrag(d vk.Device, path string) (vk.ShaderModule, vk.PipelineShaderStageCreateInfo, error) {
	return loadStage(d, path, vk.ShaderStageFragmentBit)
}

// DeleteShaderMod discards a shader module. As vk.ShaderModule is only meant as a container to move the shader code
// onto device memory, it can be destroyed right after creating a shader stage when binding to a rendering pipeline.
func DeleteShaderMod(d vk.Device, mod vk.ShaderModule) {
	vk.DestroyShaderModule(d, mod, nil)
}

func loadStage(d vk.Device, path string, stage vk.ShaderStageFlagBits) (vk.ShaderModule, vk.PipelineShaderStageCreateInfo, error) {
	mod, err := readShaderCode(d, path)
	if err != nil {
		return nil, vk.PipelineShaderStageCreateInfo{}, err
	}
	log.Printf("Created shader module from %s", path)

	stageInfo := vk.PipelineShaderStageCreateInfo{
		SType:               vk.StructureTypePipelineShaderStageCreateInfo,
		PNext:               nil,
		Flags:               0,
		Stage:               stage,
		Module:              mod,
		PName:               "main\x00", // entrypoint -> function name in the shader
		PSpecializationInfo: nil,
	}
	return mod, stageInfo, nil
}

func readShaderCode(d vk.Device, shaderFile string) (vk.ShaderModule, error) {
	shaderCodeB, err := os.ReadFile(shaderFile)
	if err != nil {
		return nil, fmt.Errorf("read shader file (run 'go generate ./...' to compile the shaders): %w", err)
	}
	if err = checkSpirv(shaderCodeB); err != nil {
		return nil, fmt.Errorf("shader file '%s': %w", shaderFile, err)
	}
	shaderCodeLen := uint64(len(shaderCodeB))
	log.Printf("Read shader file (%s) of size: %dByte", shaderFile, shaderCodeLen)

	createInfo := &vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		PNext:    nil,
		Flags:    0,
		CodeSize: shaderCodeLen,
		PCode:    com.AsUint32Arr(shaderCodeB),
	}
	module, err := com.VkCreateShaderModule(d, createInfo, nil)
	if err != nil {
		return nil, fmt.Errorf("create shader module '%s': %w", shaderFile, err)
	}
	return module, nil
}

const spirvMagic = 0x07230203

var errNotSpirv = errors.New("not a SPIR-V binary")

// checkSpirv rejects files that can not be SPIR-V before they reach the driver: the code size has to be a multiple
// of 4 and the first word is the magic number.
func checkSpirv(code []byte) error {
	if len(code) < 4 || len(code)%4 != 0 {
		return fmt.Errorf("%w: size of %d Byte", errNotSpirv, len(code))
	}
	if words := com.AsUint32Arr(code); words[0] != spirvMagic {
		return fmt.Errorf("%w: magic number %#x", errNotSpirv, words[0])
	}
	return nil
}
