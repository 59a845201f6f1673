package common

import (
	"errors"
	"unsafe"
)

// Provides general helper functions for comparisons and conversions

// ErrUnsupported is returned when the host lacks an extension, layer, feature or format needed to render
var ErrUnsupported = errors.New("not supported by the vulkan implementation")

// Missing returns every element of want that is not contained in have, keeping the order of want. This is mainly
// used to check for extension and layer support during the initialization process.
func Missing(want []string, have []string) []string {
	set := make(map[string]struct{}, len(have))
	for _, h := range have {
		set[trimTerminator(h)] = struct{}{}
	}
	var missing []string
	for _, w := range want {
		if _, ok := set[trimTerminator(w)]; !ok {
			missing = append(missing, w)
		}
	}
	return missing
}

// IsSubset reports whether all of a is contained in b
func IsSubset(a []string, b []string) bool {
	return len(Missing(a, b)) == 0
}

func trimTerminator(s string) string {
	for len(s) > 0 && s[len(s)-1] == '\x00' {
		s = s[:len(s)-1]
	}
	return s
}

// TerminatedStr ensures the given string is \x00 terminated as vulkan expects this in certain structs
func TerminatedStr(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\x00' {
		return s + "\x00"
	}
	return s
}

// TerminatedStrs terminates every string of the slice in place and returns it
func TerminatedStrs(strs []string) []string {
	for i := range strs {
		strs[i] = TerminatedStr(strs[i])
	}
	return strs
}

// AsUint32Arr reinterprets a []byte as []uint32 without copying. It is only used to construct shader modules and
// should be equivalent to C++ 'reinterpret_cast<const uint32_t*>(code.data());'. Trailing bytes that do not fill
// a whole word are dropped. See: https://vulkan-tutorial.com/Drawing_a_triangle/Graphics_pipeline_basics/Shader_modules
func AsUint32Arr(data []byte) []uint32 {
	if len(data) < 4 {
		return nil
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(&data[0])), len(data)/4)
}
