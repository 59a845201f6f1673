package common

import (
	"encoding/binary"
	"reflect"
	"testing"
)

func TestMissing(t *testing.T) {
	tests := []struct {
		name string
		want []string
		have []string
		exp  []string
	}{
		{"all present", []string{"a", "b"}, []string{"b", "c", "a"}, nil},
		{"one missing", []string{"a", "x"}, []string{"a"}, []string{"x"}},
		{"terminated names match", []string{"VK_KHR_swapchain\x00"}, []string{"VK_KHR_swapchain"}, nil},
		{"nothing wanted", nil, []string{"a"}, nil},
		{"nothing available", []string{"a", "b"}, nil, []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Missing(tt.want, tt.have)
			if !reflect.DeepEqual(got, tt.exp) {
				t.Errorf("Missing(%v, %v) = %v, want %v", tt.want, tt.have, got, tt.exp)
			}
			if IsSubset(tt.want, tt.have) != (len(tt.exp) == 0) {
				t.Errorf("IsSubset disagrees with Missing for %v", tt.want)
			}
		})
	}
}

func TestTerminatedStr(t *testing.T) {
	if got := TerminatedStr("main"); got != "main\x00" {
		t.Errorf("got %q", got)
	}
	if got := TerminatedStr("main\x00"); got != "main\x00" {
		t.Errorf("terminated twice: %q", got)
	}
	if got := TerminatedStr(""); got != "\x00" {
		t.Errorf("empty string: %q", got)
	}
	strs := TerminatedStrs([]string{"a", "b\x00"})
	if strs[0] != "a\x00" || strs[1] != "b\x00" {
		t.Errorf("TerminatedStrs = %q", strs)
	}
}

func TestAsUint32Arr(t *testing.T) {
	b := make([]byte, 10)
	binary.LittleEndian.PutUint32(b[0:], 0x07230203) // SPIR-V magic number
	binary.LittleEndian.PutUint32(b[4:], 42)
	words := AsUint32Arr(b)
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(words))
	}
	if words[0] != 0x07230203 || words[1] != 42 {
		t.Errorf("unexpected words %x", words)
	}
	if AsUint32Arr([]byte{1, 2}) != nil {
		t.Errorf("expected nil for less than a word")
	}
}
