package main

import (
	"log"
	"os"
	"runtime"

	"mesh_viewer/cmd"
)

//go:generate mkdir -p shaders_spv
//go:generate glslc shaders/mesh.vert -o shaders_spv/vert.spv
//go:generate glslc shaders/mesh.frag -o shaders_spv/frag.spv

func init() {
	// SDL has to be driven from the main thread
	runtime.LockOSThread()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(os.Stdout)
	log.Println("Starting mesh viewer")
	log.Printf("Using GoLang: [%s]", runtime.Version())
}

func main() {
	if err := cmd.Execute(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
