package display

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// InputHandler tracks the keys the viewer reacts to between frames
type InputHandler struct {
	window       *glfw.Window
	keys         []glfw.Key
	currentKeys  map[glfw.Key]bool
	previousKeys map[glfw.Key]bool
}

// NewInputHandler creates a handler polling the given keys
func NewInputHandler(window *glfw.Window, keys ...glfw.Key) *InputHandler {
	return &InputHandler{
		window:       window,
		keys:         keys,
		currentKeys:  make(map[glfw.Key]bool, len(keys)),
		previousKeys: make(map[glfw.Key]bool, len(keys)),
	}
}

// Update samples the tracked keys; call once per frame after polling events
func (ih *InputHandler) Update() {
	ih.currentKeys, ih.previousKeys = ih.previousKeys, ih.currentKeys
	for _, key := range ih.keys {
		ih.currentKeys[key] = ih.window.GetKey(key) == glfw.Press
	}
}

// IsKeyDown reports whether the key is held
func (ih *InputHandler) IsKeyDown(key glfw.Key) bool {
	return ih.currentKeys[key]
}

// IsKeyPressed reports whether the key went down this frame
func (ih *InputHandler) IsKeyPressed(key glfw.Key) bool {
	return ih.currentKeys[key] && !ih.previousKeys[key]
}

// AnyPressed reports whether any of the keys went down this frame
func (ih *InputHandler) AnyPressed(keys ...glfw.Key) bool {
	for _, key := range keys {
		if ih.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
