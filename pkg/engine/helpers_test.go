package engine

import (
	"io"
	"testing"

	"spheres/internal/logger"
	vm "spheres/internal/vecmath"
)

func quietLogger() *logger.Logger {
	l := logger.NewLogger("error")
	l.SetOutput(io.Discard)
	return l
}

func mustScene(t *testing.T, objects []Object, lights []Light, ambient vm.Vec3) *Scene {
	t.Helper()
	s, err := NewScene(objects, lights, ambient)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	return s
}

func gray(v float32) vm.Vec3 {
	return vm.Vec3{X: v, Y: v, Z: v}
}
