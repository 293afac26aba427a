package display

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Presenter uploads traced BGRX frames to a texture and draws it over the
// whole framebuffer. It must be used from the thread owning the GL context.
type Presenter struct {
	program    uint32
	vao        uint32
	vbo        uint32
	texture    uint32
	texWidth   int
	texHeight  int
	projection mgl32.Mat4

	projectionLocation int32
	frameLocation      int32
}

// NewPresenter compiles the frame shaders and creates the quad and texture
func NewPresenter() (*Presenter, error) {
	p := &Presenter{
		projection: mgl32.Ortho2D(0, 1, 0, 1),
	}

	program, err := createShaderProgram(frameVertexShader, frameFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to build frame shader: %v", err)
	}
	p.program = program
	p.projectionLocation = gl.GetUniformLocation(program, gl.Str("projection\x00"))
	p.frameLocation = gl.GetUniformLocation(program, gl.Str("frame\x00"))

	p.setupQuad()

	gl.GenTextures(1, &p.texture)
	gl.BindTexture(gl.TEXTURE_2D, p.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.ClearColor(0, 0, 0, 1)

	return p, nil
}

// setupQuad creates a unit quad; texture row 0 (the first traced row) is at the bottom
func (p *Presenter) setupQuad() {
	vertices := []float32{
		// Position  // Texture coords
		0, 0, 0, 0,
		1, 0, 1, 0,
		1, 1, 1, 1,
		0, 1, 0, 1,
	}

	gl.GenVertexArrays(1, &p.vao)
	gl.GenBuffers(1, &p.vbo)
	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

// Present draws a width x height BGRX frame into a viewport of the given size
func (p *Presenter) Present(frame []byte, width, height, viewportWidth, viewportHeight int) {
	gl.BindTexture(gl.TEXTURE_2D, p.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	if width != p.texWidth || height != p.texHeight {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, int32(width), int32(height), 0,
			gl.BGRA, gl.UNSIGNED_BYTE, gl.Ptr(frame))
		p.texWidth, p.texHeight = width, height
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(width), int32(height),
			gl.BGRA, gl.UNSIGNED_BYTE, gl.Ptr(frame))
	}

	gl.Viewport(0, 0, int32(viewportWidth), int32(viewportHeight))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(p.program)
	gl.UniformMatrix4fv(p.projectionLocation, 1, false, &p.projection[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(p.frameLocation, 0)

	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
	gl.BindVertexArray(0)
}

// Close releases GL resources
func (p *Presenter) Close() {
	gl.DeleteTextures(1, &p.texture)
	gl.DeleteBuffers(1, &p.vbo)
	gl.DeleteVertexArrays(1, &p.vao)
	gl.DeleteProgram(p.program)
}

// createShaderProgram compiles and links a shader program from source
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("shader program linking failed: %v", log)
	}

	return program, nil
}

// compileShader compiles a shader from source
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("shader compilation failed: %v", log)
	}

	return shader, nil
}
