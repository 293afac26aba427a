package display

// Vertex shader for the full-window frame quad
const frameVertexShader = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;

uniform mat4 projection;

out vec2 TexCoord;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
}
`

// Fragment shader sampling the traced frame. The padding byte of each
// pixel is never written by the tracer, so alpha is forced to 1.
const frameFragmentShader = `
#version 410 core
in vec2 TexCoord;
out vec4 FragColor;

uniform sampler2D frame;

void main() {
    FragColor = vec4(texture(frame, TexCoord).rgb, 1.0);
}
`
