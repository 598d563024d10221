package desktop

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Sprite vertex shader: scene-pixel point sprites with per-vertex pos/size/color/shape.
const spriteVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in float aSize;
layout(location = 2) in vec4 aColor;
layout(location = 3) in float aShape;

uniform vec2 uScene;
uniform vec2 uOffset;
uniform float uScale;

out vec4 vColor;
flat out int vShape;

void main() {
    vec2 ndc = ((aPos + uOffset) / uScene) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    gl_PointSize = max(1.0, aSize * uScale);
    vColor = aColor;
    vShape = int(aShape + 0.5);
}
` + "\x00"

// Sprite fragment shader: 0 square, 1 disc, 2 rounded body, 3 rounded head with gradient.
const spriteFragSrc = `#version 410 core

uniform vec3 uHeadEnd;

in vec4 vColor;
flat in int vShape;
out vec4 FragColor;

float roundedBox(vec2 p, float r) {
    vec2 q = abs(p) - vec2(0.5 - r);
    return length(max(q, 0.0)) + min(max(q.x, q.y), 0.0) - r;
}

void main() {
    vec2 p = gl_PointCoord - vec2(0.5);
    vec3 col = vColor.rgb;
    float a = vColor.a;

    if (vShape == 1) {
        if (length(p) > 0.5) discard;
    } else if (vShape == 2) {
        if (roundedBox(p, 0.22) > 0.0) discard;
    } else if (vShape == 3) {
        if (roundedBox(p, 0.33) > 0.0) discard;
        float t = clamp((gl_PointCoord.x + gl_PointCoord.y) * 0.5, 0.0, 1.0);
        col = mix(col, uHeadEnd, t);
    }
    FragColor = vec4(col, a);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
