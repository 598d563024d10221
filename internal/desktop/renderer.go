package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"gridsnake/internal/game"
	"gridsnake/internal/scene"
)

// maxSprites bounds the streaming buffer; larger frames are truncated.
const maxSprites = 8192

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uScene  int32
	uOffset int32
	uScale  int32

	buf []float32
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	r := &Renderer{prog: prog, buf: make([]float32, 0, maxSprites*scene.FloatsPerSprite)}

	// Each sprite: 8 floats (x, y, size, r, g, b, a, shape).
	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(scene.FloatsPerSprite * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxSprites*int(stride), nil, gl.STREAM_DRAW)
	// aPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	// aShape (float)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))

	gl.UseProgram(prog)
	r.uScene = gl.GetUniformLocation(prog, gl.Str("uScene\x00"))
	r.uOffset = gl.GetUniformLocation(prog, gl.Str("uOffset\x00"))
	r.uScale = gl.GetUniformLocation(prog, gl.Str("uScale\x00"))
	gl.Uniform2f(r.uScene, scene.Width, scene.Height)
	end := game.Palette.HeadBottom
	gl.Uniform3f(gl.GetUniformLocation(prog, gl.Str("uHeadEnd\x00")), float32(end.R)/255, float32(end.G)/255, float32(end.B)/255)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(0, 0, 0, 1)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

// Draw renders one frame of sprites, shifted by the camera shake offset.
func (r *Renderer) Draw(sprites []scene.Sprite, cam Camera, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.buf = scene.Pack(r.buf[:0], sprites)
	count := len(r.buf) / scene.FloatsPerSprite
	if count == 0 {
		return
	}
	if count > maxSprites {
		count = maxSprites
	}

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	ox, oy := cam.Offset()
	gl.Uniform2f(r.uOffset, float32(ox), float32(oy))
	gl.Uniform1f(r.uScale, float32(fbW)/scene.Width)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*scene.FloatsPerSprite*4, gl.Ptr(r.buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}
