// Package opengl provides a GLFW window with an OpenGL 4.1 core context that
// can host the frame driver.
//
// All methods must be invoked from the thread that created the surface; the
// caller is expected to lock that thread with runtime.LockOSThread.
package opengl

import (
	"fmt"

	"github.com/achilleasa/displaymgr/drawable"
	"github.com/achilleasa/displaymgr/log"
	"github.com/achilleasa/displaymgr/types"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
)

var logger = log.New("opengl")

type Options struct {
	// Window dims.
	Width  int
	Height int

	Title     string
	Resizable bool

	ClearColor types.Vec3

	// Shader sources. Empty values select the built-in shaders.
	VertexShader   string
	FragmentShader string
}

// MouseButtonFunc receives mouse button events together with the cursor
// position in window coordinates.
type MouseButtonFunc func(button glfw.MouseButton, action glfw.Action, pos types.Vec2)

// A window-backed surface that draws vertex arrays with a single shader
// program exposing a "color" uniform.
type Surface struct {
	window  *glfw.Window
	program *Program

	colorUniform int32

	// Buffers owned by vertex arrays created via Upload.
	buffers map[drawable.ID][]uint32

	err error
}

// Create the window, the GL context and the shader program.
func NewSurface(opts Options) (*Surface, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize glfw")
	}

	resizable := glfw.False
	if opts.Resizable {
		resizable = glfw.True
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, resizable)

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "could not create opengl window")
	}
	window.MakeContextCurrent()

	s := &Surface{
		window:  window,
		buffers: make(map[drawable.ID][]uint32),
	}

	if err = gl.Init(); err != nil {
		s.Close()
		return nil, errors.Wrap(err, "could not init opengl")
	}
	logger.Infof("opengl version %s", gl.GoStr(gl.GetString(gl.VERSION)))

	fbW, fbH := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbW), int32(fbH))

	vertexSrc, fragmentSrc := opts.VertexShader, opts.FragmentShader
	if vertexSrc == "" {
		vertexSrc = defaultVertexShader
	}
	if fragmentSrc == "" {
		fragmentSrc = defaultFragmentShader
	}
	if s.program, err = LoadProgram(vertexSrc, fragmentSrc); err != nil {
		s.Close()
		return nil, err
	}

	gl.UseProgram(s.program.ID)
	gl.Uniform2i(s.program.Uniform("windowSize"), int32(opts.Width), int32(opts.Height))
	s.colorUniform = s.program.Uniform("color")
	s.SetClearColor(opts.ClearColor)

	return s, nil
}

// Destroy the shader program and the window and terminate glfw.
func (s *Surface) Close() {
	if s.program != nil {
		s.program.Delete()
		s.program = nil
	}
	if s.window != nil {
		s.window.Destroy()
		s.window = nil
	}
	glfw.Terminate()
}

// Set the color used when clearing the frame.
func (s *Surface) SetClearColor(color types.Vec3) {
	gl.ClearColor(color[0], color[1], color[2], 1.0)
}

// Install a mouse button callback. It is invoked from within PollEvents.
func (s *Surface) SetMouseButtonCallback(fn MouseButtonFunc) {
	if fn == nil {
		s.window.SetMouseButtonCallback(nil)
		return
	}
	s.window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := w.GetCursorPos()
		fn(button, action, types.XY(float32(x), float32(y)))
	})
}

// Ask the frame loop to exit.
func (s *Surface) Stop() {
	s.window.SetShouldClose(true)
}

func (s *Surface) ShouldStop() bool {
	return s.window.ShouldClose()
}

// Close the window when escape is pressed.
func (s *Surface) ProcessInput() {
	if s.window.GetKey(glfw.KeyEscape) == glfw.Press {
		s.window.SetShouldClose(true)
	}
}

func (s *Surface) PollEvents() {
	glfw.PollEvents()
}

func (s *Surface) PresentFrame() {
	if code := gl.GetError(); code != gl.NO_ERROR && s.err == nil {
		s.err = fmt.Errorf("opengl: %s", glErrorString(code))
	}
	s.window.SwapBuffers()
}

func (s *Surface) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (s *Surface) BindResource(id drawable.ID) {
	gl.BindVertexArray(uint32(id))
}

func (s *Surface) SetColorUniform(color types.Vec3) {
	gl.Uniform3fv(s.colorUniform, 1, &color[0])
}

func (s *Surface) DrawIndexed(style drawable.Style, count int32) {
	gl.DrawElements(glStyle(style), count, gl.UNSIGNED_INT, nil)
}

func (s *Surface) DrawArray(style drawable.Style, count int32) {
	gl.DrawArrays(glStyle(style), 0, count)
}

// Delete the vertex array identified by id along with any buffers that were
// allocated for it by Upload.
func (s *Surface) ReleaseResource(id drawable.ID) {
	vao := uint32(id)
	gl.DeleteVertexArrays(1, &vao)
	if buffers, ok := s.buffers[id]; ok {
		gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
		delete(s.buffers, id)
	}
	logger.Debugf("released vertex array %d", id)
}

func (s *Surface) Err() error {
	return s.err
}

func glStyle(style drawable.Style) uint32 {
	switch style {
	case drawable.Points:
		return gl.POINTS
	case drawable.Lines:
		return gl.LINES
	case drawable.LineStrip:
		return gl.LINE_STRIP
	case drawable.LineLoop:
		return gl.LINE_LOOP
	case drawable.TriangleStrip:
		return gl.TRIANGLE_STRIP
	case drawable.TriangleFan:
		return gl.TRIANGLE_FAN
	default:
		return gl.TRIANGLES
	}
}

func glErrorString(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "invalid enum"
	case gl.INVALID_VALUE:
		return "invalid value"
	case gl.INVALID_OPERATION:
		return "invalid operation"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "invalid framebuffer operation"
	case gl.OUT_OF_MEMORY:
		return "out of memory"
	default:
		return fmt.Sprintf("error 0x%x", code)
	}
}
