package cmd

import (
	"math/rand"
	"time"

	"github.com/achilleasa/displaymgr/registry"
	"github.com/achilleasa/displaymgr/renderer"
	"github.com/achilleasa/displaymgr/renderer/opengl"
	"github.com/achilleasa/displaymgr/types"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/urfave/cli"
)

// Open a window and draw the meshes defined by a scene file until the window
// is closed.
func RunScene(ctx *cli.Context) error {
	cfg, err := loadScene(ctx)
	if err != nil {
		return err
	}

	if ctx.IsSet("width") {
		cfg.Window.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		cfg.Window.Height = ctx.Int("height")
	}
	if ctx.IsSet("title") {
		cfg.Window.Title = ctx.String("title")
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	meshes, err := cfg.BuildMeshes()
	if err != nil {
		return err
	}

	vertexSrc, fragmentSrc, err := cfg.ShaderSources()
	if err != nil {
		return err
	}

	surface, err := opengl.NewSurface(opengl.Options{
		Width:          cfg.Window.Width,
		Height:         cfg.Window.Height,
		Title:          cfg.Window.Title,
		Resizable:      cfg.Window.Resizable,
		ClearColor:     cfg.Clear(),
		VertexShader:   vertexSrc,
		FragmentShader: fragmentSrc,
	})
	if err != nil {
		return err
	}
	defer surface.Close()

	reg := registry.New(surface)
	driver, err := renderer.NewDriver(surface, reg, renderer.Options{
		MaxFrames: ctx.Uint64("frames"),
	})
	if err != nil {
		return err
	}
	defer driver.Close()

	for _, m := range meshes {
		h, err := surface.Upload(m)
		if err != nil {
			return err
		}
		reg.Register(h)
	}
	logger.Noticef("registered %d meshes", reg.Len())

	editor := &sceneEditor{
		reg: reg,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	surface.SetMouseButtonCallback(editor.onMouseButton)

	err = driver.Render()
	displayFrameStats(driver.Stats())
	return err
}

// sceneEditor mutates the registry in response to mouse clicks: the left
// button recolors registered handles in round-robin order and the right
// button removes the most recently registered handle.
type sceneEditor struct {
	reg  *registry.Registry
	rng  *rand.Rand
	next int
}

func (e *sceneEditor) onMouseButton(button glfw.MouseButton, action glfw.Action, pos types.Vec2) {
	if action != glfw.Press {
		return
	}

	handles := e.reg.Handles()
	if len(handles) == 0 {
		return
	}

	switch button {
	case glfw.MouseButtonLeft:
		h := handles[e.next%len(handles)]
		e.next++
		h.Color = types.XYZ(e.rng.Float32(), e.rng.Float32(), e.rng.Float32()).Mul(1.5).Clamp01()
		e.reg.Update(h)
		logger.Infof("click at %v: recolored handle %d", pos, h.ID)
	case glfw.MouseButtonRight:
		h := handles[len(handles)-1]
		e.reg.Deregister(h)
		logger.Infof("click at %v: removed handle %d", pos, h.ID)
	}
}
