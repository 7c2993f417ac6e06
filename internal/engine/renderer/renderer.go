// Package renderer uploads sketch geometry to OpenGL and draws it.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/sketchview/internal/engine/shader"
	"github.com/Faultbox/sketchview/internal/logger"
	"github.com/Faultbox/sketchview/pkg/geometry"
	"github.com/Faultbox/sketchview/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width       int
	Height      int
	Background  [3]float32
	Multisample bool
}

// Frame carries the per-frame inputs of Draw.
type Frame struct {
	ViewProjection math.Mat4
	CameraPosition math.Vec3
	Time           float32 // seconds since start
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config  Config
	program *shader.Program
	meshes  []*mesh
	items   []drawItem

	refreshTime   bool
	refreshCamera bool
}

// New creates a new renderer.
// Must be called after the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{config: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	if cfg.Multisample {
		gl.Enable(gl.MULTISAMPLE)
	}
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	bg := cfg.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.New(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	return r, nil
}

// Load uploads groups, replacing anything loaded before.
func (r *Renderer) Load(groups []*geometry.Group) {
	r.unload()

	items, skipped := planDraws(groups)
	for _, g := range skipped {
		if g.VertexCount() > 0 {
			logger.Debug("skipping placeholder group",
				zap.Int32("brush_index", g.BrushIndex),
				zap.String("material", g.Profile.Material))
		}
	}

	r.items = items
	r.meshes = make([]*mesh, len(items))
	for i, it := range items {
		r.meshes[i] = upload(it.group)
	}
	r.refreshTime, r.refreshCamera = frameNeeds(items)

	logger.Info("geometry uploaded",
		zap.Int("groups", len(items)),
		zap.Int("skipped", len(skipped)),
		zap.Bool("animated", r.refreshTime),
		zap.Bool("view_dependent", r.refreshCamera))
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Draw renders one frame. Time and camera uniforms are only written
// for groups whose brush needs them.
func (r *Renderer) Draw(f Frame) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	p := r.program
	p.Use()
	gl.UniformMatrix4fv(p.Uniform("u_viewProjection"), 1, false, f.ViewProjection.Ptr())

	for i, it := range r.items {
		setBool(p.Uniform("u_lit"), it.lit)
		setBool(p.Uniform("u_animated"), it.needsTime)
		setBool(p.Uniform("u_viewDependent"), it.needsCamera)
		if it.needsTime {
			gl.Uniform1f(p.Uniform("u_time"), f.Time)
		}
		if it.needsCamera {
			c := f.CameraPosition
			gl.Uniform3f(p.Uniform("u_cameraPosition"), c.X, c.Y, c.Z)
		}

		if it.cullBack {
			gl.Enable(gl.CULL_FACE)
		} else {
			gl.Disable(gl.CULL_FACE)
		}
		if it.blend {
			gl.Enable(gl.BLEND)
			gl.DepthMask(false)
		}

		r.meshes[i].draw()

		if it.blend {
			gl.Disable(gl.BLEND)
			gl.DepthMask(true)
		}
	}
}

// ReadPixels returns the current back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}

// Animated reports whether any loaded group changes over time.
func (r *Renderer) Animated() bool {
	return r.refreshTime || r.refreshCamera
}

func setBool(loc int32, v bool) {
	var i int32
	if v {
		i = 1
	}
	gl.Uniform1i(loc, i)
}

func (r *Renderer) unload() {
	for _, m := range r.meshes {
		m.delete()
	}
	r.meshes = nil
	r.items = nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Debug("closing renderer")
	r.unload()
	if r.program != nil {
		r.program.Delete()
	}
}
