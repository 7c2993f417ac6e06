// Package viewer runs the interactive sketch window.
package viewer

import (
	"context"
	"fmt"
	"time"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/sketchview/internal/config"
	"github.com/Faultbox/sketchview/internal/engine/camera"
	"github.com/Faultbox/sketchview/internal/engine/capture"
	"github.com/Faultbox/sketchview/internal/engine/input"
	"github.com/Faultbox/sketchview/internal/engine/renderer"
	"github.com/Faultbox/sketchview/internal/engine/window"
	"github.com/Faultbox/sketchview/internal/logger"
	"github.com/Faultbox/sketchview/pkg/geometry"
	"github.com/Faultbox/sketchview/pkg/math"
)

// Viewer owns the window, renderer and camera.
type Viewer struct {
	cfg      config.ViewerConfig
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	log      *zap.Logger
}

// New opens a window and prepares the renderer.
func New(cfg config.ViewerConfig, title string) (*Viewer, error) {
	v := &Viewer{
		cfg:   cfg,
		input: input.New(),
		log:   logger.Named("viewer"),
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
		VSync:      cfg.VSync,
		Samples:    cfg.MSAA,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context the window just created.
	width, height := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:       width,
		Height:      height,
		Background:  cfg.Background,
		Multisample: cfg.MSAA > 0,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.camera = newCamera(cfg)
	return v, nil
}

func newCamera(cfg config.ViewerConfig) *camera.OrbitCamera {
	c := camera.NewOrbitCamera()
	c.AutoRotate = cfg.AutoRotateSpeed
	return c
}

func (v *Viewer) fov() float32 {
	return v.cfg.FieldOfView * math32.Pi / 180
}

// Show uploads a decoded sketch and frames the camera on it.
func (v *Viewer) Show(res *geometry.Result) {
	v.renderer.Load(res.Groups)
	frame(v.camera, res.Bounds(), v.fov())

	for _, g := range res.UnknownGroups() {
		v.log.Warn("unknown brush, using placeholder",
			zap.Int32("brush_index", g.BrushIndex),
			zap.String("guid", g.BrushGUID))
	}
}

// frame points c at b, or at the origin when the sketch is empty.
func frame(c *camera.OrbitCamera, b geometry.Bounds, fovY float32) {
	if b.Empty() {
		c.FitToBounds(math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: 1, Y: 1, Z: 1}, fovY)
		return
	}
	c.FitToBounds(b.Min, b.Max, fovY)
}

// Run drives the render loop until the window closes or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	start := time.Now()
	last := start
	frames := 0
	fpsTimer := start

	v.log.Info("starting render loop")

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		state := v.input.Update()
		if state.Quit {
			return nil
		}
		if state.Resized {
			v.renderer.Resize(v.window.DrawableSize())
		}

		v.camera.Update(dt)
		near, far := v.camera.ClipPlanes()
		proj := math.Perspective(v.fov(), v.renderer.Aspect(), near, far)

		v.renderer.Draw(renderer.Frame{
			ViewProjection: proj.Mul(v.camera.ViewMatrix()),
			CameraPosition: v.camera.Position(),
			Time:           float32(now.Sub(start).Seconds()),
		})
		if v.cfg.Screenshot != "" {
			return v.screenshot(v.cfg.Screenshot)
		}
		v.window.SwapBuffers()

		if budget := v.cfg.FrameBudget; budget > 0 {
			if spent := time.Since(now); spent < budget {
				time.Sleep(budget - spent)
			}
		}

		frames++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frames), zap.Float32("dt_ms", dt*1000))
			frames = 0
			fpsTimer = time.Now()
		}
	}
}

// screenshot saves the frame in the back buffer.
func (v *Viewer) screenshot(path string) error {
	img, err := capture.FromPixels(v.renderer.ReadPixels())
	if err != nil {
		return fmt.Errorf("reading frame: %w", err)
	}
	if err := capture.SavePNG(path, img); err != nil {
		return err
	}
	v.log.Info("screenshot saved", zap.String("path", path))
	return nil
}

// Close releases GL and window resources.
func (v *Viewer) Close() {
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
