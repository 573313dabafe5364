// Command axuy opens a window on a randomly selected map and lets the
// camera fly through it.
package main

import (
	"flag"
	"log"
	"math"
	"math/rand/v2"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/axuy/axuy/api"
	"github.com/axuy/axuy/assets"
	"github.com/axuy/axuy/config"
	"github.com/axuy/axuy/glbackend"
	"github.com/axuy/axuy/torus"
	"github.com/axuy/axuy/view"
)

const (
	moveSpeed = 2.0 // cells per second
	minFOV    = 30
	maxFOV    = 120
	// generated library when no tile file is configured
	defaultTiles = 64
	defaultFill  = 25.0
)

func init() {
	// GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (fallback: $"+config.EnvPath+")")
	tilesPath := flag.String("tiles", "", "tile library (.axt); generated when empty")
	mapidArg := flag.String("mapid", "", "comma separated map id; random when empty")
	seed := flag.Uint64("seed", 0, "random seed; 0 picks one")
	width := flag.Int("width", 0, "window width")
	height := flag.Int("height", 0, "window height")
	fov := flag.Float64("fov", 0, "field of view in degrees")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *tilesPath != "" {
		cfg.Tiles = *tilesPath
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *width > 0 {
		cfg.Size[0] = *width
	}
	if *height > 0 {
		cfg.Size[1] = *height
	}
	if *fov > 0 {
		cfg.FOV = float32(*fov)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))

	lib, err := loadLibrary(cfg, rng)
	if err != nil {
		log.Fatalf("tiles: %v", err)
	}
	shaders, err := view.LoadShaders(view.FSLocator{FS: assets.FS})
	if err != nil {
		log.Fatalf("shaders: %v", err)
	}
	var mapid []int
	if *mapidArg != "" {
		mapid, err = api.ParseMapID(*mapidArg)
	} else {
		mapid, err = torus.GenerateMapID(rng, len(lib))
	}
	if err != nil {
		log.Fatalf("map id: %v", err)
	}
	log.Printf("map id %s (seed %d)", api.FormatMapID(mapid), cfg.Seed)

	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw: %v", err)
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(cfg.Size[0], cfg.Size[1], "Axuy", nil, nil)
	if err != nil {
		log.Fatalf("window: %v", err)
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	backend, err := glbackend.Init()
	if err != nil {
		log.Fatal(err)
	}
	color, err := cfg.RGB()
	if err != nil {
		log.Fatal(err)
	}
	v, err := view.New(mapid, lib, shaders, backend, view.Options{
		Color:          &color,
		PlacementTries: cfg.PlacementTries,
		Rand:           rng,
	})
	if err != nil {
		log.Fatalf("view: %v", err)
	}
	run(window, backend, v, cfg)
}

func loadLibrary(cfg *config.Config, rng *rand.Rand) (torus.TileLibrary, error) {
	if cfg.Tiles != "" {
		return torus.LoadTiles(cfg.Tiles)
	}
	return api.GenerateLibrary(cfg.Generator, defaultTiles, defaultFill, rng.Uint64())
}

func run(window *glfw.Window, backend *glbackend.Backend, v *view.View, cfg *config.Config) {
	fov := cfg.FOV
	window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		fov = mgl32.Clamp(fov-float32(yoff)*cfg.ZoomSpeed, minFOV, maxFOV)
	})
	lastX, lastY := window.GetCursorPos()
	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := float32(now - last)
		last = now

		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}
		x, y := window.GetCursorPos()
		w, h := window.GetFramebufferSize()
		if w > 0 && h > 0 {
			scale := cfg.MouseSpeed * math.Pi / float32(h)
			v.Camera.Rotate(-float32(x-lastX)*scale, -float32(y-lastY)*scale)
		}
		lastX, lastY = x, y
		v.Camera.Move(movement(window, v.Camera).Mul(moveSpeed * dt))

		backend.Clear(w, h)
		if w > 0 && h > 0 {
			if err := v.Render(w, h, fov); err != nil {
				log.Fatalf("render: %v", err)
			}
		}
		window.SwapBuffers()
		glfw.PollEvents()
	}
}

// movement returns the unit direction requested by the WASD keys.
func movement(window *glfw.Window, cam *torus.Picobot) mgl32.Vec3 {
	var dir mgl32.Vec3
	if window.GetKey(glfw.KeyW) == glfw.Press {
		dir = dir.Add(cam.Forward())
	}
	if window.GetKey(glfw.KeyS) == glfw.Press {
		dir = dir.Sub(cam.Forward())
	}
	if window.GetKey(glfw.KeyD) == glfw.Press {
		dir = dir.Add(cam.Right())
	}
	if window.GetKey(glfw.KeyA) == glfw.Press {
		dir = dir.Sub(cam.Right())
	}
	if dir.Len() == 0 {
		return dir
	}
	return dir.Normalize()
}
