package main

import (
	"fmt"
	"image/png"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"pic-magnifier/canvas"
	"pic-magnifier/config"
	"pic-magnifier/imageload"
	"pic-magnifier/input"
	"pic-magnifier/magnifier"
	"pic-magnifier/ui"
)

// Settings is everything the command line decided.
type Settings struct {
	File     config.File
	FontPath string
	SavePath string
	Debug    bool
}

type Game struct {
	scene  *canvas.Scene
	loader *imageload.Loader
	widget *magnifier.Widget

	// Sub-systems
	input *input.Dispatcher
	ui    *ui.UISystem

	opts     magnifier.Options
	ready    bool
	loaded   string
	revision int
	savePath string
	debug    bool
	fontFace font.Face

	screenWidth  int
	screenHeight int

	screenshotRequested bool
}

func NewGame(s Settings) *Game {
	g := &Game{
		opts:         s.File.Options(),
		savePath:     s.SavePath,
		debug:        s.Debug,
		screenWidth:  DefaultScreenWidth,
		screenHeight: DefaultScreenHeight,
	}
	if g.savePath == "" {
		g.savePath = config.DefaultPath
	}

	g.loader = imageload.New(LoadWorkers, log.Default())
	g.scene = canvas.NewScene(g.loader)
	g.scene.SetScreenSize(g.screenWidth, g.screenHeight)
	g.scene.Camera.Zoom = DefaultZoom
	if cam := s.File.Camera; cam != nil && cam.Zoom > 0 {
		g.scene.Camera = canvas.Camera{X: cam.X, Y: cam.Y, Zoom: cam.Zoom}
	}
	buildPage(g.scene)

	g.fontFace = LoadUIFont(s.FontPath)
	g.input = input.NewDispatcher(g)
	g.ui = ui.NewUISystem(
		func() font.Face { return g.fontFace },
		func() (int, int) { return g.screenWidth, g.screenHeight },
		ui.Actions{
			Reload:  g.Reload,
			Save:    func() { _ = g.SaveOptions() },
			ZoomIn:  func() { g.ApplyZoom(1) },
			ZoomOut: func() { g.ApplyZoom(-1) },
		},
		DrawTextLines,
	)

	g.loader.OnError(func(src string, err error) {
		g.ui.Debug.SetError("load", fmt.Sprintf("%s: %v", src, err))
	})

	g.widget = magnifier.New(magnifier.Env{
		DOM:      g.scene,
		Geometry: g.scene,
		Styles:   g.scene,
		Loader:   g.loader,
		Pointer:  g.input,
		Logger:   log.Default(),
		Debug:    s.Debug,
	})
	g.initWidget()

	return g
}

// buildPage adds the two containers the widget renders into.
func buildPage(s *canvas.Scene) {
	s.Append(nil, "div", SourceID, "", magnifier.Style{"background": ColorPage})
	s.Append(nil, "div", ViewportID, "", nil)
}

func (g *Game) initWidget() {
	if err := g.widget.Init(g.opts); err != nil {
		g.ui.Debug.SetError("config", err.Error())
		g.ready = false
		return
	}
	g.ui.Debug.Clear("config")
	g.ready = true
}

// Close stops background loading.
func (g *Game) Close() {
	g.loader.Close()
}

func (g *Game) Update() error {
	g.pollLoads()

	g.handleDroppedFiles()
	g.handleControlKeys()

	// Delegate to sub-systems
	g.input.Update()
	g.ui.Update()

	g.refreshLayout()
	return nil
}

// pollLoads delivers finished loads. The load error is cleared only when a
// new image has been measured, so later failures stay visible.
func (g *Game) pollLoads() {
	g.loader.Poll()
	if l := g.widget.Loaded(); l != g.loaded {
		g.loaded = l
		if l != "" {
			g.ui.Debug.Clear("load")
		}
	}
}

// refreshLayout re-measures the widget after the page moved under it
// (window resize, zoom, viewport resize).
func (g *Game) refreshLayout() {
	if r := g.scene.Revision(); r != g.revision {
		g.revision = r
		g.widget.Refresh()
	}
}

func (g *Game) handleControlKeys() {
	// --- Screenshot ---
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.screenshotRequested = true
	}

	// --- Reload ---
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && !ebiten.IsKeyPressed(ebiten.KeyControl) {
		g.Reload()
	}

	// --- Save Options ---
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		_ = g.SaveOptions()
	}
}

// handleDroppedFiles shows the first image dropped on the window.
func (g *Game) handleDroppedFiles() {
	files := ebiten.DroppedFiles()
	if files == nil {
		return
	}
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		log.Println("dropped files:", err)
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := fs.ReadFile(files, e.Name())
		if err != nil {
			log.Println("dropped files:", err)
			return
		}
		src := "dropped:" + e.Name()
		g.loader.Register(src, data)
		g.ShowImage(src)
		return
	}
}

// ShowImage swaps the widget to src. A widget that could not start for lack
// of an image is started now.
func (g *Game) ShowImage(src string) {
	g.opts.ImgSrc = src
	g.ui.Debug.Clear("load")
	if !g.ready {
		g.initWidget()
		return
	}
	g.widget.SwapImage(src, true)
}

// Reload reads the current image again and re-renders the widget.
func (g *Game) Reload() {
	if !g.ready {
		g.initWidget()
		return
	}
	src := g.widget.Source()
	g.loader.Evict(src)
	g.ui.Debug.Clear("load")
	g.widget.SwapImage(src, true)
}

// SaveOptions writes the current options, image and camera to the save path.
func (g *Game) SaveOptions() error {
	f := config.FromOptions(g.opts)
	if g.ready {
		f.ImgSrc = g.widget.Source()
	}
	f.Debug = g.debug
	f.Camera = &config.CameraState{X: g.scene.Camera.X, Y: g.scene.Camera.Y, Zoom: g.scene.Camera.Zoom}

	if err := config.Save(g.savePath, f); err != nil {
		log.Println("save error:", err)
		g.ui.Debug.SetError("save", err.Error())
		return err
	}
	g.ui.Debug.Clear("save")
	log.Println("Options saved as", g.savePath)
	return nil
}

// --- input.Host ---

func (g *Game) ScreenToPage(sx, sy float64) (float64, float64) {
	return g.scene.Camera.ScreenToPage(sx, sy)
}

func (g *Game) HitTest(p magnifier.Point) []magnifier.Element {
	return g.scene.HitTest(p)
}

func (g *Game) IsMouseOver(mx, my int) bool {
	return g.ui.IsMouseOver(mx, my)
}

func (g *Game) ApplyPan(dx, dy float64) {
	g.scene.Camera.ScrollBy(dx, dy)
}

func (g *Game) ApplyZoom(steps float64) {
	g.scene.Camera.ZoomBy(steps)
}

func (g *Game) Draw(screen *ebiten.Image) {
	canvas.DrawBackdrop(&g.scene.Camera, screen, g.screenWidth, g.screenHeight, GridSize, ColorBackground, ColorGrid)
	g.scene.Draw(screen)

	ebitenutil.DebugPrintAt(screen, g.statusText(), 10, g.screenHeight-70)

	g.ui.Draw(screen)

	// --- Save Screenshot ---
	if g.screenshotRequested {
		g.screenshotRequested = false
		f, err := os.Create(ScreenshotPath)
		if err != nil {
			log.Println("screenshot error:", err)
		} else {
			defer f.Close()
			if err := png.Encode(f, screen); err != nil {
				log.Println("screenshot error:", err)
			} else {
				log.Println("Screenshot saved as", ScreenshotPath)
			}
		}
	}
}

func (g *Game) statusText() string {
	ratio := "-"
	if scale := g.widget.Scale(); scale.Valid() {
		ratio = fmt.Sprintf("%.3f", scale.Ratio())
	}
	lens := g.widget.Stylesheet()[magnifier.GroupLens]
	frame := g.widget.Frame()
	return fmt.Sprintf(
		"Image: %s\n"+
			"State: %s  Zoom: %.2f  Ratio: %s\n"+
			"Lens: %s by %s at (%.0f, %.0f)\n"+
			"R: reload  Ctrl+S: save  Drop a file to swap",
		g.widget.Source(),
		g.widget.State(), g.scene.Camera.Zoom, ratio,
		lens["width"], lens["height"], frame.Lens.Left, frame.Lens.Top,
	)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenWidth = outsideWidth
	g.screenHeight = outsideHeight
	g.scene.SetScreenSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
