package main

import "image/color"

const (
	// --- Window ---
	DefaultScreenWidth  = 1024
	DefaultScreenHeight = 768
	WindowTitle         = "Pic Magnifier"

	// --- Page ---
	GridSize    = 50.0
	DefaultZoom = 1.0
	SourceID    = "source"
	ViewportID  = "viewport"

	// --- Loading ---
	LoadWorkers = 2

	// --- Files ---
	DefaultFontPath = "fonts/Roboto-Regular.ttf"
	ScreenshotPath  = "screenshot.png"
)

var (
	// --- Colors ---
	ColorBackground = color.RGBA{30, 30, 35, 255}
	ColorGrid       = color.RGBA{255, 255, 255, 20}
	ColorPage       = "#2d2d32"
)
