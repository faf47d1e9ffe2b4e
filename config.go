package main

import "image/color"

const (
	// --- Projection ---
	NearPlane = 0.1
	FarPlane  = 5000.0

	// --- Environment ---
	OceanGridSize = 50.0
	StarCount     = 400
	StarRadius    = 300.0

	// --- Frames ---
	LabelMaxDistance = 140.0 // titles are drawn only for nearby frames
	LabelMinOpacity  = 0.5
	LabelGap         = 6.0

	// --- Files ---
	ScreenshotFile = "screenshot.png"
	SettingsApp    = "corridor_gallery"
)

var (
	// --- Colors ---
	ColorSkyTop     = color.RGBA{0x05, 0x03, 0x0a, 0xff}
	ColorSkyHorizon = color.RGBA{0x2a, 0x14, 0x10, 0xff}
	ColorOcean      = color.RGBA{0x3a, 0x2a, 0x30, 0x90}
	ColorStar       = color.RGBA{0xff, 0xf4, 0xe0, 0xff}
	ColorCloud      = color.RGBA{0xd8, 0xc8, 0xc0, 0xff}
	ColorLabel      = color.RGBA{0xFA, 0xE3, 0xCA, 0xff}
	ColorBackground = color.RGBA{0x05, 0x03, 0x0a, 0xff}
)
