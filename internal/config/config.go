// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06
	// TicksPerSecond переводит секунды кадра в тики движения
	TicksPerSecond = 60.0

	SceneFile      = "assets/scenes/default.json" // Сцена по умолчанию
	IntroDuration  = 1.5 // секунды
	IntroFontSize  = 48.0
	PauseFontSize  = 40.0
	HUDFontSize    = 14.0
	HUDMargin      = 10.0
	BurstParticles = 24 // Частиц на клик

	// Путь указателя для запуска без окна
	ScriptedPointerPeriod = 240 // тиков на круг
	HeadlessFrames        = 180
)

var (
	LightBackground = color.RGBA{245, 245, 240, 255}
	DarkBackground  = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	PauseOverlay    = color.RGBA{0, 0, 0, 128}
	HighlightColor  = color.RGBA{255, 215, 0, 255} // Gold, подсветка у указателя
	BurstColors     = []color.Color{
		color.RGBA{255, 50, 50, 255},
		color.RGBA{255, 215, 0, 255},
		color.RGBA{50, 100, 255, 255},
		color.RGBA{180, 50, 230, 255},
	}
)
