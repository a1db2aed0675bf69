package render

import "image/color"

// DefaultWallStrip is the built-in wall texture strip: one frame per wall
// variant code (frame = code - 1).
func DefaultWallStrip() *Strip {
	return ProceduralStrip([]color.RGBA{
		{150, 150, 160, 255}, // stone
		{120, 90, 70, 255},   // brick
		{90, 120, 90, 255},   // moss
	})
}

// DefaultFaceStrip is the built-in entity texture strip. Frame indices match
// the templates in the default entities.yaml.
func DefaultFaceStrip() *Strip {
	return ProceduralStrip([]color.RGBA{
		{100, 200, 100, 255}, // 0 player
		{200, 100, 100, 255}, // 1 grunt
		{220, 120, 120, 255}, // 2 grunt, step frame
		{255, 220, 80, 255},  // 3 telegraph flash
		{255, 200, 100, 255}, // 4 projectile / swing
		{240, 240, 240, 255}, // 5 death burst, bright
		{160, 160, 160, 255}, // 6 death burst, fading
		{80, 80, 80, 255},    // 7 death burst, gone
		{140, 80, 180, 255},  // 8 lurker
	})
}
