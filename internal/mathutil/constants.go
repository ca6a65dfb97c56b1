package mathutil

// Default preview camera: a three-quarter view from above and to the right,
// matching the reference orientation used for primitive thumbnails.
const (
	DefaultYaw   float32 = 35
	DefaultPitch float32 = -25
	DefaultFOV   float32 = 40
)
