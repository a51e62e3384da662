package parameter

// Audio engine
const (
	AudioSampleRate = 44100
	AudioBufferMs   = 100
	AudioDefaultBGM = 0.5
	AudioDefaultSFX = 0.8
)

// Sound identifiers shared by gameplay and the audio engine
const (
	SoundJump   = "jump"
	SoundHit    = "hit"
	SoundSpring = "spring"
	SoundClear  = "clear"
	SoundBGM    = "stage1BGM"
)
