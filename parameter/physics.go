package parameter

// Reference frame used to normalize elapsed time into a per-frame scalar
// Velocities and accelerations below are expressed per 60fps frame
const (
	// FrameMs is the duration of one reference frame in milliseconds
	FrameMs = 16.67

	// MaxDeltaMs caps a single tick so a stalled loop cannot explode the simulation
	MaxDeltaMs = 100
)

// Player movement tuning (pixels per reference frame)
const (
	Gravity          = 0.5
	TerminalVelocity = 20.0 // Applied to falling only

	MaxSpeed         = 5.0
	MaxSpeedAir      = 5.0
	Acceleration     = 0.5
	AccelerationAir  = 0.3
	Friction         = 0.95
	AirResistance    = 0.92
	ChargingMoveMult = 0.3

	// VelocityEpsilon snaps decaying horizontal speed to zero
	VelocityEpsilon = 0.1
)

// Jump charge
const (
	JumpChargeMin  = 5.0
	JumpChargeMax  = 20.0
	JumpChargeRate = 0.2 // Per reference frame while held
)

// Tuning groups the movement values that can be overridden from config
// Zero value is not usable; start from DefaultTuning
type Tuning struct {
	Gravity          float64 `toml:"gravity"`
	TerminalVelocity float64 `toml:"terminal_velocity"`
	MaxSpeed         float64 `toml:"max_speed"`
	MaxSpeedAir      float64 `toml:"max_speed_air"`
	Acceleration     float64 `toml:"acceleration"`
	AccelerationAir  float64 `toml:"acceleration_air"`
	Friction         float64 `toml:"friction"`
	AirResistance    float64 `toml:"air_resistance"`
	ChargingMoveMult float64 `toml:"charging_move_mult"`
	JumpChargeMin    float64 `toml:"jump_charge_min"`
	JumpChargeMax    float64 `toml:"jump_charge_max"`
	JumpChargeRate   float64 `toml:"jump_charge_rate"`
}

// DefaultTuning returns the built-in movement values
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:          Gravity,
		TerminalVelocity: TerminalVelocity,
		MaxSpeed:         MaxSpeed,
		MaxSpeedAir:      MaxSpeedAir,
		Acceleration:     Acceleration,
		AccelerationAir:  AccelerationAir,
		Friction:         Friction,
		AirResistance:    AirResistance,
		ChargingMoveMult: ChargingMoveMult,
		JumpChargeMin:    JumpChargeMin,
		JumpChargeMax:    JumpChargeMax,
		JumpChargeRate:   JumpChargeRate,
	}
}

// IceFriction returns the friction applied while standing on ice
// Halves the deceleration of the base value, capped below 1 so the player still stops
func IceFriction(base float64) float64 {
	f := 1 - (1-base)/2
	if f > 0.999 {
		return 0.999
	}
	return f
}
