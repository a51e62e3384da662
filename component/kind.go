package component

// Kind tags the closed set of world object variants
type Kind uint8

const (
	KindPlatform Kind = iota
	KindLethalFloor
	KindIceFloor
	KindSpring
	KindWall
	KindCannon
	KindBullet
	KindHomingMissile
	KindTeleporter
	KindGoal
)

var kindNames = [...]string{
	KindPlatform:      "platform",
	KindLethalFloor:   "lethalFloor",
	KindIceFloor:      "iceFloor",
	KindSpring:        "spring",
	KindWall:          "wall",
	KindCannon:        "cannon",
	KindBullet:        "bullet",
	KindHomingMissile: "homingMissile",
	KindTeleporter:    "teleporter",
	KindGoal:          "goal",
}

// String returns the descriptor type name
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsProjectile reports whether the kind is spawned at runtime by a cannon
func (k Kind) IsProjectile() bool {
	return k == KindBullet || k == KindHomingMissile
}

// ParseKind maps a descriptor type name to its kind
// "homingCannon" is accepted as a cannon preset to homing
func ParseKind(name string) (kind Kind, homing bool, ok bool) {
	if name == "homingCannon" {
		return KindCannon, true, true
	}
	for i, n := range kindNames {
		if n == name {
			return Kind(i), false, true
		}
	}
	return 0, false, false
}

// Direction configures springs and cannons
type Direction uint8

const (
	DirRight Direction = iota
	DirLeft
	DirUp
	DirDown
	DirHoming
)

var directionNames = [...]string{
	DirRight:  "right",
	DirLeft:   "left",
	DirUp:     "up",
	DirDown:   "down",
	DirHoming: "homing",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// ParseDirection returns fallback for empty or unrecognized names, ok is false only for unrecognized
func ParseDirection(name string, fallback Direction) (Direction, bool) {
	if name == "" {
		return fallback, true
	}
	for i, n := range directionNames {
		if n == name {
			return Direction(i), true
		}
	}
	return fallback, false
}

// Unit returns the axis vector for straight directions, zero for homing
func (d Direction) Unit() (dx, dy float64) {
	switch d {
	case DirRight:
		return 1, 0
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	}
	return 0, 0
}
