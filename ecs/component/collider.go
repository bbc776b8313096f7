package component

// ColliderKind classifies static level geometry.
type ColliderKind uint8

const (
	ColliderSolid ColliderKind = iota + 1
)

func (k ColliderKind) String() string {
	switch k {
	case ColliderSolid:
		return "solid"
	default:
		return "unknown"
	}
}

// Collider marks an immovable box the player can stand on.
type Collider struct {
	Kind ColliderKind
	Name string
}

var ColliderComponent = NewComponent[Collider]()
