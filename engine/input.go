package engine

// Key is a physical key code held by the player
type Key string

// Movement key codes
const (
	KeyW       Key = "KeyW"
	KeyA       Key = "KeyA"
	KeyS       Key = "KeyS"
	KeyD       Key = "KeyD"
	ArrowUp    Key = "ArrowUp"
	ArrowDown  Key = "ArrowDown"
	ArrowLeft  Key = "ArrowLeft"
	ArrowRight Key = "ArrowRight"
)

// KeySet is a set of held keys, copied on write
type KeySet map[Key]struct{}

// Has reports whether k is held
func (ks KeySet) Has(k Key) bool {
	_, ok := ks[k]
	return ok
}

// With returns a copy of the set including k
func (ks KeySet) With(k Key) KeySet {
	if ks.Has(k) {
		return ks
	}
	out := make(KeySet, len(ks)+1)
	for key := range ks {
		out[key] = struct{}{}
	}
	out[k] = struct{}{}
	return out
}

// Without returns a copy of the set excluding k
func (ks KeySet) Without(k Key) KeySet {
	if !ks.Has(k) {
		return ks
	}
	out := make(KeySet, len(ks))
	for key := range ks {
		if key != k {
			out[key] = struct{}{}
		}
	}
	return out
}

// Axes returns the held movement direction as -1/0/+1 per axis
// Y grows downward; opposing keys cancel
func (ks KeySet) Axes() (dx, dy int) {
	if ks.Has(KeyW) || ks.Has(ArrowUp) {
		dy--
	}
	if ks.Has(KeyS) || ks.Has(ArrowDown) {
		dy++
	}
	if ks.Has(KeyA) || ks.Has(ArrowLeft) {
		dx--
	}
	if ks.Has(KeyD) || ks.Has(ArrowRight) {
		dx++
	}
	return dx, dy
}

// Input is the input snapshot carried in State
// FireSeq counts fire requests; FireAck is the last one consumed by a frame
type Input struct {
	Keys    KeySet
	Pointer Vec
	FireSeq uint64
	FireAck uint64
}

// FirePending reports whether a fire request has not been consumed yet
func (in Input) FirePending() bool {
	return in.FireSeq > in.FireAck
}
