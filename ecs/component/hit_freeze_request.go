package component

// HitFreezeRequest asks the arena to hold still for a few ticks. The longest
// request of a tick wins.
type HitFreezeRequest struct {
	Frames int
}

var HitFreezeRequestComponent = NewComponent[HitFreezeRequest]()
