package render

// Priority determines render order. Lower values render first.
type Priority int

const (
	PrioritySky Priority = iota
	PriorityRoad
	PriorityCollectibles
	PriorityPlayer
	PriorityReveals
	PriorityStatusBar
	PriorityDebug
)
