package status

// Metric keys
const (
	PlacementGrid        = "placement.grid"
	PlacementRandom      = "placement.random"
	PlacementSpiral      = "placement.spiral"
	PlacementRepairPass  = "placement.repair_passes"
	PlacementOverlapLeft = "placement.overlaps_left"

	CoverageFrames  = "coverage.frames"
	CoveragePrimary = "coverage.primary"

	HammerTriggered = "hammer.triggered"
	HammerDropped   = "hammer.dropped"
	HammerCompleted = "hammer.completed"

	GameResets = "game.resets"
)
