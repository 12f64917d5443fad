package parameter

// Terminal layout
const (
	// TopMargin reserves the HUD row
	TopMargin = 1

	// BottomMargin reserves the status row
	BottomMargin = 1

	// ShopPanelWidth is the width of the shop side panel in cells
	ShopPanelWidth = 44

	// HealthBarWidth is the HUD health bar width in cells
	HealthBarWidth = 20

	// FirstPersonFOV is the horizontal field of view in radians
	FirstPersonFOV = 1.2
)
