package model

// Centralized icons for the report and TUI output
// Using simple single-width characters for consistent terminal rendering
const (
	IconOverlap   = "✗" // Thin X (overlapping records)
	IconDuplicate = "≈" // Almost equal (duplicate records)
	IconOK        = "✓" // Clean timeline
	IconLane      = "│" // Sub-lane marker in consolidated bands
	IconBand      = "■" // Legend swatch
)
