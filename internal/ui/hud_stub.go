//go:build !ebiten

package ui

import "lifedit/internal/session"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns an inert HUD in the headless build.
func NewHUD(width, top int) *HUD { return &HUD{} }

// Update never reports a click in the headless build.
func (h *HUD) Update(session.State) (session.Intent, bool) { return 0, false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int) {}
