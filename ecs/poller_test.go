package ecs

import "github.com/hajimehoshi/ebiten/v2"

// idlePoller is an input device with nothing pressed.
type idlePoller struct{}

func (idlePoller) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID { return ids }
func (idlePoller) TouchPosition(ebiten.TouchID) (int, int)             { return 0, 0 }
func (idlePoller) CursorPosition() (int, int)                          { return 0, 0 }
func (idlePoller) IsMouseButtonPressed(ebiten.MouseButton) bool        { return false }
func (idlePoller) IsFocused() bool                                     { return true }
