package gesture

import (
	"cmp"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// Poller is the frame-polled input device a TouchSource reads from.
// NewEbitenPoller returns the real device; tests substitute their own.
type Poller interface {
	AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (int, int)
	CursorPosition() (int, int)
	IsMouseButtonPressed(b ebiten.MouseButton) bool
	IsFocused() bool
}

type ebitenPoller struct{}

// NewEbitenPoller returns a Poller backed by Ebitengine's global input state.
// It must only be used from within ebiten.Game.Update.
func NewEbitenPoller() Poller {
	return ebitenPoller{}
}

func (ebitenPoller) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}

func (ebitenPoller) TouchPosition(id ebiten.TouchID) (int, int) {
	return ebiten.TouchPosition(id)
}

func (ebitenPoller) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (ebitenPoller) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}

func (ebitenPoller) IsFocused() bool {
	return ebiten.IsFocused()
}

// touchSample is one contact observed during a poll.
type touchSample struct {
	id  ContactID
	pos Vec2
}

// TouchSource converts per-frame device snapshots into an ordered stream of
// TouchEvents: exactly one Started per contact, Moved while it changes
// position, then one Ended or Cancelled.
type TouchSource struct {
	// EmulateTouchWithMouse makes the left mouse button drive the contact
	// MouseContactID.
	EmulateTouchWithMouse bool

	poller  Poller
	live    map[ContactID]Vec2
	idBuf   []ebiten.TouchID
	samples []touchSample
	goneBuf []ContactID
}

// NewTouchSource creates a source reading from p.
func NewTouchSource(p Poller) *TouchSource {
	return &TouchSource{
		poller: p,
		live:   make(map[ContactID]Vec2, maxContacts),
	}
}

// maxContacts is the expected upper bound of simultaneous touches.
const maxContacts = 10

// Live returns the number of contacts the source considers down.
func (s *TouchSource) Live() int {
	return len(s.live)
}

// Poll reads the device and appends this frame's events to buf. Within a
// frame, lifted contacts are reported before new ones, each group in
// ascending ID order. When the window loses focus every live contact is
// cancelled.
func (s *TouchSource) Poll(buf []TouchEvent) []TouchEvent {
	if !s.poller.IsFocused() {
		return s.Cancel(buf)
	}

	s.samples = s.samples[:0]
	s.idBuf = s.poller.AppendTouchIDs(s.idBuf[:0])
	for _, tid := range s.idBuf {
		x, y := s.poller.TouchPosition(tid)
		s.samples = append(s.samples, touchSample{
			id:  ContactID(tid),
			pos: Vec2{X: float64(x), Y: float64(y)},
		})
	}
	if s.EmulateTouchWithMouse && s.poller.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := s.poller.CursorPosition()
		s.samples = append(s.samples, touchSample{
			id:  MouseContactID,
			pos: Vec2{X: float64(x), Y: float64(y)},
		})
	}
	slices.SortFunc(s.samples, func(a, b touchSample) int {
		return cmp.Compare(a.id, b.id)
	})

	// Lifted contacts.
	s.goneBuf = s.goneBuf[:0]
	for id := range s.live {
		if !s.sampled(id) {
			s.goneBuf = append(s.goneBuf, id)
		}
	}
	slices.Sort(s.goneBuf)
	for _, id := range s.goneBuf {
		pos := s.live[id]
		delete(s.live, id)
		buf = append(buf, TouchEvent{ID: id, X: pos.X, Y: pos.Y, Phase: PhaseEnded})
	}

	// New and moved contacts.
	for _, smp := range s.samples {
		prev, ok := s.live[smp.id]
		switch {
		case !ok:
			buf = append(buf, TouchEvent{ID: smp.id, X: smp.pos.X, Y: smp.pos.Y, Phase: PhaseStarted})
		case prev != smp.pos:
			buf = append(buf, TouchEvent{ID: smp.id, X: smp.pos.X, Y: smp.pos.Y, Phase: PhaseMoved})
		default:
			continue
		}
		s.live[smp.id] = smp.pos
	}
	return buf
}

func (s *TouchSource) sampled(id ContactID) bool {
	_, found := slices.BinarySearchFunc(s.samples, id, func(smp touchSample, id ContactID) int {
		return cmp.Compare(smp.id, id)
	})
	return found
}

// Cancel appends a Cancelled event for every live contact, in ascending ID
// order, and forgets them. A contact still held down is reported as Started
// again on the next Poll.
func (s *TouchSource) Cancel(buf []TouchEvent) []TouchEvent {
	s.goneBuf = s.goneBuf[:0]
	for id := range s.live {
		s.goneBuf = append(s.goneBuf, id)
	}
	slices.Sort(s.goneBuf)
	for _, id := range s.goneBuf {
		pos := s.live[id]
		buf = append(buf, TouchEvent{ID: id, X: pos.X, Y: pos.Y, Phase: PhaseCancelled})
	}
	clear(s.live)
	return buf
}

// Reset forgets every live contact without reporting it. Contacts still held
// down are reported as Started on the next Poll.
func (s *TouchSource) Reset() {
	clear(s.live)
}
