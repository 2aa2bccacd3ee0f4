package gamemode

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"memorypuzzle/internal/anim"
	"memorypuzzle/internal/board"
	"memorypuzzle/internal/config"
	"memorypuzzle/internal/geometry"
)

// Phase is the turn state.
type Phase int

const (
	Idle           Phase = iota // No tile picked this turn
	AwaitingSecond              // First tile revealed, waiting for its partner
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case AwaitingSecond:
		return "awaiting-second"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Pauses in milliseconds.
const (
	MismatchDelayMs = 1000
	WinDelayMs      = 2000
	ResetDelayMs    = 1000
	FlashDelayMs    = 300
)

// Input is the pointer state sampled for one frame.
type Input struct {
	X, Y    int
	Clicked bool
}

// Overlay is a set of cells partway through a reveal or cover wipe.
type Overlay struct {
	Cells    []board.Cell
	Coverage int
}

// Scene is everything the render pass needs for one frame.
type Scene struct {
	Board        *board.Board
	Revealed     board.RevealState
	Tone         anim.Tone
	Overlay      Overlay
	Highlight    board.Cell
	HasHighlight bool
}

// step is one entry on the timeline. A step with hold 0 runs its action
// without consuming a frame.
type step struct {
	hold    int
	tone    anim.Tone
	overlay Overlay
	action  func() error
}

// Controller runs the turn state machine. Animations are queued on a
// timeline and play one frame per Tick; input is discarded until the
// timeline drains.
type Controller struct {
	cfg      config.Config
	layout   geometry.Layout
	poolSize int
	rng      *rand.Rand
	log      logrus.FieldLogger

	board    *board.Board
	revealed board.RevealState
	phase    Phase
	first    board.Cell

	timeline []step
	tone     anim.Tone
	overlay  Overlay
	hover    *board.Cell
}

// NewController deals the first board from a pool of poolSize icons and
// queues the start preview.
func NewController(cfg config.Config, poolSize int, rng *rand.Rand, log logrus.FieldLogger) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		cfg:      cfg,
		layout:   geometry.NewLayout(cfg.BoxSize, cfg.GapSize, cfg.BoardWidth, cfg.BoardHeight, cfg.Margin),
		poolSize: poolSize,
		rng:      rng,
		log:      log,
	}
	b, err := board.Generate(rng, poolSize, cfg.BoardWidth, cfg.BoardHeight)
	if err != nil {
		return nil, err
	}
	c.Restart(b)
	return c, nil
}

// Restart discards the current game, covers every cell of b and queues
// the start preview.
func (c *Controller) Restart(b *board.Board) {
	c.board = b
	c.revealed = board.NewRevealState(b.Width(), b.Height(), false)
	c.phase = Idle
	c.timeline = nil
	c.tone = anim.ToneBase
	c.overlay = Overlay{}
	c.queuePreview()
}

func (c *Controller) Layout() geometry.Layout { return c.layout }
func (c *Controller) Board() *board.Board { return c.board }
func (c *Controller) Revealed() board.RevealState { return c.revealed }
func (c *Controller) Phase() Phase { return c.phase }

// Selection returns the first pick of the current turn.
func (c *Controller) Selection() (board.Cell, bool) {
	return c.first, c.phase == AwaitingSecond
}

// Busy reports whether an animation or pause is still queued.
func (c *Controller) Busy() bool {
	return len(c.timeline) > 0
}

// Scene snapshots the state for drawing.
func (c *Controller) Scene() Scene {
	s := Scene{
		Board:    c.board,
		Revealed: c.revealed,
		Tone:     c.tone,
		Overlay:  c.overlay,
	}
	if c.hover != nil {
		s.Highlight, s.HasHighlight = *c.hover, true
	}
	return s
}

// Tick advances one frame. While the timeline is busy in is ignored.
func (c *Controller) Tick(in Input) error {
	c.hover = nil
	busy, err := c.advance()
	if busy || err != nil {
		return err
	}
	c.tone = anim.ToneBase
	c.overlay = Overlay{}

	cell, ok := c.layout.PixelToCell(in.X, in.Y)
	if !ok || c.revealed.Get(cell) {
		return nil
	}
	if !in.Clicked {
		c.hover = &cell
		return nil
	}

	c.queueReveal([]board.Cell{cell})
	c.queue(func() error { return c.resolve(cell) })
	_, err = c.advance()
	return err
}

// advance shows the next queued frame, running any instant steps before it.
func (c *Controller) advance() (bool, error) {
	for len(c.timeline) > 0 {
		s := &c.timeline[0]
		if s.hold == 0 {
			act := s.action
			c.timeline = c.timeline[1:]
			if act != nil {
				if err := act(); err != nil {
					return false, err
				}
			}
			continue
		}
		c.tone, c.overlay = s.tone, s.overlay
		s.hold--
		if s.hold == 0 {
			c.timeline = c.timeline[1:]
		}
		return true, nil
	}
	return false, nil
}

// resolve runs once the reveal of cell has finished.
func (c *Controller) resolve(cell board.Cell) error {
	c.revealed.Set(cell, true)
	if c.phase == Idle {
		c.first = cell
		c.phase = AwaitingSecond
		return nil
	}

	first := c.first
	c.phase = Idle
	c.first = board.Cell{}

	fields := logrus.Fields{"first": first, "second": cell}
	if c.board.IconAt(first) != c.board.IconAt(cell) {
		c.log.WithFields(fields).Debug("mismatch")
		c.pause(MismatchDelayMs, anim.ToneBase)
		pair := []board.Cell{first, cell}
		c.queueCover(pair)
		c.queue(func() error {
			c.revealed.Set(first, false)
			c.revealed.Set(cell, false)
			return nil
		})
		return nil
	}

	c.log.WithFields(fields).Debug("pair matched")
	if c.revealed.HasWon() {
		c.log.Info("board cleared")
		c.queueWin()
	}
	return nil
}

func (c *Controller) queueWin() {
	for _, tone := range anim.Flashes(anim.WinFlashes) {
		c.timeline = append(c.timeline, step{hold: anim.Ticks(FlashDelayMs, c.cfg.FPS), tone: tone})
	}
	c.pause(WinDelayMs, anim.ToneBase)
	c.queue(c.deal)
}

// deal replaces the cleared board with a fresh one.
func (c *Controller) deal() error {
	b, err := board.Generate(c.rng, c.poolSize, c.cfg.BoardWidth, c.cfg.BoardHeight)
	if err != nil {
		return fmt.Errorf("deal new board: %w", err)
	}
	c.board = b
	c.revealed = board.NewRevealState(b.Width(), b.Height(), false)
	c.log.Info("new board dealt")
	c.pause(ResetDelayMs, anim.ToneBase)
	c.queuePreview()
	return nil
}

// queuePreview flashes every cell once, a few random cells at a time.
func (c *Controller) queuePreview() {
	cells := c.board.Cells()
	c.rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})
	size := board.PreviewGroupSize(c.board.Width() * c.board.Height() / 2)
	for _, group := range board.SplitIntoGroups(size, cells) {
		c.queueReveal(group)
		c.queueCover(group)
	}
}

func (c *Controller) queueReveal(cells []board.Cell) {
	for _, cov := range anim.RevealSequence(c.cfg.BoxSize, c.cfg.RevealSpeed) {
		c.queueWipe(cells, cov)
	}
}

func (c *Controller) queueCover(cells []board.Cell) {
	for _, cov := range anim.CoverSequence(c.cfg.BoxSize, c.cfg.RevealSpeed) {
		c.queueWipe(cells, cov)
	}
}

func (c *Controller) queueWipe(cells []board.Cell, coverage int) {
	c.timeline = append(c.timeline, step{
		hold:    1,
		tone:    anim.ToneBase,
		overlay: Overlay{Cells: cells, Coverage: coverage},
	})
}

func (c *Controller) pause(ms int, tone anim.Tone) {
	c.timeline = append(c.timeline, step{hold: anim.Ticks(ms, c.cfg.FPS), tone: tone})
}

func (c *Controller) queue(action func() error) {
	c.timeline = append(c.timeline, step{action: action})
}
