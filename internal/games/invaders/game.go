// Package invaders implements the arcade shooter: the entity model, the
// fixed-tick simulation and the mode state machine that drives it.
package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/scores"
)

// Mode is the current top-level screen.
type Mode int

const (
	ModeTitle Mode = iota
	ModeHighScores
	ModePlaying
	ModeExploding
	ModeEnteringInitials
	ModePaused
	ModeGameOver
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeTitle:
		return "title"
	case ModeHighScores:
		return "highscores"
	case ModePlaying:
		return "playing"
	case ModeExploding:
		return "exploding"
	case ModeEnteringInitials:
		return "initials"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// ScoreClient is the non-blocking high-score service the game talks to.
// *scores.Adapter implements it.
type ScoreClient interface {
	FetchTopScores() scores.Ticket
	RefreshTopScores() scores.Ticket
	SubmitScore(e scores.Entry) scores.Ticket
	Poll() []scores.Result
	Cached() []scores.Entry
}

// Option configures a Game.
type Option func(*Game)

// WithRandom replaces the seeded generator with r.
func WithRandom(r Random) Option {
	return func(g *Game) {
		g.newRandom = func(int64) Random { return r }
	}
}

func seededRandom(seed int64) Random {
	return NewSimpleRNG(seed)
}

// Game owns the current mode and the active session.
type Game struct {
	cfg       config.InvadersConfig
	runtime   core.RuntimeConfig
	scores    ScoreClient
	newRandom func(seed int64) Random
	rng       Random

	session *Session
	mode    Mode
	tick    uint64
	titleMs int

	initials     []rune
	checkTicket  scores.Ticket // Qualification fetch in flight
	submitTicket scores.Ticket // Initials submit in flight
}

// New creates a game. A nil client disables high scores.
func New(cfg config.InvadersConfig, client ScoreClient, opts ...Option) *Game {
	if client == nil {
		client = scores.NewAdapter(nil)
	}
	g := &Game{
		cfg:       cfg,
		scores:    client,
		newRandom: seededRandom,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Reset seeds the generator and returns to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = g.newRandom(runtime.Seed)
	g.session = NewSession(g.cfg, g.rng)
	g.mode = ModeTitle
	g.tick = 0
	g.titleMs = 0
	g.initials = g.initials[:0]
	g.checkTicket = 0
	g.submitTicket = 0
}

// Mode returns the current mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Session returns the active session.
func (g *Game) Session() *Session {
	return g.session
}

// Step applies resolved score requests, then advances the mode machine by
// one tick using the input observed for it.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(g.runtime)
	}
	g.tick++
	g.applyScoreResults()

	switch g.mode {
	case ModeTitle:
		g.stepTitle(in)
	case ModeHighScores:
		if in.Has(core.EventCancel) {
			g.mode = ModeTitle
		}
	case ModeEnteringInitials:
		g.stepInitials(in)
	case ModeGameOver:
		switch {
		case in.Has(core.EventConfirm):
			g.startSession()
		case in.Has(core.EventCancel):
			g.checkTicket = 0
			g.mode = ModeTitle
		}
	case ModePaused:
		if in.Has(core.EventTogglePause) {
			g.mode = ModePlaying
		}
	case ModePlaying:
		g.stepPlaying(in)
	case ModeExploding:
		if g.session.ExplosionTick() {
			g.mode = ModePlaying
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepTitle(in core.InputFrame) {
	g.titleMs += g.cfg.Timing.TickMillis
	switch {
	case in.Has(core.EventConfirm):
		g.startSession()
	case in.Has(core.EventMenuSecondary):
		g.mode = ModeHighScores
		g.scores.FetchTopScores()
	}
}

func (g *Game) startSession() {
	g.session.Reset()
	g.mode = ModePlaying
	g.initials = g.initials[:0]
	g.checkTicket = 0
	g.submitTicket = 0
}

func (g *Game) stepPlaying(in core.InputFrame) {
	if in.Has(core.EventTogglePause) {
		g.mode = ModePaused
		return
	}

	g.session.Move(in.Axis)
	if in.Has(core.EventFire) {
		g.session.Fire()
	}

	out := g.session.Tick()
	if out.Over {
		g.endSession()
		return
	}
	if out.Cleared {
		g.session.AdvanceLevel()
	}
	if out.PlayerHit {
		g.mode = ModeExploding
	}
}

// endSession parks the game in GameOver while the table is re-fetched to
// decide whether the score qualifies.
func (g *Game) endSession() {
	g.mode = ModeGameOver
	g.checkTicket = g.scores.RefreshTopScores()
}

func (g *Game) applyScoreResults() {
	for _, r := range g.scores.Poll() {
		switch {
		case r.Ticket == g.checkTicket && g.mode == ModeGameOver:
			g.checkTicket = 0
			if scores.Qualifies(r.Entries, g.session.Score(), g.cfg.Gameplay.HighScoreSlots) {
				g.initials = g.initials[:0]
				g.mode = ModeEnteringInitials
			} else {
				g.mode = ModeHighScores
			}
		case r.Ticket == g.submitTicket && g.mode == ModeEnteringInitials:
			g.submitTicket = 0
			if r.OK {
				g.initials = g.initials[:0]
				g.mode = ModeHighScores
				g.scores.RefreshTopScores()
			}
		}
	}
}

func (g *Game) stepInitials(in core.InputFrame) {
	if g.submitTicket != 0 {
		return
	}
	for _, ev := range in.Events {
		switch ev.Kind {
		case core.EventCharInput:
			if len(g.initials) < scores.InitialsLen && scores.IsInitialsLetter(ev.Char) {
				g.initials = append(g.initials, toUpper(ev.Char))
			}
		case core.EventBackspace, core.EventInitialsCursorLeft:
			if n := len(g.initials); n > 0 {
				g.initials = g.initials[:n-1]
			}
		case core.EventInitialsCursorRight:
			if len(g.initials) < scores.InitialsLen {
				g.initials = append(g.initials, 'A')
			}
		case core.EventInitialsCursorUp:
			g.cycleInitial(1)
		case core.EventInitialsCursorDown:
			g.cycleInitial(-1)
		case core.EventConfirm:
			if len(g.initials) == scores.InitialsLen {
				entry := scores.NewEntry(string(g.initials), g.session.Score(), g.session.Level())
				g.submitTicket = g.scores.SubmitScore(entry)
				return
			}
		}
	}
}

// cycleInitial rotates the last letter through A..Z. With no letters yet
// it starts one at 'A' (forward) or 'Z' (backward).
func (g *Game) cycleInitial(delta int) {
	n := len(g.initials)
	if n == 0 {
		if delta > 0 {
			g.initials = append(g.initials, 'A')
		} else {
			g.initials = append(g.initials, 'Z')
		}
		return
	}
	idx := (int(g.initials[n-1]-'A') + delta + 26) % 26
	g.initials[n-1] = rune('A' + idx)
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

// Initials returns the letters entered so far.
func (g *Game) Initials() string {
	return string(g.initials)
}

// State returns the HUD summary.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Mode:     g.mode.String(),
		GameOver: g.mode == ModeGameOver || g.mode == ModeEnteringInitials,
		Paused:   g.mode == ModePaused,
		Typing:   g.mode == ModeEnteringInitials,
	}
	if g.session != nil {
		st.Score = g.session.Score()
		st.Lives = g.session.Lives()
		st.Level = g.session.Level()
	}
	return st
}
