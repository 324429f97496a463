package parkour

// Cue is a fire-and-forget sound effect.
type Cue int

const (
	CueJump Cue = iota
	CueDoubleJump
	CueCollect   // Normal pickup
	CueNewItem   // New dress-up piece
	CueDuplicate // Dress-up piece already owned
	CueLevelUp   // Level intro and level complete
	CueFall
	CueVictory
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueDoubleJump:
		return "double-jump"
	case CueCollect:
		return "collect"
	case CueNewItem:
		return "new-item"
	case CueDuplicate:
		return "duplicate"
	case CueLevelUp:
		return "level-up"
	case CueFall:
		return "fall"
	case CueVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Cues lists every cue in declaration order.
var Cues = []Cue{CueJump, CueDoubleJump, CueCollect, CueNewItem, CueDuplicate, CueLevelUp, CueFall, CueVictory}

// Audio plays sound cues. Implementations must not block the tick loop.
type Audio interface {
	Play(c Cue)
}

// NopAudio discards every cue.
type NopAudio struct{}

// Play does nothing.
func (NopAudio) Play(Cue) {}

// ScreenID names the overlay a presenter should show.
type ScreenID int

const (
	ScreenMenu ScreenID = iota
	ScreenIntro
	ScreenHUD
	ScreenComplete
	ScreenGameOver
	ScreenVictory
)

// String returns the screen name.
func (s ScreenID) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenIntro:
		return "intro"
	case ScreenHUD:
		return "hud"
	case ScreenComplete:
		return "complete"
	case ScreenGameOver:
		return "game-over"
	case ScreenVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// ScreenInfo is the text a presenter needs for any screen.
type ScreenInfo struct {
	Level     int // 1-based; 0 before the first level start
	Levels    int // Catalog size
	Name      string
	Emoji     string
	Glyph     string
	Goal      string
	Score     int
	Target    int
	DressUp   bool
	LastLevel bool
	Paused    bool
}

// Presenter shows one named screen at a time plus the in-game HUD.
type Presenter interface {
	Show(id ScreenID, info ScreenInfo)
	HUD(info ScreenInfo)
}

// NopPresenter ignores all screens.
type NopPresenter struct{}

// Show does nothing.
func (NopPresenter) Show(ScreenID, ScreenInfo) {}

// HUD does nothing.
func (NopPresenter) HUD(ScreenInfo) {}

// Renderer draws one frame of the world. The controller calls Begin, then
// Entity for every visible entity back to front, then Player, Doll when a
// dress-up level is running, and End.
type Renderer interface {
	Begin(level *Level, t float64)
	Entity(e Entity)
	Player(p *Player)
	Doll(d *Doll)
	End()
}

// NopRenderer draws nothing.
type NopRenderer struct{}

func (NopRenderer) Begin(*Level, float64) {}
func (NopRenderer) Entity(Entity)         {}
func (NopRenderer) Player(*Player)        {}
func (NopRenderer) Doll(*Doll)            {}
func (NopRenderer) End()                  {}
