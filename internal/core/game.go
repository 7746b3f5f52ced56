package core

// GameState is what the platform layer learns about the game after a tick.
type GameState struct {
	Mode     string // TitleScreen, Playing or EndGame
	Level    int    // Level number, 0 outside play
	Player   string // Player status, empty outside play
	GameOver bool   // Every level has been completed
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}

// Game is the contract between the game logic and the platform layer.
// Games contain pure logic with no Bubble Tea dependency. The platform
// samples input, calls Step once per tick and draws with Render.
type Game interface {
	// Step advances the simulation by one fixed tick. Mouse coordinates in
	// in are screen cells. An error means the game cannot continue.
	Step(in RawInput) (StepResult, error)

	// Render draws the current state into dst.
	Render(dst *Screen)

	// Resize fits the game to a screen of width x height cells.
	Resize(width, height int)

	// State returns the current game state.
	State() GameState
}
