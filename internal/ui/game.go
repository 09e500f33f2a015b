package ui

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/notnil/chess"

	"github.com/amiit04/ChessBotAI/internal/engine"
	"github.com/amiit04/ChessBotAI/internal/storage"
)

// UI constants
const (
	ScreenWidth  = 960
	ScreenHeight = 640
	BoardSize    = 640
	SquareSize   = BoardSize / 8
	PanelWidth   = ScreenWidth - BoardSize
)

// phase is the current interaction mode of the UI.
type phase int

const (
	phaseColorSelect phase = iota
	phasePlaying
	phasePromotion
	phaseGameOver
)

// botResult carries the engine's answer back to the UI goroutine.
// seq ties the result to the game it was requested for, so a search
// finishing after an undo or a new game is discarded.
type botResult struct {
	seq   int
	move  *chess.Move
	score int
	err   error
}

// Game implements ebiten.Game.
type Game struct {
	chessGame *chess.Game
	redoStack []*chess.Move
	lastMove  *chess.Move

	engine      *engine.Engine
	difficulty  engine.Difficulty
	playerColor chess.Color

	store *storage.Storage
	prefs *storage.UserPreferences
	stats *storage.GameStats

	renderer *Renderer
	input    *InputHandler
	panel    *Panel
	welcome  *WelcomeScreen
	promo    *PromotionDialog

	phase      phase
	resultText string
	bannerBtn  *ModalButton

	selected chess.Square
	targets  []*chess.Move

	anim *MoveAnimation

	botThinking bool
	botMove     chan botResult
	searchSeq   int

	lastScore int
	hasScore  bool
	showHints bool

	// resultRecorded keeps a game from counting twice in the stats
	// when undo and redo walk back over its final move.
	resultRecorded bool
}

// NewGame creates the game and restores preferences, statistics, and
// any unfinished game from storage.
func NewGame() *Game {
	g := &Game{
		chessGame:   chess.NewGame(),
		playerColor: chess.White,
		renderer:    NewRenderer(BoardSize, SquareSize),
		input:       NewInputHandler(),
		botMove:     make(chan botResult, 1),
		selected:    chess.NoSquare,
		phase:       phaseColorSelect,
	}

	var err error
	g.store, err = storage.Open()
	if err != nil {
		log.Printf("Warning: Failed to open storage: %v", err)
	}
	g.loadPreferences()
	g.loadStats()

	g.engine = engine.NewWithDifficulty(g.difficulty)
	g.panel = NewPanel(g)
	g.welcome = NewWelcomeScreen(g.startWithColor)
	g.bannerBtn = NewModalButton(
		BoardSize/2-80, ScreenHeight/2+28, 160, 40, "New Game", true, g.requestNewGame)

	g.resumeSavedGame()
	return g
}

// loadPreferences loads user preferences from storage.
func (g *Game) loadPreferences() {
	g.prefs = storage.DefaultPreferences()
	if g.store != nil {
		prefs, err := g.store.LoadPreferences()
		if err != nil {
			log.Printf("Warning: Failed to load preferences: %v", err)
		} else {
			g.prefs = prefs
		}
	}

	g.difficulty = g.prefs.Difficulty
	g.showHints = g.prefs.ShowHints
	g.playerColor = g.prefs.PlayerColor
	g.renderer.SetFlipped(g.playerColor == chess.Black)
}

func (g *Game) loadStats() {
	g.stats = storage.NewGameStats()
	if g.store == nil {
		return
	}
	stats, err := g.store.LoadStats()
	if err != nil {
		log.Printf("Warning: Failed to load stats: %v", err)
		return
	}
	g.stats = stats
}

func (g *Game) savePreferences() {
	if g.store == nil {
		return
	}
	g.prefs.Difficulty = g.difficulty
	g.prefs.ShowHints = g.showHints
	g.prefs.PlayerColor = g.playerColor
	if err := g.store.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

// resumeSavedGame restores an unfinished game from the last session.
func (g *Game) resumeSavedGame() {
	if g.store == nil {
		return
	}
	saved, err := g.store.LoadGame()
	if err != nil {
		log.Printf("Warning: Failed to load saved game: %v", err)
		return
	}
	if saved == nil || saved.Outcome() != chess.NoOutcome || len(saved.Moves()) == 0 {
		return
	}

	g.chessGame = saved
	moves := saved.Moves()
	g.lastMove = moves[len(moves)-1]
	g.phase = phasePlaying
}

// startWithColor begins a fresh game with the player on the given
// side.
func (g *Game) startWithColor(c chess.Color) {
	g.playerColor = c
	g.renderer.SetFlipped(c == chess.Black)
	g.savePreferences()
	g.resetBoard()
	g.phase = phasePlaying
}

func (g *Game) resetBoard() {
	g.chessGame = chess.NewGame()
	g.redoStack = nil
	g.lastMove = nil
	g.selected = chess.NoSquare
	g.targets = nil
	g.anim = nil
	g.hasScore = false
	g.resultText = ""
	g.resultRecorded = false
	g.searchSeq++
}

// requestNewGame returns to the color selection dialog.
func (g *Game) requestNewGame() {
	g.resetBoard()
	g.phase = phaseColorSelect
}

func (g *Game) setDifficulty(d engine.Difficulty) {
	if d == g.difficulty {
		return
	}
	g.difficulty = d
	g.engine = engine.NewWithDifficulty(d)
	g.savePreferences()
}

func (g *Game) toggleHints() {
	g.showHints = !g.showHints
	g.savePreferences()
}

// Update advances the game state by one tick.
func (g *Game) Update() error {
	g.input.Update()

	// Input is ignored while a piece is sliding.
	if g.anim != nil {
		if !g.anim.Update() {
			g.anim = nil
		}
		return nil
	}

	g.receiveBotMove()

	switch g.phase {
	case phaseColorSelect:
		g.welcome.Update(g.input)
	case phasePromotion:
		g.promo.Update(g.input)
	case phasePlaying:
		g.handleKeys()
		g.handleBoardClick()
		g.panel.Update(g.input)
		g.maybeStartBot()
	case phaseGameOver:
		g.handleKeys()
		g.bannerBtn.Update(g.input)
		g.panel.Update(g.input)
	}
	return nil
}

// receiveBotMove applies a finished engine search, dropping results
// that belong to an abandoned game state.
func (g *Game) receiveBotMove() {
	select {
	case res := <-g.botMove:
		g.botThinking = false
		if res.seq != g.searchSeq {
			return
		}
		if res.err != nil {
			log.Printf("Warning: engine returned no move: %v", res.err)
			return
		}
		g.lastScore = res.score
		g.hasScore = true
		g.redoStack = nil
		g.applyMove(res.move)
	default:
	}
}

// maybeStartBot kicks off an engine search when it is the bot's turn.
func (g *Game) maybeStartBot() {
	if g.botThinking || g.anim != nil {
		return
	}
	if g.chessGame.Outcome() != chess.NoOutcome {
		return
	}
	if g.chessGame.Position().Turn() == g.playerColor {
		return
	}

	g.botThinking = true
	seq := g.searchSeq
	pos := g.chessGame.Position()
	eng := g.engine
	go func() {
		mv, score, err := eng.BestMove(pos)
		g.botMove <- botResult{seq: seq, move: mv, score: score, err: err}
	}()
}

func (g *Game) handleKeys() {
	if g.botThinking {
		return
	}
	if IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.undo()
	}
	if IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.redo()
	}
}

// handleBoardClick implements click-to-select, click-to-move.
func (g *Game) handleBoardClick() {
	if !g.input.IsLeftJustPressed() {
		return
	}
	if g.botThinking || g.chessGame.Position().Turn() != g.playerColor {
		return
	}
	mx, my := g.input.MousePosition()
	sq := g.renderer.ScreenToSquare(mx, my)
	if sq == chess.NoSquare {
		return
	}

	pos := g.chessGame.Position()
	piece := pos.Board().Piece(sq)

	if g.selected == chess.NoSquare {
		if piece != chess.NoPiece && piece.Color() == g.playerColor {
			g.selectSquare(sq)
		}
		return
	}

	if sq == g.selected {
		g.clearSelection()
		return
	}
	if piece != chess.NoPiece && piece.Color() == g.playerColor {
		g.selectSquare(sq)
		return
	}

	var candidates []*chess.Move
	for _, mv := range g.targets {
		if mv.S2() == sq {
			candidates = append(candidates, mv)
		}
	}
	if len(candidates) == 0 {
		g.clearSelection()
		return
	}

	if candidates[0].Promo() != chess.NoPieceType {
		g.openPromotion(candidates)
		return
	}
	g.redoStack = nil
	g.applyMove(candidates[0])
}

func (g *Game) selectSquare(sq chess.Square) {
	g.selected = sq
	g.targets = nil
	for _, mv := range g.chessGame.Position().ValidMoves() {
		if mv.S1() == sq {
			g.targets = append(g.targets, mv)
		}
	}
}

func (g *Game) clearSelection() {
	g.selected = chess.NoSquare
	g.targets = nil
}

// openPromotion shows the promotion dialog for the candidate moves,
// which differ only in their promotion piece.
func (g *Game) openPromotion(candidates []*chess.Move) {
	g.promo = NewPromotionDialog(g.playerColor,
		func(pt chess.PieceType) {
			g.phase = phasePlaying
			for _, mv := range candidates {
				if mv.Promo() == pt {
					g.redoStack = nil
					g.applyMove(mv)
					return
				}
			}
		},
		func() {
			g.phase = phasePlaying
			g.clearSelection()
		})
	g.phase = phasePromotion
}

// applyMove plays mv on the game, starts the slide animation, saves
// the game, and checks for the end of the game.
func (g *Game) applyMove(mv *chess.Move) {
	piece := g.chessGame.Position().Board().Piece(mv.S1())
	if err := g.chessGame.Move(mv); err != nil {
		log.Printf("Warning: move %v rejected: %v", mv, err)
		return
	}
	g.lastMove = mv
	g.clearSelection()
	g.anim = NewMoveAnimation(g.renderer, piece, mv.S1(), mv.S2(), nil)

	g.autosave()
	g.checkGameOver()
}

func (g *Game) autosave() {
	if g.store == nil {
		return
	}
	if err := g.store.SaveGame(g.chessGame); err != nil {
		log.Printf("Warning: Failed to autosave game: %v", err)
	}
}

// checkGameOver transitions to the game-over banner and records the
// result once the rules engine declares an outcome.
func (g *Game) checkGameOver() {
	outcome := g.chessGame.Outcome()
	if outcome == chess.NoOutcome {
		return
	}

	g.phase = phaseGameOver
	g.resultText = g.resultMessage(outcome)

	if g.resultRecorded {
		return
	}
	g.resultRecorded = true

	if g.store != nil {
		result := storage.GameResult{
			Won:        g.playerWon(outcome),
			Draw:       outcome == chess.Draw,
			Difficulty: g.difficulty,
		}
		if err := g.store.RecordGame(result); err != nil {
			log.Printf("Warning: Failed to record game: %v", err)
		}
		if err := g.store.ClearSavedGame(); err != nil {
			log.Printf("Warning: Failed to clear saved game: %v", err)
		}
		g.loadStats()
	}
}

func (g *Game) playerWon(outcome chess.Outcome) bool {
	return (outcome == chess.WhiteWon && g.playerColor == chess.White) ||
		(outcome == chess.BlackWon && g.playerColor == chess.Black)
}

func (g *Game) resultMessage(outcome chess.Outcome) string {
	switch g.chessGame.Method() {
	case chess.Checkmate:
		if g.playerWon(outcome) {
			return "Checkmate! You win."
		}
		return "Checkmate! ChessBotAI wins."
	case chess.Stalemate:
		return "Draw by stalemate."
	case chess.InsufficientMaterial:
		return "Draw by insufficient material."
	case chess.FivefoldRepetition:
		return "Draw by fivefold repetition."
	case chess.SeventyFiveMoveRule:
		return "Draw by the 75 move rule."
	default:
		return "Game drawn."
	}
}

// undo takes back the last two plies (the bot's reply and the
// player's move) so the player is to move again.
func (g *Game) undo() {
	if g.anim != nil || g.botThinking {
		return
	}
	moves := g.chessGame.Moves()
	if len(moves) == 0 {
		return
	}
	take := 2
	if len(moves) < 2 {
		take = len(moves)
	}

	// Push in reverse so redo pops them in playing order.
	for i := 0; i < take; i++ {
		g.redoStack = append(g.redoStack, moves[len(moves)-1-i])
	}
	g.replayTo(moves, len(moves)-take)
}

// redo replays up to two plies taken back by undo.
func (g *Game) redo() {
	if g.anim != nil || g.botThinking || len(g.redoStack) == 0 {
		return
	}
	moves := g.chessGame.Moves()
	replay := make([]*chess.Move, len(moves))
	copy(replay, moves)

	take := 2
	if len(g.redoStack) < 2 {
		take = len(g.redoStack)
	}
	for i := 0; i < take; i++ {
		replay = append(replay, g.redoStack[len(g.redoStack)-1])
		g.redoStack = g.redoStack[:len(g.redoStack)-1]
	}
	g.replayTo(replay, len(replay))
}

// replayTo rebuilds the game from the first upto moves of history.
func (g *Game) replayTo(moves []*chess.Move, upto int) {
	ng := chess.NewGame()
	for _, mv := range moves[:upto] {
		m, err := chess.UCINotation{}.Decode(ng.Position(), mv.String())
		if err != nil {
			log.Printf("Warning: failed to replay move %v: %v", mv, err)
			return
		}
		if err := ng.Move(m); err != nil {
			log.Printf("Warning: failed to replay move %v: %v", mv, err)
			return
		}
	}

	g.chessGame = ng
	g.lastMove = nil
	if replayed := ng.Moves(); len(replayed) > 0 {
		g.lastMove = replayed[len(replayed)-1]
	}
	g.clearSelection()
	g.hasScore = false
	g.resultText = ""
	g.searchSeq++
	g.phase = phasePlaying
	g.autosave()
	g.checkGameOver()
}

// Draw renders one frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Theme().Background)
	g.renderer.DrawBoard(screen)

	pos := g.chessGame.Position()

	var targets []*chess.Move
	if g.showHints {
		targets = g.targets
	}
	g.renderer.DrawHighlights(screen, g.selected, targets, g.lastMove)
	if sq := g.checkedKingSquare(pos); sq != chess.NoSquare {
		g.renderer.DrawCheck(screen, sq)
	}

	hidden := chess.NoSquare
	if g.anim != nil {
		hidden = g.anim.HiddenSquare()
	}
	g.renderer.DrawPieces(screen, pos.Board(), hidden)
	if g.anim != nil {
		g.anim.Draw(screen, g.renderer.Sprites())
	}

	g.panel.Draw(screen)

	switch g.phase {
	case phaseColorSelect:
		g.welcome.Draw(screen)
	case phasePromotion:
		g.promo.Draw(screen, g.renderer.Sprites())
	case phaseGameOver:
		g.drawGameOverBanner(screen)
	}
}

// checkedKingSquare returns the square of the king in check, or
// chess.NoSquare.
func (g *Game) checkedKingSquare(pos *chess.Position) chess.Square {
	if g.lastMove == nil || !g.lastMove.HasTag(chess.Check) {
		return chess.NoSquare
	}
	board := pos.Board()
	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := board.Piece(sq)
		if piece.Type() == chess.King && piece.Color() == pos.Turn() {
			return sq
		}
	}
	return chess.NoSquare
}

func (g *Game) drawGameOverBanner(screen *ebiten.Image) {
	const bannerW, bannerH = 420, 140
	x := (BoardSize - bannerW) / 2
	y := (ScreenHeight - bannerH) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), bannerW, bannerH, panelBg, false)
	vector.StrokeRect(screen, float32(x), float32(y), bannerW, bannerH, 1, widgetBorder, false)

	drawCenteredText(screen, g.resultText, GetBoldFaceWithSize(20), x+bannerW/2, y+24, textPrimary)
	g.bannerBtn.Draw(screen)
}

// statusLine returns the panel status text and its color.
func (g *Game) statusLine() (string, color.Color) {
	switch {
	case g.phase == phaseColorSelect:
		return "Choose your side", textSecondary
	case g.phase == phaseGameOver:
		return g.resultText, statusGameOver
	case g.botThinking:
		return "Thinking...", statusThinking
	case g.phase == phasePromotion:
		return "Choose a promotion piece", textSecondary
	case g.chessGame.Position().Turn() == g.playerColor:
		return "Your move", textSecondary
	default:
		return "ChessBotAI to move", textSecondary
	}
}

// evalLine returns the last search score for the panel.
func (g *Game) evalLine() string {
	if !g.hasScore {
		return ""
	}
	return "Eval: " + engine.ScoreToString(g.lastScore, g.engine.Depth())
}

// statsLine summarizes lifetime statistics for the panel footer.
func (g *Game) statsLine() string {
	if g.stats == nil || g.stats.GamesPlayed == 0 {
		return "No games recorded yet"
	}
	return fmt.Sprintf("Games %d: %dW %dL %dD (%.0f%% wins)",
		g.stats.GamesPlayed, g.stats.Wins, g.stats.Losses, g.stats.Draws, g.stats.WinRate())
}

// sanHistory returns the move history in algebraic notation.
func (g *Game) sanHistory() []string {
	moves := g.chessGame.Moves()
	positions := g.chessGame.Positions()

	san := make([]string, 0, len(moves))
	for i, mv := range moves {
		san = append(san, chess.AlgebraicNotation{}.Encode(positions[i], mv))
	}
	return san
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Close releases resources on shutdown.
func (g *Game) Close() {
	if g.store != nil {
		if err := g.store.Close(); err != nil {
			log.Printf("Warning: Failed to close storage: %v", err)
		}
	}
}
