package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/Momofil31/AlphaBetaChess/bots"
	"github.com/Momofil31/AlphaBetaChess/config"
	"github.com/Momofil31/AlphaBetaChess/rules"
)

var (
	screenWidth  int
	screenHeight int
	squareSize   int
)

var (
	lightSquare = color.RGBA{240, 217, 181, 255}
	darkSquare  = color.RGBA{181, 136, 99, 255}
	whiteToken  = color.RGBA{70, 110, 200, 255}
	blackToken  = color.RGBA{20, 20, 20, 255}
)

type Game struct {
	chessGame    rules.Position
	backend      string
	tiles        [2]*ebiten.Image
	pieces       map[rules.Piece]*ebiten.Image
	selected     rules.Square
	dragging     *rules.Piece
	dragX, dragY int
	playerColor  rules.Color
	gameStarted  bool
	botThinking  bool
	boardOffsetX int
	boardOffsetY int
	bots         []bots.ChessBot
	currentBot   int
	botMutex     sync.Mutex
	logger       zerolog.Logger
}

func NewGame(cfg *config.Config, logger zerolog.Logger) *Game {
	screenWidth, screenHeight = ebiten.ScreenSizeInFullscreen()

	// Leave room for the status line above the board.
	boardHeight := screenHeight - 80
	squareSize = boardHeight / 8
	if screenWidth/8 < squareSize {
		squareSize = screenWidth / 8
	}

	boardWidth := squareSize * 8
	g := &Game{
		pieces:       make(map[rules.Piece]*ebiten.Image),
		bots:         createBots(cfg.Engine.Depth, logger),
		backend:      cfg.Engine.Backend,
		boardOffsetX: (screenWidth - boardWidth) / 2,
		boardOffsetY: (screenHeight - boardHeight) / 2,
		logger:       logger,
	}
	g.currentBot = 1
	g.loadPieceImages()
	return g
}

func createBots(depth int, logger zerolog.Logger) []bots.ChessBot {
	alphaBeta := bots.NewAlphaBetaBot(depth)
	alphaBeta.Logger = logger
	return []bots.ChessBot{
		bots.NewNewbornBot(),
		alphaBeta,
		bots.NewMinimaxBot(depth),
		bots.NewRandomBot(time.Now().UnixNano()),
	}
}

// loadPieceImages renders each piece as its FEN letter on a square token,
// so no image assets are needed.
func (g *Game) loadPieceImages() {
	for i, clr := range []color.Color{lightSquare, darkSquare} {
		tile := ebiten.NewImage(squareSize, squareSize)
		tile.Fill(clr)
		g.tiles[i] = tile
	}

	for _, c := range []rules.Color{rules.White, rules.Black} {
		for _, k := range rules.PieceKinds {
			piece := rules.Piece{Kind: k, Color: c}
			token := ebiten.NewImage(squareSize/2, squareSize/2)
			if c == rules.White {
				token.Fill(whiteToken)
			} else {
				token.Fill(blackToken)
			}
			img := ebiten.NewImage(squareSize, squareSize)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(squareSize)/4, float64(squareSize)/4)
			img.DrawImage(token, op)
			ebitenutil.DebugPrintAt(img, piece.Letter(), squareSize/2-3, squareSize/2-8)
			g.pieces[piece] = img
		}
	}
}

func (g *Game) Update() error {
	if !g.gameStarted {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			btnWidth := 200
			btnHeight := 60
			btnY := screenHeight/2 + 100

			if y > btnY && y < btnY+btnHeight {
				if x > screenWidth/2-btnWidth-20 && x < screenWidth/2-20 {
					g.startGame(rules.White)
				} else if x > screenWidth/2+20 && x < screenWidth/2+20+btnWidth {
					g.startGame(rules.Black)
				}
			}
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.botMutex.Lock()
		g.currentBot = (g.currentBot + 1) % len(g.bots)
		g.botMutex.Unlock()
	}

	g.botMutex.Lock()
	defer g.botMutex.Unlock()
	if g.botThinking || g.gameOver() {
		return nil
	}

	if g.chessGame.SideToMove() != g.playerColor {
		g.botThinking = true
		go func() {
			time.Sleep(300 * time.Millisecond)
			g.makeBotMove()
		}()
		return nil
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if sq, ok := g.squareUnderCursor(); ok {
			piece, found := g.chessGame.PieceAt(sq)
			if found && piece.Color == g.playerColor {
				g.selected = sq
				g.dragging = &piece
			}
		}
	}
	if g.dragging != nil {
		g.dragX, g.dragY = ebiten.CursorPosition()
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && g.dragging != nil {
		if target, ok := g.squareUnderCursor(); ok {
			if move := findMove(g.chessGame, g.selected, target); move != nil {
				g.chessGame.Apply(move)
			}
		}
		g.selected = 0
		g.dragging = nil
	}

	return nil
}

func (g *Game) squareUnderCursor() (rules.Square, bool) {
	x, y := ebiten.CursorPosition()
	x -= g.boardOffsetX
	y -= g.boardOffsetY
	if x < 0 || x >= squareSize*8 || y < 0 || y >= squareSize*8 {
		return 0, false
	}
	file := x / squareSize
	rank := 7 - y/squareSize
	return rules.NewSquare(file, rank), true
}

func (g *Game) startGame(player rules.Color) {
	g.botMutex.Lock()
	defer g.botMutex.Unlock()
	pos, err := rules.Open(g.backend, "")
	if err != nil {
		g.logger.Error().Err(err).Str("backend", g.backend).Msg("cannot start a game")
		return
	}
	g.chessGame = pos
	g.playerColor = player
	g.gameStarted = true
}

func (g *Game) gameOver() bool {
	return g.chessGame.IsCheckmate() || g.chessGame.IsStalemate()
}

// makeBotMove searches on a clone so that Draw never sees the board while
// the bot is walking the tree.
func (g *Game) makeBotMove() {
	g.botMutex.Lock()
	bot := g.bots[g.currentBot]
	search := rules.Clone(g.chessGame)
	g.botMutex.Unlock()

	start := time.Now()
	move, ok := bot.BestMove(search)

	g.botMutex.Lock()
	defer g.botMutex.Unlock()
	g.botThinking = false
	if !ok {
		g.logger.Warn().Str("bot", bot.Name()).Msg("bot has no move")
		return
	}
	g.chessGame.Apply(move)
	g.logger.Info().
		Str("bot", bot.Name()).
		Str("move", move.String()).
		Dur("elapsed", time.Since(start)).
		Msg("bot moved")
}

// findMove matches on the UCI text both backends print for their moves.
func findMove(pos rules.Position, from, to rules.Square) rules.Move {
	prefix := from.String() + to.String()
	for _, m := range pos.LegalMoves() {
		if strings.HasPrefix(m.String(), prefix) {
			// Promotions always pick the first piece the rules list.
			return m
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.botMutex.Lock()
	defer g.botMutex.Unlock()

	if !g.gameStarted {
		ebitenutil.DebugPrintAt(screen, "Chess in Go", screenWidth/2-40, screenHeight/2-50)
		ebitenutil.DebugPrintAt(screen, "Choose your colour:", screenWidth/2-60, screenHeight/2)

		whiteBtn := ebiten.NewImage(200, 60)
		whiteBtn.Fill(color.RGBA{200, 200, 200, 255})
		ebitenutil.DebugPrintAt(whiteBtn, "Play White", 65, 20)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(screenWidth/2-200-20), float64(screenHeight/2+100))
		screen.DrawImage(whiteBtn, op)

		blackBtn := ebiten.NewImage(200, 60)
		blackBtn.Fill(color.RGBA{50, 50, 50, 255})
		ebitenutil.DebugPrintAt(blackBtn, "Play Black", 65, 20)
		op = &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(screenWidth/2+20), float64(screenHeight/2+100))
		screen.DrawImage(blackBtn, op)
		return
	}

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x*squareSize+g.boardOffsetX), float64(y*squareSize+g.boardOffsetY))
			screen.DrawImage(g.tiles[(x+y)%2], op)

			sq := rules.NewSquare(x, 7-y)
			piece, ok := g.chessGame.PieceAt(sq)
			if !ok || (g.dragging != nil && sq == g.selected) {
				continue
			}
			screen.DrawImage(g.pieces[piece], op)
		}
	}

	if g.dragging != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(
			float64(g.dragX)-float64(squareSize)/2,
			float64(g.dragY)-float64(squareSize)/2,
		)
		screen.DrawImage(g.pieces[*g.dragging], op)
	}

	status := "Your move"
	switch {
	case g.chessGame.IsCheckmate():
		status = fmt.Sprintf("Checkmate, %s wins", g.chessGame.SideToMove().Other())
	case g.chessGame.IsStalemate():
		status = "Stalemate"
	case g.botThinking:
		status = "Bot is thinking..."
	case g.chessGame.SideToMove() != g.playerColor:
		status = "Bot to move"
	}
	ebitenutil.DebugPrintAt(screen, status, 20, 20)
	ebitenutil.DebugPrintAt(screen, "Bot: "+g.bots[g.currentBot].Name()+" (B to switch)", 20, screenHeight-40)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	logger := config.NewLogger(cfg.Logs, os.Stderr)
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	game := NewGame(cfg, logger)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Chess in Go")
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
