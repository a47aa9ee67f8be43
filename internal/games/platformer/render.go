package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/physics"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
)

// Visual characters for rendering
const (
	GroundChar   = '▓'
	BrickChar    = '▒'
	QuestionChar = '?'
	EmptyChar    = '■'
	ShinyChar    = '$'
	ShardChar    = '▪'
	CoinChar     = 'o'
	FireballChar = '●'
	MushroomChar = '♠'
	FlowerChar   = '✿'
	StarChar     = '★'
)

// playerGlyphs is indexed by pose.
var playerGlyphs = [...]rune{
	PoseIdle:      '█',
	PoseWalk1:     '▌',
	PoseWalk2:     '█',
	PoseWalk3:     '▐',
	PoseJump:      '▲',
	PoseCrouch:    '▄',
	PoseFire:      '►',
	PoseTransform: '░',
}

// viewport maps world pixels onto the terminal below the HUD row.
type viewport struct {
	cellW, cellH float64
	top          int
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	rows := core.Max(dst.Height()-1, 1)
	cols := core.Max(dst.Width(), 1)
	return viewport{
		cellW: worldW / float64(cols),
		cellH: worldH / float64(rows),
		top:   1,
	}
}

// cells converts a world rect to the cells it covers. Anything visible
// covers at least one cell.
func (v viewport) cells(r physics.Rect) core.Rect {
	x0 := int(math.Floor(r.X / v.cellW))
	y0 := int(math.Floor(r.Y / v.cellH))
	x1 := int(math.Ceil(r.Right() / v.cellW))
	y1 := int(math.Ceil(r.Bottom() / v.cellH))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.RectFromBounds(x0, y0+v.top, x1, y1+v.top)
}

func (v viewport) fill(dst *core.Screen, r physics.Rect, ch rune, c core.Color) {
	cell := v.cells(r)
	if cell.Y < v.top {
		cell = core.RectFromBounds(cell.X, v.top, cell.Right(), cell.Bottom())
	}
	dst.DrawRectColor(cell.Clip(dst.Width(), dst.Height()), ch, c)
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall || g.world == nil {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	p := g.world.Params()
	v := newViewport(dst, p.ScreenW, p.ScreenH)

	g.renderHUD(dst)
	g.renderObjects(dst, v)
	g.renderItems(dst, v)
	g.renderBlocks(dst, v)
	g.renderFireballs(dst, v)
	g.renderPlayer(dst, v)
	g.renderOverlay(dst)
}

// renderHUD draws score, coins, lives and form on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	form, _ := splitFrame(g.world.Player.Frame)

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Coins: %d  Lives: %d", g.coins, g.lives))

	status := form.String()
	if g.world.Player.Invincible {
		status += " ★"
	}
	dst.DrawText(dst.Width()-len([]rune(status))-1, 0, status)
}

func (g *Game) renderObjects(dst *core.Screen, v viewport) {
	for _, obj := range g.world.ActiveObjects() {
		v.fill(dst, obj, GroundChar, core.ColorGreen)
	}
}

func (g *Game) renderBlocks(dst *core.Screen, v viewport) {
	for i := range g.world.ActiveBlocks() {
		b := &g.world.Blocks[i]
		if b.Broken {
			for _, s := range b.Shards {
				if s.Active {
					v.fill(dst, s.Rect, ShardChar, core.ColorBrown)
				}
			}
			continue
		}

		switch b.Sprite {
		case world.SpriteQuestion:
			v.fill(dst, b.Rect, QuestionChar, core.ColorYellow)
		case world.SpriteEmpty:
			v.fill(dst, b.Rect, EmptyChar, core.ColorGray)
		case world.SpriteShiny:
			v.fill(dst, b.Rect, ShinyChar, core.ColorBrightYellow)
		default:
			v.fill(dst, b.Rect, BrickChar, core.ColorOrange)
		}
	}
}

// renderItems draws released items and flying coins. Blocks are drawn
// afterwards so an emerging item appears to rise out of its block.
func (g *Game) renderItems(dst *core.Screen, v viewport) {
	for i := range g.world.ActiveBlocks() {
		b := &g.world.Blocks[i]
		for _, c := range b.Coins[:b.MaxCoins] {
			if c.OnAir {
				v.fill(dst, c.Rect, CoinChar, core.ColorBrightYellow)
			}
		}

		it := b.Item
		if !it.Free || !it.Visible {
			continue
		}
		switch it.Type {
		case world.ItemMushroom:
			v.fill(dst, it.Rect, MushroomChar, core.ColorRed)
		case world.ItemFireFlower:
			v.fill(dst, it.Rect, FlowerChar, core.ColorOrange)
		case world.ItemStar:
			v.fill(dst, it.Rect, StarChar, core.ColorBrightYellow)
		}
	}
}

func (g *Game) renderFireballs(dst *core.Screen, v viewport) {
	for _, ball := range g.world.Player.Fireballs {
		if ball.Visible {
			v.fill(dst, ball.Rect, FireballChar, core.ColorBrightRed)
		}
	}
}

// starColors cycles while the player is invincible.
var starColors = [...]core.Color{core.ColorBrightYellow, core.ColorCyan, core.ColorMagenta, core.ColorBrightWhite}

func (g *Game) renderPlayer(dst *core.Screen, v viewport) {
	pl := &g.world.Player
	form, pose := splitFrame(pl.Frame)

	color := core.ColorRed
	if form == FormFire {
		color = core.ColorBrightWhite
	}
	switch {
	case pl.Invincible:
		color = starColors[(g.tickCount/4)%uint64(len(starColors))]
	case pl.Transforming && (g.tickCount/8)%2 == 1:
		color = core.ColorYellow
	}

	glyph := playerGlyphs[PoseIdle]
	if int(pose) < len(playerGlyphs) {
		glyph = playerGlyphs[pose]
	}
	if pose == PoseFire && !pl.FacingRight {
		glyph = '◄'
	}
	v.fill(dst, pl.Rect, glyph, color)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
