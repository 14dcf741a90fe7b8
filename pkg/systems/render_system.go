package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/gonewx/startrail/pkg/components"
	"github.com/gonewx/startrail/pkg/config"
	"github.com/gonewx/startrail/pkg/ecs"
	"github.com/gonewx/startrail/pkg/effect"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 星星由 8 个外围顶点和 1 个中心顶点组成的四角星
const (
	starPoints      = 4
	starRimVertices = starPoints * 2
	// starInnerRatio 内凹顶点半径与尖角半径之比
	starInnerRatio = 0.38
)

// RenderSystem 绘制所有临时视觉元素
//
// 渲染顺序（从底到顶）：光晕点 → 星星。
// 同类元素按实体 ID 顺序绘制，后生成的画在上层。
//
// 光晕点使用 vector 画实心圆；星星使用 DrawTriangles 批量绘制，
// 所有星星共享一张白色贴图，颜色完全来自顶点色。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	palette       config.Palette
	glowRadius    float64

	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
	starVertices  []ebiten.Vertex // 复用，避免每帧分配
	starIndices   []uint16
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager, palette config.Palette, glowRadius float64) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		palette:       palette,
		glowRadius:    glowRadius,
		starVertices:  make([]ebiten.Vertex, 0, 64*(starRimVertices+1)),
		starIndices:   make([]uint16, 0, 64*starRimVertices*3),
	}
}

// SetAppearance 更新调色板和光晕半径（配置热重载后调用）
func (s *RenderSystem) SetAppearance(palette config.Palette, glowRadius float64) {
	s.palette = palette
	s.glowRadius = glowRadius
}

// Draw 绘制所有视觉元素
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.VisualComponent,
		*components.LifetimeComponent,
	](s.entityManager)

	if len(entities) == 0 {
		return
	}

	s.drawGlows(screen, entities)
	s.drawStars(screen, entities)
}

func (s *RenderSystem) drawGlows(screen *ebiten.Image, entities []ecs.EntityID) {
	for _, id := range entities {
		visual, _ := ecs.GetComponent[*components.VisualComponent](s.entityManager, id)
		if visual.Kind != effect.KindGlow {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)

		clr := effect.GlowColor(s.palette, lifetime.Progress())
		if clr.A == 0 {
			continue
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(s.glowRadius), clr, true)
	}
}

func (s *RenderSystem) drawStars(screen *ebiten.Image, entities []ecs.EntityID) {
	s.starVertices = s.starVertices[:0]
	s.starIndices = s.starIndices[:0]

	for _, id := range entities {
		visual, _ := ecs.GetComponent[*components.VisualComponent](s.entityManager, id)
		if visual.Kind != effect.KindStar {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)

		progress := lifetime.Progress()
		frame := effect.StarAnimation(visual.Animation)(progress)
		if frame.Alpha <= 0 {
			continue
		}

		// uint16 索引上限
		if len(s.starVertices)+starRimVertices+1 > math.MaxUint16 {
			s.flushStars(screen)
		}

		clr := effect.StarColor(s.palette, progress)
		s.starVertices, s.starIndices = AppendStarVertices(
			s.starVertices, s.starIndices,
			pos.X+frame.OffsetX, pos.Y+frame.OffsetY,
			visual.Size*frame.Scale/2, frame.Rotation,
			clr, frame.Alpha,
		)
	}

	s.flushStars(screen)
}

func (s *RenderSystem) flushStars(screen *ebiten.Image) {
	if len(s.starVertices) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	screen.DrawTriangles(s.starVertices, s.starIndices, s.white(), op)

	s.starVertices = s.starVertices[:0]
	s.starIndices = s.starIndices[:0]
}

// white 返回 1x1 白色子图，取 3x3 图片的中心避免边缘采样
func (s *RenderSystem) white() *ebiten.Image {
	if s.whiteSubImage == nil {
		s.whiteImage = ebiten.NewImage(3, 3)
		s.whiteImage.Fill(color.White)
		s.whiteSubImage = s.whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return s.whiteSubImage
}

// AppendStarVertices 追加一颗四角星的顶点和索引
//
// 顶点顺序：中心点，然后从正上方开始顺时针交替的尖角/内凹点。
// radius 为尖角到中心的距离，rotation 为弧度。
func AppendStarVertices(vs []ebiten.Vertex, is []uint16, cx, cy, radius, rotation float64, clr color.NRGBA, alpha float64) ([]ebiten.Vertex, []uint16) {
	base := uint16(len(vs))

	r := float32(clr.R) / 0xff
	g := float32(clr.G) / 0xff
	b := float32(clr.B) / 0xff
	a := float32(clr.A) / 0xff * float32(alpha)

	vertex := func(x, y float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		}
	}

	vs = append(vs, vertex(cx, cy))
	for k := 0; k < starRimVertices; k++ {
		dist := radius
		if k%2 == 1 {
			dist = radius * starInnerRatio
		}
		angle := rotation - math.Pi/2 + float64(k)*math.Pi/starPoints
		vs = append(vs, vertex(cx+dist*math.Cos(angle), cy+dist*math.Sin(angle)))
	}

	for k := 0; k < starRimVertices; k++ {
		next := (k + 1) % starRimVertices
		is = append(is, base, base+1+uint16(k), base+1+uint16(next))
	}
	return vs, is
}
