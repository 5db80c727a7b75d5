package render

import (
	"bytes"
	"image/color"
	"math"

	"github.com/lintang-b-s/campus-route/pkg/datastructure"
	"github.com/lintang-b-s/campus-route/pkg/routing"

	"github.com/fogleman/gg"
)

const ContentTypePNG = "image/png"

var (
	backgroundColor = color.White
	networkColor    = color.RGBA{R: 170, G: 170, B: 170, A: 255}
	routeColor      = color.RGBA{R: 220, G: 40, B: 60, A: 255}
	startColor      = color.RGBA{R: 30, G: 160, B: 70, A: 255}
	endColor        = color.RGBA{R: 40, G: 80, B: 220, A: 255}
)

// PNGRenderer rasterizes the network in grey with the route highlighted on top.
type PNGRenderer struct {
	width, height int
	padding       float64
}

func NewPNGRenderer(width, height int) *PNGRenderer {
	if width <= 0 {
		width = 1024
	}
	if height <= 0 {
		height = 768
	}
	return &PNGRenderer{width: width, height: height, padding: 24}
}

// projector maps lat/lon to canvas pixels keeping the aspect ratio of the
// campus at its mean latitude.
type projector struct {
	minLon, maxLat   float64
	scale            float64
	offsetX, offsetY float64
	cosLat           float64
}

func newProjector(b datastructure.Bounds, width, height int, padding float64) projector {
	cosLat := math.Cos((b.MinLat + b.MaxLat) / 2 * math.Pi / 180)
	spanX := (b.MaxLon - b.MinLon) * cosLat
	spanY := b.MaxLat - b.MinLat

	drawW, drawH := float64(width)-2*padding, float64(height)-2*padding
	scale := 1.0
	switch {
	case spanX > 0 && spanY > 0:
		scale = math.Min(drawW/spanX, drawH/spanY)
	case spanX > 0:
		scale = drawW / spanX
	case spanY > 0:
		scale = drawH / spanY
	}

	return projector{
		minLon:  b.MinLon,
		maxLat:  b.MaxLat,
		scale:   scale,
		offsetX: padding + (drawW-spanX*scale)/2,
		offsetY: padding + (drawH-spanY*scale)/2,
		cosLat:  cosLat,
	}
}

func (p projector) xy(n datastructure.Node) (float64, float64) {
	x := p.offsetX + (n.Lon-p.minLon)*p.cosLat*p.scale
	y := p.offsetY + (p.maxLat-n.Lat)*p.scale
	return x, y
}

func (r *PNGRenderer) Render(g *datastructure.Graph, result routing.PathResult) (routing.Artifact, error) {
	dc := gg.NewContext(r.width, r.height)
	dc.SetColor(backgroundColor)
	dc.Clear()

	proj := newProjector(g.Bounds(), r.width, r.height, r.padding)

	dc.SetColor(networkColor)
	dc.SetLineWidth(1.5)
	for _, e := range g.Edges() {
		x1, y1 := proj.xy(g.NodeAt(e.From))
		x2, y2 := proj.xy(g.NodeAt(e.To))
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}

	if len(result.Path) >= 2 {
		dc.SetColor(routeColor)
		dc.SetLineWidth(4)
		for i, id := range result.Path {
			n, err := g.Node(id)
			if err != nil {
				return routing.Artifact{}, err
			}
			x, y := proj.xy(n)
			if i == 0 {
				dc.MoveTo(x, y)
				continue
			}
			dc.LineTo(x, y)
		}
		dc.Stroke()
	}

	if start, err := g.Node(result.Start); err == nil {
		x, y := proj.xy(start)
		dc.SetColor(startColor)
		dc.DrawCircle(x, y, 6)
		dc.Fill()
	}
	if end, err := g.Node(result.End); err == nil && result.End != result.Start {
		x, y := proj.xy(end)
		dc.SetColor(endColor)
		dc.DrawCircle(x, y, 6)
		dc.Fill()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return routing.Artifact{}, err
	}
	return routing.Artifact{ContentType: ContentTypePNG, Data: buf.Bytes()}, nil
}
