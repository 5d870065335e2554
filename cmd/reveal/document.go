package main

import (
	"fmt"
	"strconv"

	"github.com/phanxgames/reveal"
)

const (
	sectionHeight = 300
	sectionGap    = 40
	sectionMargin = 60
)

var triggerNames = []string{"fade-up", "fade", "zoom-in"}

var palette = []reveal.Color{
	{R: 0.36, G: 0.61, B: 0.84, A: 1},
	{R: 0.93, G: 0.49, B: 0.19, A: 1},
	{R: 0.44, G: 0.68, B: 0.28, A: 1},
	{R: 0.80, G: 0.33, B: 0.45, A: 1},
}

// buildDocument fills scene with a column of sections. Every fourth section
// triggers once, every fifth mirrors, and every seventh is a zero-size marker
// anchored to the section before it.
func buildDocument(scene *reveal.Scene, sections int) {
	vpWidth := scene.Camera().Viewport.Width

	column := reveal.NewContainer("column")
	column.X = sectionMargin
	scene.Root().AddChild(column)

	y := float64(sectionMargin)
	for i := 0; i < sections; i++ {
		name := fmt.Sprintf("section-%02d", i)
		n := reveal.NewNode(name, vpWidth-2*sectionMargin, sectionHeight)
		n.Y = y
		n.Color = palette[i%len(palette)]
		n.SetAttr(reveal.AttrTrigger, triggerNames[i%len(triggerNames)])
		n.SetAttr(reveal.AttrID, strconv.Itoa(i))
		if i%4 == 3 {
			n.SetAttr(reveal.AttrOnce, "true")
		}
		if i%5 == 4 {
			n.SetAttr(reveal.AttrMirror, "true")
			n.SetAttr(reveal.AttrEasing, "ease-out-back")
		}
		if i%7 == 6 && i > 0 {
			marker := reveal.NewContainer(name + "-marker")
			marker.SetAttr(reveal.AttrTrigger, "fade")
			marker.SetAttr(reveal.AttrAnchor, fmt.Sprintf("#section-%02d", i-1))
			marker.SetAttr(reveal.AttrAnchorPlacement, "center-bottom")
			column.AddChild(marker)
		}
		column.AddChild(n)
		y += sectionHeight + sectionGap
	}

	scene.Camera().SetBounds(reveal.Rect{Width: vpWidth, Height: y + sectionMargin})
}
