package adapt_test

import (
	"fmt"

	"github.com/matzehuels/screenfit/pkg/adapt"
	"github.com/matzehuels/screenfit/pkg/geom"
	"github.com/matzehuels/screenfit/pkg/scale"
	"github.com/matzehuels/screenfit/pkg/widget"
)

func ExamplePlan() {
	cfg := adapt.Config{
		DesignWidth:  750,
		DesignHeight: 1334,
		ScaleMode:    scale.ShowAll,
	}

	// A portrait design shown on a landscape phone.
	s, err := adapt.Plan(cfg, 1334, 750)
	if err != nil {
		panic(err)
	}
	fmt.Println(s.Orientation, s.ForceRotate)
	fmt.Printf("buffer %vx%v, logical %vx%v\n",
		s.Canvas.ActualWidth, s.Canvas.ActualHeight, s.Logical.Width, s.Logical.Height)
	// Output:
	// landscape true
	// buffer 1334x750, logical 750x1334
}

func ExampleController() {
	screen := adapt.ScreenFunc(func() (float64, float64) { return 375, 667 })
	c := adapt.New(adapt.WithScreen(screen))

	if err := c.Set(adapt.Config{DesignWidth: 750, DesignHeight: 1334}); err != nil {
		panic(err)
	}

	btn := widget.NewBox("close", 80, 80)
	if _, err := c.Align(btn, widget.Anchor{Right: widget.Px(20), Top: widget.Px(20)}); err != nil {
		panic(err)
	}
	fmt.Println(btn.Position())

	c.SetResizeCallback(func(s adapt.Snapshot) {
		fmt.Println("resized:", s.Orientation)
	})
	c.Notify(667, 375)
	fmt.Println(btn.Position() == geom.Vec{X: 650, Y: 20})
	// Output:
	// {650 20}
	// resized: landscape
	// true
}
