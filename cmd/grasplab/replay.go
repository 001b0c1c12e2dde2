package main

import (
	"fmt"

	"github.com/phanxgames/grasp"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.json>",
	Short: "Play a gesture script headlessly and print the fired gestures",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	sc, err := grasp.LoadScript(args[0])
	if err != nil {
		return err
	}
	prof, err := activeProfile()
	if err != nil {
		return err
	}
	grasp.SetDebug(debugFlag)

	if sc.Name != "" {
		fmt.Printf("replaying %q (%d steps)\n", sc.Name, len(sc.Steps))
	} else {
		fmt.Printf("replaying %s (%d steps)\n", args[0], len(sc.Steps))
	}

	fired := 0
	src := grasp.NewSource()

	swipe := grasp.NewSwipe()
	swipe.OnSwipe = func(e grasp.SwipeEvent) {
		fired++
		fmt.Printf("swipe      %s/%s dist=(%.0f,%.0f) vel=(%.2f,%.2f) in %v\n",
			e.Horizontal, e.Vertical, e.Distance.X, e.Distance.Y,
			e.Velocity.X, e.Velocity.Y, e.Duration)
	}

	press := grasp.NewLongPress()
	press.OnLongPress = func(e grasp.LongPressEvent) {
		fired++
		fmt.Printf("long press (%.0f,%.0f) after %v\n", e.Position.X, e.Position.Y, e.Duration)
	}

	pinch := grasp.NewPinch()
	pinch.OnEnd = func(e grasp.PinchEvent) {
		fired++
		fmt.Printf("pinch      scale=%.2f center=(%.0f,%.0f)\n", e.Scale, e.Center.X, e.Center.Y)
	}

	for _, r := range []grasp.Recognizer{swipe, press, pinch} {
		prof.Apply(r)
		src.Attach(r)
	}

	sc.RunSource(src)
	fmt.Printf("%d gestures fired\n", fired)
	return nil
}
