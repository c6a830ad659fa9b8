package engine

import (
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/swatch-cli/swatch/palette"
)

func play(m *Machine, cmds ...Command) {
	Script(cmds).Play(m)
}

// reachTints confirms every stage with its default selection up to AdjustTints.
func reachTints() *Machine {
	m := New()
	play(m, Confirm, Confirm, Confirm, Confirm, Confirm)
	return m
}

func TestQueue(t *testing.T) {
	Convey("Given an empty queue", t, func() {
		var q Queue

		Convey("Nothing should be pending", func() {
			So(q.Pending(), ShouldBeFalse)
			So(q.Drain().Empty(), ShouldBeTrue)
		})

		Convey("When the same command is pushed twice", func() {
			q.Push(Increase)
			q.Push(Increase)

			Convey("It should be drained once", func() {
				So(q.Drain(), ShouldResemble, NewCommands(Increase))
				So(q.Pending(), ShouldBeFalse)
			})
		})

		Convey("When pushed from many goroutines", func() {
			var wg sync.WaitGroup
			for i := 0; i < 64; i++ {
				wg.Add(1)
				go func(cmd Command) {
					defer wg.Done()
					q.Push(cmd)
				}(Command(i % int(commandCount)))
			}
			wg.Wait()

			Convey("Every command should be pending exactly once", func() {
				So(q.Drain(), ShouldResemble, NewCommands(Increase, Decrease, CycleNext, CyclePrev, Confirm))
			})
		})
	})
}

func TestMachineHueStyle(t *testing.T) {
	Convey("Given a fresh machine", t, func() {
		m := New()

		So(m.Stage(), ShouldEqual, PickHueStyle)
		So(m.Final().IsAbsent(), ShouldBeTrue)

		Convey("Increase should never leave the hue style bounds", func() {
			play(m, Increase, Increase, Increase, Increase)
			So(m.Selection().Value, ShouldEqual, 1)
			So(m.Snapshot().Label(), ShouldEqual, "Selected style: RADIAL")
		})

		Convey("Cycling should not shift hues before a style is picked", func() {
			play(m, CycleNext, CycleNext)
			So(m.Snapshot().HueOffset, ShouldEqual, 0.0)
		})

		Convey("When the style is confirmed", func() {
			play(m, Increase, Confirm)

			Convey("It should seed a single hue and ask for the hue count", func() {
				s := m.Snapshot()
				So(s.Stage, ShouldEqual, PickHueCount)
				So(s.HueStyle, ShouldEqual, palette.Radial)
				So(s.Hues, ShouldResemble, []float64{0.0})
				So(m.Selection(), ShouldResemble, Selection{Value: 1, Min: 1, Max: 28})
			})
		})
	})
}

func TestMachineHueCount(t *testing.T) {
	Convey("Given a machine picking the hue count", t, func() {
		m := New()
		play(m, Confirm)

		Convey("Two increases pushed in one tick should count once", func() {
			var q Queue
			q.Push(Increase)
			q.Push(Increase)
			m.Update(q.Drain())

			So(m.Selection().Value, ShouldEqual, 2)
			So(m.Snapshot().Hues, ShouldHaveLength, 2)
		})

		Convey("The count should stay within [1,28]", func() {
			Seek(1, 40).Play(m)
			So(m.Selection().Value, ShouldEqual, 28)
			So(m.Snapshot().Hues, ShouldHaveLength, 28)

			Seek(28, -5).Play(m)
			So(m.Selection().Value, ShouldEqual, 1)
			So(m.Snapshot().Hues, ShouldHaveLength, 1)
		})

		Convey("The offset should survive hue recomputation", func() {
			play(m, CycleNext, CycleNext)
			So(m.Snapshot().Hues[0], ShouldAlmostEqual, 0.05)

			play(m, Increase)
			hues := m.Snapshot().Hues
			So(hues, ShouldHaveLength, 2)
			So(hues[0], ShouldAlmostEqual, 0.05)
			So(hues[1], ShouldAlmostEqual, 0.55)

			play(m, CyclePrev, CyclePrev, CyclePrev)
			So(m.Snapshot().HueOffset, ShouldAlmostEqual, -0.025)
		})

		Convey("A hue shifted back to zero should still be red", func() {
			Repeat(CyclePrev, 16).Play(m)
			Seek(1, 5).Play(m)

			hues := m.Snapshot().Hues
			So(hues, ShouldHaveLength, 5)
			So(hues[2], ShouldAlmostEqual, 0.0)

			play(m, Confirm, Confirm, Confirm, Confirm, Confirm)
			s := m.Snapshot()
			So(s.Stage, ShouldEqual, PickRenderStyle)
			So(s.Raw[1][2], ShouldResemble, palette.Color{R: 255})
		})
	})
}

func TestMachineTints(t *testing.T) {
	Convey("Given a machine adjusting tints", t, func() {
		m := reachTints()
		So(m.Stage(), ShouldEqual, AdjustTints)

		Convey("Decreases should have no floor", func() {
			play(m, Decrease, Decrease)
			So(m.Snapshot().Tint.R, ShouldEqual, -10.0)

			Convey("But the next increase should clamp back to zero", func() {
				play(m, Increase)
				So(m.Snapshot().Tint.R, ShouldEqual, 0.0)
			})
		})

		Convey("Increases should stop at 255", func() {
			Repeat(Increase, 60).Play(m)
			So(m.Snapshot().Tint.R, ShouldEqual, 255.0)
		})

		Convey("Cycling should rotate the channel instead of the hues", func() {
			play(m, CycleNext)
			So(m.Snapshot().Channel, ShouldEqual, palette.Green)

			play(m, Increase)
			s := m.Snapshot()
			So(s.Tint, ShouldResemble, palette.Tint{G: 5})
			So(s.Label(), ShouldEqual, "Green tint level: 5.0%")
			So(s.HueOffset, ShouldEqual, 0.0)

			play(m, CyclePrev, CyclePrev)
			So(m.Snapshot().Channel, ShouldEqual, palette.Blue)
		})
	})
}

func TestMachinePreview(t *testing.T) {
	Convey("Given a machine adjusting saturation", t, func() {
		m := New()
		play(m, Confirm, Increase, Increase, Confirm, Confirm)
		So(m.Stage(), ShouldEqual, AdjustSaturation)

		Convey("The preview should follow the unconfirmed selection", func() {
			Seek(10, 5).Play(m)
			s := m.Snapshot()

			So(s.Label(), ShouldEqual, "Saturation level: 50%")
			So(s.Preview.Rows(), ShouldEqual, 3)
			So(s.Preview.Cols(), ShouldEqual, 3)
			So(s.Preview[1][0], ShouldResemble, palette.HSB(0, 0.5, 1))
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Given a linear 3x3 plan at full saturation and brightness", t, func() {
		params := DefaultParams()
		params.Hues = 3

		m, err := Run(params)
		So(err, ShouldBeNil)
		So(m.Done(), ShouldBeTrue)

		s := m.Snapshot()

		Convey("The raw grid should span black to white", func() {
			So(s.Raw.Rows(), ShouldEqual, 3)
			So(s.Raw.Cols(), ShouldEqual, 3)
			So(s.Raw[1][0], ShouldResemble, palette.HSB(0, 1, 1))
			So(s.Raw[1][0], ShouldResemble, palette.Color{R: 255})
			for i := 0; i < 3; i++ {
				So(s.Raw[0][i], ShouldResemble, palette.Color{})
				So(s.Raw[2][i], ShouldResemble, palette.Color{R: 255, G: 255, B: 255})
			}
		})

		Convey("Basic rendering should keep the raw grid", func() {
			final, ok := m.Final().Get()
			So(ok, ShouldBeTrue)
			So(final, ShouldResemble, s.Raw)
		})

		Convey("Input after the final stage should be ignored", func() {
			m.Update(NewCommands(Decrease, CycleNext, Confirm))
			So(m.Stage(), ShouldEqual, Done)
			So(m.Snapshot().Final, ShouldResemble, s.Final)
		})
	})

	Convey("Given a plan touching every stage", t, func() {
		params := Params{
			HueStyle:    palette.Radial,
			Hues:        28,
			Values:      8,
			Saturation:  5,
			Brightness:  7,
			Tint:        palette.Tint{R: 50, G: -10, B: 255},
			RenderStyle: palette.InversePairwiseGradient,
			OffsetSteps: -4,
		}

		m, err := Run(params)
		So(err, ShouldBeNil)
		s := m.Snapshot()

		Convey("Every answer should be captured", func() {
			So(s.HueStyle, ShouldEqual, palette.Radial)
			So(s.Hues, ShouldHaveLength, 28)
			So(s.HueOffset, ShouldAlmostEqual, -0.1)
			So(s.ValueIDs, ShouldHaveLength, 8)
			So(s.Saturation, ShouldAlmostEqual, 0.5)
			So(s.Brightness, ShouldAlmostEqual, 0.7)
			So(s.Tint, ShouldResemble, params.Tint)
			So(s.RenderStyle, ShouldEqual, palette.InversePairwiseGradient)
			So(s.Final.Rows(), ShouldEqual, 8)
			So(s.Final.Cols(), ShouldEqual, 28)
		})
	})
}

func TestParams(t *testing.T) {
	Convey("Validate", t, func() {
		So(DefaultParams().Validate(), ShouldBeNil)

		p := DefaultParams()
		p.Hues = 0
		So(p.Validate(), ShouldNotBeNil)

		p = DefaultParams()
		p.Values = 9
		So(p.Validate(), ShouldNotBeNil)

		p = DefaultParams()
		p.Tint.G = 7
		So(p.Validate(), ShouldNotBeNil)

		p = DefaultParams()
		p.Tint.B = 260
		So(p.Validate(), ShouldNotBeNil)

		_, err := Plan(p)
		So(err, ShouldNotBeNil)
	})

	Convey("Seek", t, func() {
		So(Seek(3, 1), ShouldResemble, Script{Decrease, Decrease})
		So(Seek(1, 3), ShouldResemble, Script{Increase, Increase})
		So(Seek(2, 2), ShouldBeEmpty)
	})
}

func TestStage(t *testing.T) {
	Convey("Every interactive stage should have a prompt and a hint", t, func() {
		for _, stage := range Stages() {
			So(stage.Prompt(), ShouldNotBeEmpty)
			So(stage.Hint(), ShouldNotBeEmpty)
		}
		So(AdjustTints.String(), ShouldEqual, "adjust-tints")
	})
}
