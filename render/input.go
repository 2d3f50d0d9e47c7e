package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/tableau/model"
)

var keySignals = []struct {
	key ebiten.Key
	sig model.Signal
}{
	{ebiten.KeyArrowLeft, model.KeyLeft},
	{ebiten.KeyArrowRight, model.KeyRight},
	{ebiten.KeyArrowUp, model.KeyUp},
	{ebiten.KeyArrowDown, model.KeyDown},
	{ebiten.KeyEnter, model.KeyEnter},
	{ebiten.KeyNumpadEnter, model.KeyReturn},
	{ebiten.KeyEscape, model.KeyEscape},
	{ebiten.KeySpace, model.KeySpace},
}

var gamepadSignals = []struct {
	button ebiten.StandardGamepadButton
	sig    model.Signal
}{
	{ebiten.StandardGamepadButtonLeftLeft, model.GamepadLeft},
	{ebiten.StandardGamepadButtonLeftRight, model.GamepadRight},
	{ebiten.StandardGamepadButtonLeftTop, model.GamepadUp},
	{ebiten.StandardGamepadButtonLeftBottom, model.GamepadDown},
	{ebiten.StandardGamepadButtonRightBottom, model.GamepadButton0},
	{ebiten.StandardGamepadButtonRightRight, model.GamepadButton1},
}

// Events is the input of one frame translated to signals.
type Events struct {
	Down []model.Signal
	Up   []model.Signal
	Held []model.Signal
}

// Input polls the keyboard, standard-layout gamepads and the left mouse
// button.
type Input struct {
	gamepads []ebiten.GamepadID
}

// Poll returns the signals pressed, released and held this frame.
func (in *Input) Poll() Events {
	var ev Events
	for _, ks := range keySignals {
		ev.add(ks.sig,
			inpututil.IsKeyJustPressed(ks.key),
			inpututil.IsKeyJustReleased(ks.key),
			ebiten.IsKeyPressed(ks.key))
	}

	in.gamepads = ebiten.AppendGamepadIDs(in.gamepads[:0])
	for _, id := range in.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, gs := range gamepadSignals {
			ev.add(gs.sig,
				inpututil.IsStandardGamepadButtonJustPressed(id, gs.button),
				inpututil.IsStandardGamepadButtonJustReleased(id, gs.button),
				ebiten.IsStandardGamepadButtonPressed(id, gs.button))
		}
	}

	ev.add(model.MouseLeft,
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	return ev
}

func (ev *Events) add(sig model.Signal, down, up, held bool) {
	if down {
		ev.Down = append(ev.Down, sig)
	}
	if up {
		ev.Up = append(ev.Up, sig)
	}
	if held && !down {
		ev.Held = append(ev.Held, sig)
	}
}
