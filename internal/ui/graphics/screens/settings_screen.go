package screens

import (
	"habiter/internal/domain"
	"habiter/internal/ui/graphics/components"
	"habiter/internal/ui/graphics/input"
	"habiter/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// SettingsScreen edits the gameplay knobs of the current config. Board
// geometry and the seed come from the config file only.
type SettingsScreen struct {
	ctx types.ScreenContext

	inputTickDelay *components.NumberInput
	inputFood      *components.NumberInput
	inputLength    *components.NumberInput
	inputJunkMin   *components.NumberInput
	inputJunkMax   *components.NumberInput
	inputs         []*components.NumberInput

	btnApply *components.Button
	btnBack  *components.Button

	config   *domain.GameConfig
	errorMsg string
}

func NewSettingsScreen(ctx types.ScreenContext) *SettingsScreen {
	s := &SettingsScreen{
		ctx:            ctx,
		inputTickDelay: components.NewNumberInput(0, 0, 300, 40, "Tick delay (ms)"),
		inputFood:      components.NewNumberInput(0, 0, 300, 40, "Healthy food on board"),
		inputLength:    components.NewNumberInput(0, 0, 300, 40, "Initial snake length"),
		inputJunkMin:   components.NewNumberInput(0, 0, 140, 40, "Junk min"),
		inputJunkMax:   components.NewNumberInput(0, 0, 140, 40, "Junk max"),
		btnApply:       components.NewButton(0, 0, 145, 50, "Apply"),
		btnBack:        components.NewButton(0, 0, 145, 50, "Back"),
		config:         domain.DefaultGameConfig(),
	}
	s.inputs = []*components.NumberInput{
		s.inputTickDelay, s.inputFood, s.inputLength, s.inputJunkMin, s.inputJunkMax,
	}
	s.inputTickDelay.Focused = true
	s.fill()

	return s
}

// SetConfig replaces the values being edited.
func (s *SettingsScreen) SetConfig(config *domain.GameConfig) {
	s.config = config.Copy()
}

func (s *SettingsScreen) fill() {
	s.inputTickDelay.SetValue(s.config.TickDelayMs)
	s.inputFood.SetValue(s.config.FoodCount)
	s.inputLength.SetValue(s.config.InitialLength)
	s.inputJunkMin.SetValue(s.config.JunkMin)
	s.inputJunkMax.SetValue(s.config.JunkMax)
}

func (s *SettingsScreen) Update() types.UIEvent {
	w, h := s.ctx.Size()
	centerX := w / 2
	startY := h/2 - 160

	s.inputTickDelay.SetPosition(centerX-150, startY)
	s.inputFood.SetPosition(centerX-150, startY+70)
	s.inputLength.SetPosition(centerX-150, startY+140)
	s.inputJunkMin.SetPosition(centerX-150, startY+210)
	s.inputJunkMax.SetPosition(centerX+10, startY+210)
	s.btnApply.SetPosition(centerX-150, startY+290)
	s.btnBack.SetPosition(centerX+5, startY+290)

	if input.IsTabPressed() {
		s.focusNext()
	}

	for _, in := range s.inputs {
		in.Update()
	}
	s.updateApply()

	if s.btnApply.Update() || (s.btnApply.Enabled && input.IsEnterPressed()) {
		return s.apply()
	}

	if s.btnBack.Update() || input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventShowGameOver}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

// updateApply disables Apply while any field is empty.
func (s *SettingsScreen) updateApply() {
	complete := true
	for _, in := range s.inputs {
		if in.Text == "" {
			complete = false
			break
		}
	}
	s.btnApply.Enabled = complete
}

func (s *SettingsScreen) focusNext() {
	next := 0
	for i, in := range s.inputs {
		if in.Focused {
			next = (i + 1) % len(s.inputs)
		}
		in.Focused = false
	}
	s.inputs[next].Focused = true
}

func (s *SettingsScreen) apply() types.UIEvent {
	config := s.config.Copy()

	fields := []struct {
		in  *components.NumberInput
		dst *int32
	}{
		{s.inputTickDelay, &config.TickDelayMs},
		{s.inputFood, &config.FoodCount},
		{s.inputLength, &config.InitialLength},
		{s.inputJunkMin, &config.JunkMin},
		{s.inputJunkMax, &config.JunkMax},
	}
	for _, f := range fields {
		v, err := f.in.Value()
		if err != nil {
			s.errorMsg = err.Error()
			return types.UIEvent{Type: types.UIEventNone}
		}
		*f.dst = v
	}

	if err := config.Validate(); err != nil {
		s.errorMsg = err.Error()
		return types.UIEvent{Type: types.UIEventNone}
	}

	s.errorMsg = ""
	s.config = config

	return types.UIEvent{
		Type:    types.UIEventApplySettings,
		Payload: types.SettingsData{Config: config.Copy()},
	}
}

func (s *SettingsScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()

	title := "SETTINGS"
	bounds := text.BoundString(fonts.Title, title)
	text.Draw(screen, title, fonts.Title, (w-bounds.Dx())/2, h/2-210, types.ColorTextHighlight)

	for _, in := range s.inputs {
		in.Draw(screen)
	}

	s.btnApply.Draw(screen)
	s.btnBack.Draw(screen)

	hint := "Tab to switch fields, Enter to apply. Applying starts a new game."
	bounds = text.BoundString(fonts.Small, hint)
	text.Draw(screen, hint, fonts.Small, (w-bounds.Dx())/2, h-40, types.ColorTextDim)

	if s.errorMsg != "" {
		bounds = text.BoundString(fonts.Normal, s.errorMsg)
		text.Draw(screen, s.errorMsg, fonts.Normal, (w-bounds.Dx())/2, h-65, types.ColorError)
	}
}

func (s *SettingsScreen) OnEnter() {
	s.fill()
	s.updateApply()
	s.errorMsg = ""
}

func (s *SettingsScreen) OnExit() {}

func (s *SettingsScreen) SetError(err string) {
	s.errorMsg = err
}
