package wavegrid

import "tilewave/internal/core"

const keyStepsPerTick = "steps_per_tick"

func (s *Sim) Parameters() core.ParameterSnapshot {
	st := s.grid.Stats()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", s.cfg.Width),
				core.IntParam("h", "Height", s.cfg.Height),
				core.StringParam("pattern", "Pattern", s.cfg.Pattern),
				core.IntParam("tile", "Tile size", s.cfg.TileSize),
				core.IntParam("tiles", "Tiles", s.tiles.Len()),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.Int64Param("seed", "Seed", s.cfg.Seed),
				core.IntParam(keyStepsPerTick, "Steps per tick", s.cfg.StepsPerTick),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				core.IntParam("steps", "Steps", st.Steps),
				core.IntParam("collapsed", "Collapsed", st.Collapsed),
				core.IntParam("remaining", "Remaining", st.Remaining),
				core.IntParam("contradictions", "Contradictions", st.Contradicted),
			},
		},
	}}
}

func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    keyStepsPerTick,
		Label:  "Steps per tick",
		Type:   core.ParamTypeInt,
		Step:   1,
		Min:    MinStepsPerTick,
		Max:    MaxStepsPerTick,
		HasMin: true,
		HasMax: true,
	}}
}

// SetIntParameter updates steps_per_tick. Other keys are rejected.
func (s *Sim) SetIntParameter(key string, value int) bool {
	if key != keyStepsPerTick {
		return false
	}
	if value < MinStepsPerTick || value > MaxStepsPerTick {
		return false
	}
	s.cfg.StepsPerTick = value
	return true
}
