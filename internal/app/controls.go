package app

import (
	"strconv"

	"wolfram-ca/internal/core"
)

// adjustIntControl shifts an integer control by delta steps and applies the
// new value through the sim's setter. The control's declared step size and
// bounds drive the adjustment: fully bounded controls wrap around, others
// clamp. Returns false when the sim does not expose a matching control.
func adjustIntControl(sim core.Sim, key string, delta int) bool {
	setter, ok := sim.(core.IntParameterSetter)
	if !ok {
		return false
	}
	provider, ok := sim.(core.ParameterControlsProvider)
	if !ok {
		return false
	}

	var control core.ParameterControl
	found := false
	for _, c := range provider.ParameterControls() {
		if c.Key == key && c.Type == core.ParamTypeInt {
			control = c
			found = true
			break
		}
	}
	if !found {
		return false
	}

	cur, ok := intParameter(sim, key)
	if !ok {
		return false
	}

	step := int(control.Step)
	if step <= 0 {
		step = 1
	}
	next := cur + delta*step

	switch {
	case control.HasMin && control.HasMax:
		span := int(control.Max) - int(control.Min) + 1
		next = int(control.Min) + ((next-int(control.Min))%span+span)%span
	case control.HasMin && next < int(control.Min):
		next = int(control.Min)
	case control.HasMax && next > int(control.Max):
		next = int(control.Max)
	}
	return setter.SetIntParameter(key, next)
}

// intParameter reads an integer parameter value from the sim's snapshot.
func intParameter(sim core.Sim, key string) (int, bool) {
	provider, ok := sim.(core.ParameterProvider)
	if !ok {
		return 0, false
	}
	for _, group := range provider.Parameters().Groups {
		for _, p := range group.Params {
			if p.Key != key {
				continue
			}
			v, err := strconv.Atoi(p.Value)
			if err != nil {
				return 0, false
			}
			return v, true
		}
	}
	return 0, false
}
