package model

// Macros represents nutrition information in grams.
type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
	Fiber   float64 `json:"fiber"`
}

// Add returns the component-wise sum of two macro sets.
func (m Macros) Add(o Macros) Macros {
	return Macros{
		Protein: m.Protein + o.Protein,
		Carbs:   m.Carbs + o.Carbs,
		Fat:     m.Fat + o.Fat,
		Fiber:   m.Fiber + o.Fiber,
	}
}

// Scale multiplies every macro by n, used when logging n servings.
func (m Macros) Scale(n int) Macros {
	f := float64(n)
	return Macros{
		Protein: m.Protein * f,
		Carbs:   m.Carbs * f,
		Fat:     m.Fat * f,
		Fiber:   m.Fiber * f,
	}
}

// Clamped returns a copy with negative fields zeroed. Untrusted payloads
// (deep links, AI extraction) go through this before entering the store.
func (m Macros) Clamped() Macros {
	clamp := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		return v
	}
	return Macros{
		Protein: clamp(m.Protein),
		Carbs:   clamp(m.Carbs),
		Fat:     clamp(m.Fat),
		Fiber:   clamp(m.Fiber),
	}
}
