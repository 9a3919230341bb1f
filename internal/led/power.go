package led

import "math"

// Limiter applies a two-stage power limiter to an RGB byte frame:
// 1) Per-LED "white cap": scales (R,G,B) so R+G+B <= WhiteCap*3*255
// 2) Global current budget: estimates current and scales the whole frame to stay under BudgetMA
//
// A zero WhiteCap (or >= 1) disables the cap, a zero BudgetMA disables the budget.
type Limiter struct {
	WhiteCap float64 // fraction of full white, 0..1
	BudgetMA float64 // global budget in mA
	ChanMA   float64 // mA per color channel at full scale; WS2801 pixels ≈ 20
	Knee     float64 // fraction of budget where soft limiting begins; default 0.9
}

// Apply limits rgb in place.
func (l Limiter) Apply(rgb []byte) {
	if l.WhiteCap > 0 && l.WhiteCap < 1 {
		applyWhiteCap(rgb, l.WhiteCap)
	}
	if l.BudgetMA <= 0 {
		return
	}
	total := EstimateCurrentMA(rgb, l.chanMA())
	if total <= 0 {
		return
	}
	knee := l.Knee
	if knee <= 0 || knee >= 1 {
		knee = 0.9
	}
	ratio := total / l.BudgetMA
	if ratio <= knee {
		return
	}
	if ratio <= 1.0 {
		// map ratio in [knee,1] to scale s in [1, budget/total]
		minS := l.BudgetMA / total
		t := (ratio - knee) / (1.0 - knee)
		scaleFrame(rgb, 1.0-t*(1.0-minS))
		return
	}
	scaleFrame(rgb, l.BudgetMA/total)
}

func (l Limiter) chanMA() float64 {
	if l.ChanMA > 0 {
		return l.ChanMA
	}
	return 20
}

// EstimateCurrentMA returns the estimated draw of a frame in mA given the
// full-scale current of one channel.
func EstimateCurrentMA(rgb []byte, chanMA float64) float64 {
	var sum float64
	for _, v := range rgb {
		sum += float64(v)
	}
	return sum / 255.0 * chanMA
}

// applyWhiteCap clamps per-LED RGB so r+g+b <= whiteCap*3*255
func applyWhiteCap(rgb []byte, whiteCap float64) {
	limit := whiteCap * 3.0 * 255.0
	for i := 0; i+2 < len(rgb); i += 3 {
		s := float64(rgb[i]) + float64(rgb[i+1]) + float64(rgb[i+2])
		if s > limit && s > 0 {
			scale := limit / s
			rgb[i] = byte(math.Floor(float64(rgb[i]) * scale))
			rgb[i+1] = byte(math.Floor(float64(rgb[i+1]) * scale))
			rgb[i+2] = byte(math.Floor(float64(rgb[i+2]) * scale))
		}
	}
}

func scaleFrame(rgb []byte, s float64) {
	if s >= 1.0 {
		return
	}
	for i := range rgb {
		rgb[i] = byte(float64(rgb[i]) * s)
	}
}
