package criteria

// StabilityRange computes the range of positive stability and the angle
// of loll from the sampled GZ curve. Zero crossings are located by
// bisection on the piecewise-linear curve between adjacent samples with a
// sign change, then classified by the curve's sign pattern.
func StabilityRange(x, y []float64) (rangeDeg, angleOfLoll float64) {
	var roots []float64
	for i := 0; i < len(x)-1; i++ {
		if y[i]*y[i+1] < 0 {
			roots = append(roots, bisect(x[i], x[i+1], y[i], y[i+1]))
		}
	}

	allNonPositive := true
	allNonNegative := true
	for _, v := range y {
		if v > 0 {
			allNonPositive = false
		}
		if v < 0 {
			allNonNegative = false
		}
	}

	var secondIntercept float64
	switch {
	case allNonPositive:
		// No positive righting arm anywhere.
		angleOfLoll = 0
		secondIntercept = 0
	case allNonNegative:
		angleOfLoll = x[0]
		secondIntercept = x[len(x)-1]
	case y[0] >= 0:
		// Stable upright, vanishing at the first crossing.
		angleOfLoll = x[0]
		secondIntercept = x[len(x)-1]
		if len(roots) > 0 {
			secondIntercept = roots[0]
		}
	default:
		// Loll: negative at first, stable between the two intercepts.
		angleOfLoll = 0
		if len(roots) > 0 {
			angleOfLoll = roots[0]
		}
		secondIntercept = x[len(x)-1]
		if len(roots) > 1 {
			secondIntercept = roots[1]
		}
	}
	return secondIntercept - angleOfLoll, angleOfLoll
}

// bisect narrows a sign-changing bracket on the linear segment between
// (a, fa) and (b, fb) down to its zero.
func bisect(a, b, fa, fb float64) float64 {
	lerp := func(x float64) float64 {
		return fa + (fb-fa)*(x-a)/(b-a)
	}
	lo, hi := a, b
	flo := fa
	for i := 0; i < 100 && hi-lo > 1e-12; i++ {
		mid := (lo + hi) / 2
		fmid := lerp(mid)
		if fmid == 0 {
			return mid
		}
		if (flo < 0) == (fmid < 0) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
