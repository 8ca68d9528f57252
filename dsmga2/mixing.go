package dsmga2

// BackMixingMode selects how Back Mixing decides whether to propagate an
// accepted mask pattern into another population member.
type BackMixingMode int

const (
	// BackMixingGreedy only accepts a back-mixed candidate that is
	// strictly fitter than the individual it replaces.
	BackMixingGreedy BackMixingMode = iota
	// BackMixingExhaustive accepts a candidate that is fit-equal-or-better,
	// the same "equality rule" RM itself uses, so a neutral pattern can
	// still spread across the whole population.
	BackMixingExhaustive
)

// RestrictedMixing is the donor-free incremental flip walk spec.md §4.7
// describes: starting from the population slot's current individual,
// flip each of mask's positions in turn and re-evaluate against the
// fitness that individual held when this call began (not against the
// previous flip's fitness). A strict improvement commits every flip made
// so far and reports success immediately, without trying the remaining
// positions. A strict decrease undoes the last flip and gives up; the
// equal-fitness flips made before it stay in the individual. An
// exact tie keeps the flip and the walk keeps extending — the "equality
// rule" that lets the search traverse neutral plateaus instead of
// stalling the moment no single flip yields a strict improvement;
// spec.md calls this out as load-bearing for trap functions. Returns
// whether the mask produced an accepted mutation and, if so, the prefix
// of mask that was actually applied (for BackMixing to propagate).
func RestrictedMixing(pop *Population, i int, mask Mask, rc *runContext) (bool, Mask) {
	if len(mask) == 0 {
		return false, nil
	}

	ch := pop.At(i)
	original := ch.Evaluate(rc)

	trial := ch.Clone()
	for k, pos := range mask {
		trial.Flip(pos)
		after := trial.Evaluate(rc)

		switch {
		case after > original:
			pop.ReplaceAt(i, trial)
			return true, mask[:k+1]
		case after < original:
			trial.Flip(pos)
			if k > 0 {
				// Keep the equal-fitness flips made before this one.
				pop.ReplaceAt(i, trial)
			}
			return false, nil
		}
		// equal: keep the flip and keep extending.
	}
	// Mask exhausted with every flip equal-fitness: keep them all.
	pop.ReplaceAt(i, trial)
	return false, nil
}

// BackMixing propagates the mask bits currently held by pop.At(source) into
// every other individual, accepting per mode. Called right after
// RestrictedMixing accepts a mask, so a pattern that just proved itself on
// one individual gets a chance to help the rest of the population too.
func BackMixing(pop *Population, source int, mask Mask, mode BackMixingMode, rc *runContext) int {
	if len(mask) == 0 {
		return 0
	}
	accepted := 0
	src := pop.At(source)

	for k := 0; k < pop.Size(); k++ {
		if k == source {
			continue
		}
		target := pop.At(k)
		trial := target.Clone()
		changed := false
		for _, pos := range mask {
			if trial.GetBit(pos) != src.GetBit(pos) {
				trial.SetBit(pos, src.GetBit(pos))
				changed = true
			}
		}
		if !changed {
			continue
		}

		before := target.Evaluate(rc)
		after := trial.Evaluate(rc)

		ok := false
		switch mode {
		case BackMixingGreedy:
			ok = after > before
		case BackMixingExhaustive:
			ok = after >= before
		}
		if ok {
			pop.ReplaceAt(k, trial)
			accepted++
		}
	}
	return accepted
}
