package glide

import "go.uber.org/zap"

// PropertySnapshot captures one property's resolved start and target values
// for one element, taken once at animation construction. Start and Target
// are fixed reference points; the rendered value is recomputed from them
// each frame and never stored back.
//
// Either value is nil when its raw string failed to parse. Such snapshots
// stay in the list (order and callback shape are preserved) but the frame
// loop never interpolates or applies them.
type PropertySnapshot struct {
	Name     string
	Accessor Accessor
	Start    PropertyValue
	Target   PropertyValue
}

// valid reports whether the snapshot has both endpoints and can be animated.
func (s *PropertySnapshot) valid() bool {
	return s.Start != nil && s.Target != nil
}

// ElementBinding groups one element with its property snapshots, in the
// order the caller listed the properties.
type ElementBinding struct {
	Element   Element
	Snapshots []PropertySnapshot
}

// buildSnapshots resolves each property against the element's current
// computed style. A parse failure on either side degrades that one property
// to a no-op; it never aborts the animation.
func buildSnapshots(el Element, props []Prop, log *zap.Logger) []PropertySnapshot {
	snaps := make([]PropertySnapshot, 0, len(props))
	for _, p := range props {
		acc := accessorFor(p.Name)
		snap := PropertySnapshot{Name: p.Name, Accessor: acc}

		if start, ok := acc.Parse(el.ComputedStyle(p.Name)); ok {
			snap.Start = start
		} else {
			log.Debug("skipping property: unparsable current value",
				zap.String("property", p.Name))
		}
		if target, ok := acc.Parse(p.Target); ok {
			snap.Target = target
		} else {
			log.Debug("skipping property: unparsable target value",
				zap.String("property", p.Name),
				zap.String("target", p.Target))
		}

		snaps = append(snaps, snap)
	}
	return snaps
}
