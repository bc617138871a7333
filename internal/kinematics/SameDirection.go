package kinematics

// sameDirection implements Scenario for a pursuit: both trains leave the same
// station on the same heading and B must close the head-start gap at the
// relative speed SpeedB - SpeedA.
//
// JSON discriminator: "scenario": "same-direction"
type sameDirection struct{}

func (sameDirection) Kind() ScenarioKind { return SameDirection }

func (sameDirection) Meet(p MotionParams) (MeetingResult, bool) {
	relative := p.SpeedB - p.SpeedA
	if relative <= 0 {
		return MeetingResult{}, false
	}
	gap := p.InitialGap()
	t := gap / relative
	distB := p.SpeedB * t
	return MeetingResult{
		Time:         t,
		Distance:     distB,
		DistanceA:    p.SpeedA * (t + p.HeadStart),
		DistanceB:    distB,
		InitialGap:   gap,
		ClosingSpeed: relative,
	}, true
}

func (sameDirection) Positions(p MotionParams, elapsed float64) Positions {
	pos := Positions{PosA: p.SpeedA * (elapsed + p.HeadStart)}
	if elapsed > 0 {
		pos.PosB = p.SpeedB * elapsed
	}
	return pos
}
