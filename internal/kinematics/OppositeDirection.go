package kinematics

// oppositeDirection implements Scenario for an approach: B departs from the
// point A has reached after its head start and the two close the gap at the
// combined speed SpeedA + SpeedB.
//
// Positions keeps B's coordinate as gap + displacement; the track projection
// reverses B's travel direction when rendering.
//
// JSON discriminator: "scenario": "opposite-direction"
type oppositeDirection struct{}

func (oppositeDirection) Kind() ScenarioKind { return OppositeDirection }

func (oppositeDirection) Meet(p MotionParams) (MeetingResult, bool) {
	combined := p.SpeedA + p.SpeedB
	if combined <= 0 {
		return MeetingResult{}, false
	}
	gap := p.InitialGap()
	t := gap / combined
	distA := p.SpeedA * (p.HeadStart + t)
	return MeetingResult{
		Time:         t,
		Distance:     distA,
		DistanceA:    distA,
		DistanceB:    p.SpeedB * t,
		InitialGap:   gap,
		ClosingSpeed: combined,
	}, true
}

func (oppositeDirection) Positions(p MotionParams, elapsed float64) Positions {
	pos := Positions{
		PosA: p.SpeedA * (elapsed + p.HeadStart),
		PosB: p.InitialGap(),
	}
	if elapsed > 0 {
		pos.PosB += p.SpeedB * elapsed
	}
	return pos
}
