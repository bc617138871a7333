// Package lesson holds the calculator's explanatory text: the result banner,
// the "learn the math" panel, and a worked solution for the current inputs.
package lesson

import (
	"fmt"
	"strconv"

	"github.com/cxd309/train-motion/internal/kinematics"
)

// NeverMeet is shown when B cannot catch A.
const NeverMeet = "Train B is not faster than Train A. They will never meet in the same direction."

// Banner returns the one-line result message and whether it reports success.
func Banner(r kinematics.MeetingResult, ok bool) (string, bool) {
	if !ok {
		return NeverMeet, false
	}
	return fmt.Sprintf("Trains will meet after %.2f hours.", r.Time), true
}

// Concept is the static "learn the math" panel.
func Concept() []string {
	return []string{
		"Core concept: relative speed",
		"When two trains move on the same track:",
		"  - in the same direction, subtract the speeds;",
		"  - in opposite directions, add the speeds.",
		"",
		"Same direction: t = (r1 * h) / (r2 - r1)",
		"  r1 = Train A speed, r2 = Train B speed, h = head start",
		"  Example: A leaves at 40 mph, B leaves 2 hours later at 60 mph.",
		"  40(t + 2) = 60t -> 40t + 80 = 60t -> 80 = 20t -> t = 4",
		"  Practice: A at 50 mph, B 3 hours later at 65 mph.",
		"  t = (50 * 3) / (65 - 50) = 150 / 15 = 10 hours of B's travel, 13 after A started.",
		"",
		"Opposite direction: t = d / (r1 + r2)",
		"  d = initial distance = r1 * h",
		"  Example: stations 300 miles apart, trains at 40 and 60 mph.",
		"  40 + 60 = 100 mph -> t = 300 / 100 = 3 hours",
	}
}

// Steps works the current inputs through the matching formula.
func Steps(p kinematics.MotionParams, r kinematics.MeetingResult, ok bool) []string {
	a, b, h := num(p.SpeedA), num(p.SpeedB), num(p.HeadStart)
	switch p.Scenario {
	case kinematics.SameDirection:
		lines := []string{
			fmt.Sprintf("Let t = hours Train B travels; Train A travels t + %s.", h),
			fmt.Sprintf("Train A: %s(t + %s)   Train B: %st", a, h, b),
		}
		if !ok {
			return append(lines,
				fmt.Sprintf("Relative speed: %s - %s = %s mph, so the gap never closes.", b, a, num(p.SpeedB-p.SpeedA)),
			)
		}
		return append(lines,
			fmt.Sprintf("Set equal: %s(t + %s) = %st -> %s = %st", a, h, b, num(r.InitialGap), num(r.ClosingSpeed)),
			fmt.Sprintf("t = %s / %s = %.2f hours", num(r.InitialGap), num(r.ClosingSpeed), r.Time),
			fmt.Sprintf("Both trains are %.1f miles from the station.", r.Distance),
		)
	case kinematics.OppositeDirection:
		return []string{
			fmt.Sprintf("Initial gap: %s * %s = %s miles", a, h, num(r.InitialGap)),
			fmt.Sprintf("Combined speed: %s + %s = %s mph", a, b, num(r.ClosingSpeed)),
			fmt.Sprintf("t = %s / %s = %.2f hours", num(r.InitialGap), num(r.ClosingSpeed), r.Time),
			fmt.Sprintf("Train A covers %.1f miles in all, Train B %.1f miles.", r.DistanceA, r.DistanceB),
		}
	default:
		return nil
	}
}

// num formats v without trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
