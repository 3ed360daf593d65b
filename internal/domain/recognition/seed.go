package recognition

import "time"

// SampleRecognitions returns the demo feed shown on a fresh install.
func SampleRecognitions() []Recognition {
	now := time.Now().UTC()
	return []Recognition{
		{
			FromUser:  "Sarah Chen",
			ToUser:    "Mike Johnson",
			Message:   "Outstanding leadership on the Q4 product launch! Your strategic vision and execution were exceptional. The team couldn't have done it without you.",
			Value:     "Excellence",
			Points:    50,
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			FromUser:  "Emma Wilson",
			ToUser:    "Alex Rivera",
			Message:   "Your UX designs for the new dashboard are absolutely stunning! The user feedback has been overwhelmingly positive. You truly understand our users.",
			Value:     "Innovation",
			Points:    40,
			CreatedAt: now.Add(-4 * time.Hour),
		},
		{
			FromUser:  "David Kim",
			ToUser:    "Sarah Chen",
			Message:   "Thank you for the amazing code review session! Your insights helped me optimize the algorithm by 30%. Your mentorship is invaluable.",
			Value:     "Collaboration",
			Points:    35,
			CreatedAt: now.Add(-6 * time.Hour),
		},
	}
}
