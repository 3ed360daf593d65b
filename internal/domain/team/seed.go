package team

// SampleMembers returns the directory roster seeded on first startup.
func SampleMembers() []Member {
	return []Member{
		{Name: "Sarah Chen", Avatar: "SC", Role: "Senior Developer", Department: "Engineering"},
		{Name: "Mike Johnson", Avatar: "MJ", Role: "Product Manager", Department: "Product"},
		{Name: "Emma Wilson", Avatar: "EW", Role: "Frontend Developer", Department: "Engineering"},
		{Name: "Alex Rivera", Avatar: "AR", Role: "UX Designer", Department: "Design"},
		{Name: "David Kim", Avatar: "DK", Role: "Data Scientist", Department: "Analytics"},
	}
}
