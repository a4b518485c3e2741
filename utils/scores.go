package utils

// CalculatePoints computes the points a result contributes to team and
// student totals from the awarded position and grade.
func CalculatePoints(position int, grade string) int {
	return positionPoints(position) + gradePoints(grade)
}

func positionPoints(position int) int {
	switch position {
	case 1:
		return 10
	case 2:
		return 6
	case 3:
		return 3
	}

	return 0
}

func gradePoints(grade string) int {
	switch grade {
	case "A":
		return 5
	case "B":
		return 3
	case "C":
		return 1
	}

	return 0
}
