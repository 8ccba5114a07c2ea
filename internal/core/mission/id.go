package mission

import (
	"fmt"
	"strconv"
	"strings"
)

// GenerateMissionID generates a mission ID from its position in the source.
// The format is MISSION-XXX where XXX is a zero-padded 3-digit number.
func GenerateMissionID(position int) string {
	return fmt.Sprintf("MISSION-%03d", position)
}

// ParseMissionNumber extracts the numeric portion from a mission ID.
// Returns -1 if the ID format is invalid.
func ParseMissionNumber(id string) int {
	var num int
	_, err := fmt.Sscanf(id, "MISSION-%d", &num)
	if err != nil {
		return -1
	}
	return num
}

// NormalizeID accepts "7", "mission-7" or "MISSION-007" and returns the
// canonical MISSION-007 form. It returns "" if the input is not an id.
func NormalizeID(input string) string {
	s := strings.ToUpper(strings.TrimSpace(input))
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return GenerateMissionID(n)
	}
	if n := ParseMissionNumber(s); n > 0 {
		return GenerateMissionID(n)
	}
	return ""
}
