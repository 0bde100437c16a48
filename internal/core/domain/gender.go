package domain

// Gender codes assigned by the cleaning step.
const (
	GenderMale   = 0
	GenderFemale = 1
)

// GenderCode maps a Sex value to its numeric code. The match is exact;
// any other value is unmapped and reported with ok == false.
func GenderCode(sex string) (code int, ok bool) {
	switch sex {
	case "male":
		return GenderMale, true
	case "female":
		return GenderFemale, true
	default:
		return 0, false
	}
}

// GenderLabel returns the Sex value for a gender code.
func GenderLabel(code int) string {
	switch code {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return "unknown"
	}
}
