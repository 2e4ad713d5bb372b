package annonce

import "strings"

func isValidPlace(place string) bool {
	return strings.TrimSpace(place) != ""
}
