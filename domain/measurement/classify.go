package measurement

import (
	"regexp"
	"strings"
)

var channelPattern = regexp.MustCompile(`S\d{2}`)

// Classify decides which column a file feeds. The phase marker wins over any
// channel code in the same name. ok is false when the name carries neither.
func Classify(name string) (Classification, bool) {
	if strings.Contains(name, PhaseMarker) {
		return Classification{Kind: KindPhase}, true
	}
	code := channelPattern.FindString(name)
	if code == "" {
		return Classification{}, false
	}
	return Classification{Kind: KindChannel, Label: code}, true
}
