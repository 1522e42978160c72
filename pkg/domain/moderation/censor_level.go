package moderation

import (
	"fmt"
	"strings"
)

// CensorLevel selects which categories trigger replacement when producing
// censored text. CensorAuto defers to the censoring service's own
// recommendation.
type CensorLevel string

const (
	CensorAuto   CensorLevel = "auto"
	CensorLight  CensorLevel = "light"
	CensorMedium CensorLevel = "medium"
	CensorHeavy  CensorLevel = "heavy"
)

func (l CensorLevel) String() string {
	return string(l)
}

func ParseCensorLevel(s string) (CensorLevel, error) {
	switch CensorLevel(strings.TrimSpace(strings.ToLower(s))) {
	case CensorAuto:
		return CensorAuto, nil
	case CensorLight:
		return CensorLight, nil
	case CensorMedium:
		return CensorMedium, nil
	case CensorHeavy:
		return CensorHeavy, nil
	case "":
		return CensorAuto, nil
	default:
		return CensorAuto, fmt.Errorf("unknown censor level: %q", s)
	}
}
