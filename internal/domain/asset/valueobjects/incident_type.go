package valueobjects

import "fmt"

type IncidentType string

const (
	IncidentLoss   IncidentType = "Loss"
	IncidentDamage IncidentType = "Damage"
)

func (t IncidentType) String() string {
	return string(t)
}

func (t IncidentType) IsValid() bool {
	return t == IncidentLoss || t == IncidentDamage
}

func ParseIncidentType(s string) (IncidentType, error) {
	t := IncidentType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid incident type: %q", s)
	}
	return t, nil
}
