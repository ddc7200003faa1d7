package models

// ThreatCategory is the UI-facing threat category id
type ThreatCategory string

const (
	ThreatDrone      ThreatCategory = "drone"
	ThreatTroops     ThreatCategory = "troops"
	ThreatExplosion  ThreatCategory = "explosion"
	ThreatSuspicious ThreatCategory = "suspicious"
)

// ThreatCategories lists the selectable categories in display order
var ThreatCategories = []ThreatCategory{
	ThreatDrone,
	ThreatTroops,
	ThreatExplosion,
	ThreatSuspicious,
}

// Label returns the human-readable category name
func (t ThreatCategory) Label() string {
	switch t {
	case ThreatDrone:
		return "Drone"
	case ThreatTroops:
		return "Troop Movement"
	case ThreatExplosion:
		return "Explosion / Impact"
	case ThreatSuspicious:
		return "Suspicious Activity"
	}
	return string(t)
}

// WireType maps the UI category id to the vocabulary the external store uses
func (t ThreatCategory) WireType() string {
	switch t {
	case ThreatTroops:
		return "troop"
	case ThreatSuspicious:
		return "suspicious_activity"
	}
	return string(t)
}

// ReportDraft is the in-progress, unsaved report a user is composing.
// SelectedThreat is empty while unset; Direction is one of the 8 compass
// labels or empty.
type ReportDraft struct {
	SelectedThreat ThreatCategory `json:"selectedThreat"`
	Direction      string         `json:"direction"`
	Description    string         `json:"description"`
}

// Empty reports whether no field has been touched
func (d ReportDraft) Empty() bool {
	return d.SelectedThreat == "" && d.Direction == "" && d.Description == ""
}

// DraftUpdate is a partial change to a draft. Nil fields are left untouched
// by the merge.
type DraftUpdate struct {
	SelectedThreat *ThreatCategory
	Direction      *string
	Description    *string
}

// Report is the wire payload inserted into the external store
type Report struct {
	Type        string  `json:"type" validate:"required,oneof=drone troop explosion suspicious_activity"`
	Lat         float64 `json:"lat" validate:"min=-90,max=90"`
	Lon         float64 `json:"lon" validate:"min=-180,max=180"`
	Direction   string  `json:"direction" validate:"required"`
	Description string  `json:"description"`
	Timestamp   int64   `json:"timestamp" validate:"required"` // Unix timestamp in milliseconds
	CreatedAt   string  `json:"created_at" validate:"required"`
}
