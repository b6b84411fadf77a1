// Package entity contains the core business objects of the project.
package entity

// Plan represents a subscription tier.
type Plan string

const (
	// PlanFree is the default tier every account starts on.
	PlanFree Plan = "free"
	// PlanSilver is the mid paid tier.
	PlanSilver Plan = "silver"
	// PlanGold is the top paid tier.
	PlanGold Plan = "gold"
)

// PlanLimits describes the quota a tier grants.
type PlanLimits struct {
	Games         int // Maximum favorite games on the profile.
	SavedProfiles int // Maximum saved-profile slots.
}

// Mirrors the backend's plan configuration; the server enforces these, the
// client only uses them for slot/lock presentation.
var planLimits = map[Plan]PlanLimits{
	PlanFree:   {Games: 3, SavedProfiles: 3},
	PlanSilver: {Games: 5, SavedProfiles: 5},
	PlanGold:   {Games: 10, SavedProfiles: 10},
}

// String returns the string representation of the Plan.
func (p Plan) String() string {
	return string(p)
}

// IsValid checks if the Plan is a valid value.
func (p Plan) IsValid() bool {
	switch p {
	case PlanFree, PlanSilver, PlanGold:
		return true
	default:
		return false
	}
}

// Limits returns the quota for the tier, falling back to the free tier for
// unknown values.
func (p Plan) Limits() PlanLimits {
	if limits, ok := planLimits[p]; ok {
		return limits
	}

	return planLimits[PlanFree]
}
