package domain

type AdvisoryKind string

const (
	AdvisoryStillTakingBoth AdvisoryKind = "still_taking_both"
	AdvisoryRedFlag         AdvisoryKind = "red_flag"
)

type Advisory struct {
	Kind    AdvisoryKind
	Message string
}

// Advisories returns the warnings a front end should surface for the entry.
func (r Record) Advisories() []Advisory {
	var out []Advisory
	if r.DrugASuspended == SuspensionNo && r.DrugBSuspended == SuspensionNo {
		out = append(out, Advisory{
			Kind:    AdvisoryStillTakingBoth,
			Message: "both decongestants are still being taken; if allergy symptoms persist, ask your doctor about stopping them",
		})
	}
	if r.BreathingDifficulty == SeveritySevere {
		out = append(out, redFlag("severe breathing difficulty"))
	}
	switch r.Swelling {
	case SwellingFacial, SwellingLipsEyes, SwellingGeneralized:
		out = append(out, redFlag("swelling of the face, lips or eyes, or generalized swelling"))
	}
	if r.Hives == HivesGeneralized {
		out = append(out, redFlag("generalized hives"))
	}
	if r.BreathingImprovement == ImprovementWorsening &&
		(r.DrugASuspended == SuspensionOver3Days || r.DrugBSuspended == SuspensionOver3Days) {
		out = append(out, redFlag("breathing is getting worse after stopping the decongestant"))
	}
	return out
}

func redFlag(symptom string) Advisory {
	return Advisory{Kind: AdvisoryRedFlag, Message: "seek medical attention now: " + symptom}
}
