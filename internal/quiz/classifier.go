package quiz

// SensitivityThreshold is the fixed sensible score at or above which the skin
// is flagged as sensitive. It does not scale with how many questions were
// answered.
const SensitivityThreshold = 3

var skinTypeLabels = map[Archetype]string{
	ArchetypeSeca:   "Piel Seca",
	ArchetypeGrasa:  "Piel Grasa",
	ArchetypeMixta:  "Piel Mixta",
	ArchetypeNormal: "Piel Normal",
}

// SkinTypeLabel returns the display label for a primary archetype.
func SkinTypeLabel(a Archetype) string { return skinTypeLabels[a] }

// Classify picks the dominant primary archetype and the sensitivity flag from
// the score totals. Archetypes are evaluated in declaration order and a later
// one wins only with a strictly greater score, so ties resolve in favor of the
// earlier-declared archetype. With an all-zero score set this falls through to
// seca; see the note on ClassifyDefault below.
func Classify(scores Scores) (Archetype, bool) {
	dominant := PrimaryArchetypes[0]
	for _, archetype := range PrimaryArchetypes[1:] {
		if scores[archetype] > scores[dominant] {
			dominant = archetype
		}
	}
	return dominant, scores[ArchetypeSensible] >= SensitivityThreshold
}

// ClassifyDefault is what an empty answer set classifies as. It is the
// tie-break falling through from the first declared archetype, not a semantic
// default; kept for compatibility with the shipped behavior even though a
// no-signal answer set arguably should not resolve to a specific skin type.
const ClassifyDefault = ArchetypeSeca
