package matrix

import (
	"regexp"
	"strings"
)

// referencePattern matches the "As <LEVEL>" shorthand in capability
// descriptions: a track key such as L3, TL1 or EM2, optionally a range
// (L1-L2). The captured token lower-cased must equal the referenced job
// level id.
var referencePattern = regexp.MustCompile(`As ([A-Z]{1,2}\d+(?:-[A-Z]{1,2}\d+)?)`)

// UnresolvedReference describes a cross-reference that resolution could
// not expand. Not an error: the literal text is retained.
type UnresolvedReference struct {
	JobLevelID  string
	CriterionID string
	Token       string // the referenced level token, e.g. "L3"
}

// ResolveReferences expands "As <LEVEL>" shorthand in capability
// descriptions. A reference means: this level's value for this criterion
// equals the referenced level's value, plus whatever the remaining text
// adds.
//
// Resolution is single-hop. The base lookup is built only from
// descriptions that contain no reference themselves, so a reference to
// another reference (or to the capability itself) stays unresolved and
// keeps its literal text. The input slice is not modified.
func ResolveReferences(capabilities []Capability) ([]Capability, []UnresolvedReference) {
	base := make(map[string]string)
	for _, c := range capabilities {
		if !referencePattern.MatchString(c.Description) {
			base[cellKey(c.JobLevelID, c.CriterionID)] = c.Description
		}
	}

	resolved := make([]Capability, len(capabilities))
	var unresolved []UnresolvedReference

	for i, c := range capabilities {
		resolved[i] = c

		matches := referencePattern.FindAllStringSubmatch(c.Description, -1)
		if len(matches) == 0 {
			continue
		}

		description := c.Description
		for _, m := range matches {
			token := m[1]
			baseDescription, ok := base[cellKey(strings.ToLower(token), c.CriterionID)]
			if !ok {
				unresolved = append(unresolved, UnresolvedReference{
					JobLevelID:  c.JobLevelID,
					CriterionID: c.CriterionID,
					Token:       token,
				})
				continue
			}
			description = strings.Replace(description, m[0], baseDescription, 1)
		}
		resolved[i].Description = description
	}

	return resolved, unresolved
}

func cellKey(jobLevelID, criterionID string) string {
	return jobLevelID + "-" + criterionID
}
