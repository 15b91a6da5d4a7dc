package utils

import (
	"encoding/json"
	"log"
)

// DefaultUnitExp is awarded when a unit has no explicit exp value or the
// syllabus document cannot be parsed.
const DefaultUnitExp = 100

// SyllabusUnit is one playable unit inside a chapter. Exp is optional in
// the stored document.
type SyllabusUnit struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	VideoID string `json:"videoId"`
	Exp     *int   `json:"exp,omitempty"`
}

// SyllabusChapter is an ordered group of units
type SyllabusChapter struct {
	ID    string         `json:"id"`
	Title string         `json:"title"`
	Date  string         `json:"date,omitempty"`
	Units []SyllabusUnit `json:"units"`
}

// ParseSyllabus decodes the stored syllabus JSON document
func ParseSyllabus(raw []byte) ([]SyllabusChapter, error) {
	var chapters []SyllabusChapter
	if err := json.Unmarshal(raw, &chapters); err != nil {
		return nil, err
	}
	return chapters, nil
}

// ResolveUnitExp scans chapters in order and returns the EXP declared for
// the first unit matching unitID. Unknown units and malformed documents
// fall back to DefaultUnitExp; a broken syllabus must never block a reward.
func ResolveUnitExp(raw []byte, unitID string) int {
	chapters, err := ParseSyllabus(raw)
	if err != nil {
		log.Printf("Failed to parse syllabus, using default EXP: %v", err)
		return DefaultUnitExp
	}

	for _, chapter := range chapters {
		for _, unit := range chapter.Units {
			if unit.ID == unitID {
				if unit.Exp != nil {
					return *unit.Exp
				}
				return DefaultUnitExp
			}
		}
	}

	return DefaultUnitExp
}
