package models

// AlignmentStats is the summary emitted by the stats command.
type AlignmentStats struct {
	Length     int     `json:"length" yaml:"length"`
	Matches    int     `json:"matches" yaml:"matches"`
	Mismatches int     `json:"mismatches" yaml:"mismatches"`
	Identity   float64 `json:"identity" yaml:"identity"`
}
