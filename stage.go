package exceptions

import "fmt"

// Stage is the lifecycle position of a protected block.
type Stage uint8

const (
	StageBeginning Stage = iota
	StageTrying
	StageCatching
	StageFinalizing
	StageDone
)

var stageNames = map[Stage]string{
	StageBeginning:  "beginning",
	StageTrying:     "trying",
	StageCatching:   "catching",
	StageFinalizing: "finalizing",
	StageDone:       "done",
}

func (s Stage) String() string {
	v, ok := stageNames[s]
	if !ok {
		return fmt.Sprintf("invalid(%d)", s)
	}

	return v
}
