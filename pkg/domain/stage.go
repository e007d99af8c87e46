package domain

// Stage identifies the current step of the article workflow. The workflow
// moves strictly forward: Fetching → Filtering → Extracting → Writing → Done,
// with a single early exit from Filtering to Done when nothing is selected.
type Stage string

// workflow stages
const (
	StageFetching   Stage = "fetching"
	StageFiltering  Stage = "filtering"
	StageExtracting Stage = "extracting"
	StageWriting    Stage = "writing"
	StageDone       Stage = "done"
)
