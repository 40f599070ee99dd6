package domain

import (
	"math"
	"time"
)

// SystemDirective is the fixed instruction sent ahead of every user request.
const SystemDirective = `You are an AI that generates FULL Python applications.

RULES:
1. Output ONLY Python code.
2. No explanations, comments, or markdown.
3. If the request contains "game" or "calculator":
   - MUST use pygame
   - MUST open a pygame popup window
4. Otherwise generate a normal Python application.`

// GenerationRequest captures one user-triggered "generate" action.
type GenerationRequest struct {
	Instruction   string
	Credential    string
	ModelOverride string
	// Language overrides preferences.source_language for fence stripping.
	Language string
}

// GenerationResult is the model's raw answer and how long the call took.
type GenerationResult struct {
	RawText string
	Model   string
	Elapsed time.Duration
}

// ElapsedSeconds returns the call latency rounded to two decimals.
func (r GenerationResult) ElapsedSeconds() float64 {
	if r.Elapsed < 0 {
		return 0
	}
	return math.Round(r.Elapsed.Seconds()*100) / 100
}

// ExtractedSource is generated text with fence markers removed.
type ExtractedSource struct {
	Text string
}

// Artifact is the source file written for a request.
type Artifact struct {
	Path string
	Size int
}

// LaunchHandle references a spawned process. Nothing waits on it.
type LaunchHandle struct {
	PID  int
	Path string
}

// PipelineState enumerates orchestrator states.
type PipelineState string

const (
	StateIdle                 PipelineState = "idle"
	StateValidating           PipelineState = "validating"
	StateResolving            PipelineState = "resolving"
	StateGenerating           PipelineState = "generating"
	StateExtracting           PipelineState = "extracting"
	StatePersisting           PipelineState = "persisting"
	StateLaunching            PipelineState = "launching"
	StateCompleted            PipelineState = "completed"
	StateCompletedWithWarning PipelineState = "completed_with_warning"
	StateFailed               PipelineState = "failed"
)

// Terminal reports whether no further transitions follow.
func (s PipelineState) Terminal() bool {
	switch s {
	case StateIdle, StateCompleted, StateCompletedWithWarning, StateFailed:
		return true
	default:
		return false
	}
}

// GenerationOutcome is what a pipeline run hands back to the front end.
type GenerationOutcome struct {
	RequestID string
	State     PipelineState
	Result    GenerationResult
	Source    ExtractedSource
	Artifact  *Artifact
	Launch    *LaunchHandle
	Warning   string
	LaunchErr error
}

// Succeeded is true when the artifact was written, whether or not it launched.
func (o GenerationOutcome) Succeeded() bool {
	return o.State == StateCompleted || o.State == StateCompletedWithWarning
}
