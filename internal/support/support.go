// Package support provides the neurodivergent accommodation content surfaced
// by the interface: task breakdowns, workflow explanations, safety
// indicators, verification checklists and stress guidance. Everything here
// is static content keyed by the support flags in the settings record.
package support

import "strings"

// Condition identifies a supported neurodivergent condition.
type Condition string

// Supported conditions, matching the settings record flags.
const (
	ConditionADHD    Condition = "adhd"
	ConditionAutism  Condition = "autism"
	ConditionAnxiety Condition = "anxiety"
	ConditionOCD     Condition = "ocd"
	ConditionPTSD    Condition = "ptsd"
)

// Conditions returns every supported condition.
func Conditions() []Condition {
	return []Condition{ConditionADHD, ConditionAutism, ConditionAnxiety, ConditionOCD, ConditionPTSD}
}

// Label returns the display name.
func (c Condition) Label() string {
	switch c {
	case ConditionADHD:
		return "ADHD"
	case ConditionAutism:
		return "Autism"
	case ConditionAnxiety:
		return "Anxiety"
	case ConditionOCD:
		return "OCD"
	case ConditionPTSD:
		return "PTSD"
	default:
		return strings.ToUpper(string(c))
	}
}

// Summary describes what enabling the condition's support changes.
func (c Condition) Summary() string {
	switch c {
	case ConditionADHD:
		return "Task breakdowns, focus timers and time estimates"
	case ConditionAutism:
		return "Predictable workflows with detailed step explanations"
	case ConditionAnxiety:
		return "Risk assessments with confidence indicators"
	case ConditionOCD:
		return "Verification checklists and completion confirmations"
	case ConditionPTSD:
		return "Gentle notifications and stress monitoring"
	default:
		return ""
	}
}

// FocusPlan is the recommended work and break rhythm.
type FocusPlan struct {
	WorkMinutes    int
	BreakMinutes   int
	LongBreakAfter int
}

// DefaultFocusPlan returns the Pomodoro rhythm the focus timer uses.
func DefaultFocusPlan() FocusPlan {
	return FocusPlan{
		WorkMinutes:    25,
		BreakMinutes:   5,
		LongBreakAfter: 4,
	}
}

// TaskStep is one step of a broken-down task.
type TaskStep struct {
	Step             int
	Description      string
	EstimatedMinutes int
	Difficulty       string
}

// BreakDownTask splits a task into prepare, execute and verify steps with
// time estimates.
func BreakDownTask(task string) []TaskStep {
	return []TaskStep{
		{Step: 1, Description: "Prepare for " + task, EstimatedMinutes: 5, Difficulty: "easy"},
		{Step: 2, Description: "Execute " + task, EstimatedMinutes: 20, Difficulty: "medium"},
		{Step: 3, Description: "Verify " + task + " completion", EstimatedMinutes: 5, Difficulty: "easy"},
	}
}

// EstimateMinutes estimates how long a task takes. Scans and reports run
// longer than the 30 minute baseline.
func EstimateMinutes(task string) int {
	const base = 30
	lowered := strings.ToLower(task)
	switch {
	case strings.Contains(lowered, "scan"):
		return base * 2
	case strings.Contains(lowered, "report"):
		return base * 3
	default:
		return base
	}
}

// Stage is a phase of the standard testing workflow.
type Stage string

// Workflow stages in order.
const (
	StageAuthorization  Stage = "authorization"
	StageReconnaissance Stage = "reconnaissance"
	StageScanning       Stage = "scanning"
	StageExploitation   Stage = "exploitation"
	StageReporting      Stage = "reporting"
)

// Stages returns the workflow stages in order.
func Stages() []Stage {
	return []Stage{StageAuthorization, StageReconnaissance, StageScanning, StageExploitation, StageReporting}
}

// Explanation says why the stage exists.
func (s Stage) Explanation() string {
	switch s {
	case StageAuthorization:
		return "This step ensures we have legal permission to test the target systems"
	case StageReconnaissance:
		return "This step gathers information about the target to plan our testing approach"
	case StageScanning:
		return "This step identifies potential entry points and vulnerabilities"
	case StageExploitation:
		return "This step tests whether identified vulnerabilities can be exploited"
	case StageReporting:
		return "This step documents our findings for the client"
	default:
		return "This step is part of the standard penetration testing methodology"
	}
}

// NextSteps returns up to the next two stages after s.
func (s Stage) NextSteps() []Stage {
	stages := Stages()
	for i, stage := range stages {
		if stage != s {
			continue
		}
		rest := stages[i+1:]
		if len(rest) > 2 {
			rest = rest[:2]
		}
		return rest
	}
	return nil
}

// ExpectedOutcomes lists what the stage should produce.
func (s Stage) ExpectedOutcomes() []string {
	switch s {
	case StageAuthorization:
		return []string{"Signed authorization document", "Scope agreement", "Legal compliance confirmation"}
	case StageReconnaissance:
		return []string{"Target system inventory", "Technology stack identification", "Attack surface mapping"}
	case StageScanning:
		return []string{"Open ports list", "Service versions", "Potential vulnerabilities"}
	case StageExploitation:
		return []string{"Proof of concept", "Impact assessment", "Access level determination"}
	case StageReporting:
		return []string{"Executive summary", "Technical findings", "Remediation recommendations"}
	default:
		return nil
	}
}

// RiskLevel rates an activity for the safety indicator.
type RiskLevel string

// Risk levels from safest to most dangerous.
const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// RiskLevels returns every risk level in order.
func RiskLevels() []RiskLevel {
	return []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskCritical}
}

// SafetyIndicator is the anxiety-support reading for a risk level: a plain
// message plus how confident the assessment is.
type SafetyIndicator struct {
	Level      RiskLevel
	Message    string
	Confidence int
}

// SafetyFor returns the safety indicator for a risk level. Unknown levels
// read as medium.
func SafetyFor(level RiskLevel) SafetyIndicator {
	switch level {
	case RiskLow:
		return SafetyIndicator{Level: RiskLow, Message: "This activity is considered safe", Confidence: 95}
	case RiskHigh:
		return SafetyIndicator{Level: RiskHigh, Message: "This activity requires caution", Confidence: 60}
	case RiskCritical:
		return SafetyIndicator{Level: RiskCritical, Message: "This activity has significant risks", Confidence: 40}
	default:
		return SafetyIndicator{Level: RiskMedium, Message: "This activity has minimal risks", Confidence: 80}
	}
}

// Phase selects a verification checklist.
type Phase string

// Checklist phases.
const (
	PhasePreScan  Phase = "pre_scan"
	PhasePostScan Phase = "post_scan"
)

// ChecklistItem is one entry of a verification checklist.
type ChecklistItem struct {
	Item     string
	Required bool
}

// Checklist returns the verification checklist for a phase.
func Checklist(phase Phase) []ChecklistItem {
	switch phase {
	case PhasePreScan:
		return []ChecklistItem{
			{Item: "Authorization document verified", Required: true},
			{Item: "Target systems confirmed", Required: true},
			{Item: "Scanning tools configured", Required: true},
			{Item: "Backup procedures in place", Required: false},
		}
	case PhasePostScan:
		return []ChecklistItem{
			{Item: "All results saved", Required: true},
			{Item: "False positives filtered", Required: true},
			{Item: "Critical findings flagged", Required: true},
			{Item: "Scan logs archived", Required: false},
		}
	default:
		return nil
	}
}
