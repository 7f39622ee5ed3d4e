package crm

// Pipeline stages in order, with the deterministic stage→probability table
// and the average days a deal spends in each stage.
const (
	StageProspecting   = "Prospecting"
	StageQualification = "Qualification"
	StageNeedsAnalysis = "Needs Analysis"
	StageProposal      = "Proposal"
	StageNegotiation   = "Negotiation"
	StageClosedWon     = "Closed Won"
	StageClosedLost    = "Closed Lost"
)

type stageInfo struct {
	name        string
	probability int
	avgDays     int
}

var stages = []stageInfo{
	{StageProspecting, 10, 14},
	{StageQualification, 25, 21},
	{StageNeedsAnalysis, 40, 30},
	{StageProposal, 60, 21},
	{StageNegotiation, 80, 14},
	{StageClosedWon, 100, 0},
	{StageClosedLost, 0, 0},
}

var openStages = []string{
	StageProspecting, StageQualification, StageNeedsAnalysis,
	StageProposal, StageNegotiation,
}

// StageProbability returns the fixed win probability for a stage.
func StageProbability(stage string) int {
	for _, s := range stages {
		if s.name == stage {
			return s.probability
		}
	}
	return 50
}

// daysToClose sums the average stage durations whose probability rank is at
// or below the final stage's. This reproduces the source model exactly,
// including its known quirk: a deal resolved to an early open stage after a
// long elapsed time still gets a close date from this rank sum, which may
// sit oddly against the stage itself.
func daysToClose(finalStage string) int {
	finalProb := StageProbability(finalStage)
	total := 0
	for _, s := range stages {
		if s.probability <= finalProb {
			total += s.avgDays
		}
	}
	return total
}
