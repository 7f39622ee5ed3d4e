// Package crm simulates the sales pipeline layered over the operator base:
// accounts for most operators, opportunities per account scaled by tenure,
// and the rep activity trail behind each deal. All draws come from the run's
// single seeded stream so the pipeline is reproducible alongside shipments.
package crm

import (
	"fmt"
	"strings"
	"time"

	"github.com/foodline-labs/foodline/internal/catalog"
	"github.com/foodline-labs/foodline/internal/model"
	"github.com/foodline-labs/foodline/internal/sample"
)

// Data is the full CRM export for one run.
type Data struct {
	Accounts      []model.Account
	Opportunities []model.Opportunity
	Activities    []model.Activity
}

// Simulator generates the CRM layer for a fixed operator base.
type Simulator struct {
	stream     *sample.Stream
	icReps     []model.SalesRep
	categories []string
	start, end time.Time

	oppSeq int
	actSeq int
}

// New prepares a simulator. Only individual contributors own accounts and
// deals; Directors never appear as owners.
func New(stream *sample.Stream, reps []model.SalesRep, start, end time.Time) (*Simulator, error) {
	var ics []model.SalesRep
	for _, r := range reps {
		if r.Tier != model.TierDirector {
			ics = append(ics, r)
		}
	}
	if len(ics) == 0 {
		return nil, fmt.Errorf("no individual contributor reps to own accounts")
	}
	if end.Before(start) {
		return nil, fmt.Errorf("invalid horizon: end %s before start %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	return &Simulator{
		stream:     stream,
		icReps:     ics,
		categories: catalog.Categories(),
		start:      sample.Midnight(start),
		end:        sample.Midnight(end),
	}, nil
}

// GenerateAll runs the three layers in dependency order.
func (s *Simulator) GenerateAll(operators []model.Operator) (*Data, error) {
	accounts, err := s.Accounts(operators)
	if err != nil {
		return nil, err
	}

	opportunities := s.Opportunities(accounts)
	activities := s.Activities(accounts, opportunities)

	return &Data{
		Accounts:      accounts,
		Opportunities: opportunities,
		Activities:    activities,
	}, nil
}

var largeAccountTypes = sample.NewWeighted(
	sample.Option[string]{Value: model.AccountCustomer, Weight: 0.9},
	sample.Option[string]{Value: model.AccountProspect, Weight: 0.1},
)

var smallAccountTypes = sample.NewWeighted(
	sample.Option[string]{Value: model.AccountCustomer, Weight: 0.4},
	sample.Option[string]{Value: model.AccountProspect, Weight: 0.4},
	sample.Option[string]{Value: model.AccountFormer, Weight: 0.2},
)

// Accounts covers roughly 80% of operators; the remainder are deliberately
// absent from CRM. Larger operators skew heavily toward Customer.
func (s *Simulator) Accounts(operators []model.Operator) ([]model.Account, error) {
	if len(operators) == 0 {
		return nil, fmt.Errorf("operator table is empty")
	}

	covered := sample.Subset(s.stream, operators, 0.8)

	accounts := make([]model.Account, 0, len(covered))
	for _, op := range covered {
		var accountType string
		if op.RevenueTier == model.RevenueLarge || op.RevenueTier == model.RevenueEnterprise {
			accountType = largeAccountTypes.Choose(s.stream)
		} else {
			accountType = smallAccountTypes.Choose(s.stream)
		}

		status := model.StatusActive
		if accountType == model.AccountFormer {
			status = model.StatusChurned
		}

		industry := op.Type
		if op.Type == "Restaurant" {
			industry = "Foodservice"
		}

		createdLo := op.OpeningDate
		if createdLo.Before(s.start) {
			createdLo = s.start
		}
		created := s.stream.DateBetween(createdLo, s.end.AddDate(0, 0, -180))

		accounts = append(accounts, model.Account{
			ID:               "ACC-" + strings.TrimPrefix(op.ID, "OP-"),
			OperatorID:       op.ID,
			Name:             op.Name,
			Type:             accountType,
			Industry:         industry,
			OwnerID:          sample.Pick(s.stream, s.icReps).ID,
			CreatedDate:      created,
			LastActivityDate: s.stream.DateBetween(created, s.end),
			Status:           status,
		})
	}
	return accounts, nil
}

// opportunityCount scales deal volume by account tenure: Customers
// accumulate deals over their whole lifetime, Prospects and Former
// Customers over a capped window.
func (s *Simulator) opportunityCount(accountType string, yearsActive float64) int {
	var n int
	switch accountType {
	case model.AccountCustomer:
		n = int(s.stream.FloatBetween(3, 8) * yearsActive)
	case model.AccountProspect:
		n = int(s.stream.FloatBetween(1, 3) * min(yearsActive, 2))
	default:
		n = int(s.stream.FloatBetween(1, 2) * min(yearsActive, 1))
	}

	if n < 1 {
		n = 1
	}
	if n > 20 {
		n = 20
	}
	return n
}

func winRate(accountType string) float64 {
	switch accountType {
	case model.AccountCustomer:
		return 0.55
	case model.AccountFormer:
		return 0.15
	default:
		return 0.35
	}
}

// Opportunities generates the deal history for every account.
func (s *Simulator) Opportunities(accounts []model.Account) []model.Opportunity {
	var opportunities []model.Opportunity
	for _, account := range accounts {
		yearsActive := s.end.Sub(account.CreatedDate).Hours() / 24 / 365
		n := s.opportunityCount(account.Type, yearsActive)

		for i := 0; i < n; i++ {
			opportunities = append(opportunities, s.buildOpportunity(account))
		}
	}
	return opportunities
}

func (s *Simulator) buildOpportunity(account model.Account) model.Opportunity {
	s.oppSeq++

	created := s.stream.DateBetween(account.CreatedDate, s.end.AddDate(0, 0, -30))

	isWon := s.stream.Chance(winRate(account.Type))
	daysSinceCreation := int(s.end.Sub(created).Hours() / 24)
	isClosed := daysSinceCreation > s.stream.IntBetween(30, 180)

	var stage string
	switch {
	case isClosed && isWon:
		stage = StageClosedWon
	case isClosed:
		stage = StageClosedLost
	default:
		stage = sample.Pick(s.stream, openStages)
	}

	delta := daysToClose(stage) + s.stream.IntBetween(-14, 30)
	if delta < 7 {
		delta = 7
	}
	closeDate := created.AddDate(0, 0, delta)
	if closeDate.After(s.end) {
		closeDate = s.end
	}

	amount := s.stream.FloatBetween(5_000, 150_000)
	if account.Type == model.AccountCustomer {
		amount *= s.stream.FloatBetween(1.2, 2.0)
	}

	ownerID := account.OwnerID
	if s.stream.Chance(0.1) {
		ownerID = sample.Pick(s.stream, s.icReps).ID
	}

	competitor := ""
	if stage == StageClosedLost || s.stream.Chance(0.4) {
		competitor = sample.Pick(s.stream, catalog.Competitors)
	}
	lossReason := ""
	if stage == StageClosedLost {
		lossReason = sample.Pick(s.stream, catalog.LossReasons)
	}

	return model.Opportunity{
		ID:              fmt.Sprintf("OPP-%07d", s.oppSeq),
		AccountID:       account.ID,
		Name:            account.Name + " - " + sample.Pick(s.stream, s.categories) + " Deal",
		Stage:           stage,
		Amount:          model.Round2(amount),
		Probability:     StageProbability(stage),
		CloseDate:       closeDate,
		CreatedDate:     created,
		OwnerID:         ownerID,
		LeadSource:      sample.Pick(s.stream, catalog.LeadSources),
		ProductInterest: sample.Pick(s.stream, s.categories),
		Competitor:      competitor,
		LossReason:      lossReason,
	}
}

var activityTypes = sample.NewWeighted(
	sample.Option[string]{Value: "Call", Weight: 0.25},
	sample.Option[string]{Value: "Email", Weight: 0.30},
	sample.Option[string]{Value: "Meeting", Weight: 0.15},
	sample.Option[string]{Value: "Demo", Weight: 0.10},
	sample.Option[string]{Value: "Site Visit", Weight: 0.10},
	sample.Option[string]{Value: "Follow-up", Weight: 0.10},
)

var uniformActivityTypes = []string{"Call", "Email", "Meeting", "Demo", "Site Visit", "Follow-up"}

func (s *Simulator) activityDuration(activityType string) int {
	switch activityType {
	case "Call":
		return s.stream.IntBetween(5, 45)
	case "Email":
		return s.stream.IntBetween(2, 15)
	case "Meeting":
		return s.stream.IntBetween(30, 120)
	case "Demo":
		return s.stream.IntBetween(45, 90)
	case "Site Visit":
		return s.stream.IntBetween(60, 180)
	default:
		return s.stream.IntBetween(5, 30)
	}
}

// activityVolume scales touches by deal size and intensity by how the deal
// resolved: won deals get the densest trail, lost deals the sparsest.
func (s *Simulator) activityVolume(opp model.Opportunity) int {
	base := int(opp.Amount / 10_000)
	if base < 3 {
		base = 3
	}

	var factor float64
	switch opp.Stage {
	case StageClosedWon:
		factor = s.stream.FloatBetween(1.5, 2.5)
	case StageClosedLost:
		factor = s.stream.FloatBetween(0.5, 1.0)
	default:
		factor = s.stream.FloatBetween(0.8, 1.5)
	}

	n := int(float64(base) * factor)
	if n < 1 {
		n = 1
	}
	if n > 30 {
		n = 30
	}
	return n
}

// Activities generates the touch trail for every opportunity, plus a thin
// layer of account-level relationship-maintenance contacts.
func (s *Simulator) Activities(accounts []model.Account, opportunities []model.Opportunity) []model.Activity {
	var activities []model.Activity

	for _, opp := range opportunities {
		n := s.activityVolume(opp)
		for i := 0; i < n; i++ {
			activities = append(activities, s.buildActivity(opp))
		}
	}

	maintained := sample.Subset(s.stream, accounts, 0.3)
	for _, account := range maintained {
		n := s.stream.IntBetween(1, 5)
		for i := 0; i < n; i++ {
			activities = append(activities, s.buildStandaloneActivity(account))
		}
	}

	return activities
}

func (s *Simulator) buildActivity(opp model.Opportunity) model.Activity {
	s.actSeq++

	activityType := activityTypes.Choose(s.stream)

	subjectName := opp.Name
	if len(subjectName) > 50 {
		subjectName = subjectName[:50]
	}

	nextSteps := ""
	if s.stream.Chance(0.7) {
		nextSteps = sample.Pick(s.stream, catalog.NextStepPhrases)
	}

	return model.Activity{
		ID:              fmt.Sprintf("ACT-%08d", s.actSeq),
		AccountID:       opp.AccountID,
		OpportunityID:   opp.ID,
		OwnerID:         opp.OwnerID,
		Type:            activityType,
		Date:            s.stream.DateBetween(opp.CreatedDate, opp.CloseDate),
		DurationMinutes: s.activityDuration(activityType),
		Subject:         activityType + ": " + subjectName,
		Outcome:         sample.Pick(s.stream, catalog.ActivityOutcomes),
		NextSteps:       nextSteps,
	}
}

func (s *Simulator) buildStandaloneActivity(account model.Account) model.Activity {
	s.actSeq++

	activityType := sample.Pick(s.stream, uniformActivityTypes)

	nextSteps := ""
	if s.stream.Chance(0.5) {
		nextSteps = sample.Pick(s.stream, catalog.NextStepPhrases)
	}

	return model.Activity{
		ID:              fmt.Sprintf("ACT-%08d", s.actSeq),
		AccountID:       account.ID,
		OwnerID:         account.OwnerID,
		Type:            activityType,
		Date:            s.stream.DateBetween(account.CreatedDate, s.end),
		DurationMinutes: s.stream.IntBetween(5, 60),
		Subject:         activityType + ": General check-in",
		Outcome:         sample.Pick(s.stream, catalog.ActivityOutcomes),
		NextSteps:       nextSteps,
	}
}
