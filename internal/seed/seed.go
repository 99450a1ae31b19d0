package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/maturitypath-backend/internal/data/repos/assessment"
	types "github.com/yungbote/maturitypath-backend/internal/domain"
	"github.com/yungbote/maturitypath-backend/internal/pkg/dbctx"
	"github.com/yungbote/maturitypath-backend/internal/platform/logger"
)

type topicSeed struct {
	Key         string
	Title       string
	Description string
	Rules       []ruleSeed
}

type ruleSeed struct {
	Title       string
	Description string
	Why         string
	What        string
	How         string
	ActionItems []string
	Category    string
	Priority    int
	ScoreMax    *float64
	GapMin      *float64
}

type dimensionSeed struct {
	Key      string
	Title    string
	Category string
	Topics   []topicSeed
}

func f(v float64) *float64 { return &v }

// EnsureCatalog seeds the built-in delivery maturity assessment when the
// catalog is empty. Existing catalogs are left untouched.
func EnsureCatalog(
	ctx context.Context,
	db *gorm.DB,
	log *logger.Logger,
	assessments assessment.AssessmentRepo,
	dimensions assessment.DimensionRepo,
	topics assessment.TopicRepo,
	rules assessment.RecommendationRuleRepo,
) error {
	n, err := assessments.Count(dbctx.Context{Ctx: ctx})
	if err != nil {
		return fmt.Errorf("failed to count assessments: %w", err)
	}
	if n > 0 {
		return nil
	}

	log.Info("seeding built-in assessment catalog")
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}

		created, err := assessments.Create(dbc, []*types.Assessment{{
			ID:          uuid.New(),
			Key:         "delivery-maturity",
			Title:       "Software Delivery Maturity",
			Description: "Self-assessment of engineering delivery practices across process, tooling, and culture.",
			OrderIndex:  1,
		}})
		if err != nil {
			return fmt.Errorf("failed to seed assessment: %w", err)
		}
		a := created[0]

		for di, ds := range builtinDimensions() {
			dimRows, err := dimensions.Create(dbc, []*types.Dimension{{
				ID:           uuid.New(),
				AssessmentID: a.ID,
				Key:          ds.Key,
				Title:        ds.Title,
				Category:     ds.Category,
				OrderIndex:   di + 1,
			}})
			if err != nil {
				return fmt.Errorf("failed to seed dimension %s: %w", ds.Key, err)
			}
			d := dimRows[0]

			for ti, ts := range ds.Topics {
				topicRows, err := topics.Create(dbc, []*types.Topic{{
					ID:          uuid.New(),
					DimensionID: d.ID,
					Key:         ts.Key,
					Title:       ts.Title,
					OrderIndex:  ti + 1,
				}})
				if err != nil {
					return fmt.Errorf("failed to seed topic %s: %w", ts.Key, err)
				}
				tp := topicRows[0]

				ruleRows := make([]*types.RecommendationRule, 0, len(ts.Rules))
				for ri, rs := range ts.Rules {
					items, err := encodeStrings(rs.ActionItems)
					if err != nil {
						return fmt.Errorf("failed to encode action items for %s: %w", rs.Title, err)
					}
					ruleRows = append(ruleRows, &types.RecommendationRule{
						ID:          uuid.New(),
						TopicID:     tp.ID,
						ScoreMax:    rs.ScoreMax,
						GapMin:      rs.GapMin,
						Title:       rs.Title,
						Description: rs.Description,
						Why:         rs.Why,
						What:        rs.What,
						How:         rs.How,
						ActionItems: items,
						Category:    rs.Category,
						Priority:    rs.Priority,
						Active:      true,
						OrderIndex:  ri + 1,
					})
				}
				if _, err := rules.Create(dbc, ruleRows); err != nil {
					return fmt.Errorf("failed to seed rules for topic %s: %w", ts.Key, err)
				}
			}
		}
		return nil
	})
}

func encodeStrings(items []string) (datatypes.JSON, error) {
	if items == nil {
		items = []string{}
	}
	blob, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(blob), nil
}

func builtinDimensions() []dimensionSeed {
	return []dimensionSeed{
		{
			Key:      "delivery",
			Title:    "Delivery Pipeline",
			Category: "engineering",
			Topics: []topicSeed{
				{
					Key:         "ci",
					Title:       "Continuous Integration",
					Description: "Every change builds and tests automatically before merge.",
					Rules: []ruleSeed{
						{
							Title:       "Stand up a CI pipeline",
							Description: "Run build and tests on every push.",
							Why:         "Unverified merges are the single largest source of integration defects.",
							What:        "A pipeline that blocks merge on red builds.",
							How:         "Start with build + unit tests, add linting once stable.",
							ActionItems: []string{"Pick a CI provider", "Wire build and unit tests", "Make green CI a merge requirement"},
							Category:    types.RuleCategoryQuickWin,
							Priority:    90,
							ScoreMax:    f(2.5),
						},
						{
							Title:       "Shorten the feedback loop",
							Description: "Split slow suites so the common path finishes in minutes.",
							Why:         "Slow pipelines push developers toward batching changes.",
							What:        "A fast default suite with slower jobs out of the merge path.",
							How:         "Profile the suite, parallelize, and stage the long tail.",
							ActionItems: []string{"Measure current pipeline duration", "Parallelize the slowest stages"},
							Category:    types.RuleCategoryProject,
							Priority:    60,
							GapMin:      f(1.0),
						},
					},
				},
				{
					Key:         "deploys",
					Title:       "Deployment Automation",
					Description: "Releases are scripted, repeatable, and reversible.",
					Rules: []ruleSeed{
						{
							Title:       "Automate the release path",
							Description: "Replace manual release steps with a scripted deploy.",
							Why:         "Manual deploys are slow and error prone, and they concentrate knowledge in a few people.",
							What:        "One command or pipeline stage that ships to production.",
							How:         "Script the current runbook, then fold it into the pipeline.",
							ActionItems: []string{"Write down the current runbook", "Script each step", "Add a rollback path"},
							Category:    types.RuleCategoryProject,
							Priority:    80,
							ScoreMax:    f(3.0),
						},
					},
				},
			},
		},
		{
			Key:      "quality",
			Title:    "Quality Practices",
			Category: "engineering",
			Topics: []topicSeed{
				{
					Key:         "testing",
					Title:       "Automated Testing",
					Description: "Test coverage is deliberate and trusted.",
					Rules: []ruleSeed{
						{
							Title:       "Establish a test baseline",
							Description: "Cover the highest-risk paths first.",
							Why:         "Without a trusted suite every refactor is a gamble.",
							What:        "Unit tests on core logic and one end-to-end smoke test.",
							How:         "List the five most critical flows and test those before anything else.",
							ActionItems: []string{"Identify critical flows", "Write smoke tests for each"},
							Category:    types.RuleCategoryQuickWin,
							Priority:    85,
							ScoreMax:    f(2.5),
						},
						{
							Title:       "Invest in test architecture",
							Description: "Make tests fast, isolated, and deterministic.",
							Why:         "Flaky suites erode trust until people stop reading failures.",
							What:        "A layered suite with clear ownership of fixtures and data.",
							How:         "Quarantine flaky tests, fix or delete them weekly.",
							ActionItems: []string{"Track flake rate", "Set a deflake rotation"},
							Category:    types.RuleCategoryBigBet,
							Priority:    55,
							GapMin:      f(1.5),
						},
					},
				},
				{
					Key:         "reviews",
					Title:       "Code Review",
					Description: "Changes get timely, substantive review.",
					Rules: []ruleSeed{
						{
							Title:       "Tighten review turnaround",
							Description: "Agree on a same-day review norm.",
							Why:         "Slow reviews stall delivery more than slow coding.",
							What:        "A working agreement on review latency with visible queues.",
							How:         "Surface open reviews in standup and rotate a reviewer-of-the-day.",
							ActionItems: []string{"Measure current review latency", "Agree a team SLA"},
							Category:    types.RuleCategoryQuickWin,
							Priority:    70,
							GapMin:      f(1.0),
						},
					},
				},
			},
		},
		{
			Key:      "culture",
			Title:    "Team Culture",
			Category: "organization",
			Topics: []topicSeed{
				{
					Key:         "blameless",
					Title:       "Blameless Postmortems",
					Description: "Incidents produce learning, not punishment.",
					Rules: []ruleSeed{
						{
							Title:       "Run blameless incident reviews",
							Description: "Review every customer-visible incident within a week.",
							Why:         "Teams that fear blame hide the information needed to prevent repeats.",
							What:        "A short written review focused on contributing causes and actions.",
							How:         "Use a fixed template and timebox the meeting to 45 minutes.",
							ActionItems: []string{"Adopt a postmortem template", "Schedule reviews within a week of incidents"},
							Category:    types.RuleCategoryQuickWin,
							Priority:    75,
							ScoreMax:    f(3.0),
						},
					},
				},
				{
					Key:         "learning",
					Title:       "Continuous Learning",
					Description: "The team has time and structure for improvement work.",
					Rules: []ruleSeed{
						{
							Title:       "Reserve improvement capacity",
							Description: "Budget a fixed slice of each iteration for improvement work.",
							Why:         "Improvement that depends on spare time never happens.",
							What:        "A visible, protected allocation such as 10 percent of capacity.",
							How:         "Track improvement items in the normal backlog with their own label.",
							ActionItems: []string{"Agree the allocation with stakeholders", "Review spend monthly"},
							Category:    types.RuleCategoryProject,
							Priority:    50,
							GapMin:      f(1.0),
						},
					},
				},
			},
		},
	}
}
