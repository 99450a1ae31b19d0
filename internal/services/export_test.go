package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/maturitypath-backend/internal/platform/logger"
	"github.com/yungbote/maturitypath-backend/internal/scoring"
)

type stubResults struct {
	view *ResultsView
	err  error
}

func (s *stubResults) ComputeResults(ctx context.Context, responseID uuid.UUID) (*ResultsView, error) {
	return s.view, s.err
}

func (s *stubResults) GetResults(ctx context.Context, responseID uuid.UUID) (*ResultsView, error) {
	return s.view, s.err
}

func TestExportServiceWriteResultsCSV(t *testing.T) {
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	responseID := uuid.New()
	view := &ResultsView{
		ResponseID:   responseID,
		Status:       "completed",
		OverallScore: 3.25,
		OverallGap:   1,
		ComputedAt:   time.Now().UTC(),
		Dimensions: []DimensionResult{
			{
				Key:           "delivery",
				Title:         "Delivery",
				Score:         2.5,
				Gap:           1.5,
				PriorityScore: 1.5,
				RankOrder:     1,
				Recommendations: []scoring.RecommendationSnapshot{
					{Title: "automate the pipeline", Category: "quick_win", Priority: 90, TopicKey: "ci"},
				},
			},
			{
				Key:       "culture",
				Title:     "Culture",
				Score:     4,
				Gap:       0.5,
				RankOrder: 2,
			},
		},
	}

	svc := NewExportService(log, &stubResults{view: view})
	var buf bytes.Buffer
	if err := svc.WriteResultsCSV(context.Background(), &buf, responseID); err != nil {
		t.Fatalf("WriteResultsCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	// Header, overall, two dimensions, one recommendation.
	if len(rows) != 5 {
		t.Fatalf("len(rows)=%d, want 5", len(rows))
	}
	if rows[0][0] != "row_type" {
		t.Fatalf("header wrong: %v", rows[0])
	}
	if rows[1][0] != "overall" || rows[1][3] != "3.25" || rows[1][4] != "1" {
		t.Fatalf("overall row wrong: %v", rows[1])
	}
	if rows[2][0] != "dimension" || rows[2][1] != "delivery" || rows[2][6] != "1" {
		t.Fatalf("dimension row wrong: %v", rows[2])
	}
	if rows[3][0] != "recommendation" || rows[3][7] != "automate the pipeline" || rows[3][9] != "90" {
		t.Fatalf("recommendation row wrong: %v", rows[3])
	}
	if rows[4][1] != "culture" || rows[4][3] != "4" {
		t.Fatalf("second dimension row wrong: %v", rows[4])
	}
}

func TestExportServicePropagatesErrors(t *testing.T) {
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	svc := NewExportService(log, &stubResults{err: ErrResultsNotComputed})
	var buf bytes.Buffer
	if err := svc.WriteResultsCSV(context.Background(), &buf, uuid.New()); err != ErrResultsNotComputed {
		t.Fatalf("err=%v, want ErrResultsNotComputed", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("wrote output despite error: %q", buf.String())
	}
}
