package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/maturitypath-backend/internal/platform/logger"
)

type ExportService interface {
	// WriteResultsCSV streams the computed results for a response as CSV, one
	// row per dimension followed by one row per recommendation.
	WriteResultsCSV(ctx context.Context, w io.Writer, responseID uuid.UUID) error
}

type exportService struct {
	log     *logger.Logger
	results ResultsService
}

func NewExportService(baseLog *logger.Logger, results ResultsService) ExportService {
	return &exportService{
		log:     baseLog.With("service", "ExportService"),
		results: results,
	}
}

func (s *exportService) WriteResultsCSV(ctx context.Context, w io.Writer, responseID uuid.UUID) error {
	view, err := s.results.GetResults(ctx, responseID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{
		"row_type", "dimension_key", "dimension_title", "score", "gap",
		"priority_score", "rank_order", "recommendation_title", "category",
		"priority", "topic_key",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	overall := []string{
		"overall", "", "",
		formatFloat(view.OverallScore), formatFloat(view.OverallGap),
		"", "", "", "", "", "",
	}
	if err := cw.Write(overall); err != nil {
		return fmt.Errorf("failed to write overall row: %w", err)
	}

	for _, d := range view.Dimensions {
		row := []string{
			"dimension", d.Key, d.Title,
			formatFloat(d.Score), formatFloat(d.Gap),
			formatFloat(d.PriorityScore), strconv.Itoa(d.RankOrder),
			"", "", "", "",
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write dimension row: %w", err)
		}
		for _, rec := range d.Recommendations {
			row := []string{
				"recommendation", d.Key, d.Title,
				"", "", "", strconv.Itoa(d.RankOrder),
				rec.Title, rec.Category, strconv.Itoa(rec.Priority), rec.TopicKey,
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write recommendation row: %w", err)
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	return strings.TrimRight(strings.TrimRight(s, "0"), ".")
}
