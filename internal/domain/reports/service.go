package reports

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"hrsystem/internal/domain/access"
	"hrsystem/internal/domain/evaluation"
	"hrsystem/internal/domain/kpi"
)

type Service struct {
	Evaluations evaluation.StoreAPI
}

func NewService(evaluations evaluation.StoreAPI) *Service {
	return &Service{Evaluations: evaluations}
}

// EvaluationPDF renders a one-page report for the evaluation: parties, the
// four sub-metrics, the overall score with its tier, and the current course
// recommendations. Access mirrors evaluation view access.
func (s *Service) EvaluationPDF(ctx context.Context, actor access.Actor, id int64) ([]byte, error) {
	e, err := s.Evaluations.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanViewEvaluation(actor, e.User.ID, e.Manager.ID) {
		return nil, access.ErrDenied
	}

	metrics := evaluation.Metrics(e)
	level := kpi.Classify(metrics.Overall)
	recommendations := kpi.Recommend(metrics)

	pdf := gofpdf.New("P", "mm", "A4", "")
	// Tier labels and course names are Russian; core fonts need cp1251.
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1251")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Performance Evaluation Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s %s (%s)", e.User.FirstName, e.User.LastName, e.User.Username))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Manager: %s %s (%s)", e.Manager.FirstName, e.Manager.LastName, e.Manager.Username))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Date: %s", e.EvaluationDate.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "KPI Metrics")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Completed tasks: %.2f", metrics.CompletedTasks))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Fix time: %.2f", metrics.FixTime))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Test coverage: %.2f", metrics.TestCoverage))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Timeliness: %.2f", metrics.Timeliness))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Overall KPI: %.2f", metrics.Overall))
	pdf.Ln(7)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Tier: %s", level.Label)))
	pdf.Ln(10)

	if e.Comments != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Comments")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 12)
		pdf.MultiCell(0, 6, tr(e.Comments), "", "L", false)
		pdf.Ln(4)
	}

	if len(recommendations) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Recommended Courses")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for i, rec := range recommendations {
			pdf.MultiCell(0, 6, tr(fmt.Sprintf("%d. %s [%s]", i+1, rec.CourseName, rec.Priority)), "", "L", false)
			pdf.MultiCell(0, 6, tr("   "+rec.Reason), "", "L", false)
			pdf.Ln(2)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render evaluation report: %w", err)
	}
	return buf.Bytes(), nil
}
