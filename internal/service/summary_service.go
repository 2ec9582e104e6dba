package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quikchek/internal/dto"
	"quikchek/internal/models"
	"quikchek/internal/repository"
	"quikchek/internal/summary"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SummaryService materializes a user's document and category snapshot and
// feeds it to the pure aggregation code in internal/summary.
type SummaryService struct {
	docRepo      *repository.DocumentRepository
	categoryRepo *repository.CategoryRepository
	periodRepo   *repository.PeriodRepository
	logger       *zap.Logger
}

func NewSummaryService(
	docRepo *repository.DocumentRepository,
	categoryRepo *repository.CategoryRepository,
	periodRepo *repository.PeriodRepository,
	logger *zap.Logger,
) *SummaryService {
	return &SummaryService{
		docRepo:      docRepo,
		categoryRepo: categoryRepo,
		periodRepo:   periodRepo,
		logger:       logger,
	}
}

// snapshot fetches the user's documents and categories in parallel.
func (s *SummaryService) snapshot(ctx context.Context, userID uuid.UUID) (summary.Snapshot, error) {
	var (
		docs       []*models.Document
		categories []*models.SpendingCategory
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		docs, err = s.docRepo.ListByUserID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categoryRepo.ListByUserID(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return summary.Snapshot{}, fmt.Errorf("failed to load snapshot: %w", err)
	}

	snap := summary.Snapshot{
		Categories: make([]string, len(categories)),
		Documents:  make([]summary.Document, len(docs)),
	}
	for i, category := range categories {
		snap.Categories[i] = category.Name
	}
	for i, doc := range docs {
		names := make([]string, len(doc.Categories))
		for j, category := range doc.Categories {
			names[j] = category.Name
		}
		snap.Documents[i] = summary.Document{
			Timestamp:  doc.Timestamp,
			Amount:     doc.AmountSpent,
			Categories: names,
		}
	}

	return snap, nil
}

// Overview computes the three fixed donut windows plus an optional custom
// one. Each window is an independent run of the same aggregation routine.
func (s *SummaryService) Overview(ctx context.Context, userID uuid.UUID, customStart, customEnd *time.Time) (*dto.SummaryResponse, error) {
	snap, err := s.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sevenDaysAgo := now.AddDate(0, 0, -7)
	thirtyDaysAgo := now.AddDate(0, 0, -30)

	resp := &dto.SummaryResponse{
		SevenDays:  window(snap, &sevenDaysAgo, nil),
		ThirtyDays: window(snap, &thirtyDaysAgo, nil),
		AllTime:    window(snap, nil, nil),
	}
	if customStart != nil || customEnd != nil {
		custom := window(snap, customStart, customEnd)
		resp.Custom = &custom
	}

	return resp, nil
}

func window(snap summary.Snapshot, start, end *time.Time) dto.WindowResponse {
	split, combo := summary.ChartData(snap, start, end)
	return dto.WindowResponse{Split: split, Combo: combo}
}

// TimeSeries builds the cumulative area-chart series.
func (s *SummaryService) TimeSeries(ctx context.Context, userID uuid.UUID) (*dto.TimeSeriesResponse, error) {
	snap, err := s.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.TimeSeriesResponse{Points: summary.CumulativeSeries(snap)}, nil
}

// Comparison assembles the period bar-chart table from the two seeded
// periods plus the user's stored custom periods.
func (s *SummaryService) Comparison(ctx context.Context, userID uuid.UUID) (*dto.ComparisonResponse, error) {
	builder, err := s.buildComparison(ctx, userID)
	if err != nil {
		return nil, err
	}

	labels := builder.Labels()
	resp := &dto.ComparisonResponse{
		Series:  builder.Series(),
		Split:   builder.Rows(summary.Split),
		Combo:   builder.Rows(summary.Combo),
		Periods: make([]dto.PeriodResponse, builder.Len()),
	}

	for i := 0; i < builder.Len(); i++ {
		start, end, _ := builder.Window(i)
		resp.Periods[i] = dto.PeriodResponse{
			Index:  i,
			Name:   labels[i],
			Start:  formatTimePtr(start),
			End:    formatTimePtr(end),
			Seeded: i < 2,
		}
	}

	return resp, nil
}

func (s *SummaryService) buildComparison(ctx context.Context, userID uuid.UUID) (*summary.ComparisonBuilder, error) {
	snap, err := s.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	periods, err := s.periodRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	builder := summary.NewComparisonBuilder(snap, time.Now())
	for _, period := range periods {
		builder.Add(period.StartDate, period.EndDate)
	}

	return builder, nil
}

// AddPeriod stores a new custom period at the end of the list.
func (s *SummaryService) AddPeriod(ctx context.Context, userID uuid.UUID, req *dto.AddPeriodRequest) error {
	start, err := parseOptionalTime(req.Start)
	if err != nil {
		return err
	}
	end, err := parseOptionalTime(req.End)
	if err != nil {
		return err
	}

	maxPosition, err := s.periodRepo.MaxPosition(ctx, userID)
	if err != nil {
		return err
	}

	period := &models.Period{
		ID:        uuid.New(),
		UserID:    userID,
		Position:  maxPosition + 1,
		StartDate: start,
		EndDate:   end,
		CreatedAt: time.Now(),
	}

	return s.periodRepo.Create(ctx, period)
}

// UpdatePeriod replaces the bounds of a custom period. The seeded periods
// are relative windows and cannot be edited server-side.
func (s *SummaryService) UpdatePeriod(ctx context.Context, userID uuid.UUID, index int, req *dto.UpdatePeriodRequest) error {
	if index < 2 {
		return fmt.Errorf("%w: seeded periods cannot be edited", ErrConflict)
	}

	period, err := s.periodRepo.GetByPosition(ctx, userID, index)
	if err != nil {
		return fmt.Errorf("%w: period %d", ErrNotFound, index)
	}

	if req.Start != nil {
		start, err := parseOptionalTime(req.Start)
		if err != nil {
			return err
		}
		period.StartDate = start
	}
	if req.End != nil {
		end, err := parseOptionalTime(req.End)
		if err != nil {
			return err
		}
		period.EndDate = end
	}

	return s.periodRepo.UpdateDates(ctx, period)
}

// DeletePeriod removes a custom period; later "Custom Period N" labels
// renumber automatically because labels derive from position.
func (s *SummaryService) DeletePeriod(ctx context.Context, userID uuid.UUID, index int) error {
	if index < 2 {
		return fmt.Errorf("%w: %v", ErrConflict, summary.ErrSeededPeriod)
	}

	period, err := s.periodRepo.GetByPosition(ctx, userID, index)
	if err != nil {
		return fmt.Errorf("%w: period %d", ErrNotFound, index)
	}

	return s.periodRepo.Delete(ctx, period)
}

// Chart renders a summary window as a PNG. kind selects donut or bar,
// windowName one of 7d/30d/all, mode split or combo.
func (s *SummaryService) Chart(ctx context.Context, userID uuid.UUID, kind, windowName, mode string, customStart, customEnd *time.Time) ([]byte, error) {
	snap, err := s.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var start, end *time.Time
	var title string
	switch windowName {
	case "7d":
		t := now.AddDate(0, 0, -7)
		start, title = &t, "Last 7 days"
	case "30d":
		t := now.AddDate(0, 0, -30)
		start, title = &t, "Last 30 days"
	case "all", "":
		title = "All time"
	case "custom":
		start, end, title = customStart, customEnd, "Custom window"
	default:
		return nil, fmt.Errorf("%w: unknown window %q", ErrValidation, windowName)
	}

	split, combo := summary.ChartData(snap, start, end)
	slices := split
	if mode == "combo" {
		slices = combo
	}

	var png []byte
	switch kind {
	case "bar":
		png, err = summary.RenderBarPNG(slices, title)
	case "donut", "":
		png, err = summary.RenderDonutPNG(slices, title)
	default:
		return nil, fmt.Errorf("%w: unknown chart kind %q", ErrValidation, kind)
	}
	if errors.Is(err, summary.ErrNoChartData) {
		return nil, fmt.Errorf("%w: no spending in window", ErrValidation)
	}
	if err != nil {
		return nil, err
	}

	return png, nil
}

func parseOptionalTime(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := parseTimestamp(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}
