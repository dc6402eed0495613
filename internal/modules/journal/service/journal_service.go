package service

import (
	"context"
	"errors"

	hclog "github.com/hashicorp/go-hclog"

	"symptrack/internal/modules/journal/domain"
	journalout "symptrack/internal/modules/journal/port/out"
	"symptrack/internal/platform/clock"
	apperrors "symptrack/internal/platform/errors"
)

type JournalService struct {
	clock     clock.Clock
	store     journalout.RecordStore
	projector journalout.RecordProjector
	logger    hclog.Logger
}

func NewJournalService(clock clock.Clock, store journalout.RecordStore, projector journalout.RecordProjector, logger hclog.Logger) *JournalService {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &JournalService{clock: clock, store: store, projector: projector, logger: logger.Named("journal")}
}

func (s *JournalService) Initialize(ctx context.Context) error {
	return s.store.Initialize(ctx)
}

// Log validates and appends one entry. The query index is refreshed on a
// best-effort basis; the store stays authoritative when that fails.
func (s *JournalService) Log(ctx context.Context, raw domain.RawFields, confirm bool) (domain.Record, int, []domain.Advisory, error) {
	record, err := domain.NewRecord(raw, s.clock.Now())
	if err != nil {
		return domain.Record{}, 0, nil, err
	}
	advisories := record.Advisories()
	if !confirm && hasAdvisory(advisories, domain.AdvisoryStillTakingBoth) {
		return domain.Record{}, 0, advisories, apperrors.ErrConfirmationRequired
	}
	seq, err := s.store.Append(ctx, record)
	if err != nil {
		return domain.Record{}, 0, nil, err
	}
	s.logger.Debug("entry appended", "seq", seq, "date", domain.FormatDate(record.Date))
	if s.projector != nil {
		if err := s.projector.Upsert(ctx, seq, record); err != nil {
			s.logger.Warn("index update failed; run reindex to rebuild", "seq", seq, "error", err)
		}
	}
	return record, seq, advisories, nil
}

// List returns every entry ordered by day.
func (s *JournalService) List(ctx context.Context) ([]domain.Record, error) {
	records, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	domain.SortByDate(records)
	return records, nil
}

func (s *JournalService) Reindex(ctx context.Context) (int, error) {
	if s.projector == nil {
		return 0, errors.New("no index configured")
	}
	if err := s.projector.Reset(ctx); err != nil {
		return 0, err
	}
	records, err := s.store.LoadAll(ctx)
	if err != nil {
		return 0, err
	}
	for i, record := range records {
		if err := s.projector.Upsert(ctx, i+1, record); err != nil {
			return 0, err
		}
	}
	s.logger.Info("index rebuilt", "entries", len(records))
	return len(records), nil
}

func (s *JournalService) WeeklyStats(ctx context.Context) ([]journalout.WeeklyAverage, error) {
	if s.projector == nil {
		return nil, errors.New("no index configured")
	}
	return s.projector.WeeklyAverages(ctx)
}

// Timeline locates the recovery tracks. Negative inputs fall back to the
// most recent entry; with no entries they count as not started.
func (s *JournalService) Timeline(ctx context.Context, daysPostOp, daysSinceSuspension int) ([]domain.TrackStatus, error) {
	if daysPostOp < 0 || daysSinceSuspension < 0 {
		records, err := s.List(ctx)
		if err != nil {
			return nil, err
		}
		latest := domain.Record{}
		if len(records) > 0 {
			latest = records[len(records)-1]
		}
		if daysPostOp < 0 {
			daysPostOp = latest.DaysPostOp
		}
		if daysSinceSuspension < 0 {
			daysSinceSuspension = latest.WithdrawalDay()
		}
	}
	return domain.Timeline(daysPostOp, daysSinceSuspension), nil
}

func hasAdvisory(advisories []domain.Advisory, kind domain.AdvisoryKind) bool {
	for _, advisory := range advisories {
		if advisory.Kind == kind {
			return true
		}
	}
	return false
}
