package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	"symptrack/internal/modules/journal/domain"
	journalout "symptrack/internal/modules/journal/port/out"
	"symptrack/internal/modules/journal/service"
	"symptrack/internal/platform/clock"
	apperrors "symptrack/internal/platform/errors"
)

type memoryStore struct {
	records []domain.Record
	loadErr error
}

func (m *memoryStore) Initialize(context.Context) error { return nil }

func (m *memoryStore) Append(_ context.Context, record domain.Record) (int, error) {
	m.records = append(m.records, record)
	return len(m.records), nil
}

func (m *memoryStore) LoadAll(context.Context) ([]domain.Record, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]domain.Record(nil), m.records...), nil
}

type recordingProjector struct {
	upserts   []int
	resets    int
	upsertErr error
}

func (p *recordingProjector) Reset(context.Context) error {
	p.resets++
	p.upserts = nil
	return nil
}

func (p *recordingProjector) Upsert(_ context.Context, seq int, _ domain.Record) error {
	if p.upsertErr != nil {
		return p.upsertErr
	}
	p.upserts = append(p.upserts, seq)
	return nil
}

func (p *recordingProjector) WeeklyAverages(context.Context) ([]journalout.WeeklyAverage, error) {
	return []journalout.WeeklyAverage{{Week: "2024-W09", Entries: len(p.upserts)}}, nil
}

var now = clock.Fixed(time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC))

func TestLogRequiresConfirmationWhenStillTakingBoth(t *testing.T) {
	t.Parallel()
	store := &memoryStore{}
	svc := service.NewJournalService(now, store, &recordingProjector{}, hclog.NewNullLogger())
	raw := domain.RawFields{DrugASuspended: "no", DrugBSuspended: "no"}

	_, _, advisories, err := svc.Log(context.Background(), raw, false)
	if !errors.Is(err, apperrors.ErrConfirmationRequired) {
		t.Fatalf("expected confirmation error, got %v", err)
	}
	if len(advisories) == 0 || len(store.records) != 0 {
		t.Fatalf("unconfirmed entry must not be saved")
	}

	record, seq, _, err := svc.Log(context.Background(), raw, true)
	if err != nil {
		t.Fatalf("confirmed log: %v", err)
	}
	if seq != 1 || domain.FormatDate(record.Date) != "01-03-2024" {
		t.Fatalf("unexpected saved record seq=%d date=%v", seq, record.Date)
	}
}

func TestLogSurvivesIndexFailure(t *testing.T) {
	t.Parallel()
	store := &memoryStore{}
	projector := &recordingProjector{upsertErr: errors.New("disk full")}
	svc := service.NewJournalService(now, store, projector, nil)

	if _, _, _, err := svc.Log(context.Background(), domain.RawFields{DrugASuspended: "today"}, false); err != nil {
		t.Fatalf("index failure must not fail the save: %v", err)
	}
	if len(store.records) != 1 {
		t.Fatalf("record should be persisted")
	}
}

func TestLogRejectsInvalidInputWithoutSaving(t *testing.T) {
	t.Parallel()
	store := &memoryStore{}
	svc := service.NewJournalService(now, store, nil, nil)
	_, _, _, err := svc.Log(context.Background(), domain.RawFields{Itch: "a lot", DrugASuspended: "today"}, true)
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if len(store.records) != 0 {
		t.Fatalf("invalid entry must not be saved")
	}
}

func TestReindexReplaysStore(t *testing.T) {
	t.Parallel()
	store := &memoryStore{records: []domain.Record{{}, {}, {}}}
	projector := &recordingProjector{upserts: []int{7}}
	svc := service.NewJournalService(now, store, projector, nil)

	count, err := svc.Reindex(context.Background())
	if err != nil {
		t.Fatalf("reindex: %v", err)
	}
	if count != 3 || projector.resets != 1 || len(projector.upserts) != 3 || projector.upserts[2] != 3 {
		t.Fatalf("unexpected reindex result count=%d projector=%+v", count, projector)
	}
	weeks, err := svc.WeeklyStats(context.Background())
	if err != nil || len(weeks) != 1 || weeks[0].Entries != 3 {
		t.Fatalf("unexpected weekly stats %v %v", weeks, err)
	}
}

func TestReindexWithoutIndex(t *testing.T) {
	t.Parallel()
	svc := service.NewJournalService(now, &memoryStore{}, nil, nil)
	if _, err := svc.Reindex(context.Background()); err == nil {
		t.Fatalf("reindex without index should fail")
	}
}

func TestTimelineFallsBackToLatestEntry(t *testing.T) {
	t.Parallel()
	early, _ := domain.ParseDate("01-03-2024")
	late, _ := domain.ParseDate("09-03-2024")
	store := &memoryStore{records: []domain.Record{
		{Date: late, DaysPostOp: 12, DrugASuspended: domain.Suspension2To3Days},
		{Date: early, DaysPostOp: 4, DrugASuspended: domain.SuspensionToday},
	}}
	svc := service.NewJournalService(now, store, nil, nil)

	statuses, err := svc.Timeline(context.Background(), -1, -1)
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if statuses[1].Day != 12 {
		t.Fatalf("surgery day should come from the latest entry, got %d", statuses[1].Day)
	}
	if statuses[0].Day != 4 {
		t.Fatalf("withdrawal day should come from the latest entry, got %d", statuses[0].Day)
	}

	explicit, err := svc.Timeline(context.Background(), 30, 0)
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if explicit[1].Phase.Label != "Weeks 4-6" || explicit[0].Started {
		t.Fatalf("unexpected explicit timeline %+v", explicit)
	}
}

func TestListPropagatesCorruptData(t *testing.T) {
	t.Parallel()
	corrupt := &apperrors.CorruptDataError{Path: "symptoms.csv", Row: 2, Reason: "bad"}
	svc := service.NewJournalService(now, &memoryStore{loadErr: corrupt}, nil, nil)
	if _, err := svc.List(context.Background()); !errors.Is(err, apperrors.ErrCorruptData) {
		t.Fatalf("expected corrupt data error, got %v", err)
	}
}
