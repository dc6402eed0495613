package usecase

import (
	"context"

	"symptrack/internal/modules/journal/domain"
	"symptrack/internal/modules/journal/dto"
	journalin "symptrack/internal/modules/journal/port/in"
	"symptrack/internal/modules/journal/service"
)

type Interactor struct {
	svc *service.JournalService
}

func NewInteractor(svc *service.JournalService) journalin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Initialize(ctx context.Context) error {
	return i.svc.Initialize(ctx)
}

func (i *Interactor) Log(ctx context.Context, input dto.LogInput) (dto.LogOutput, error) {
	record, seq, advisories, err := i.svc.Log(ctx, toRawFields(input.Record), input.Confirm)
	out := dto.LogOutput{Seq: seq, Advisories: toAdvisoryOutputs(advisories)}
	if err != nil {
		return out, err
	}
	out.Record = toRecordOutput(record)
	return out, nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.RecordOutput, error) {
	records, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecordOutput, 0, len(records))
	for _, record := range records {
		out = append(out, toRecordOutput(record))
	}
	return out, nil
}

func (i *Interactor) Reindex(ctx context.Context, _ dto.ReindexInput) (int, error) {
	return i.svc.Reindex(ctx)
}

func (i *Interactor) WeeklyStats(ctx context.Context) ([]dto.WeeklyStatOutput, error) {
	weeks, err := i.svc.WeeklyStats(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WeeklyStatOutput, 0, len(weeks))
	for _, week := range weeks {
		out = append(out, dto.WeeklyStatOutput{
			Week:           week.Week,
			Entries:        week.Entries,
			MeanCongestion: week.MeanCongestion,
			MeanItch:       week.MeanItch,
			MeanSneezing:   week.MeanSneezing,
			MeanPain:       week.MeanPain,
		})
	}
	return out, nil
}

func (i *Interactor) Timeline(ctx context.Context, input dto.TimelineInput) ([]dto.TrackOutput, error) {
	statuses, err := i.svc.Timeline(ctx, input.DaysPostOp, input.DaysSinceSuspension)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TrackOutput, 0, len(statuses))
	for _, status := range statuses {
		phases := domain.Phases(status.Track)
		track := dto.TrackOutput{
			Track:    string(status.Track),
			Day:      status.Day,
			Started:  status.Started,
			Finished: status.Finished,
			Current:  dto.PhaseOutput{Label: status.Phase.Label, Description: status.Phase.Description},
			Phases:   make([]dto.PhaseOutput, 0, len(phases)),
		}
		for _, phase := range phases {
			track.Phases = append(track.Phases, dto.PhaseOutput{Label: phase.Label, Description: phase.Description})
		}
		out = append(out, track)
	}
	return out, nil
}

func (i *Interactor) Fields() []dto.FieldOutput {
	out := make([]dto.FieldOutput, 0, len(domain.Schema))
	for _, spec := range domain.Schema {
		out = append(out, dto.FieldOutput{
			Name:    spec.Name,
			Kind:    string(spec.Kind),
			Options: append([]string(nil), spec.Options...),
		})
	}
	return out
}

func toRawFields(input dto.RecordInput) domain.RawFields {
	return domain.RawFields{
		Date:                 input.Date,
		Congestion:           input.Congestion,
		Itch:                 input.Itch,
		FacialPain:           input.FacialPain,
		NasalDischarge:       input.NasalDischarge,
		BreathingDifficulty:  input.BreathingDifficulty,
		Cough:                input.Cough,
		Sneezing:             input.Sneezing,
		SkinRash:             input.SkinRash,
		Hives:                input.Hives,
		Swelling:             input.Swelling,
		DrugASuspended:       input.DrugASuspended,
		DrugBSuspended:       input.DrugBSuspended,
		OtherMedications:     input.OtherMedications,
		DaysPostOp:           input.DaysPostOp,
		BreathingImprovement: input.BreathingImprovement,
		Notes:                input.Notes,
	}
}

func toRecordOutput(record domain.Record) dto.RecordOutput {
	return dto.RecordOutput{
		Date:                 record.Date,
		Congestion:           record.Congestion,
		Itch:                 record.Itch,
		FacialPain:           string(record.FacialPain),
		NasalDischarge:       string(record.NasalDischarge),
		BreathingDifficulty:  string(record.BreathingDifficulty),
		Cough:                string(record.Cough),
		Sneezing:             record.Sneezing,
		SkinRash:             string(record.SkinRash),
		Hives:                string(record.Hives),
		Swelling:             string(record.Swelling),
		DrugASuspended:       string(record.DrugASuspended),
		DrugBSuspended:       string(record.DrugBSuspended),
		OtherMedications:     record.OtherMedications,
		DaysPostOp:           record.DaysPostOp,
		BreathingImprovement: string(record.BreathingImprovement),
		Notes:                record.Notes,
		DrugADays:            domain.SuspensionDays(record.DrugASuspended),
		DrugBDays:            domain.SuspensionDays(record.DrugBSuspended),
		DrugAStopped:         domain.Suspended(record.DrugASuspended),
		DrugBStopped:         domain.Suspended(record.DrugBSuspended),
		PainScore:            domain.PainScore(record.FacialPain),
	}
}

func toAdvisoryOutputs(advisories []domain.Advisory) []dto.AdvisoryOutput {
	out := make([]dto.AdvisoryOutput, 0, len(advisories))
	for _, advisory := range advisories {
		out = append(out, dto.AdvisoryOutput{Kind: string(advisory.Kind), Message: advisory.Message})
	}
	return out
}
