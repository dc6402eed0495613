package out

import (
	"context"

	journalin "symptrack/internal/modules/journal/port/in"
	"symptrack/internal/modules/report/domain"
	reportout "symptrack/internal/modules/report/port/out"
)

type JournalEntryAdapter struct {
	journal journalin.Usecase
}

func NewJournalEntryAdapter(journal journalin.Usecase) reportout.EntrySource {
	return &JournalEntryAdapter{journal: journal}
}

func (a *JournalEntryAdapter) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	records, err := a.journal.List(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.Entry, 0, len(records))
	for _, record := range records {
		entries = append(entries, domain.Entry{
			Date:                 record.Date,
			Congestion:           record.Congestion,
			Itch:                 record.Itch,
			FacialPain:           record.FacialPain,
			NasalDischarge:       record.NasalDischarge,
			BreathingDifficulty:  record.BreathingDifficulty,
			Cough:                record.Cough,
			Sneezing:             record.Sneezing,
			SkinRash:             record.SkinRash,
			Hives:                record.Hives,
			Swelling:             record.Swelling,
			DrugASuspended:       record.DrugASuspended,
			DrugBSuspended:       record.DrugBSuspended,
			OtherMedications:     record.OtherMedications,
			DaysPostOp:           record.DaysPostOp,
			BreathingImprovement: record.BreathingImprovement,
			Notes:                record.Notes,
			DrugADays:            record.DrugADays,
			DrugBDays:            record.DrugBDays,
			DrugAStopped:         record.DrugAStopped,
			DrugBStopped:         record.DrugBStopped,
			PainScore:            record.PainScore,
		})
	}
	return entries, nil
}
