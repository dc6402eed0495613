package domain

type FieldKind string

const (
	FieldDate   FieldKind = "date"
	FieldScale  FieldKind = "scale"
	FieldCount  FieldKind = "count"
	FieldChoice FieldKind = "choice"
	FieldText   FieldKind = "text"
)

// FieldSpec describes one column of the diary.
type FieldSpec struct {
	Name    string
	Kind    FieldKind
	Options []string
}

var (
	SeverityOptions    = []string{string(SeverityNone), string(SeverityMild), string(SeverityModerate), string(SeveritySevere)}
	DischargeOptions   = []string{string(DischargeNone), string(DischargeClear), string(DischargeThick), string(DischargeBloody)}
	CoughOptions       = []string{string(CoughNone), string(CoughDry), string(CoughProductive), string(CoughPersistent)}
	HivesOptions       = []string{string(HivesNone), string(HivesLocalized), string(HivesGeneralized)}
	SwellingOptions    = []string{string(SwellingNone), string(SwellingFacial), string(SwellingLipsEyes), string(SwellingGeneralized)}
	SuspensionOptions  = []string{string(SuspensionNo), string(SuspensionToday), string(Suspension1DayAgo), string(Suspension2To3Days), string(SuspensionOver3Days)}
	ImprovementOptions = []string{string(ImprovementNoChange), string(ImprovementSlightlyBetter), string(ImprovementMuchBetter), string(ImprovementWorsening)}
)

// Schema lists every field in persisted column order.
var Schema = []FieldSpec{
	{Name: "date", Kind: FieldDate},
	{Name: "congestion", Kind: FieldScale},
	{Name: "itch", Kind: FieldScale},
	{Name: "facial_pain", Kind: FieldChoice, Options: SeverityOptions},
	{Name: "nasal_discharge", Kind: FieldChoice, Options: DischargeOptions},
	{Name: "breathing_difficulty", Kind: FieldChoice, Options: SeverityOptions},
	{Name: "cough", Kind: FieldChoice, Options: CoughOptions},
	{Name: "sneezing", Kind: FieldScale},
	{Name: "skin_rash", Kind: FieldChoice, Options: SeverityOptions},
	{Name: "hives", Kind: FieldChoice, Options: HivesOptions},
	{Name: "swelling", Kind: FieldChoice, Options: SwellingOptions},
	{Name: "drugA_suspended", Kind: FieldChoice, Options: SuspensionOptions},
	{Name: "drugB_suspended", Kind: FieldChoice, Options: SuspensionOptions},
	{Name: "other_medications", Kind: FieldText},
	{Name: "days_post_op", Kind: FieldCount},
	{Name: "breathing_improvement", Kind: FieldChoice, Options: ImprovementOptions},
	{Name: "notes", Kind: FieldText},
}

// Columns is the header row of the persisted store.
var Columns = func() []string {
	out := make([]string, 0, len(Schema))
	for _, spec := range Schema {
		out = append(out, spec.Name)
	}
	return out
}()

// Set assigns a raw value by column name. Unknown names are ignored.
func (r *RawFields) Set(column, value string) {
	if field := rawField(r, column); field != nil {
		*field = value
	}
}

func rawField(raw *RawFields, column string) *string {
	switch column {
	case "date":
		return &raw.Date
	case "congestion":
		return &raw.Congestion
	case "itch":
		return &raw.Itch
	case "facial_pain":
		return &raw.FacialPain
	case "nasal_discharge":
		return &raw.NasalDischarge
	case "breathing_difficulty":
		return &raw.BreathingDifficulty
	case "cough":
		return &raw.Cough
	case "sneezing":
		return &raw.Sneezing
	case "skin_rash":
		return &raw.SkinRash
	case "hives":
		return &raw.Hives
	case "swelling":
		return &raw.Swelling
	case "drugA_suspended":
		return &raw.DrugASuspended
	case "drugB_suspended":
		return &raw.DrugBSuspended
	case "other_medications":
		return &raw.OtherMedications
	case "days_post_op":
		return &raw.DaysPostOp
	case "breathing_improvement":
		return &raw.BreathingImprovement
	case "notes":
		return &raw.Notes
	default:
		return nil
	}
}
