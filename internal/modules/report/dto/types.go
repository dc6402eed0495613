package dto

type RenderChartInput struct {
	OutPath string
	Open    bool
}

type ChartOutput struct {
	Path        string
	Entries     int
	Placeholder bool
}

type ExportInput struct{}

type ExportOutput struct {
	Stamp     string
	ChartPath string
	PDFPath   string
	NotePath  string
	Entries   int
}

type InspectInput struct {
	Path string
}

type InspectOutput struct {
	Path      string
	Pages     int
	FirstPage string
}
