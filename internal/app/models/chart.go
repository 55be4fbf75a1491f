package models

type ChartKind string

const (
	ChartKindRadar ChartKind = "radar"
	ChartKindBar   ChartKind = "bar"
	ChartKindPie   ChartKind = "pie"
)

// ChartDescriptor is a renderer-agnostic chart description. Labels, values
// and palette are index-aligned; SVG is populated only for kinds that have a
// vector rendering.
type ChartDescriptor struct {
	Kind         ChartKind         `json:"kind"`
	Type         QuestionnaireType `json:"questionnaireType"`
	AgeVariant   AgeVariant        `json:"ageVariant"`
	Title        string            `json:"title"`
	DatasetLabel string            `json:"datasetLabel"`
	Labels       []string          `json:"labels"`
	Values       []int             `json:"values"`
	Palette      []string          `json:"palette"`
	SVG          string            `json:"svg,omitempty"`
	ExportURL    string            `json:"exportUrl,omitempty"`
}
