// Package corpus assembles the rendered training corpus: one randomized
// render (plus rarity-weighted re-renders) per valid resume, each paired with
// its structured label and the configuration that produced it.
package corpus

// Sample is one persisted corpus record: rendered text plus the structured
// label and enough configuration to reproduce the render.
type Sample struct {
	Text           string            `json:"text"`
	ResumeJSON     map[string]any    `json:"resume_json"`
	TemplateConfig map[string]string `json:"template_config"`
	DateFormat     string            `json:"date_fmt"`
	SourceIndex    int               `json:"source_index"`
}
