package prompt

import _ "embed"

// Template files embedded at compile time
var (
	//go:embed templates/recommend.txt
	RecommendTemplate string

	//go:embed templates/fact-check.txt
	FactCheckTemplate string

	//go:embed templates/mock-data.txt
	MockDataTemplate string

	//go:embed templates/humanize.txt
	HumanizeTemplate string

	//go:embed templates/summarize.txt
	SummarizeTemplate string

	//go:embed templates/geo-vision.txt
	GeoVisionTemplate string
)
