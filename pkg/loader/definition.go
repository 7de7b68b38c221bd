package loader

// Definition is one YAML document of menu nodes.
// It uses mapstructure tags so that unknown keys are reported as errors.
type Definition struct {
	Start string     `mapstructure:"start"`
	Nodes []NodeSpec `mapstructure:"nodes"`
}

// NodeSpec declares one node. Which fields apply depends on Type.
type NodeSpec struct {
	ID          string `mapstructure:"id"`
	Type        string `mapstructure:"type"`
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
	Columns     *int   `mapstructure:"columns"`
	TabWidth    *int   `mapstructure:"tab_width"`
	Prompt      string `mapstructure:"prompt"`
	To          string `mapstructure:"to"`

	// options
	Options []OptionSpec `mapstructure:"options"`

	// input
	Value    string       `mapstructure:"value"`
	Validate ValidateSpec `mapstructure:"validate"`

	// info
	Sections []SectionSpec `mapstructure:"sections"`
	Pause    string        `mapstructure:"pause"`

	// function
	Call string         `mapstructure:"call"`
	Args map[string]any `mapstructure:"args"`

	// exit
	Message string `mapstructure:"message"`
}

type OptionSpec struct {
	Text string `mapstructure:"text"`
	To   string `mapstructure:"to"`
}

// ValidateSpec constrains input values. Min and Max bound numbers, or the
// length of strings.
type ValidateSpec struct {
	NonEmpty bool     `mapstructure:"non_empty"`
	Min      *float64 `mapstructure:"min"`
	Max      *float64 `mapstructure:"max"`
	Choices  []string `mapstructure:"choices"`
}

type SectionSpec struct {
	Header string `mapstructure:"header"`
	Text   string `mapstructure:"text"`
}

// Value types accepted by input nodes.
const (
	ValueString = "string"
	ValueInt    = "int"
	ValueFloat  = "float"
	ValueBool   = "bool"
)
