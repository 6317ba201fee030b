package suite

// Suite is a YAML-defined list of expressions with expected outcomes,
// used for smoke-checking the pipeline from the command line.
type Suite struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// Case expects either a value (compared at three-decimal resolution)
// or an error kind, never both.
type Case struct {
	Name       string   `yaml:"name"`
	Expression string   `yaml:"expression"`
	Want       *float64 `yaml:"want,omitempty"`
	WantErr    string   `yaml:"wantErr,omitempty"`
}
