package catalog

// Problem is one defect found by Check
type Problem struct {
	Path    string `json:"path" yaml:"path" toml:"path"`
	Message string `json:"message,omitempty" yaml:"message,omitempty" toml:"message,omitempty"` // entry name, empty for file-level problems
	Err     error  `json:"-" yaml:"-" toml:"-"`
	Detail  string `json:"error" yaml:"error" toml:"error"`
}

// Check validates paths without loading them, reporting every defect instead
// of stopping at the first. It returns the number of valid entries found.
func (c *Catalog) Check(paths ...string) ([]Problem, int) {
	var problems []Problem
	valid := 0

	report := func(path, name string, err error) {
		problems = append(problems, Problem{Path: path, Message: name, Err: err, Detail: err.Error()})
	}

	for _, path := range paths {
		f, err := readFile(path)
		if err != nil {
			report(path, "", err)
			continue
		}
		if err := c.checkRequires(path, f.Requires); err != nil {
			report(path, "", err)
			continue
		}
		for _, name := range sortedNames(f.Messages) {
			if _, err := c.compileEntry(path, name, f.Messages[name]); err != nil {
				report(path, name, err)
				continue
			}
			valid++
		}
	}
	return problems, valid
}
