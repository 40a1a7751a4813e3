package driver

import (
	"fmt"

	"github.com/takoeight0821/lumen/ast"
)

// SpanCheck verifies that every node's span covers its children.
type SpanCheck struct{}

func (SpanCheck) Init(*ast.File) error {
	return nil
}

func (SpanCheck) Run(file *ast.File) (*ast.File, error) {
	if err := ast.Verify(file); err != nil {
		return file, fmt.Errorf("span check %s: %w", file.Name, err)
	}
	return file, nil
}

// Stats counts the nodes of each file it sees.
type Stats struct {
	Files int
	Nodes int
}

func (s *Stats) Init(*ast.File) error {
	s.Files++
	return nil
}

func (s *Stats) Run(file *ast.File) (*ast.File, error) {
	s.Nodes += ast.Count(file)
	return file, nil
}
