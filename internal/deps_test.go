package deps_test

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// Engine packages must not pull in the terminal or CLI stack.
var forbidden = []string{
	"github.com/charmbracelet/",
	"github.com/robfig/cron",
	"cloudeng.io/cmdutil",
	"github.com/comalice/datepickerx/internal/tui",
	"github.com/comalice/datepickerx/internal/config",
	"github.com/comalice/datepickerx/internal/script",
	"github.com/comalice/datepickerx/render",
}

func TestEngineImports(t *testing.T) {
	for _, dir := range []string{"..", "../binding", "../datekey", "../grid", "../locale", "fsm", "../notify"} {
		files, err := filepath.Glob(filepath.Join(dir, "*.go"))
		if err != nil {
			t.Fatal(err)
		}
		if len(files) == 0 {
			t.Fatalf("no Go files in %s", dir)
		}
		fset := token.NewFileSet()
		for _, file := range files {
			if strings.HasSuffix(file, "_test.go") {
				continue
			}
			f, err := parser.ParseFile(fset, file, nil, parser.ImportsOnly)
			if err != nil {
				t.Fatalf("%s: %v", file, err)
			}
			for _, imp := range f.Imports {
				path, _ := strconv.Unquote(imp.Path.Value)
				for _, prefix := range forbidden {
					if strings.HasPrefix(path, prefix) {
						t.Errorf("%s imports %s", file, path)
					}
				}
			}
		}
	}
}
