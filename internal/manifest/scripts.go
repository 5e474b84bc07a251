package manifest

import "github.com/fast-create/fast-create/internal/tooling"

// Script names written into every generated package.json.
const (
	ScriptTest            = "test"
	ScriptClean           = "clean"
	ScriptBuild           = "build"
	ScriptPrepare         = "prepare"
	ScriptCheckTypes      = "check-types"
	ScriptCheckFormatting = "check-formatting"
)

const checkFormat = `prettier --check '**/*.{js,json,md,tsx,ts}'`

// Scripts computes the scripts section for sel. The set is fixed apart from
// check-formatting, which needs the lint/format tooling. run turns a script
// name into the package manager's invocation of it, e.g. "build" to
// "yarn build".
func Scripts(sel tooling.Selection, run func(script string) string) *Document {
	s := NewDocument()

	s.Set(ScriptTest, "jest")
	s.Set(ScriptClean, "rm -rf ./dist")
	s.Set(ScriptBuild, run(ScriptClean)+" && tsc")
	s.Set(ScriptPrepare, run(ScriptBuild))
	s.Set(ScriptCheckTypes, "tsc --noEmit")
	if sel.Has(tooling.LintFormat) {
		s.Set(ScriptCheckFormatting, checkFormat)
	}
	return s
}

// SetScripts replaces the scripts section of d.
func (d *Document) SetScripts(scripts *Document) {
	d.Set(KeyScripts, scripts)
}
