package manifest

// Top-level keys tooling writers contribute to.
const (
	KeyScripts    = "scripts"
	KeyHookRunner = "husky"
	KeyLintStaged = "lint-staged"
	keyHooks      = "hooks"
)

// Fragments accumulates top-level package.json entries contributed by
// writers during a run. Keys keep the order in which they were first set.
type Fragments struct {
	doc        *Document
	mergeHooks bool
}

// NewFragments returns an empty accumulator. With mergeHooks set, hooks
// registered by different writers are combined; otherwise the last writer to
// register a hook replaces the whole hooks section.
func NewFragments(mergeHooks bool) *Fragments {
	return &Fragments{doc: NewDocument(), mergeHooks: mergeHooks}
}

// Set records value under key. A later Set for the same key wins.
func (f *Fragments) Set(key string, value any) {
	f.doc.Set(key, value)
}

// AddHook registers command for a git hook under the hook runner's section.
func (f *Fragments) AddHook(hook, command string) {
	runner := f.doc.Child(KeyHookRunner)
	if !f.mergeHooks {
		runner.Delete(keyHooks)
	}
	runner.Child(keyHooks).Set(hook, command)
}

// Hook returns the command registered for hook.
func (f *Fragments) Hook(hook string) (string, bool) {
	runner, ok := f.doc.Get(KeyHookRunner)
	if !ok {
		return "", false
	}
	rd, ok := runner.(*Document)
	if !ok {
		return "", false
	}
	hooks, ok := rd.Get(keyHooks)
	if !ok {
		return "", false
	}
	hd, ok := hooks.(*Document)
	if !ok {
		return "", false
	}
	v, ok := hd.Get(hook)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Get returns the fragment stored under key.
func (f *Fragments) Get(key string) (any, bool) {
	return f.doc.Get(key)
}

// Keys returns fragment keys in first-set order.
func (f *Fragments) Keys() []string {
	return f.doc.Keys()
}

// Len returns the number of fragments.
func (f *Fragments) Len() int {
	return f.doc.Len()
}

// Merge copies every fragment into d. Fragments override existing keys,
// which keep their original position; new keys are appended.
func (d *Document) Merge(f *Fragments) {
	for pair := f.doc.fields.Oldest(); pair != nil; pair = pair.Next() {
		d.Set(pair.Key, pair.Value)
	}
}
