package manifest

import (
	"strings"
	"testing"
)

func TestFragmentsSetLastWins(t *testing.T) {
	f := NewFragments(true)
	f.Set(KeyLintStaged, "first")
	f.Set("other", 1)
	f.Set(KeyLintStaged, "second")

	if v, _ := f.Get(KeyLintStaged); v != "second" {
		t.Errorf("Get(lint-staged) = %v, want second", v)
	}
	if got := strings.Join(f.Keys(), ","); got != "lint-staged,other" {
		t.Errorf("Keys() = %s", got)
	}
}

func TestAddHookMerges(t *testing.T) {
	f := NewFragments(true)
	f.AddHook("commit-msg", "commitlint -E HUSKY_GIT_PARAMS")
	f.AddHook("pre-commit", "lint-staged")

	if cmd, ok := f.Hook("commit-msg"); !ok || cmd != "commitlint -E HUSKY_GIT_PARAMS" {
		t.Errorf("commit-msg hook = %q, %v", cmd, ok)
	}
	if cmd, ok := f.Hook("pre-commit"); !ok || cmd != "lint-staged" {
		t.Errorf("pre-commit hook = %q, %v", cmd, ok)
	}
	if f.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (single husky fragment)", f.Len())
	}
}

func TestAddHookReplaces(t *testing.T) {
	f := NewFragments(false)
	f.AddHook("commit-msg", "commitlint -E HUSKY_GIT_PARAMS")
	f.AddHook("pre-commit", "lint-staged")

	if _, ok := f.Hook("commit-msg"); ok {
		t.Error("commit-msg hook should be replaced when merging is off")
	}
	if cmd, _ := f.Hook("pre-commit"); cmd != "lint-staged" {
		t.Errorf("pre-commit hook = %q", cmd)
	}
}

func TestHookMissing(t *testing.T) {
	if _, ok := NewFragments(true).Hook("pre-commit"); ok {
		t.Error("Hook() on empty fragments should report false")
	}
}

func TestMergeOverridesAndAppends(t *testing.T) {
	d, err := Parse([]byte(`{"name":"myapp","husky":{"old":true},"license":"MIT"}`))
	if err != nil {
		t.Fatal(err)
	}
	f := NewFragments(true)
	f.AddHook("pre-commit", "lint-staged")
	f.Set(KeyLintStaged, map[string][]string{"*.ts": {"prettier --write"}})

	d.Merge(f)

	if got := strings.Join(d.Keys(), ","); got != "name,husky,license,lint-staged" {
		t.Errorf("Keys() = %s", got)
	}
	out, err := d.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), `"old"`) {
		t.Error("fragment should replace the whole husky value")
	}
	if !strings.Contains(string(out), `"pre-commit": "lint-staged"`) {
		t.Errorf("merged output missing hook:\n%s", out)
	}
}
