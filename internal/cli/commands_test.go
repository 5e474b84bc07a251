package cli

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/fast-create/fast-create/internal/output"
)

func TestVersion(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run("", "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "1.2.3" {
		t.Errorf("version --short = %q", out)
	}

	out, err = env.run("", "version", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var info map[string]string
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("version --json is not JSON: %v", err)
	}
	if info["commit"] != "0123456789abcdef" {
		t.Errorf("commit = %q", info["commit"])
	}

	out, err = env.run("", "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "fast-create version 1.2.3") {
		t.Errorf("version = %q", out)
	}
}

func TestBuildVersion(t *testing.T) {
	a := newApp("dev", "unknown", "unknown")
	if got := a.buildVersion(); got != "dev" {
		t.Errorf("buildVersion() = %q, want dev", got)
	}
	a = newApp("1.0.0", "abcdef0123", "2026-01-02")
	if got := a.buildVersion(); got != "1.0.0 (abcdef0, 2026-01-02)" {
		t.Errorf("buildVersion() = %q", got)
	}
}

func TestConfigSetGet(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.run("", "config", "set", "package_manager", "npm"); err != nil {
		t.Fatalf("config set error: %v", err)
	}
	out, err := env.run("", "config", "get", "package_manager")
	if err != nil {
		t.Fatalf("config get error: %v", err)
	}
	if strings.TrimSpace(out) != "npm" {
		t.Errorf("config get = %q, want npm", out)
	}

	out, err = env.run("", "config", "path")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != env.path {
		t.Errorf("config path = %q, want %q", out, env.path)
	}
}

func TestConfigErrors(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run("", "config", "set", "package_manager", "bun")
	if got := output.GetExitCode(err); got != output.ExitUserError {
		t.Errorf("set invalid: exit code = %d", got)
	}
	_, err = env.run("", "config", "get", "log_level")
	if got := output.GetExitCode(err); got != output.ExitUserError {
		t.Errorf("get unset: exit code = %d", got)
	}
}

func TestDoctorPasses(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run("", "doctor")
	if err != nil {
		t.Fatalf("doctor error: %v\n%s", err, out)
	}
	for _, want := range []string{"git found", "node 18.17.0 satisfies >= 14.0.0", "yarn found", "All checks passed."} {
		if !strings.Contains(out, want) {
			t.Errorf("doctor output missing %q:\n%s", want, out)
		}
	}
}

func TestDoctorOldNode(t *testing.T) {
	env := newTestEnv(t)
	env.ex.nodeVersion = "v12.22.0"

	out, err := env.run("", "doctor")
	if got := output.GetExitCode(err); got != output.ExitUserError {
		t.Fatalf("exit code = %d, want %d", got, output.ExitUserError)
	}
	if !strings.Contains(out, "node 12.22.0 does not satisfy") {
		t.Errorf("doctor output:\n%s", out)
	}
}

func TestDoctorMissingTools(t *testing.T) {
	env := newTestEnv(t)
	env.miss["git"] = true
	env.miss["pnpm"] = true
	if err := os.WriteFile(env.path, []byte("package_manager: pnpm\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := env.run("", "doctor")
	if err == nil {
		t.Fatal("expected doctor to report problems")
	}
	if !strings.Contains(out, "[MISS] git not found") || !strings.Contains(out, "[MISS] pnpm not found") {
		t.Errorf("doctor output:\n%s", out)
	}
}

func TestDoctorInvalidConfig(t *testing.T) {
	env := newTestEnv(t)
	if err := os.WriteFile(env.path, []byte("colour: blue\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := env.run("", "doctor")
	if err == nil {
		t.Fatal("expected doctor to fail on invalid config")
	}
	if !strings.Contains(out, "[FAIL]") {
		t.Errorf("doctor output:\n%s", out)
	}
}
