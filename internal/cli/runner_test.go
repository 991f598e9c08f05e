package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, input string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Execute(args, strings.NewReader(input), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestExecute(t *testing.T) {
	t.Run("missing file starts empty and exit writes it", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "todo.txt")
		code, out, errOut := execute(t, "5\n", "--file", path)
		if code != ExitOK {
			t.Fatalf("exit code = %d, stderr = %q", code, errOut)
		}
		if !strings.Contains(out, "Your todo list is empty.") {
			t.Errorf("expected empty message, got:\n%s", out)
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("file should exist after exit: %v", err)
		}
		if len(raw) != 0 {
			t.Errorf("file = %q, want empty", raw)
		}
	})

	t.Run("views stored items in order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "todo.txt")
		if err := os.WriteFile(path, []byte("[ ] Buy milk\n[x] Pay bills"), 0o644); err != nil {
			t.Fatal(err)
		}
		code, out, _ := execute(t, "1\n5\n", "-f", path)
		if code != ExitOK {
			t.Fatalf("exit code = %d", code)
		}
		if !strings.Contains(out, "1. [ ] Buy milk\n2. [x] Pay bills\n") {
			t.Errorf("unexpected output:\n%s", out)
		}
	})

	t.Run("edits are written back without trailing newline", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "todo.txt")
		if err := os.WriteFile(path, []byte("[ ] Buy milk\nnot a todo\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		code, _, errOut := execute(t, "2\nPay bills\n4\n1\n5\n", "-f", path)
		if code != ExitOK {
			t.Fatalf("exit code = %d, stderr = %q", code, errOut)
		}
		if !strings.Contains(errOut, "skipping todo line") {
			t.Errorf("expected warning for the bad line, got %q", errOut)
		}
		raw, _ := os.ReadFile(path)
		if got, want := string(raw), "[x] Buy milk\n[ ] Pay bills"; got != want {
			t.Errorf("file = %q, want %q", got, want)
		}
	})

	t.Run("empty file path is fatal", func(t *testing.T) {
		code, _, errOut := execute(t, "5\n", "--file", "")
		if code != ExitError {
			t.Fatalf("exit code = %d, want %d", code, ExitError)
		}
		if !strings.Contains(errOut, "the file path cannot be empty") {
			t.Errorf("stderr = %q", errOut)
		}
	})

	t.Run("unreadable file is fatal", func(t *testing.T) {
		dir := t.TempDir()
		code, _, errOut := execute(t, "5\n", "-f", dir)
		if code != ExitError {
			t.Fatalf("exit code = %d, want %d", code, ExitError)
		}
		if !strings.Contains(errOut, "read file") {
			t.Errorf("stderr = %q", errOut)
		}
	})

	t.Run("closed input is fatal and writes nothing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "todo.txt")
		code, _, errOut := execute(t, "1\n", "-f", path)
		if code != ExitError {
			t.Fatalf("exit code = %d, want %d", code, ExitError)
		}
		if !strings.Contains(errOut, "input closed") {
			t.Errorf("stderr = %q", errOut)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("file should not be created, stat err = %v", err)
		}
	})

	t.Run("debug level logs the file path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "todo.txt")
		code, _, errOut := execute(t, "5\n", "-f", path, "--log-level", "debug", "--log-format", "logfmt")
		if code != ExitOK {
			t.Fatalf("exit code = %d", code)
		}
		if !strings.Contains(errOut, "using todo file") || !strings.Contains(errOut, path) {
			t.Errorf("stderr = %q", errOut)
		}
	})

	t.Run("unknown flag is a usage error", func(t *testing.T) {
		code, _, _ := execute(t, "", "--bogus")
		if code != ExitUsage {
			t.Fatalf("exit code = %d, want %d", code, ExitUsage)
		}
	})

	t.Run("positional arguments are a usage error", func(t *testing.T) {
		code, _, _ := execute(t, "", "extra")
		if code != ExitUsage {
			t.Fatalf("exit code = %d, want %d", code, ExitUsage)
		}
	})

	t.Run("invalid log level is fatal", func(t *testing.T) {
		code, _, errOut := execute(t, "5\n", "-f", filepath.Join(t.TempDir(), "t.txt"), "--log-level", "loud")
		if code != ExitError || !strings.Contains(errOut, "unknown log level") {
			t.Fatalf("code = %d, stderr = %q", code, errOut)
		}
	})

	t.Run("version", func(t *testing.T) {
		code, out, _ := execute(t, "", "--version")
		if code != ExitOK || !strings.Contains(out, Version) {
			t.Fatalf("code = %d, out = %q", code, out)
		}
	})
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	todoPath := filepath.Join(dir, "from-config.txt")
	cfgPath := filepath.Join(dir, "todo.toml")
	content := "file = " + quote(todoPath) + "\ntheme = \"mono\"\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	code, out, errOut := execute(t, "2\nfrom config\n5\n", "--config", cfgPath)
	if code != ExitOK {
		t.Fatalf("exit code = %d, stderr = %q", code, errOut)
	}
	if !strings.Contains(out, "ok: added") {
		t.Errorf("mono theme not applied:\n%s", out)
	}
	raw, err := os.ReadFile(todoPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "[ ] from config" {
		t.Errorf("file = %q", raw)
	}

	t.Run("flag overrides config", func(t *testing.T) {
		other := filepath.Join(dir, "flag.txt")
		code, _, _ := execute(t, "5\n", "--config", cfgPath, "-f", other)
		if code != ExitOK {
			t.Fatalf("exit code = %d", code)
		}
		if _, err := os.Stat(other); err != nil {
			t.Errorf("flag path not used: %v", err)
		}
	})

	t.Run("missing explicit config is fatal", func(t *testing.T) {
		code, _, _ := execute(t, "5\n", "--config", filepath.Join(dir, "nope.toml"))
		if code != ExitError {
			t.Fatalf("exit code = %d, want %d", code, ExitError)
		}
	})
}

func quote(s string) string {
	return "'" + s + "'"
}
