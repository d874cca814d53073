package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/etnz/journal/config"
)

func TestExtensionMechanism(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extension script requires a POSIX shell")
	}
	dir, out := setup(t)

	bin := t.TempDir()
	script := "#!/bin/sh\n" +
		"echo \"args=$*\"\n" +
		"echo \"" + config.EnvDir + "=$" + config.EnvDir + "\"\n" +
		"echo \"" + EnvVerbose + "=$" + EnvVerbose + "\"\n" +
		"exit 3\n"
	if err := os.WriteFile(filepath.Join(bin, "jnl-hello"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	found, code := RunExtension("hello", []string{"a", "b"})
	if !found {
		t.Fatal("RunExtension() did not find jnl-hello")
	}
	if code != 3 {
		t.Errorf("RunExtension() exit code = %d, want 3", code)
	}
	want := []string{"args=a b", config.EnvDir + "=" + dir, EnvVerbose + "=false"}
	got := strings.Split(strings.TrimSpace(out.String()), "\n")
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("extension output = %q, want %q", got, want)
	}

	if found, _ := RunExtension("missing-extension", nil); found {
		t.Error("RunExtension() found a missing extension")
	}
}
