package it

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

const demoStdout = "Sending Email: Dear John, Your order has been shipped!\n" +
	"Logging: Notification sent to John\n" +
	"Sending SMS: Dear Alice, Your appointment is confirmed!\n" +
	"Logging: Notification sent to Alice\n"

type TestCase struct {
	Name         string
	Args         []string
	Config       string // written to a temp file and passed via --config when set
	ExpectCode   int
	ExpectStdout string
	Contains     []string
}

type TestResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

func buildBinary(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	name := "solidnotify-test"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	bin := filepath.Join(t.TempDir(), name)
	cmd := exec.Command("go", "build", "-o", bin, ".")
	cmd.Dir = filepath.Join(wd, "../../cmd/app")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build binary: %v\n%s", err, out)
	}
	return bin
}

func TestE2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e in short mode")
	}
	bin := buildBinary(t)

	testCases := []TestCase{
		{
			Name:         "demo",
			ExpectStdout: demoStdout,
		},
		{
			Name:         "demo_verbose_keeps_stdout",
			Args:         []string{"-v"},
			ExpectStdout: demoStdout,
		},
		{
			Name:         "demo_discard_sink",
			Config:       "[logger]\nsink = \"discard\"\n",
			ExpectStdout: "Sending Email: Dear John, Your order has been shipped!\nSending SMS: Dear Alice, Your appointment is confirmed!\n",
		},
		{
			Name:         "send_sms",
			Args:         []string{"send", "-c", "sms", "--to", "Bob", "Table", "is", "ready"},
			ExpectStdout: "Sending SMS: Dear Bob, Table is ready\nLogging: Notification sent to Bob\n",
		},
		{
			Name:       "send_unknown_channel",
			Args:       []string{"send", "-c", "pigeon", "--to", "Bob", "hi"},
			ExpectCode: 2,
		},
		{
			Name:       "positional_args_rejected",
			Args:       []string{"John"},
			ExpectCode: 2,
		},
		{
			Name:       "invalid_config",
			Config:     "[logging]\nlevel = \"loud\"\n",
			ExpectCode: 2,
		},
		{
			Name:     "config_print",
			Args:     []string{"config"},
			Contains: []string{"[notifier]", "[logger]", "[logging]"},
		},
		{
			Name:     "help",
			Args:     []string{"--help"},
			Contains: []string{"send", "config", "version"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			result := run(t, bin, tc)
			checkExpectations(t, tc, result)
		})
	}
}

func run(t *testing.T, bin string, tc TestCase) TestResult {
	t.Helper()
	args := append([]string(nil), tc.Args...)
	if tc.Config != "" {
		path := filepath.Join(t.TempDir(), "config.toml")
		// #nosec G306 - test data does not require restrictive permissions.
		if err := os.WriteFile(path, []byte(tc.Config), 0o644); err != nil {
			t.Fatal(err)
		}
		args = append(args, "--config", path)
	}

	cmd := exec.Command(bin, args...) // #nosec G204 - test binary
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	code := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("failed to run binary: %v", err)
		}
		code = exitErr.ExitCode()
	}
	return TestResult{ExitCode: code, Stdout: stdout.String(), Stderr: stderr.String()}
}

func checkExpectations(t *testing.T, tc TestCase, result TestResult) {
	t.Helper()
	if result.ExitCode != tc.ExpectCode {
		t.Fatalf("exit code %d, want %d\nstderr:\n%s", result.ExitCode, tc.ExpectCode, result.Stderr)
	}
	if tc.ExpectStdout != "" && result.Stdout != tc.ExpectStdout {
		t.Fatalf("stdout:\n%s\nwant:\n%s", result.Stdout, tc.ExpectStdout)
	}
	for _, want := range tc.Contains {
		if !strings.Contains(result.Stdout, want) {
			t.Errorf("expected stdout to contain %q\nstdout:\n%s", want, result.Stdout)
		}
	}
}
