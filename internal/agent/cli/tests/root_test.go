package tests

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-todo-backend/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-todo-backend/internal/agent/config"
)

func TestNewRootCmd_HasExpectedSubcommands(t *testing.T) {
	cmd := cli.NewRootCmd("1.0.0", "2026-08-31")

	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}

	want := []string{"register", "login", "add", "list", "update", "delete", "version"}
	for _, w := range want {
		if !names[w] {
			t.Fatalf("expected subcommand %q to exist", w)
		}
	}
}

func TestNewRootCmd_PersistentPreRunE_LoadsCreds(t *testing.T) {
	// Подготовим дефолтный путь и валидный файл кредов ДО запуска команды.
	p, err := config.DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	if _, statErr := os.Stat(p); statErr == nil {
		t.Skipf("real credentials file exists at %q, skipping", p)
	}

	// подчистим после теста
	t.Cleanup(func() { _ = os.Remove(p) })

	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	if err := config.Save(p, &config.Credentials{AccessToken: "access-1"}); err != nil {
		t.Fatalf("Save creds: %v", err)
	}

	root := cli.NewRootCmd("1.0.0", "2026-08-31")

	// Важно: чтобы выполнить PersistentPreRunE, нужно реально запустить команду.
	// Возьмём безопасную подкоманду version, она не ходит в сеть/файлы кроме PreRun.
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// app внутри NewRootCmd недоступен напрямую, проверяем косвенно:
	// команда отработала и version напечатан.
	got := out.String()
	if !strings.Contains(got, "version=") || !strings.Contains(got, "build_date=") {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestNewRootCmd_PersistentPreRunE_ReturnsErrorOnBadCredsFile(t *testing.T) {
	p, err := config.DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	if _, statErr := os.Stat(p); statErr == nil {
		t.Skipf("real credentials file exists at %q, skipping", p)
	}
	t.Cleanup(func() { _ = os.Remove(p) })

	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	// битый файл — PersistentPreRunE должен вернуть ошибку
	if err := os.WriteFile(p, []byte("{not-json"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	root := cli.NewRootCmd("1.0.0", "2026-08-31")
	root.SetArgs([]string{"version"})

	if err := root.Execute(); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
