package cli

import (
	"bytes"
	"strings"
	"testing"

	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/infrastructure/auth"
)

func TestTokenCmd(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("JWT_SECRET", "cli-test-secret")
	t.Setenv("LOG_LEVEL", "error")

	t.Run("mints a parseable token", func(t *testing.T) {
		var out bytes.Buffer
		cmd := RootCmd()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"token", "--user", "worker-7", "--role", "Worker"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("execute: %v", err)
		}

		s, err := auth.ParseToken(strings.TrimSpace(out.String()), []byte("cli-test-secret"))
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if s.UserID != "worker-7" || s.Role != entities.RoleWorker {
			t.Fatalf("unexpected session: %+v", s)
		}
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		cmd := RootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"token", "--user", "u-1", "--role", "root"})
		if err := cmd.Execute(); err == nil {
			t.Fatalf("expected error for unknown role")
		}
	})

	t.Run("requires user", func(t *testing.T) {
		cmd := RootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"token"})
		if err := cmd.Execute(); err == nil {
			t.Fatalf("expected error without --user")
		}
	})
}

func TestTransferCmd_RequiresPayoutID(t *testing.T) {
	cmd := RootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"transfer"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected argument error")
	}
}
