package mail

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-messenger/internal/config"
)

func TestSendPasswordReset_DryRunWithoutHost(t *testing.T) {
	t.Parallel()

	s := NewSMTPSender(config.SMTPConfig{From: "no-reply@go-messenger.local"}, nil)

	// Пустой Host — режим логирования: реальная отправка не выполняется
	// и ошибки нет.
	require.NoError(t, s.SendPasswordReset("ivan@example.com", "http://localhost/reset?token=x"))
}

func TestResetTemplate_RendersLink(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := resetTmpl.Execute(&buf, map[string]string{
		"To":   "ivan@example.com",
		"Link": "http://localhost/reset?token=abc",
	})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "http://localhost/reset?token=abc")
	require.Contains(t, buf.String(), "ivan@example.com")
}
