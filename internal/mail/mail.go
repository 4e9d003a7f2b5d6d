// mail — fire-and-forget отправка писем сброса пароля. Сбой отправки
// не влияет на исход запроса: вызывающая сторона только логирует его.
package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"

	"github.com/pribylovaa/go-messenger/internal/config"
)

// Mailer — контракт отправителя писем.
type Mailer interface {
	// SendPasswordReset отправляет письмо со ссылкой сброса пароля.
	SendPasswordReset(to, link string) error
}

const resetTemplate = `
<!DOCTYPE html>
<html>
<body>
    <p>Мы получили запрос на сброс пароля для адреса {{.To}}.</p>
    <p><a href="{{.Link}}">Сбросить пароль</a></p>
    <p>Если это были не вы — просто проигнорируйте письмо, ссылка
    перестанет действовать сама.</p>
</body>
</html>
`

var resetTmpl = template.Must(template.New("reset").Parse(resetTemplate))

// SMTPSender отправляет письма через SMTP. Пустой Host переводит
// отправителя в режим логирования (удобно локально и в тестах).
type SMTPSender struct {
	cfg config.SMTPConfig
	log *slog.Logger
}

func NewSMTPSender(cfg config.SMTPConfig, log *slog.Logger) *SMTPSender {
	if log == nil {
		log = slog.Default()
	}

	return &SMTPSender{cfg: cfg, log: log}
}

var _ Mailer = (*SMTPSender)(nil)

// SendPasswordReset отправляет письмо со ссылкой сброса пароля.
func (s *SMTPSender) SendPasswordReset(to, link string) error {
	const op = "mail.SendPasswordReset"

	var body bytes.Buffer
	if err := resetTmpl.Execute(&body, map[string]string{"To": to, "Link": link}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Password reset\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		s.cfg.From, to, body.String())

	if s.cfg.Host == "" {
		s.log.Info("mail_dry_run",
			slog.String("to", to),
			slog.String("link", link),
		)
		return nil
	}

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := s.cfg.Host + ":" + s.cfg.Port

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
