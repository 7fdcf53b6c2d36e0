// services/mail_service.go
package services

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	htmltemplate "html/template"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"text/template"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// SMTPConfig holds the studio inbox settings.
type SMTPConfig struct {
	Host       string        // e.g. "smtp.gmail.com"
	Port       int           // 587 (STARTTLS) or 465 (SMTPS)
	Username   string
	Password   string
	From       string        // envelope from
	FromName   string        // display name
	To         string        // studio inbox receiving booking copies
	UseSSL     bool          // true for SMTPS 465
	RequireTLS bool          // fail if STARTTLS is not offered
	Timeout    time.Duration // whole SMTP conversation, defaultSMTPTimeout when zero

	AppName string
}

const defaultSMTPTimeout = 30 * time.Second

type mailNotifier struct {
	cfg     SMTPConfig
	htmlTpl *htmltemplate.Template
	textTpl *template.Template
	dial    func(ctx context.Context, network, addr string) (net.Conn, error)
}

func NewSMTPMailNotifier(cfg SMTPConfig) (Notifier, error) {
	if cfg.Host == "" || cfg.From == "" || cfg.To == "" {
		return nil, ErrNotifierDisabled
	}
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	return &mailNotifier{
		cfg:     cfg,
		htmlTpl: htmltemplate.Must(htmltemplate.New("bookingHTML").Parse(bookingHTMLTemplate)),
		textTpl: template.Must(template.New("bookingText").Parse(bookingTextTemplate)),
		dial:    dialer.DialContext,
	}, nil
}

func (s *mailNotifier) SendMessage(ctx context.Context, n Notification) error {
	htmlBody, textBody, err := s.render(n)
	if err != nil {
		return err
	}
	msg := s.compose(n.Title, htmlBody, textBody, nil)
	return s.send(ctx, msg)
}

func (s *mailNotifier) SendPhoto(ctx context.Context, p Photo) error {
	n := Notification{Title: "Booking photo"}
	n.add("Caption", p.Caption)
	n.add("Link", p.URL)
	htmlBody, textBody, err := s.render(n)
	if err != nil {
		return err
	}
	var att *attachment
	if len(p.Data) > 0 {
		att = &attachment{name: p.Name, contentType: mimetype.Detect(p.Data).String(), data: p.Data}
	}
	return s.send(ctx, s.compose(n.Title, htmlBody, textBody, att))
}

// ------------------- Rendering -------------------

type bookingEmailData struct {
	Title   string
	Fields  []Field
	Footer  string
	AppName string
	Year    int
}

const bookingHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; padding: 24px; background: #f8fafc; color: #0f172a; font-family: -apple-system, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; }
    .container { max-width: 600px; margin: 0 auto; background: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 0 0 1px rgba(0,0,0,0.06); }
    .header { padding: 20px 24px; font-weight: 700; color: #1e40af; border-bottom: 1px solid rgba(0,0,0,0.06); }
    h1 { margin: 0; padding: 24px 24px 8px; font-size: 22px; }
    table { width: 100%; border-collapse: collapse; margin: 8px 0 16px; }
    td { padding: 8px 24px; vertical-align: top; border-bottom: 1px solid #f1f5f9; white-space: pre-line; }
    td.label { width: 35%; color: #64748b; }
    .footer { padding: 16px 24px; color: #64748b; font-size: 13px; background: #f8fafc; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">{{.AppName}}</div>
    <h1>{{.Title}}</h1>
    <table>
      {{range .Fields}}<tr><td class="label">{{.Label}}</td><td>{{.Value}}</td></tr>
      {{end}}
    </table>
    <div class="footer">{{if .Footer}}{{.Footer}} · {{end}}© {{.Year}} {{.AppName}}</div>
  </div>
</body>
</html>`

const bookingTextTemplate = `{{.Title}}

{{range .Fields}}{{.Label}}: {{.Value}}
{{end}}
{{if .Footer}}{{.Footer}}
{{end}}-- {{.AppName}} (c) {{.Year}}
`

func (s *mailNotifier) render(n Notification) (htmlBody string, textBody string, err error) {
	data := bookingEmailData{
		Title:   n.Title,
		Fields:  n.Fields,
		Footer:  n.Footer,
		AppName: s.cfg.AppName,
		Year:    nowFunc().Year(),
	}
	var hb, tb bytes.Buffer
	if err = s.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err = s.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

// ------------------- MIME -------------------

type attachment struct {
	name        string
	contentType string
	data        []byte
}

func (s *mailNotifier) compose(subject, htmlBody, textBody string, att *attachment) []byte {
	now := nowFunc()
	alt := fmt.Sprintf("alt_%d", now.UnixNano())
	mixed := fmt.Sprintf("mixed_%d", now.UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = fmt.Fprintf(&msg, format, a...) }

	write("From: %s\r\n", s.formatFromHeader())
	write("To: %s\r\n", s.cfg.To)
	write("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	write("Date: %s\r\n", now.Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	if att != nil {
		write("Content-Type: multipart/mixed; boundary=%q\r\n\r\n", mixed)
		write("--%s\r\n", mixed)
	}
	write("Content-Type: multipart/alternative; boundary=%q\r\n\r\n", alt)

	write("--%s\r\n", alt)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", alt)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)
	write("--%s--\r\n", alt)

	if att != nil {
		write("\r\n--%s\r\n", mixed)
		write("Content-Type: %s\r\n", att.contentType)
		write("Content-Transfer-Encoding: base64\r\n")
		write("Content-Disposition: attachment; filename=%q\r\n\r\n", att.name)
		encoded := base64.StdEncoding.EncodeToString(att.data)
		for len(encoded) > 76 {
			write("%s\r\n", encoded[:76])
			encoded = encoded[76:]
		}
		write("%s\r\n", encoded)
		write("--%s--\r\n", mixed)
	}
	return msg.Bytes()
}

func (s *mailNotifier) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", name), s.cfg.From)
}

// ------------------- SMTP Send -------------------

func (s *mailNotifier) send(ctx context.Context, msg []byte) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}

	conn, err := s.dial(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	timeout := s.cfg.Timeout
	if timeout <= 0 {
		timeout = defaultSMTPTimeout
	}
	deadline := time.Now().Add(timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = conn.SetDeadline(deadline)
	if s.cfg.UseSSL {
		// SMTPS (implicit TLS, usually port 465)
		conn = tls.Client(conn, tlsCfg)
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if !s.cfg.UseSSL {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err = c.StartTLS(tlsCfg); err != nil {
				return err
			}
		} else if s.cfg.RequireTLS {
			return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
		}
	}

	if s.cfg.Username != "" {
		if err = c.Auth(smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)); err != nil {
			return err
		}
	}
	if err = c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err = c.Rcpt(s.cfg.To); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}
