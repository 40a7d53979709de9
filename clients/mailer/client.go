package mailer

import (
	"context"
	"fmt"
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"
	gomail "gopkg.in/gomail.v2"
)

const attachmentFilename = "builds_report.csv"

// Client sends the failed builds report as a multipart email with a csv attachment
//go:generate mockgen -package=mailer -destination ./mock.go -source=client.go
type Client interface {
	SendReport(ctx context.Context, htmlBody string, csvContent []byte) (err error)
}

// NewClient returns a new mailer Client transmitting via the smtp relay at relayHost:relayPort
func NewClient(relayHost string, relayPort int, sender, recipient, subject string) (Client, error) {
	return &client{
		relayHost: relayHost,
		relayPort: relayPort,
		sender:    sender,
		recipient: recipient,
		subject:   subject,
	}, nil
}

type client struct {
	relayHost string
	relayPort int
	sender    string
	recipient string
	subject   string
}

func (c *client) SendReport(ctx context.Context, htmlBody string, csvContent []byte) (err error) {

	span, _ := opentracing.StartSpanFromContext(ctx, "SendReport")
	defer span.Finish()

	message := c.composeMessage(htmlBody, csvContent)

	// the relay authorizes connections by source address, so no login is performed
	dialer := gomail.NewDialer(c.relayHost, c.relayPort, "", "")
	dialer.SSL = true

	err = dialer.DialAndSend(message)
	if err != nil {
		return fmt.Errorf("Failed sending report via %v:%v: %v", c.relayHost, c.relayPort, err)
	}

	log.Debug().Msgf("Successfully sent report from %v to %v", c.sender, c.recipient)

	return nil
}

func (c *client) composeMessage(htmlBody string, csvContent []byte) *gomail.Message {

	message := gomail.NewMessage()
	message.SetHeader("From", c.sender)
	message.SetHeader("To", c.recipient)
	message.SetHeader("Subject", c.subject)
	message.SetBody("text/html", htmlBody)

	// gomail base64-encodes the attachment payload
	message.Attach(attachmentFilename, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(csvContent)
		return err
	}))

	return message
}
