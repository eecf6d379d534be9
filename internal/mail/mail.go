// Package mail renders the organizer notification and hands it to a Mailer.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"text/template"

	"github.com/Eursukkul/meetapp-service/internal/dto"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

var subscriptionTmpl = template.Must(template.New("subscription").Parse(`Hello {{.Organizer.Name}},

{{.Subscriber.Name}} <{{.Subscriber.Email}}> just subscribed to "{{.Meetapp.Name}}".

When:  {{.Meetapp.Date.Format "02/01/2006 15:04 MST"}}
Where: {{.Meetapp.Location}}

See you there,
Meetapp
`))

// SubscriptionMail builds the mail sent to an organizer when someone
// subscribes to one of their meetapps.
func SubscriptionMail(n dto.SubscriptionNotification) (Message, error) {
	var body bytes.Buffer
	if err := subscriptionTmpl.Execute(&body, n); err != nil {
		return Message{}, fmt.Errorf("render subscription mail: %w", err)
	}

	return Message{
		To:      fmt.Sprintf("%s <%s>", n.Organizer.Name, n.Organizer.Email),
		Subject: "New subscription: " + n.Meetapp.Name,
		Body:    body.String(),
	}, nil
}

// LogMailer writes mails to the process log instead of delivering them.
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, msg Message) error {
	log.Printf("[Mail] to=%q subject=%q\n%s", msg.To, msg.Subject, msg.Body)
	return nil
}
