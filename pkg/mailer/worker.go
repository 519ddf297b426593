package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Disposition tells the consumer what to do with a delivery.
type Disposition int

const (
	Ack     Disposition = iota // sent
	Drop                       // malformed or unrenderable; retrying cannot help
	Requeue                    // transient send failure
)

func (d Disposition) String() string {
	switch d {
	case Ack:
		return "ack"
	case Drop:
		return "drop"
	case Requeue:
		return "requeue"
	}
	return fmt.Sprintf("Disposition(%d)", int(d))
}

// Process decodes one queued EmailJob, renders it and sends it.
func Process(ctx context.Context, body []byte, sender Sender) (Disposition, error) {
	var job EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		return Drop, fmt.Errorf("bad message: %w", err)
	}
	msg, err := Compose(job)
	if err != nil {
		return Drop, fmt.Errorf("render %q: %w", job.Template, err)
	}
	c, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := sender.Send(c, msg); err != nil {
		return Requeue, fmt.Errorf("send: %w", err)
	}
	return Ack, nil
}
