package notify

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// ===============================
// Webhook Dispatcher
// ===============================

// Dispatcher envía el webhook de citas en segundo plano. Es fire-and-forget:
// una cita agendada nunca se cae porque el webhook falle. Sin reintentos.
type Dispatcher struct {
	url    string
	client *http.Client
	queue  chan Payload
}

func NewDispatcher(webhookURL string) *Dispatcher {
	d := &Dispatcher{
		url: webhookURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		queue: make(chan Payload, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for p := range d.queue {
		d.post(p)
	}
}

func (d *Dispatcher) post(p Payload) {
	body, err := json.Marshal(p)
	if err != nil {
		log.Println("webhook marshal error:", err)
		return
	}

	resp, err := d.client.Post(d.url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Println("webhook error:", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Println("webhook unexpected status:", resp.Status)
	}
}

// Dispatch encola la notificación. Si no hay webhook configurado o la
// cola está llena, se descarta sin afectar la transición.
func (d *Dispatcher) Dispatch(p Payload) {
	if d.url == "" {
		return
	}

	select {
	case d.queue <- p:
		// encolado
	default:
		log.Println("webhook queue full, dropping notification")
	}
}
