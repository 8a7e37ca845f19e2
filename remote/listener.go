// Package remote feeds actor commands from an MQTT topic into a Stage.
//
// Each message payload is "name:commands", for example
// "logo:decelerate,0.5;x,100". The name "*" targets every actor on the
// stage. Messages arrive on paho's goroutines, are parsed there, and wait in
// a buffered channel until Apply runs them on the frame thread.
package remote

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/phanxgames/actor"
)

// Broadcast is the target name that addresses every actor.
const Broadcast = "*"

const defaultBuffer = 64

// Message is one parsed remote instruction.
type Message struct {
	Target   string
	Commands actor.Commands
}

// Listener subscribes to a topic and queues parsed messages.
type Listener struct {
	client mqtt.Client
	topic  string
	qos    byte

	msgs    chan Message
	dropped atomic.Uint64
}

// NewListener creates a listener for topic on an existing client. buffer is
// the number of messages held between frames; extra messages are dropped.
func NewListener(client mqtt.Client, topic string, buffer int) *Listener {
	if buffer < 1 {
		buffer = defaultBuffer
	}
	return &Listener{
		client: client,
		topic:  topic,
		qos:    1,
		msgs:   make(chan Message, buffer),
	}
}

// Connect creates an MQTT client from cfg, connects it, and subscribes a new
// listener once the connection is up (and again after every reconnect).
func Connect(cfg actor.RemoteConfig, buffer int) (*Listener, error) {
	if cfg.URL == "" {
		return nil, errors.New("remote: no broker url")
	}
	if cfg.Topic == "" {
		return nil, errors.New("remote: no topic")
	}
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "actor"
	}

	l := NewListener(nil, cfg.Topic, buffer)
	options := mqtt.NewClientOptions().
		AddBroker(cfg.URL).
		SetClientID(clientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(func(client mqtt.Client) {
			log.Println("remote: connected")
			if err := l.Subscribe(); err != nil {
				log.Printf("remote: %v", err)
			}
		}).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			log.Printf("remote: connection lost: %v", err)
		})
	l.client = mqtt.NewClient(options)

	if token := l.client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("remote: connect %s: %w", cfg.URL, token.Error())
	}
	return l, nil
}

// Subscribe subscribes to the listener's topic.
func (l *Listener) Subscribe() error {
	token := l.client.Subscribe(l.topic, l.qos, l.handle)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("subscribe %s: %w", l.topic, token.Error())
	}
	return nil
}

// Close unsubscribes and disconnects.
func (l *Listener) Close() {
	if l.client == nil {
		return
	}
	if l.client.IsConnected() {
		l.client.Unsubscribe(l.topic).Wait()
	}
	l.client.Disconnect(250)
}

// Dropped returns how many messages were discarded because the buffer was
// full.
func (l *Listener) Dropped() uint64 {
	return l.dropped.Load()
}

// ParseMessage splits a "name:commands" payload and parses the commands.
// Bad statements are skipped and returned joined, as with
// actor.ParseCommands.
func ParseMessage(payload string) (Message, error) {
	target, src, ok := strings.Cut(payload, ":")
	target = strings.TrimSpace(target)
	if !ok || target == "" {
		return Message{}, fmt.Errorf("remote: payload %q is not name:commands", payload)
	}
	cmds, err := actor.ParseCommands(src)
	return Message{Target: target, Commands: cmds}, err
}

func (l *Listener) handle(_ mqtt.Client, msg mqtt.Message) {
	m, err := ParseMessage(string(msg.Payload()))
	if err != nil {
		log.Printf("remote: %s: %v", msg.Topic(), err)
	}
	if len(m.Commands) == 0 {
		return
	}
	select {
	case l.msgs <- m:
	default:
		l.dropped.Add(1)
	}
}

// Apply runs every queued message against stage without blocking and
// returns how many were applied. Messages for unknown actors are logged and
// dropped. Call it from the frame loop, before Stage.Update.
func (l *Listener) Apply(stage *actor.Stage) int {
	n := 0
	for {
		select {
		case m := <-l.msgs:
			if applyMessage(stage, m) {
				n++
			}
		default:
			return n
		}
	}
}

func applyMessage(stage *actor.Stage, m Message) bool {
	if m.Target == Broadcast {
		for _, a := range stage.Actors() {
			a.RunCommands(m.Commands)
		}
		return true
	}
	a := stage.Find(m.Target)
	if a == nil {
		log.Printf("remote: no actor %q", m.Target)
		return false
	}
	a.RunCommands(m.Commands)
	return true
}
