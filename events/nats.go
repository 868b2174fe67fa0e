// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
)

// NATSPublisher - publishes JSON encoded events to NATS subjects
type NATSPublisher struct {
	conn *nats.Conn
}

// NewNATSPublisher - connect to the server at url
func NewNATSPublisher(url string, opts ...nats.Option) (*NATSPublisher, error) {
	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}
	return &NATSPublisher{conn: nc}, nil
}

// Publish - send one event
func (p *NATSPublisher) Publish(ctx context.Context, topic string, event any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}
	return p.conn.Publish(topic, data)
}

// Flush - wait until the server has received everything published so far
func (p *NATSPublisher) Flush() error {
	return p.conn.Flush()
}

// Close - drop the connection
func (p *NATSPublisher) Close() error {
	p.conn.Close()
	return nil
}

// NATSSubscriber - receives events from NATS subjects
type NATSSubscriber struct {
	conn *nats.Conn
}

// NewNATSSubscriber - connect with automatic reconnection
func NewNATSSubscriber(url string, opts ...nats.Option) (*NATSSubscriber, error) {
	defaults := []nats.Option{
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
	}
	nc, err := nats.Connect(url, append(defaults, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}
	return &NATSSubscriber{conn: nc}, nil
}

// Message - one received event
type Message struct {
	Topic string
	Data  []byte
}

// Subscribe - channel of events for a topic (wildcards allowed)
//
// call the returned cancel function to unsubscribe and close the channel
func (s *NATSSubscriber) Subscribe(topic string) (<-chan Message, func(), error) {
	ch := make(chan Message, 64)

	var (
		mu     sync.Mutex
		closed bool
		once   sync.Once
	)

	sub, err := s.conn.Subscribe(topic, func(msg *nats.Msg) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case ch <- Message{Topic: msg.Subject, Data: msg.Data}:
		default:
			// full: drop rather than stall the NATS client
		}
	})
	if err != nil {
		close(ch)
		return nil, nil, fmt.Errorf("subscribing to %s: %w", topic, err)
	}

	// the subscription must reach the server before anything is published
	if err := s.conn.Flush(); err != nil {
		_ = sub.Unsubscribe()
		close(ch)
		return nil, nil, fmt.Errorf("flushing subscription: %w", err)
	}

	cancel := func() {
		once.Do(func() {
			_ = sub.Unsubscribe()
			mu.Lock()
			closed = true
			mu.Unlock()
			for {
				select {
				case <-ch:
				default:
					close(ch)
					return
				}
			}
		})
	}

	return ch, cancel, nil
}

// Close - drop the connection
func (s *NATSSubscriber) Close() error {
	s.conn.Close()
	return nil
}
