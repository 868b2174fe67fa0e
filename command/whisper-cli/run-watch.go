// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nats-io/nats.go"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/whisperd/events"
)

type watchedEvent struct {
	Topic string          `json:"topic"`
	Event json.RawMessage `json:"event"`
}

func runWatch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	url := c.String("nats")
	if "" == url {
		return ErrMissingNATS
	}
	topic := c.String("topic")
	if "" == topic {
		topic = events.TopicAll
	}

	subscriber, err := events.NewNATSSubscriber(url, nats.Name("whisper-cli"))
	if nil != err {
		return err
	}
	defer subscriber.Close()

	ch, cancel, err := subscriber.Subscribe(topic)
	if nil != err {
		return err
	}
	defer cancel()

	if m.verbose {
		fmt.Fprintf(m.e, "watching: %s on: %s\n", topic, url)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	return watch(ch, interrupt, c.Int("count"), m)
}

// print events until interrupted, the channel closes or count is reached
func watch(ch <-chan events.Message, interrupt <-chan os.Signal, count int, m *metadata) error {
	seen := 0
	for {
		select {
		case <-interrupt:
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			printJson(m.w, watchedEvent{
				Topic: msg.Topic,
				Event: json.RawMessage(msg.Data),
			})
			seen += 1
			if count > 0 && seen >= count {
				return nil
			}
		}
	}
}
