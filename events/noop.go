// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import "context"

// NoopPublisher - used when no NATS server is configured
type NoopPublisher struct{}

// Publish - discard the event
func (n *NoopPublisher) Publish(ctx context.Context, topic string, event any) error {
	return nil
}

// Close - nothing to release
func (n *NoopPublisher) Close() error {
	return nil
}
