// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"go.einride.tech/can/pkg/descriptor"
	"go.einride.tech/can/pkg/generate"

	"github.com/dbcdiff/dbcdiff/internal/differ"
)

// dummyNode is the placeholder DBC tools assign when a frame has no
// real transmitter or a signal has no real receiver. It is noise for
// comparison purposes and never reaches a Database.
const dummyNode = "Vector__XXX"

// Load parses the DBC file at path into an immutable differ.Database.
// Parse and file errors propagate untouched; compile warnings are only
// logged since partial definitions still diff usefully.
func Load(path string) (*differ.Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read database %s: %w", path, err)
	}

	result, err := generate.Compile(path, data)
	if err != nil {
		return nil, fmt.Errorf("failed to compile database %s: %w", path, err)
	}
	for _, w := range result.Warnings {
		log.Debugf("compile warning in %s: %v", path, w)
	}

	db := differ.NewDatabase(path)
	for _, msg := range result.Database.Messages {
		db.Add(toMessage(msg))
	}

	log.Debugf("loaded %s: %d messages", path, db.Len())
	return db, nil
}

// toMessage flattens a descriptor message into the comparison snapshot:
// senders from the frame's transmitter, receivers as the ordered
// first-appearance union of all signal receivers.
func toMessage(msg *descriptor.Message) *differ.Message {
	var senders []string
	if msg.SenderNode != "" && msg.SenderNode != dummyNode {
		senders = append(senders, msg.SenderNode)
	}

	var receivers []string
	seen := make(map[string]struct{})
	signals := make([]string, 0, len(msg.Signals))
	for _, sig := range msg.Signals {
		signals = append(signals, sig.Name)
		for _, node := range sig.ReceiverNodes {
			if node == "" || node == dummyNode {
				continue
			}
			if _, ok := seen[node]; ok {
				continue
			}
			seen[node] = struct{}{}
			receivers = append(receivers, node)
		}
	}

	return differ.NewMessage(msg.Name, msg.ID, senders, receivers, signals)
}
