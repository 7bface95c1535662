// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/apex/log"
)

// Placeholder is rendered anywhere a side has no value for a column.
const Placeholder = "-"

// Key identifies a message within one database snapshot. Two snapshots
// that disagree on either the name or the frame id are treated as
// different messages; a rename therefore surfaces as a remove/add pair.
type Key struct {
	Name string
	ID   uint32
}

func (k Key) String() string {
	return fmt.Sprintf("%s|%#x", k.Name, k.ID)
}

// Message is an immutable snapshot of one frame definition: its sender
// and receiver node assignments and its signal names. Signal order is
// preserved so the change list comes out in definition order.
type Message struct {
	Name      string
	ID        uint32
	Senders   []string
	Receivers []string
	Signals   []string

	signalSet map[string]struct{}
}

// NewMessage builds a Message snapshot. The slices are retained as-is;
// callers must not mutate them afterwards.
func NewMessage(name string, id uint32, senders, receivers, signals []string) *Message {
	m := &Message{
		Name:      name,
		ID:        id,
		Senders:   senders,
		Receivers: receivers,
		Signals:   signals,
		signalSet: make(map[string]struct{}, len(signals)),
	}
	for _, s := range signals {
		m.signalSet[s] = struct{}{}
	}
	return m
}

// Key returns the lookup key for this message.
func (m *Message) Key() Key {
	return Key{Name: m.Name, ID: m.ID}
}

// HasSignal reports whether the message carries a signal by that name.
func (m *Message) HasSignal(name string) bool {
	_, ok := m.signalSet[name]
	return ok
}

// Tx returns the comma-joined sender list, Placeholder when empty.
func (m *Message) Tx() string {
	return joinNodes(m.Senders)
}

// Rx returns the comma-joined receiver list, Placeholder when empty.
func (m *Message) Rx() string {
	return joinNodes(m.Receivers)
}

func joinNodes(nodes []string) string {
	if len(nodes) == 0 {
		return Placeholder
	}
	return strings.Join(nodes, ",")
}

// Database is a read-only keyed view over one loaded file. Keys iterate
// in insertion order so a compare over the same inputs always emits the
// same change list.
type Database struct {
	Source string

	byKey map[Key]*Message
	order []Key
}

// NewDatabase returns an empty database for the given source path.
func NewDatabase(source string) *Database {
	return &Database{
		Source: source,
		byKey:  make(map[Key]*Message),
	}
}

// Add inserts a message snapshot. The loader is trusted to produce
// unique keys; on a duplicate the last definition wins.
func (db *Database) Add(m *Message) {
	k := m.Key()
	if _, dup := db.byKey[k]; dup {
		log.Debugf("duplicate message key %s in %s", k, db.Source)
	} else {
		db.order = append(db.order, k)
	}
	db.byKey[k] = m
}

// Get returns the message for k, or nil.
func (db *Database) Get(k Key) *Message {
	return db.byKey[k]
}

// Keys returns all keys in insertion order.
func (db *Database) Keys() []Key {
	return db.order
}

// Len returns the number of messages.
func (db *Database) Len() int {
	return len(db.byKey)
}

// Name returns the display name of the database: the basename of the
// file it was loaded from.
func (db *Database) Name() string {
	return filepath.Base(db.Source)
}

// NodeOrder selects how sender/receiver assignments are compared.
type NodeOrder int

const (
	// NodeOrderStrict compares the comma-joined lists verbatim, so a
	// pure reorder of the same nodes counts as a change.
	NodeOrderStrict NodeOrder = iota

	// NodeOrderSet compares membership only.
	NodeOrderSet
)

// ParseNodeOrder maps the flag/config spelling to a policy.
func ParseNodeOrder(s string) (NodeOrder, error) {
	switch s {
	case "strict", "":
		return NodeOrderStrict, nil
	case "set":
		return NodeOrderSet, nil
	}
	return NodeOrderStrict, fmt.Errorf("unknown node-order policy %q (want strict or set)", s)
}

// Compare walks both databases and returns the full change list: one
// pass over old-side keys (removed messages, node changes, signal
// removals then additions per shared message), then one pass over
// new-side keys for added messages. No change is coalesced or dropped.
func Compare(oldDB, newDB *Database, policy NodeOrder) []Change {
	var changes []Change

	for _, key := range oldDB.Keys() {
		oldMsg := oldDB.Get(key)
		newMsg := newDB.Get(key)

		if newMsg == nil {
			changes = append(changes, newMessageRemoved(oldMsg))
			continue
		}

		if nodesDiffer(oldMsg, newMsg, policy) {
			changes = append(changes, newNodesChanged(oldMsg, newMsg))
		}

		for _, sig := range oldMsg.Signals {
			if !newMsg.HasSignal(sig) {
				changes = append(changes, newSignalRemoved(oldMsg, sig))
			}
		}
		for _, sig := range newMsg.Signals {
			if !oldMsg.HasSignal(sig) {
				changes = append(changes, newSignalAdded(newMsg, sig))
			}
		}
	}

	for _, key := range newDB.Keys() {
		if oldDB.Get(key) == nil {
			changes = append(changes, newMessageAdded(newDB.Get(key)))
		}
	}

	log.Debugf("compared %d old vs %d new messages: %d changes",
		oldDB.Len(), newDB.Len(), len(changes))

	return changes
}

func nodesDiffer(oldMsg, newMsg *Message, policy NodeOrder) bool {
	if policy == NodeOrderSet {
		return !sameMembers(oldMsg.Senders, newMsg.Senders) ||
			!sameMembers(oldMsg.Receivers, newMsg.Receivers)
	}
	return oldMsg.Tx() != newMsg.Tx() || oldMsg.Rx() != newMsg.Rx()
}

func sameMembers(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]int, len(a))
	for _, s := range a {
		set[s]++
	}
	for _, s := range b {
		if set[s] == 0 {
			return false
		}
		set[s]--
	}
	return true
}
