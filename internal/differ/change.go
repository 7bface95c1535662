// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import "fmt"

// Kind tags a single detected difference.
type Kind int

const (
	MessageRemoved Kind = iota
	MessageAdded
	SignalRemoved
	SignalAdded
	NodesChanged
)

// String returns the label written to the report's Comments column.
func (k Kind) String() string {
	switch k {
	case MessageRemoved:
		return "Message Removed"
	case MessageAdded:
		return "Message Added"
	case SignalRemoved:
		return "Signal Removed"
	case SignalAdded:
		return "Signal Added"
	case NodesChanged:
		return "Tx/Rx Node Changed"
	}
	return "Unknown"
}

// Side holds one side's report columns for a change row. Absent values
// carry Placeholder so rows can be rendered without nil checks.
type Side struct {
	Name    string
	ID      string
	Signal  string
	Details string
	Tx      string
	Rx      string
}

// Change is one row of the comparison result. It never mutates after
// construction.
type Change struct {
	Kind Kind
	Old  Side
	New  Side
}

// HexID renders a frame id the way the report shows it.
func HexID(id uint32) string {
	return fmt.Sprintf("%#x", id)
}

func blankSide() Side {
	return Side{
		Name:    Placeholder,
		ID:      Placeholder,
		Signal:  Placeholder,
		Details: Placeholder,
		Tx:      Placeholder,
		Rx:      Placeholder,
	}
}

func messageSide(m *Message) Side {
	return Side{
		Name:    m.Name,
		ID:      HexID(m.ID),
		Signal:  Placeholder,
		Details: Placeholder,
		Tx:      m.Tx(),
		Rx:      m.Rx(),
	}
}

func signalSide(m *Message, signal string, withNodes bool) Side {
	s := Side{
		Name:    m.Name,
		ID:      HexID(m.ID),
		Signal:  signal,
		Details: Placeholder,
		Tx:      Placeholder,
		Rx:      Placeholder,
	}
	if withNodes {
		s.Tx = m.Tx()
		s.Rx = m.Rx()
	}
	return s
}

func newMessageRemoved(oldMsg *Message) Change {
	return Change{
		Kind: MessageRemoved,
		Old:  messageSide(oldMsg),
		New:  blankSide(),
	}
}

func newMessageAdded(newMsg *Message) Change {
	return Change{
		Kind: MessageAdded,
		Old:  blankSide(),
		New:  messageSide(newMsg),
	}
}

// Signal rows list the message identity on both sides; only the side
// that owns the change carries its Tx/Rx assignments.
func newSignalRemoved(oldMsg *Message, signal string) Change {
	return Change{
		Kind: SignalRemoved,
		Old:  signalSide(oldMsg, signal, true),
		New:  signalSide(oldMsg, signal, false),
	}
}

func newSignalAdded(newMsg *Message, signal string) Change {
	return Change{
		Kind: SignalAdded,
		Old:  signalSide(newMsg, signal, false),
		New:  signalSide(newMsg, signal, true),
	}
}

func newNodesChanged(oldMsg, newMsg *Message) Change {
	return Change{
		Kind: NodesChanged,
		Old:  messageSide(oldMsg),
		New:  messageSide(newMsg),
	}
}
