// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/dbcdiff/dbcdiff/internal/command"
)

func TestHandleNakedCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "no args appends help",
			args:     []string{"dbcdiff"},
			expected: []string{"dbcdiff", "--help"},
		},
		{
			name:     "args untouched",
			args:     []string{"dbcdiff", "old.dbc", "new.dbc", "out.xlsx"},
			expected: []string{"dbcdiff", "old.dbc", "new.dbc", "out.xlsx"},
		},
		{
			name:     "flags untouched",
			args:     []string{"dbcdiff", "--help"},
			expected: []string{"dbcdiff", "--help"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := handleNakedCommand(tt.args)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("handleNakedCommand(%v) = %v, want %v", tt.args, got, tt.expected)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil is success",
			err:  nil,
			want: 0,
		},
		{
			name: "usage error",
			err:  command.ErrUsage,
			want: 1,
		},
		{
			name: "wrapped usage error",
			err:  fmt.Errorf("%w (got 2 arguments)", command.ErrUsage),
			want: 1,
		},
		{
			name: "load fault",
			err:  errors.New("failed to read database old.dbc"),
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
