// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package mcpserver

import "testing"

func FuzzResolveSource(f *testing.F) {
	f.Add(".")
	f.Add("")
	f.Add("/")
	f.Add("../../etc/passwd")
	f.Add("sqlite:///tmp/x.db?table=cizinci")
	f.Add(string(make([]byte, 4096)))
	f.Add("path/with\x00null")

	f.Fuzz(func(t *testing.T, input string) {
		got, err := ResolveSource(input)
		if err == nil && got == "" {
			t.Errorf("ResolveSource(%q) returned an empty source", input)
		}
	})
}
