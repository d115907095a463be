package main

import (
	"io"
	"strings"
	"testing"
)

func TestUnsupportedLang(t *testing.T) {
	t.Cleanup(func() {
		flagLang = "en"
		rootCmd.SetArgs(nil)
		rootCmd.SetErr(nil)
	})

	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"list", "--lang", "de"})
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected an error for an unknown language")
	}
	if !strings.Contains(err.Error(), "en, fr") {
		t.Errorf("error = %q, expected the available languages", err)
	}
}
