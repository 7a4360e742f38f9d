// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats user-visible text for the user's locale.
package translate

import (
	"io"
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

const fallbackLocale = "en-US"

var (
	printer     *message.Printer
	printerLock sync.Mutex
)

func current() *message.Printer {
	printerLock.Lock()
	defer printerLock.Unlock()

	if printer == nil {
		locales, err := locale.GetLocales()
		if err != nil {
			log.Printf("ndcpu: locale: %v", err)
		}
		printer = newPrinter(locales...)
	}

	return printer
}

func newPrinter(locales ...string) *message.Printer {
	if len(locales) == 0 {
		locales = []string{fallbackLocale}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
}

// Use replaces the active printer with one matching the given locales.
// With no locales, en-US is used.
func Use(locales ...string) {
	printerLock.Lock()
	defer printerLock.Unlock()

	printer = newPrinter(locales...)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return current().Sprintf(key, args...)
}

// Fprintln translates key and writes it to w, followed by a newline.
func Fprintln(w io.Writer, key message.Reference, args ...any) (n int, err error) {
	n, err = current().Fprintf(w, key, args...)
	if err != nil {
		return
	}

	var nl int
	nl, err = io.WriteString(w, "\n")
	n += nl
	return
}
