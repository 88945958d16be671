// Package translate formats user-visible messages for the current locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// DefaultLocale is used when the system reports no locale.
const DefaultLocale = "en-US"

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("macrodef: locale: %v", err)
	}

	printer = NewPrinter(locales...)
}

// NewPrinter returns a printer for the best match among locales.
func NewPrinter(locales ...string) *message.Printer {
	if len(locales) == 0 {
		locales = []string{DefaultLocale}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
