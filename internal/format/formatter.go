package format

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const DefaultLocale = "pt-BR"

// NumberFormatter renders amounts for display in a single locale.
type NumberFormatter interface {
	Format(v float64) string
	Locale() string
}

// LocaleFormatter formats numbers with exactly two fraction digits using the
// separators of a fixed locale.
type LocaleFormatter struct {
	tag     language.Tag
	printer *message.Printer
}

func NewLocaleFormatter(locale string) (*LocaleFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &LocaleFormatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
	}, nil
}

func (f *LocaleFormatter) Format(v float64) string {
	return f.printer.Sprintf("%v", number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

func (f *LocaleFormatter) Locale() string {
	return f.tag.String()
}
