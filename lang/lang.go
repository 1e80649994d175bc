package lang

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gertd/go-pluralize"
)

const (
	DefaultPattern   = "%s"
	DefaultSeparator = ","
	DefaultOperator  = "and"
)

type Tense int

const (
	NoTense Tense = iota
	Present
	Past
)

var (
	pluralizer = pluralize.NewClient()

	cardinals = []string{"no", "one", "two", "three"}

	// Words starting with a vowel letter but a consonant sound.
	consonantSounds = []string{"uni", "use", "usu", "one", "once", "eu", "ewe"}
	// Words starting with a consonant letter but a vowel sound.
	vowelSounds = []string{"hour", "honest", "honor", "honour", "heir"}
)

// Enumerator joins words into an English list, like "a, b, and c".
type Enumerator struct {
	Pattern   string
	Separator string
	Operator  string
	// Tense appends a copula agreeing with the number of elements.
	Tense Tense
	// Plural makes a single element agree as plural ("two swords are").
	Plural bool
}

func (e Enumerator) Do(elements ...string) string {
	pattern, separator, operator := DefaultPattern, DefaultSeparator, DefaultOperator
	if e.Pattern != "" {
		pattern = e.Pattern
	}
	if e.Separator != "" {
		separator = e.Separator
	}
	if e.Operator != "" {
		operator = e.Operator
	}
	res := &bytes.Buffer{}
	for idx, element := range elements {
		fmt.Fprintf(res, pattern, element)
		switch {
		case idx+2 < len(elements):
			fmt.Fprintf(res, "%s ", separator)
		case idx+2 == len(elements) && len(elements) > 2:
			fmt.Fprintf(res, "%s %s ", separator, operator)
		case idx+2 == len(elements):
			fmt.Fprintf(res, " %s ", operator)
		}
	}
	if len(elements) > 0 && e.Tense != NoTense {
		plural := e.Plural || len(elements) > 1
		switch {
		case e.Tense == Present && plural:
			res.WriteString(" are")
		case e.Tense == Present:
			res.WriteString(" is")
		case e.Tense == Past && plural:
			res.WriteString(" were")
		case e.Tense == Past:
			res.WriteString(" was")
		}
	}
	return res.String()
}

func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func Plural(word string) string {
	return pluralizer.Plural(word)
}

func Singular(word string) string {
	return pluralizer.Singular(word)
}

// Article returns the indefinite article for word, by sound rather than spelling.
func Article(word string) string {
	lower := strings.ToLower(word)
	for _, prefix := range vowelSounds {
		if strings.HasPrefix(lower, prefix) {
			return "an"
		}
	}
	for _, prefix := range consonantSounds {
		if strings.HasPrefix(lower, prefix) {
			return "a"
		}
	}
	r, _ := utf8.DecodeRuneInString(lower)
	switch {
	case strings.ContainsRune("aeiou", r):
		return "an"
	case r == '8':
		return "an"
	}
	return "a"
}

func Indef(word string) string {
	return fmt.Sprintf("%s %s", Article(word), word)
}

// Card renders count of word, spelling out small numbers.
func Card(count int, word string) string {
	if count == 1 {
		return Indef(word)
	}
	if count >= 0 && count < len(cardinals) {
		return fmt.Sprintf("%s %s", cardinals[count], Plural(word))
	}
	return fmt.Sprintf("%d %s", count, Plural(word))
}
