// Package shopping derives the ingredient list for a set of recipes.
package shopping

import (
	"strings"

	"github.com/alexanderramin/larder/internal/domain"
)

// Options controls which recipes contribute ingredients.
type Options struct {
	// ExcludeChecked skips recipes already marked as cooked.
	ExcludeChecked bool
}

// List is a flattened ingredient list. Items keep recipe order and then
// ingredient order; duplicates are kept.
type List struct {
	Items []string
}

// Build concatenates ingredients of recipes. It never sorts or merges.
func Build(recipes []domain.Recipe, opts Options) List {
	items := []string{}
	for _, r := range recipes {
		if opts.ExcludeChecked && r.Checked {
			continue
		}
		items = append(items, r.Ingredients...)
	}
	return List{Items: items}
}

// Empty reports the "nothing needed" state.
func (l List) Empty() bool { return len(l.Items) == 0 }

const (
	header      = "Shopping List:"
	bullet      = "• "
	nothingText = "Nothing needed."
)

// Format renders the plain text shared with other apps.
func (l List) Format() string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	if l.Empty() {
		b.WriteString(nothingText)
		return b.String()
	}
	for i, item := range l.Items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(bullet)
		b.WriteString(item)
	}
	return b.String()
}
