package analyzer

import (
	"sort"

	"github.com/tchap/go-patricia/v2/patricia"
)

// frequencyTable maps each distinct lowercase word to its count.
// It belongs to exactly one analysis call.
type frequencyTable struct {
	trie  *patricia.Trie
	words int
}

func newFrequencyTable() *frequencyTable {
	return &frequencyTable{trie: patricia.NewTrie()}
}

// buildTable tokenizes text and counts every word.
func buildTable(text string) *frequencyTable {
	table := newFrequencyTable()
	forEachWord(text, table.add)
	return table
}

func (t *frequencyTable) add(word string) {
	key := patricia.Prefix(word)
	if item := t.trie.Get(key); item != nil {
		t.trie.Set(key, item.(int)+1)
		return
	}
	t.trie.Insert(key, 1)
	t.words++
}

// Len returns the number of distinct words.
func (t *frequencyTable) Len() int {
	return t.words
}

func (t *frequencyTable) visit(fn func(word string, freq int)) {
	// the visitor never returns an error, so neither does Visit
	_ = t.trie.Visit(func(p patricia.Prefix, item patricia.Item) error {
		fn(string(p), item.(int))
		return nil
	})
}

func (t *frequencyTable) max() int {
	highest := 0
	t.visit(func(_ string, freq int) {
		if freq > highest {
			highest = freq
		}
	})
	return highest
}

// ranked returns all entries ordered by frequency descending, then word ascending.
func (t *frequencyTable) ranked() []WordFrequency {
	entries := make([]WordFrequency, 0, t.words)
	t.visit(func(word string, freq int) {
		entries = append(entries, NewWordFrequency(word, freq))
	})

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].frequency != entries[j].frequency {
			return entries[i].frequency > entries[j].frequency
		}
		return entries[i].word < entries[j].word
	})
	return entries
}
