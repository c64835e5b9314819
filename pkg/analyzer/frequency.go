package analyzer

// WordFrequency pairs a lowercase word with the number of times it occurred.
// Values are created by the analyzer and never change afterwards.
type WordFrequency struct {
	word      string
	frequency int
}

// NewWordFrequency creates a WordFrequency.
func NewWordFrequency(word string, frequency int) WordFrequency {
	return WordFrequency{word: word, frequency: frequency}
}

// Word returns the lowercase word.
func (wf WordFrequency) Word() string {
	return wf.word
}

// Frequency returns the occurrence count.
func (wf WordFrequency) Frequency() int {
	return wf.frequency
}
