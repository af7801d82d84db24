package domain

// Product is a catalogue item that can be billed.
type Product struct {
	ID   string
	Name string
	Timestamps
}
