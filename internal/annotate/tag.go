package annotate

// Kind identifies one of the fixed tag grammars the processor understands.
type Kind string

// Tag kinds
const (
	KindCrossReference Kind = "cross-reference"
	KindCheck          Kind = "check"
	KindDamageRoll     Kind = "damage-roll"
	KindLinkedAction   Kind = "linked-action"
)

// Tag is one directive found while processing a string. Tags only live for the
// duration of a single pass and are returned by Tags for inspection.
type Tag struct {
	Kind Kind
	// Source is the tag text exactly as it appeared.
	Source string
	// RawArguments are the pipe-delimited arguments in order. Linked actions
	// carry the action id followed by the skill label.
	RawArguments []string
	// ResolvedLabel is the rendered replacement. Empty when the tag was left
	// unmodified.
	ResolvedLabel string
}

// Resolved reports whether the tag was rewritten.
func (t Tag) Resolved() bool {
	return t.ResolvedLabel != ""
}
