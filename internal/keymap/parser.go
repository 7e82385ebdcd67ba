package keymap

import "unicode"

// ArgumentMode tells whether the parser is collecting free text.
type ArgumentMode int

const (
	ArgumentNone ArgumentMode = iota
	ArgumentFilter
	ArgumentSearch
)

// ResultKind is the outcome of feeding one key to the parser.
type ResultKind int

const (
	ResultAction     ResultKind = iota // Action is set
	ResultIncomplete                   // sequence is a prefix of a command
	ResultNoMatch                      // sequence or argument was dropped
	ResultPending                      // key went into the argument buffer
)

// Result is what Handle returns for each key.
type Result struct {
	Kind   ResultKind
	Action Action
}

// Resolved reports whether the result carries an action to apply.
func (r Result) Resolved() bool {
	return r.Kind == ResultAction
}

// Parser accumulates key sequences and arguments. While an argument mode is
// active the sequence buffer is frozen and every key goes to the argument.
type Parser struct {
	table    []Binding
	sequence []rune
	mode     ArgumentMode
	argument []rune
}

// NewParser creates a parser over the default command table.
func NewParser() *Parser {
	return NewParserWith(Commands)
}

// NewParserWith creates a parser over a custom command table.
func NewParserWith(table []Binding) *Parser {
	return &Parser{table: table}
}

// Mode returns the active argument mode.
func (p *Parser) Mode() ArgumentMode {
	return p.mode
}

// Argument returns the argument typed so far.
func (p *Parser) Argument() string {
	return string(p.argument)
}

// Sequence returns the pending key sequence.
func (p *Parser) Sequence() string {
	return string(p.sequence)
}

// Reset drops every buffer and leaves argument mode.
func (p *Parser) Reset() {
	p.sequence = p.sequence[:0]
	p.argument = p.argument[:0]
	p.mode = ArgumentNone
}

// Handle feeds one key to the parser.
func (p *Parser) Handle(k Key) Result {
	if p.mode != ArgumentNone {
		return p.handleArgument(k)
	}
	return p.handleSequence(k)
}

// enterArgument switches to mode, dropping any half-typed sequence.
func (p *Parser) enterArgument(mode ArgumentMode) {
	p.sequence = p.sequence[:0]
	p.argument = p.argument[:0]
	p.mode = mode
}

func (p *Parser) handleArgument(k Key) Result {
	switch k.Type {
	case KeyRune:
		if unicode.IsPrint(k.Rune) {
			p.argument = append(p.argument, k.Rune)
		}
		return Result{Kind: ResultPending}

	case KeyBackspace:
		if len(p.argument) == 0 {
			p.mode = ArgumentNone
			return Result{Kind: ResultNoMatch}
		}
		p.argument = p.argument[:len(p.argument)-1]
		return Result{Kind: ResultPending}

	case KeyEnter:
		text := string(p.argument)
		mode := p.mode
		p.argument = p.argument[:0]
		p.mode = ArgumentNone
		if mode == ArgumentSearch {
			return Result{Kind: ResultAction, Action: SearchTrack(text)}
		}
		return Result{Kind: ResultAction, Action: FilterList(text)}

	case KeyEscape:
		p.Reset()
		return Result{Kind: ResultNoMatch}

	case KeyOther:
	}
	return Result{Kind: ResultPending}
}

func (p *Parser) handleSequence(k Key) Result {
	switch k.Type {
	case KeyEnter:
		p.sequence = p.sequence[:0]
		return Result{Kind: ResultAction, Action: Act(ActionSelect)}

	case KeyEscape:
		if len(p.sequence) == 0 {
			return Result{Kind: ResultAction, Action: Act(ActionBack)}
		}
		p.sequence = p.sequence[:0]
		return Result{Kind: ResultNoMatch}

	case KeyRune:
		if !unicode.IsPrint(k.Rune) {
			break
		}
		switch k.Rune {
		case FilterKey:
			p.enterArgument(ArgumentFilter)
			return Result{Kind: ResultPending}
		case SearchKey:
			p.enterArgument(ArgumentSearch)
			return Result{Kind: ResultPending}
		}
		p.sequence = append(p.sequence, k.Rune)
		r := match(p.table, string(p.sequence))
		if r.Kind != ResultIncomplete {
			p.sequence = p.sequence[:0]
		}
		return r

	case KeyBackspace, KeyOther:
	}
	return Result{Kind: ResultAction, Action: Act(ActionNoop)}
}
