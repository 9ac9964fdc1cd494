package command

import (
	"strconv"
	"strings"
)

// builder accumulates parse state; only Parse sees it.
type builder struct {
	tokens []string
	pos    int
	cmd    Command
}

// Parse interprets tokens as
//
//	[options] (<pattern> | <pattern-file>) [textfile...]
//
// Leading tokens starting with '-' are options. The first token after them is
// the pattern, or the pattern file path when -p/--pattern was given. All
// remaining tokens are text files. Unrecognized option names are ignored.
func Parse(tokens []string) (*Command, error) {
	b := &builder{
		tokens: tokens,
		cmd: Command{
			options:   make(map[Option]struct{}),
			algorithm: Default,
			textFiles: []string{},
		},
	}

	for b.pos < len(b.tokens) && strings.HasPrefix(b.tokens[b.pos], "-") {
		if err := b.readOption(); err != nil {
			return nil, err
		}
		b.pos++
	}

	if b.pos < len(b.tokens) {
		slot := b.tokens[b.pos]
		if b.cmd.Has(OptPatternFile) {
			b.cmd.patternFile = &slot
		} else {
			b.cmd.pattern = &slot
		}
		b.pos++
	}

	b.cmd.textFiles = append(b.cmd.textFiles, b.tokens[b.pos:]...)

	cmd := b.cmd
	return &cmd, nil
}

// readOption handles the option at b.pos, advancing past any value it consumes.
func (b *builder) readOption() error {
	tok := b.tokens[b.pos]
	if len(tok) < 2 {
		return nil
	}

	if tok[1] == '-' {
		return b.readLongOption(tok)
	}

	switch tok[1] {
	case 'h':
		b.add(OptHelp)
	case 'p':
		b.add(OptPatternFile)
	case 'a':
		return b.readAlgorithm(tok)
	case 'c':
		b.add(OptCount)
	case 'e':
		return b.readEdit(tok)
	}
	return nil
}

func (b *builder) readLongOption(tok string) error {
	switch tok {
	case "--help":
		b.add(OptHelp)
	case "--pattern":
		b.add(OptPatternFile)
	case "--algorithm_name":
		return b.readAlgorithm(tok)
	case "--count":
		b.add(OptCount)
	case "--edit":
		return b.readEdit(tok)
	}
	return nil
}

func (b *builder) readAlgorithm(tok string) error {
	b.add(OptAlgorithm)
	value, err := b.value(tok)
	if err != nil {
		return err
	}
	alg, ok := LookupAlgorithm(value)
	if !ok {
		return &ArgumentError{Option: tok, Value: value, Err: ErrUnknownAlgorithm}
	}
	b.cmd.algorithm = alg
	return nil
}

// readEdit records the edit distance. -e marks the Algorithm option rather
// than Edit; callers key approximate matching off the distance itself.
func (b *builder) readEdit(tok string) error {
	b.add(OptAlgorithm)
	value, err := b.value(tok)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return &ArgumentError{Option: tok, Value: value, Err: ErrMalformedArgument}
	}
	b.cmd.editDistance = n
	return nil
}

// value consumes the token following the current option.
func (b *builder) value(tok string) (string, error) {
	if b.pos+1 >= len(b.tokens) {
		return "", &ArgumentError{Option: tok, Err: ErrMalformedArgument}
	}
	b.pos++
	return b.tokens[b.pos], nil
}

func (b *builder) add(o Option) {
	b.cmd.options[o] = struct{}{}
}
