package santa

// Format parses source as santa-lang and re-renders it in canonical
// style. It returns a *ParseError (wrapped) if source does not parse.
func Format(source []byte) ([]byte, error) {
	program, err := Parse(source)
	if err != nil {
		return nil, err
	}
	doc := BuildProgram(program)
	return []byte(Print(doc)), nil
}

// IsFormatted reports whether source is already in canonical form: it
// formats source and compares byte-for-byte, exactly as a second Format
// call would see it. Format is idempotent, so this doubles as a check
// that nothing further would change.
func IsFormatted(source []byte) (bool, error) {
	formatted, err := Format(source)
	if err != nil {
		return false, err
	}
	return string(formatted) == string(source), nil
}
