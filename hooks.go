package csvfield

// Hooks are callbacks for field decoding events.
// Implementations MUST be cheap and non-blocking: Decode calls them inline,
// once per failing field per record.
type Hooks interface {
	// Field text could not be decoded. input is the raw field text.
	DecodeFailed(name, input string, err error)

	// Field text exceeded Options.MaxDecode and was not decoded.
	DecodeTooLarge(name string, size, limit int)

	// An Optional was stacked on a codec that already maps "" to a value
	// (sequence or matrix). Present-but-empty values will decode as absent.
	LossyOptional(name string)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) DecodeFailed(string, string, error) {}
func (NopHooks) DecodeTooLarge(string, int, int)    {}
func (NopHooks) LossyOptional(string)               {}
