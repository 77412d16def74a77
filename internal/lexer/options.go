package lexer

import "jackal/internal/diag"

// Options configures a Tokenizer.
type Options struct {
	// Reporter receives lexical diagnostics. Defaults to NopReporter.
	Reporter diag.Reporter
}

func (o Options) reporter() diag.Reporter {
	if o.Reporter == nil {
		return diag.NopReporter{}
	}
	return o.Reporter
}
