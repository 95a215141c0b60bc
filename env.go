package fmtstream

// Env renders key-value pairs as KEY=VALUE lines, each ending in a newline.
type Env struct {
	Pairs []KeyValue
	// Export prefixes each line with "export ".
	Export bool
	// Quote renders values as JSON strings, which are also valid
	// double-quoted shell words for printable ASCII.
	Quote bool
}

// EnvOf builds an [Env] from any [Mappable].
func EnvOf(m Mappable, export, quote bool) Env {
	return Env{Pairs: m.Pairs(), Export: export, Quote: quote}
}

// StreamTo implements [Streamable].
func (e Env) StreamTo(s *Stream) {
	for _, kv := range e.Pairs {
		if e.Export {
			_, _ = s.WriteString("export ")
		}
		_, _ = s.WriteString(kv.Key)
		_ = s.WriteByte('=')
		if e.Quote {
			Quoted(kv.Value).StreamTo(s)
		} else {
			_, _ = s.WriteString(kv.Value)
		}
		_ = s.WriteByte('\n')
	}
}
