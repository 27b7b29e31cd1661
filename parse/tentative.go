package parse

import "dbgexpr/lex"

// tentativeParse is a scoped snapshot for speculative parsing. It captures
// the token-stream position, the current token and the error slot. Exactly
// one of commit or rollback must be called; snapshots nest and must be
// released innermost-first. Violations are programmer errors and panic.
type tentativeParse struct {
	p    *Parser
	mark int
	tok  lex.Token
	err  *Error
	done bool
}

func (p *Parser) tentative() *tentativeParse {
	t := &tentativeParse{
		p:    p,
		mark: p.stream.Mark(),
		tok:  p.tok,
		err:  p.err,
	}
	p.snaps = append(p.snaps, t)
	return t
}

// commit keeps the consumed tokens and any recorded error.
func (t *tentativeParse) commit() {
	t.release()
}

// rollback restores the stream position and the current token, making all
// speculatively consumed tokens available again, and clears any error raised
// during the speculation. Bail-outs fire inside speculative paths too; a
// rolled-back path must leave no trace.
func (t *tentativeParse) rollback() {
	t.release()
	t.p.stream.Restore(t.mark)
	t.p.tok = t.tok
	t.p.err = t.err
}

func (t *tentativeParse) release() {
	if t.done {
		panic("tentative parse released twice")
	}
	p := t.p
	if len(p.snaps) == 0 || p.snaps[len(p.snaps)-1] != t {
		panic("tentative parses released out of order")
	}
	p.snaps = p.snaps[:len(p.snaps)-1]
	t.done = true
}
