package sitelog

import (
	stderrs "errors"
	"strings"

	smerrors "github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
)

// maxChainDepth bounds the walk for cyclic or pathological causes.
const maxChainDepth = 50

// errorChain is a cause's messages and operation ids, outermost first. ops
// holds "" for links that are not DetailedErrors.
type errorChain struct {
	messages []string
	ops      []string
}

// walkErrorChain prefers DetailedError.Cause() over errors.Unwrap and stops
// at a repeated plain message.
func walkErrorChain(err error) errorChain {
	var c errorChain
	seen := make(map[string]struct{})

	for depth := 0; err != nil && depth < maxChainDepth; depth++ {
		if dErr, ok := smerrors.AsDetailedError(err); ok && dErr != nil {
			c.add(dErr.Error(), string(dErr.Op()))
			err = dErr.Cause()
			continue
		}

		msg := err.Error()
		if _, dup := seen[msg]; dup {
			break
		}
		seen[msg] = struct{}{}
		c.add(msg, emptyString)
		err = stderrs.Unwrap(err)
	}
	return c
}

func (c *errorChain) add(msg, op string) {
	c.messages = append(c.messages, msg)
	c.ops = append(c.ops, op)
}

func (c errorChain) empty() bool { return len(c.messages) == 0 }

// root is the innermost message.
func (c errorChain) root() string {
	if c.empty() {
		return emptyString
	}
	return c.messages[len(c.messages)-1]
}

// rootOp is the innermost operation id, "" when it has none.
func (c errorChain) rootOp() string {
	if c.empty() {
		return emptyString
	}
	return c.ops[len(c.ops)-1]
}

// history joins the messages with " -> ".
func (c errorChain) history() string {
	return strings.Join(c.messages, " -> ")
}

// appendCauseFields attaches a cause to a telemetry record. Errors get the
// full chain; anything else is recorded under "cause".
func appendCauseFields(e *zerolog.Event, cause any) {
	if e == nil || cause == nil {
		return
	}
	err, ok := cause.(error)
	if !ok {
		e.Interface("cause", cause)
		return
	}
	e.Err(err)
	c := walkErrorChain(err)
	if c.empty() {
		return
	}
	e.Strs("error_chain", c.messages).
		Str("error_root", c.root()).
		Str("error_history", c.history()).
		Strs("error_ops", c.ops)
	if op := c.rootOp(); op != emptyString {
		e.Str("error_root_op", op)
	}
}
