package cart

import "fmt"

// Outcome is the result kind of a cart operation.
type Outcome int

const (
	OutcomeOK Outcome = iota
	// OutcomeNoop is a request the engine ignores on purpose, like a non-positive amount.
	OutcomeNoop
	OutcomeStockExceeded
	OutcomeNotFound
	// OutcomeFailed means a collaborator (inventory or store) failed.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeNoop:
		return "noop"
	case OutcomeStockExceeded:
		return "stock_exceeded"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	for candidate := OutcomeOK; candidate <= OutcomeFailed; candidate++ {
		if candidate.String() == string(text) {
			*o = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", text)
}

// Operation names a cart mutation.
type Operation string

const (
	OpAdd    Operation = "add"
	OpRemove Operation = "remove"
	OpUpdate Operation = "update"
)

// User-facing messages. The storefront matches on their exact text.
const (
	MsgStockExceeded = "Quantidade solicitada fora de estoque"
	MsgAddFailed     = "Erro na adição do produto"
	MsgRemoveFailed  = "Erro na remoção do produto"
	MsgUpdateFailed  = "Erro na alteração de quantidade do produto"
)

// Message returns the notification for an operation outcome, or "" when there is nothing
// to tell the user.
func Message(op Operation, o Outcome) string {
	switch o {
	case OutcomeOK, OutcomeNoop:
		return ""
	case OutcomeStockExceeded:
		return MsgStockExceeded
	}

	switch op {
	case OpAdd:
		return MsgAddFailed
	case OpRemove:
		return MsgRemoveFailed
	case OpUpdate:
		return MsgUpdateFailed
	default:
		return ""
	}
}
