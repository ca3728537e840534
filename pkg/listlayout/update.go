package listlayout

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidUpdate = errors.New("invalid update")

type Action int

const (
	ActionNone Action = iota
	ActionDelete
	ActionInsert
	ActionMove
	ActionReload
)

func (a Action) String() string {
	switch a {
	case ActionDelete:
		return "delete"
	case ActionInsert:
		return "insert"
	case ActionMove:
		return "move"
	case ActionReload:
		return "reload"
	default:
		return "none"
	}
}

func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "delete":
		return ActionDelete, nil
	case "insert":
		return ActionInsert, nil
	case "move":
		return ActionMove, nil
	case "reload":
		return ActionReload, nil
	default:
		return ActionNone, fmt.Errorf("%w: unknown action %q", ErrInvalidUpdate, s)
	}
}

// Update is one structural change of a batch. Before is the row index prior
// to the batch, After the index once it is applied; unused sides are -1.
type Update struct {
	Action Action
	Before int
	After  int
}

func DeleteAt(index int) Update {
	return Update{Action: ActionDelete, Before: index, After: -1}
}

func InsertAt(index int) Update {
	return Update{Action: ActionInsert, Before: -1, After: index}
}

func MoveFrom(before, after int) Update {
	return Update{Action: ActionMove, Before: before, After: after}
}

func ReloadAt(index int) Update {
	return Update{Action: ActionReload, Before: index, After: index}
}

func (u Update) String() string {
	switch u.Action {
	case ActionDelete:
		return fmt.Sprintf("delete(%d)", u.Before)
	case ActionInsert:
		return fmt.Sprintf("insert(%d)", u.After)
	case ActionMove:
		return fmt.Sprintf("move(%d->%d)", u.Before, u.After)
	case ActionReload:
		return fmt.Sprintf("reload(%d)", u.Before)
	default:
		return "none"
	}
}
