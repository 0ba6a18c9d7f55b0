package gogrid

import (
	"fmt"

	"github.com/samber/lo"
)

// Action is a custom row action. URL holds a single {0} placeholder for the
// record identifier.
type Action struct {
	Text string
	URL  string
}

const (
	editIcon   = "wb-wrench"
	deleteIcon = "wb-close"
)

// defaultActions returns the edit and delete cells for a record served by
// controller.
func defaultActions(controller string, id int) []Cell {
	return []Cell{
		{Kind: CellAction, Text: "Edit", Href: fmt.Sprintf("/%s/Edit/%d", controller, id), Icon: editIcon},
		{Kind: CellAction, Text: "Delete", Href: fmt.Sprintf("/%s/Delete/%d", controller, id), Icon: deleteIcon},
	}
}

func customActions(actions []Action, id int) []Cell {
	return lo.Map(actions, func(a Action, _ int) Cell {
		return Cell{
			Kind: CellAction,
			Text: plainLabel(a.Text),
			Href: formatURL(a.URL, id),
		}
	})
}
