package board

import "fmt"

// SeedDemo fills the board with the starter columns shown on first launch
func SeedDemo(svc Service) error {
	columns := []struct {
		title       string
		description string
		items       []string
	}{
		{title: "To Do", description: "Things that need to be done", items: []string{"Item 1", "Item 2"}},
		{title: "Done", description: "Things that are done", items: []string{"Item 3", "Item 4"}},
	}

	for _, col := range columns {
		group, err := svc.CreateGroup(CreateGroupRequest{Title: col.title, Description: col.description})
		if err != nil {
			return fmt.Errorf("failed to seed group %q: %w", col.title, err)
		}
		for _, title := range col.items {
			if _, err := svc.CreateItem(CreateItemRequest{GroupID: group.ID, Title: title}); err != nil {
				return fmt.Errorf("failed to seed item %q: %w", title, err)
			}
		}
	}
	return nil
}
