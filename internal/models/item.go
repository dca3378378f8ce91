package models

type Item struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (i Item) RecordID() int {
	return i.ID
}

// ItemPayload is the wire form of an Item, with pointers so absent fields can be told apart from zero values.
type ItemPayload struct {
	ID          *int    `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (p ItemPayload) ToItem() (Item, error) {
	if p.ID == nil {
		return Item{}, missingField("id")
	}
	if p.Name == nil {
		return Item{}, missingField("name")
	}
	return Item{
		ID:          *p.ID,
		Name:        *p.Name,
		Description: p.Description,
	}, nil
}
