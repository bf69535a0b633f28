package cart

import (
	"encoding/json"
	"fmt"
)

// Kind identifies which catalog family an item belongs to.
type Kind string

const (
	KindSingle Kind = "single-item"
	KindNote   Kind = "note"
	KindBundle Kind = "bundle"
)

// Detail carries the fields that only exist for one item kind. Exactly one
// variant is attached to each Item, selected by its Kind.
type Detail interface {
	kind() Kind
}

// Single is a standalone printable design.
type Single struct {
	DesignNumber int `json:"designNumber"`
}

func (Single) kind() Kind { return KindSingle }

// Note is a printable Santa note.
type Note struct {
	NoteNumber int `json:"noteNumber"`
}

func (Note) kind() Kind { return KindNote }

// Bundle is the full-collection bundle; it has no extra fields.
type Bundle struct{}

func (Bundle) kind() Kind { return KindBundle }

// Item is a single cart entry. Identity is ID; each entry represents one
// unit, so there is no quantity field.
type Item struct {
	ID             string
	Name           string
	Description    string
	ImageURL       string
	PriceReference string
	UnitPrice      Cents
	Detail         Detail
}

// Kind returns the kind of the attached detail variant.
func (i Item) Kind() Kind {
	if i.Detail == nil {
		return ""
	}
	return i.Detail.kind()
}

// wireItem is the flat JSON shape persisted to the snapshot store; the
// kind field selects which optional numbers are meaningful.
type wireItem struct {
	ID             string `json:"id"`
	Kind           Kind   `json:"kind"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	ImageURL       string `json:"imageUrl,omitempty"`
	PriceReference string `json:"priceReference"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	DesignNumber   int    `json:"designNumber,omitempty"`
	NoteNumber     int    `json:"noteNumber,omitempty"`
}

func (i Item) MarshalJSON() ([]byte, error) {
	w := wireItem{
		ID:             i.ID,
		Kind:           i.Kind(),
		Name:           i.Name,
		Description:    i.Description,
		ImageURL:       i.ImageURL,
		PriceReference: i.PriceReference,
		UnitPriceCents: int64(i.UnitPrice),
	}
	switch d := i.Detail.(type) {
	case Single:
		w.DesignNumber = d.DesignNumber
	case Note:
		w.NoteNumber = d.NoteNumber
	}
	return json.Marshal(w)
}

func (i *Item) UnmarshalJSON(data []byte) error {
	var w wireItem
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	var detail Detail
	switch w.Kind {
	case KindSingle:
		detail = Single{DesignNumber: w.DesignNumber}
	case KindNote:
		detail = Note{NoteNumber: w.NoteNumber}
	case KindBundle:
		detail = Bundle{}
	default:
		return fmt.Errorf("unknown item kind %q", w.Kind)
	}
	*i = Item{
		ID:             w.ID,
		Name:           w.Name,
		Description:    w.Description,
		ImageURL:       w.ImageURL,
		PriceReference: w.PriceReference,
		UnitPrice:      Cents(w.UnitPriceCents),
		Detail:         detail,
	}
	return nil
}
